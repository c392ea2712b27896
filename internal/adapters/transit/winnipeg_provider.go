package transit

import (
	"bus-schedule-skill/internal/domain"
	"bus-schedule-skill/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.winnipegtransit.com"

// WinnipegScheduleProvider implements ScheduleProvider against the
// Winnipeg Transit open data API (v3).
//
// One GET per call, no retries. The API only accepts the credential as the
// api-key query parameter, so request URLs are never logged or returned in
// errors.
//
// The provider is safe for concurrent use.
type WinnipegScheduleProvider struct {
	session   *http.Client
	apiKey    string
	baseURL   string
	userAgent string
}

type Options struct {
	BaseURL string
	Timeout time.Duration
}

func NewWinnipegScheduleProvider(apiKey string, opts Options) (*WinnipegScheduleProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("transit api key is empty")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("transit base url: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WinnipegScheduleProvider{
		session:   &http.Client{Timeout: timeout},
		apiKey:    apiKey,
		baseURL:   baseURL,
		userAgent: "bus-schedule-skill/1.0",
	}, nil
}

// FetchSchedule retrieves the stop schedule for stopID.
func (p *WinnipegScheduleProvider) FetchSchedule(
	ctx context.Context,
	stopID string,
) (_ *domain.ScheduleResponse, err error) {
	defer obs.Time(ctx, "transit.fetchSchedule")(&err)

	start := time.Now()
	defer func() { observeFetch(start, err) }()

	stopID = strings.TrimSpace(stopID)
	if stopID == "" {
		return nil, &domain.ScheduleFetchError{Cause: "no bus stop is configured"}
	}

	endpoint := fmt.Sprintf("%s/v3/stops/%s/schedule.json", p.baseURL, url.PathEscape(stopID))

	req, err := p.newRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, &domain.ScheduleFetchError{Cause: "could not build the schedule request", Err: err}
	}

	resp, err := p.do(req)
	if err != nil {
		return nil, fetchError(err)
	}
	defer resp.Body.Close()

	return decodeSchedule(resp.Body)
}
