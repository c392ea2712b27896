package transit

import (
	"bus-schedule-skill/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Upper bound on a schedule payload; a busy stop is well under 1 MiB.
const maxBodyBytes = 4 << 20

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (p *WinnipegScheduleProvider) newRequest(
	ctx context.Context,
	method string,
	endpoint string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("api-key", p.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", p.userAgent)

	return req, nil
}

func (p *WinnipegScheduleProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := p.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// fetchError converts transport and status failures into a ScheduleFetchError.
// *url.Error embeds the full request URL (and with it the api key), so only
// its inner error is retained.
func fetchError(err error) *domain.ScheduleFetchError {
	var he *httpStatusError
	if errors.As(err, &he) {
		return &domain.ScheduleFetchError{
			Status: he.Code,
			Cause:  "the transit service responded with an error",
			Err:    he,
		}
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		err = ue.Err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.ScheduleFetchError{Cause: "the transit service did not respond in time", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.ScheduleFetchError{Cause: "the transit service did not respond in time", Err: err}
	}

	return &domain.ScheduleFetchError{Cause: "the transit service could not be reached", Err: err}
}

func decodeSchedule(body io.Reader) (*domain.ScheduleResponse, error) {
	b, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, fetchError(fmt.Errorf("read schedule body: %w", err))
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, &domain.ScheduleFetchError{Cause: "the transit service returned an empty schedule"}
	}

	var decoded domain.ScheduleResponse
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, &domain.ScheduleFetchError{
			Cause: "the transit service returned an unreadable schedule",
			Err:   fmt.Errorf("decode schedule: %w", err),
		}
	}

	return &decoded, nil
}
