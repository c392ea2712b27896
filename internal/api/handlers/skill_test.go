package handlers

import (
	"bus-schedule-skill/internal/adapters/transit"
	"bus-schedule-skill/internal/api/dto"
	"bus-schedule-skill/internal/domain"
	"bus-schedule-skill/internal/services"
	"bus-schedule-skill/internal/skill"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillHandler(provider *transit.MockScheduleProvider) *SkillHandler {
	s := skill.New([]skill.RequestHandler{
		&skill.LaunchHandler{
			Provider: provider,
			Announce: services.AnnounceRequest{
				StopID:      "61104",
				Route:       "BLUE",
				RouteName:   "Blue",
				Destination: "downtown",
				Count:       5,
				Location:    time.UTC,
			},
			IntentName: "GetNextBusesIntent",
		},
		skill.SessionEndedHandler{},
	})
	return &SkillHandler{Skill: s}
}

func invoke(t *testing.T, h *SkillHandler, method, body string) (*httptest.ResponseRecorder, dto.ResponseEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, "/skill", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Invoke(rec, req)

	var env dto.ResponseEnvelope
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestSkillHandlerLaunchRequest(t *testing.T) {
	provider := transit.NewMockScheduleProvider(map[string]*domain.ScheduleResponse{
		"61104": {StopSchedule: &domain.StopSchedule{RouteSchedules: []domain.RouteSchedule{{
			Route: domain.Route{Number: "BLUE"},
			ScheduledStops: []domain.StopEvent{
				{Times: domain.StopTimes{Departure: &domain.EventTime{Scheduled: "2024-01-01T09:05:00"}}},
				{Times: domain.StopTimes{Departure: &domain.EventTime{Scheduled: "2024-01-01T08:00:00"}}},
			},
		}}}},
	})

	body := `{
		"version": "1.0",
		"session": {"new": true, "sessionId": "amzn1.echo-api.session.1"},
		"context": {"System": {"application": {"applicationId": "amzn1.ask.skill.1"}}},
		"request": {"type": "LaunchRequest", "requestId": "amzn1.echo-api.request.1", "locale": "en-CA"}
	}`

	rec, env := invoke(t, newSkillHandler(provider), http.MethodPost, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json;charset=UTF-8", rec.Header().Get("Content-Type"))

	assert.Equal(t, "1.0", env.Version)
	require.NotNil(t, env.Response.OutputSpeech)
	assert.Equal(t, "PlainText", env.Response.OutputSpeech.Type)
	assert.Equal(t,
		"The next buses to downtown are scheduled as follows: Bus 1 at 8:00 AM. Bus 2 at 9:05 AM.",
		env.Response.OutputSpeech.Text)
	assert.True(t, env.Response.ShouldEndSession)
}

func TestSkillHandlerIntentRequest(t *testing.T) {
	provider := transit.NewMockScheduleProvider(map[string]*domain.ScheduleResponse{
		"61104": {StopSchedule: &domain.StopSchedule{}},
	})

	body := `{"version":"1.0","request":{"type":"IntentRequest","intent":{"name":"GetNextBusesIntent"}}}`

	rec, env := invoke(t, newSkillHandler(provider), http.MethodPost, body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Response.OutputSpeech)
	assert.Equal(t, "Sorry, there are no upcoming Blue buses to downtown at the moment.", env.Response.OutputSpeech.Text)
}

func TestSkillHandlerSessionEndedHasNoSpeech(t *testing.T) {
	rec, env := invoke(t, newSkillHandler(transit.NewMockScheduleProvider(nil)), http.MethodPost,
		`{"version":"1.0","request":{"type":"SessionEndedRequest","reason":"USER_INITIATED"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.Response.OutputSpeech)
	assert.NotContains(t, rec.Body.String(), "outputSpeech")
}

func TestSkillHandlerFetchFailure(t *testing.T) {
	provider := transit.NewMockScheduleProvider(nil).FailWith("61104", &domain.ScheduleFetchError{
		Status: 500,
		Cause:  "the transit service responded with an error",
	})

	rec, env := invoke(t, newSkillHandler(provider), http.MethodPost, `{"request":{"type":"LaunchRequest"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Response.OutputSpeech)
	assert.Equal(t,
		"Sorry, I couldn't retrieve the bus schedule due to an error: "+
			"the transit service responded with an error (status 500). Please try again later.",
		env.Response.OutputSpeech.Text)
}

func TestSkillHandlerRejectsBadRequests(t *testing.T) {
	h := newSkillHandler(transit.NewMockScheduleProvider(nil))

	rec, _ := invoke(t, h, http.MethodGet, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))

	rec, _ = invoke(t, h, http.MethodPost, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = invoke(t, h, http.MethodPost, `{"version":"1.0","request":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "request.type is required")

	rec, _ = invoke(t, h, http.MethodPost, `{"request":{"type":"`+strings.Repeat("x", maxEnvelopeBytes)+`"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	h := &HealthHandler{StopID: "61104", Route: "BLUE"}

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, map[string]string{"status": "ok", "stop": "61104", "route": "BLUE"}, res)

	rec = httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
