package skill

import (
	"bus-schedule-skill/internal/domain"
	"bus-schedule-skill/internal/platform/obs"
	"bus-schedule-skill/internal/ports"
	"bus-schedule-skill/internal/services"
	"context"
	"log"
)

// LaunchHandler announces the next departures when the skill is opened,
// or when the one-shot intent is invoked directly.
type LaunchHandler struct {
	Provider   ports.ScheduleProvider
	Announce   services.AnnounceRequest
	IntentName string
}

func (h *LaunchHandler) CanHandle(req Request) bool {
	switch req.Type {
	case LaunchRequest:
		return true
	case IntentRequest:
		return h.IntentName != "" && req.IntentName == h.IntentName
	}
	return false
}

// Fetch and data failures are spoken as an apology here; anything else is
// returned for the fallback error handler.
func (h *LaunchHandler) Handle(ctx context.Context, req Request) (Response, error) {
	speech, err := services.AnnounceNextBuses(ctx, h.Announce, h.Provider)
	if err == nil {
		return Speak(speech), nil
	}

	switch kind := domain.KindOf(err); kind {
	case domain.KindFetch, domain.KindData:
		log.Printf("req_id=%s op=skill.launch kind=%s err=%v", obs.RequestID(ctx), kind, err)
		return Speak(services.RenderFetchFailureSpeech(err)), nil
	default:
		return Response{}, err
	}
}

// SessionEndedHandler acknowledges session end; the host ignores speech here.
type SessionEndedHandler struct{}

func (SessionEndedHandler) CanHandle(req Request) bool {
	return req.Type == SessionEndedRequest
}

func (SessionEndedHandler) Handle(ctx context.Context, req Request) (Response, error) {
	return Response{ShouldEndSession: true}, nil
}

// FallbackErrorHandler handles every error with a generic apology that does
// not echo internal detail.
type FallbackErrorHandler struct{}

func (FallbackErrorHandler) CanHandle(req Request, err error) bool { return true }

func (FallbackErrorHandler) Handle(ctx context.Context, req Request, err error) Response {
	log.Printf("req_id=%s op=skill.fallback type=%s err=%v", obs.RequestID(ctx), req.Type, err)
	return Speak(services.GenericErrorSpeech)
}
