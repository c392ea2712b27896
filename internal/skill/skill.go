package skill

import (
	"bus-schedule-skill/internal/platform/obs"
	"context"
	"fmt"
	"log"
)

// Request types sent by the voice host.
const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

// Request is the part of a host invocation the skill reads.
type Request struct {
	Type       string
	RequestID  string
	IntentName string
}

// Response is the utterance returned to the host. An empty Speech means
// nothing is spoken.
type Response struct {
	Speech           string
	ShouldEndSession bool
}

func Speak(text string) Response {
	return Response{Speech: text, ShouldEndSession: true}
}

type RequestHandler interface {
	CanHandle(req Request) bool
	Handle(ctx context.Context, req Request) (Response, error)
}

type ErrorHandler interface {
	CanHandle(req Request, err error) bool
	Handle(ctx context.Context, req Request, err error) Response
}

// Skill routes a request to the first handler that accepts it. Handler
// errors, panics and unmatched requests go to the first matching error
// handler. Every path ends in a Response.
type Skill struct {
	handlers      []RequestHandler
	errorHandlers []ErrorHandler
}

func New(handlers []RequestHandler, errorHandlers ...ErrorHandler) *Skill {
	return &Skill{
		handlers:      handlers,
		errorHandlers: append(errorHandlers, FallbackErrorHandler{}),
	}
}

func (s *Skill) Dispatch(ctx context.Context, req Request) Response {
	resp, err := s.handle(ctx, req)
	if err == nil {
		recordRequest(req.Type, "ok")
		return resp
	}

	for _, eh := range s.errorHandlers {
		if eh.CanHandle(req, err) {
			recordRequest(req.Type, "error")
			return eh.Handle(ctx, req, err)
		}
	}

	// Unreachable: FallbackErrorHandler always matches.
	return FallbackErrorHandler{}.Handle(ctx, req, err)
}

func (s *Skill) handle(ctx context.Context, req Request) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("req_id=%s op=skill.dispatch panic=%v", obs.RequestID(ctx), r)
			err = fmt.Errorf("skill dispatch: handler panic: %v", r)
		}
	}()

	for _, h := range s.handlers {
		if h.CanHandle(req) {
			return h.Handle(ctx, req)
		}
	}
	return Response{}, fmt.Errorf("skill dispatch: no handler for request type %q", req.Type)
}
