package domain

import (
	"errors"
	"fmt"
)

// Tagged classification of announcement failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindFetch
	KindData
)

func (k ErrorKind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// ScheduleFetchError reports a failed schedule retrieval: transport errors,
// timeouts, non-200 statuses, empty or undecodable bodies.
// Its message never includes the request URL (which carries the credential).
type ScheduleFetchError struct {
	Status int
	Cause  string
	Err    error
}

func (e *ScheduleFetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Cause, e.Status)
	}
	return e.Cause
}

func (e *ScheduleFetchError) Unwrap() error { return e.Err }

// ScheduleDataError reports a payload that was retrieved but cannot be used,
// such as an unparseable departure timestamp in the target route.
type ScheduleDataError struct {
	Route string
	Index int
	Value string
	Err   error
}

func (e *ScheduleDataError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("route %s has a stop without a scheduled departure time", e.Route)
	}
	return fmt.Sprintf("route %s has an unreadable departure time %q", e.Route, e.Value)
}

func (e *ScheduleDataError) Unwrap() error { return e.Err }

// KindOf maps an error chain to its tagged kind.
func KindOf(err error) ErrorKind {
	var fe *ScheduleFetchError
	if errors.As(err, &fe) {
		return KindFetch
	}
	var de *ScheduleDataError
	if errors.As(err, &de) {
		return KindData
	}
	return KindUnknown
}
