package domain

import "time"

// Raw provider payload for a single stop, fetched fresh per invocation.
// Only the fields needed to announce departures are decoded.
type ScheduleResponse struct {
	StopSchedule *StopSchedule `json:"stop-schedule"`
}

type StopSchedule struct {
	RouteSchedules []RouteSchedule `json:"route-schedules"`
}

// One transit route serving the stop and its scheduled stop events.
// Events arrive in provider order and are not guaranteed to be sorted.
type RouteSchedule struct {
	Route          Route       `json:"route"`
	ScheduledStops []StopEvent `json:"scheduled-stops"`
}

type Route struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

// A single scheduled departure at the stop.
type StopEvent struct {
	Key   string    `json:"key,omitempty"`
	Times StopTimes `json:"times"`
}

type StopTimes struct {
	Departure *EventTime `json:"departure,omitempty"`
}

// Scheduled/estimated values are kept as raw strings so the extractor
// owns the parsing (and failure) policy.
type EventTime struct {
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated,omitempty"`
}

// ScheduledDeparture returns the raw scheduled departure value, or "" when absent.
func (e StopEvent) ScheduledDeparture() string {
	if e.Times.Departure == nil {
		return ""
	}
	return e.Times.Departure.Scheduled
}

// RouteSchedules returns the route schedules of the payload, tolerating
// a nil receiver and a missing stop-schedule object.
func (s *ScheduleResponse) RouteSchedules() []RouteSchedule {
	if s == nil || s.StopSchedule == nil {
		return nil
	}
	return s.StopSchedule.RouteSchedules
}

// A stop event with its parsed departure instant.
type Departure struct {
	DepartureTime time.Time
	Event         StopEvent
}

// Up to N departures of one route, sorted ascending by departure instant.
// Created per request and discarded after rendering.
type NextBuses []Departure
