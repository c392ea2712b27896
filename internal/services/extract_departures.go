package services

import (
	"bus-schedule-skill/internal/domain"
	"sort"
	"strings"
	"time"
)

// Provider-local timestamps carry no offset ("2024-01-01T09:05:00").
const localTimestampLayout = "2006-01-02T15:04:05"

// ExtractNextBuses selects the route whose number equals route (exact,
// case-sensitive), orders its stop events by scheduled departure and keeps
// the first count of them.
//
// Missing or malformed structure yields an empty result. A stop event in the
// selected route without a parseable departure fails the whole extraction
// with *domain.ScheduleDataError; other routes are never parsed.
func ExtractNextBuses(
	schedule *domain.ScheduleResponse,
	route string,
	count int,
	loc *time.Location,
) (domain.NextBuses, error) {
	out := domain.NextBuses{}
	if count <= 0 {
		return out, nil
	}

	target, ok := findRoute(schedule.RouteSchedules(), route)
	if !ok || len(target.ScheduledStops) == 0 {
		return out, nil
	}

	deps := make(domain.NextBuses, 0, len(target.ScheduledStops))
	for i, ev := range target.ScheduledStops {
		raw := ev.ScheduledDeparture()
		at, err := ParseDepartureTime(raw, loc)
		if err != nil {
			return nil, &domain.ScheduleDataError{Route: route, Index: i, Value: raw, Err: err}
		}
		deps = append(deps, domain.Departure{DepartureTime: at, Event: ev})
	}

	// Stable: equal instants keep provider order.
	sort.SliceStable(deps, func(i, j int) bool {
		return deps[i].DepartureTime.Before(deps[j].DepartureTime)
	})

	if count < len(deps) {
		deps = deps[:count]
	}
	return append(out, deps...), nil
}

func findRoute(routes []domain.RouteSchedule, number string) (domain.RouteSchedule, bool) {
	for _, r := range routes {
		if r.Route.Number == number {
			return r, true
		}
	}
	return domain.RouteSchedule{}, false
}

// ParseDepartureTime accepts RFC 3339 timestamps and offset-less provider
// timestamps, the latter interpreted in loc (UTC when loc is nil).
func ParseDepartureTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(localTimestampLayout, raw, loc)
}
