package ports

import (
	"bus-schedule-skill/internal/domain"
	"context"
)

// Contract for retrieving the current schedule of a single stop.
type ScheduleProvider interface {
	// Return the provider payload for the stop. Failures are reported as
	// *domain.ScheduleFetchError.
	FetchSchedule(ctx context.Context, stopID string) (*domain.ScheduleResponse, error)
}
