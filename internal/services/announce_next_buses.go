package services

import (
	"bus-schedule-skill/internal/ports"
	"context"
	"fmt"
	"time"
)

type AnnounceRequest struct {
	StopID      string
	Route       string
	RouteName   string
	Destination string
	Count       int
	Location    *time.Location
}

// AnnounceNextBuses fetches the stop schedule, extracts the next departures
// of the configured route and renders the utterance.
// Fetch and data failures are returned wrapped; callers classify them with
// domain.KindOf.
func AnnounceNextBuses(
	ctx context.Context,
	req AnnounceRequest,
	provider ports.ScheduleProvider,
) (string, error) {
	schedule, err := provider.FetchSchedule(ctx, req.StopID)
	if err != nil {
		return "", fmt.Errorf("announce next buses: fetch stop=%s: %w", req.StopID, err)
	}

	buses, err := ExtractNextBuses(schedule, req.Route, req.Count, req.Location)
	if err != nil {
		return "", fmt.Errorf("announce next buses: extract route=%s: %w", req.Route, err)
	}

	return RenderNextBusesSpeech(buses, req.RouteName, req.Destination, req.Location), nil
}
