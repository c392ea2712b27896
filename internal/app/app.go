package app

import (
	"bus-schedule-skill/internal/adapters/transit"
	"bus-schedule-skill/internal/config"
	"bus-schedule-skill/internal/services"
	"bus-schedule-skill/internal/skill"
	"fmt"
)

// NewSkill wires the transit provider and request handlers from cfg.
// Shared by the HTTP server and the one-shot CLI.
func NewSkill(cfg *config.Config) (*skill.Skill, error) {
	provider, err := transit.NewWinnipegScheduleProvider(cfg.Provider.APIKey, transit.Options{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Timeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("new skill: %w", err)
	}

	a := cfg.Announcement
	launch := &skill.LaunchHandler{
		Provider: provider,
		Announce: services.AnnounceRequest{
			StopID:      a.StopID,
			Route:       a.Route,
			RouteName:   a.RouteName,
			Destination: a.Destination,
			Count:       a.Count,
			Location:    cfg.Location(),
		},
		IntentName: a.IntentName,
	}

	return skill.New([]skill.RequestHandler{launch, skill.SessionEndedHandler{}}), nil
}
