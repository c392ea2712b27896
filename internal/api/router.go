package api

import (
	"bus-schedule-skill/internal/api/handlers"
	"bus-schedule-skill/internal/skill"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(s *skill.Skill, stopID, route string) http.Handler {
	mux := http.NewServeMux()

	skillHandler := &handlers.SkillHandler{Skill: s}
	healthHandler := &handlers.HealthHandler{StopID: stopID, Route: route}

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/skill", skillHandler.Invoke)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
