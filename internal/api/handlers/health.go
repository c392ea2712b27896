package handlers

import (
	"net/http"
)

// HealthHandler reports liveness and which stop/route the skill announces.
type HealthHandler struct {
	StopID string
	Route  string
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status": "ok",
		"stop":   h.StopID,
		"route":  h.Route,
	}
	writeJSON(w, r, http.StatusOK, res)
}
