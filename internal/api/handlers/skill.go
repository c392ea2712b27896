package handlers

import (
	"bus-schedule-skill/internal/api/dto"
	"bus-schedule-skill/internal/skill"
	"encoding/json"
	"net/http"
	"strings"
)

const maxEnvelopeBytes = 64 << 10

// SkillHandler adapts voice host invocations to the skill dispatcher.
type SkillHandler struct {
	Skill *skill.Skill
}

func (h *SkillHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var env dto.RequestEnvelope

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes))
	defer r.Body.Close()

	if err := dec.Decode(&env); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	reqType := strings.TrimSpace(env.Request.Type)
	if reqType == "" {
		writeError(w, r, http.StatusBadRequest, "request.type is required")
		return
	}

	req := skill.Request{
		Type:      reqType,
		RequestID: env.Request.RequestID,
	}
	if env.Request.Intent != nil {
		req.IntentName = env.Request.Intent.Name
	}

	resp := h.Skill.Dispatch(r.Context(), req)

	out := dto.ResponseEnvelope{
		Version: "1.0",
		Response: dto.ResponseBody{
			ShouldEndSession: resp.ShouldEndSession,
		},
	}
	if resp.Speech != "" {
		out.Response.OutputSpeech = &dto.OutputSpeech{Type: "PlainText", Text: resp.Speech}
	}

	writeJSON(w, r, http.StatusOK, out)
}
