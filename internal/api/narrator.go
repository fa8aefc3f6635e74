package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"orrerygo/pkg/model"
	"orrerygo/pkg/narrator"
)

// NarratorController is the narration surface the API needs.
type NarratorController interface {
	Narrate(bodyID, locale string) (string, error)
	Pause()
	Resume()
	Stop()
	Toggle()
	Status() narrator.Status
	GenerateScript(ctx context.Context, bodyID, locale string) (*model.Narrative, error)
}

// NarratorHandler handles narration endpoints.
type NarratorHandler struct {
	narrator      NarratorController
	defaultLocale string
}

// NewNarratorHandler creates a NarratorHandler.
func NewNarratorHandler(n NarratorController, defaultLocale string) *NarratorHandler {
	return &NarratorHandler{narrator: n, defaultLocale: defaultLocale}
}

// PlayRequest asks for a body to be narrated. An empty locale means the
// configured default.
type PlayRequest struct {
	BodyID string `json:"body_id"`
	Locale string `json:"locale,omitempty"`
}

// HandlePlay handles POST /api/narrator/play
func (h *NarratorHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Locale == "" {
		req.Locale = h.defaultLocale
	}

	id, err := h.narrator.Narrate(req.BodyID, req.Locale)
	if err != nil {
		switch {
		case errors.Is(err, narrator.ErrUnknownBody):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, narrator.ErrUnsupportedLocale):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("narration requested", "body", req.BodyID, "locale", req.Locale, "request", id)
	writeJSON(w, map[string]string{"status": "requesting", "request_id": id})
}

// ControlRequest is a transport command for the running narration.
type ControlRequest struct {
	Action string `json:"action"` // "pause", "resume", "stop", "toggle"
}

// HandleControl handles POST /api/narrator/control
func (h *NarratorHandler) HandleControl(w http.ResponseWriter, r *http.Request) {
	var req ControlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "pause":
		h.narrator.Pause()
	case "resume":
		h.narrator.Resume()
	case "stop":
		h.narrator.Stop()
	case "toggle":
		h.narrator.Toggle()
	default:
		http.Error(w, "unknown action: "+req.Action, http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{"status": "ok", "narrator": h.narrator.Status()})
}

// HandleStatus handles GET /api/narrator/status
func (h *NarratorHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.narrator.Status())
}

// GenerateRequest asks for a script without playing it.
type GenerateRequest struct {
	BodyID string `json:"body_id"`
	Locale string `json:"locale,omitempty"`
}

// HandleGenerate handles POST /api/narration/generate. It returns the script
// text and the tier that produced it, for previewing and debugging.
func (h *NarratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Locale == "" {
		req.Locale = h.defaultLocale
	}

	n, err := h.narrator.GenerateScript(r.Context(), req.BodyID, req.Locale)
	if err != nil {
		switch {
		case errors.Is(err, narrator.ErrUnknownBody):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, narrator.ErrUnsupportedLocale):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, n)
}
