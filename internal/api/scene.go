package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"orrerygo/pkg/model"
	"orrerygo/pkg/orbit"
)

// SceneController is the animator surface the API needs.
type SceneController interface {
	Snapshot() orbit.Frame
	SetSpeed(speed float64)
	Speed() float64
}

// BodyCatalog is the read-only catalog surface the API needs.
type BodyCatalog interface {
	Bodies() []model.Body
	Get(id string) (*model.Body, bool)
}

// SceneHandler serves the body catalog and the orbital scene state.
type SceneHandler struct {
	scene    SceneController
	catalog  BodyCatalog
	maxSpeed float64
}

// NewSceneHandler creates a SceneHandler. maxSpeed bounds the user-settable
// time multiplier; values at or below zero fall back to 10.
func NewSceneHandler(scene SceneController, catalog BodyCatalog, maxSpeed float64) *SceneHandler {
	if maxSpeed <= 0 {
		maxSpeed = 10
	}
	return &SceneHandler{scene: scene, catalog: catalog, maxSpeed: maxSpeed}
}

// HandleBodies handles GET /api/bodies
func (h *SceneHandler) HandleBodies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"bodies": h.catalog.Bodies()})
}

// HandleBody handles GET /api/bodies/{id}
func (h *SceneHandler) HandleBody(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, ok := h.catalog.Get(id)
	if !ok {
		http.Error(w, "unknown body: "+id, http.StatusNotFound)
		return
	}
	writeJSON(w, body)
}

// HandleScene handles GET /api/scene
func (h *SceneHandler) HandleScene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.scene.Snapshot())
}

// SpeedRequest sets the orbital time multiplier.
type SpeedRequest struct {
	Speed float64 `json:"speed"`
}

// HandleSpeed handles POST /api/scene/speed. Out-of-range values are clamped,
// not rejected: a child dragging a slider should never see an error.
func (h *SceneHandler) HandleSpeed(w http.ResponseWriter, r *http.Request) {
	var req SpeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	speed := req.Speed
	if speed < 0 {
		speed = 0
	}
	if speed > h.maxSpeed {
		speed = h.maxSpeed
	}
	h.scene.SetSpeed(speed)

	slog.Debug("scene speed changed", "requested", req.Speed, "applied", speed)
	writeJSON(w, map[string]any{"status": "ok", "speed": h.scene.Speed()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
