package api

import (
	"encoding/json"
	"net/http"

	"orrerygo/pkg/audio"
)

// AudioHandler handles playback volume and status endpoints.
type AudioHandler struct {
	audio audio.Service
}

// NewAudioHandler creates an AudioHandler.
func NewAudioHandler(audioMgr audio.Service) *AudioHandler {
	return &AudioHandler{audio: audioMgr}
}

// VolumeRequest sets the playback volume.
type VolumeRequest struct {
	Volume float64 `json:"volume"`
}

// StatusResponse reports the playback state.
type StatusResponse struct {
	IsPlaying bool    `json:"is_playing"`
	IsPaused  bool    `json:"is_paused"`
	Volume    float64 `json:"volume"`
}

// HandleVolume handles POST /api/audio/volume
func (h *AudioHandler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	var req VolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.audio.SetVolume(req.Volume)

	writeJSON(w, map[string]any{"status": "ok", "volume": h.audio.Volume()})
}

// HandleStatus handles GET /api/audio/status
func (h *AudioHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusResponse{
		IsPlaying: h.audio.IsPlaying(),
		IsPaused:  h.audio.IsPaused(),
		Volume:    h.audio.Volume(),
	})
}
