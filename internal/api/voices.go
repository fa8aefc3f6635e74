package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"orrerygo/pkg/model"
	"orrerygo/pkg/texts"
	"orrerygo/pkg/tts"
)

// VoicesHandler serves the remote voice list, the supported locales and
// one-shot remote synthesis.
type VoicesHandler struct {
	tts           tts.Provider
	locales       []string
	voices        map[string]string
	defaultLocale string
}

// NewVoicesHandler creates a VoicesHandler. provider may be nil when no
// remote synthesis is configured; the voice list is then empty and
// synthesis requests are rejected.
func NewVoicesHandler(provider tts.Provider, locales []string, voices map[string]string, defaultLocale string) *VoicesHandler {
	return &VoicesHandler{tts: provider, locales: locales, voices: voices, defaultLocale: defaultLocale}
}

// HandleVoices handles GET /api/voices
func (h *VoicesHandler) HandleVoices(w http.ResponseWriter, r *http.Request) {
	voices := []tts.Voice{}
	if h.tts != nil {
		vs, err := h.tts.Voices(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		voices = vs
	}
	writeJSON(w, map[string]any{"voices": voices})
}

// HandleLocales handles GET /api/locales
func (h *VoicesHandler) HandleLocales(w http.ResponseWriter, r *http.Request) {
	langs := make([]model.LanguageInfo, 0, len(h.locales))
	for _, loc := range h.locales {
		langs = append(langs, model.LanguageInfo{Code: loc, Name: texts.LanguageName(loc)})
	}
	writeJSON(w, map[string]any{"locales": langs})
}

// SynthesizeRequest asks for a one-shot remote synthesis of a script.
type SynthesizeRequest struct {
	Script string `json:"script"`
	Locale string `json:"locale"`
}

// HandleSynthesize handles POST /api/speech/synthesize. The response body is
// the raw audio; the temp file is removed after serving.
func (h *VoicesHandler) HandleSynthesize(w http.ResponseWriter, r *http.Request) {
	if h.tts == nil {
		http.Error(w, "remote synthesis is not configured", http.StatusServiceUnavailable)
		return
	}

	var req SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		http.Error(w, "script is required", http.StatusBadRequest)
		return
	}

	voice := h.voices[req.Locale]
	if voice == "" {
		voice = h.voices[h.defaultLocale]
	}

	path := filepath.Join(os.TempDir(), "synth-"+uuid.NewString()+".mp3")
	format, err := h.tts.Synthesize(r.Context(), req.Script, voice, path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.Warn("Failed to remove synthesis artifact", "path", path, "error", err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "failed to read synthesized audio", http.StatusInternalServerError)
		return
	}

	contentType := "application/octet-stream"
	switch format {
	case "mp3":
		contentType = "audio/mpeg"
	case "wav":
		contentType = "audio/wav"
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write audio response", "error", err)
	}
}
