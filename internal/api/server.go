package api

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"orrerygo/internal/ui"
	"orrerygo/pkg/version"
)

// NewServer wires all handlers into the HTTP server. shutdown is called when
// the frontend requests a graceful exit.
func NewServer(addr string, scene *SceneHandler, narratorH *NarratorHandler, audioH *AudioHandler, voicesH *VoicesHandler, stats *StatsHandler, hub *Hub, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /api/version", handleVersion)

	// Scene
	mux.HandleFunc("GET /api/bodies", scene.HandleBodies)
	mux.HandleFunc("GET /api/bodies/{id}", scene.HandleBody)
	mux.HandleFunc("GET /api/scene", scene.HandleScene)
	mux.HandleFunc("POST /api/scene/speed", scene.HandleSpeed)

	// Narration
	mux.HandleFunc("POST /api/narrator/play", narratorH.HandlePlay)
	mux.HandleFunc("POST /api/narrator/control", narratorH.HandleControl)
	mux.HandleFunc("GET /api/narrator/status", narratorH.HandleStatus)
	mux.HandleFunc("POST /api/narration/generate", narratorH.HandleGenerate)

	// Audio
	if audioH != nil {
		mux.HandleFunc("POST /api/audio/volume", audioH.HandleVolume)
		mux.HandleFunc("GET /api/audio/status", audioH.HandleStatus)
	}

	// Voices, locales and one-shot synthesis
	mux.HandleFunc("GET /api/voices", voicesH.HandleVoices)
	mux.HandleFunc("GET /api/locales", voicesH.HandleLocales)
	mux.HandleFunc("POST /api/speech/synthesize", voicesH.HandleSynthesize)

	// Stats
	mux.Handle("GET /api/stats", stats)

	// Live scene feed
	mux.HandleFunc("GET /ws/scene", hub.ServeWs)

	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Let the response flush before tearing the server down.
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	// Static frontend
	distFS, err := fs.Sub(ui.DistFS, "dist")
	if err != nil {
		panic(fmt.Sprintf("Failed to subtree dist from embedded assets: %v", err))
	}
	mux.Handle("/", http.FileServer(&spaFileSystem{root: http.FS(distFS)}))

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
