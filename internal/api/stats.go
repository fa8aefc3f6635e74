package api

import (
	"net/http"
	"runtime"
	"time"

	"orrerygo/pkg/tracker"
	"orrerygo/pkg/version"
)

// StatsHandler reports provider usage counters and process stats.
type StatsHandler struct {
	tracker *tracker.Tracker
	started time.Time
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(t *tracker.Tracker) *StatsHandler {
	return &StatsHandler{tracker: t, started: time.Now()}
}

// ServeHTTP handles GET /api/stats
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, map[string]any{
		"version":   version.Version,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"providers": h.tracker.Snapshot(),
		"process": map[string]any{
			"goroutines":     runtime.NumGoroutine(),
			"heap_alloc_mb":  mem.HeapAlloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
	})
}
