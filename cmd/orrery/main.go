package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"orrerygo/internal/api"
	"orrerygo/pkg/audio"
	"orrerygo/pkg/cache"
	"orrerygo/pkg/catalog"
	"orrerygo/pkg/config"
	"orrerygo/pkg/db"
	"orrerygo/pkg/llm"
	"orrerygo/pkg/llm/failover"
	"orrerygo/pkg/llm/gemini"
	"orrerygo/pkg/llm/prompts"
	"orrerygo/pkg/logging"
	"orrerygo/pkg/narrator"
	"orrerygo/pkg/orbit"
	"orrerygo/pkg/probe"
	"orrerygo/pkg/request"
	"orrerygo/pkg/speech"
	"orrerygo/pkg/speech/sapi"
	"orrerygo/pkg/tracker"
	"orrerygo/pkg/tts"
	"orrerygo/pkg/tts/azure"
	"orrerygo/pkg/tts/edgetts"
	"orrerygo/pkg/version"
)

var initConfig = flag.Bool("init-config", false, "Generate default config file and exit")

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault("configs/orrery.yaml"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated: configs/orrery.yaml")
		return
	}

	if err := run(context.Background(), "configs/orrery.yaml"); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Credentials may live in a .env next to the binary.
	_ = godotenv.Load()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log, &appCfg.History)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	if appCfg.History.TTS.Enabled {
		tts.SetLogPath(appCfg.History.TTS.Path)
	}

	slog.Info("Orrery Started", "version", version.Version)

	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()

	if err := dbConn.PruneScripts(4 * appCfg.Narrator.ScriptCacheTTL.ToDuration()); err != nil {
		slog.Warn("Script cache pruning failed", "error", err)
	}
	if err := dbConn.PruneCache(4 * appCfg.Narrator.ScriptCacheTTL.ToDuration()); err != nil {
		slog.Warn("Response cache pruning failed", "error", err)
	}

	cat, err := catalog.Load(appCfg.Scene.BodiesPath)
	if err != nil {
		return fmt.Errorf("failed to load body catalog: %w", err)
	}
	slog.Info("Catalog loaded", "bodies", cat.Len(), "star", cat.Star().ID)

	tr := tracker.New()
	blobCache := cache.NewSQLiteCache(dbConn)
	reqClient := request.New(blobCache, tr)

	promptMgr, err := prompts.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize prompts: %w", err)
	}

	llmProv, err := initLLM(appCfg, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	audioMgr := audio.New(appCfg.Narrator.SpeechVolume)
	defer audioMgr.Shutdown()

	speechEngine := initSpeechEngine(ctx)

	narratorSvc := narrator.New(narrator.Options{
		Catalog:  cat,
		Config:   &appCfg.Narrator,
		LLM:      llmProv,
		Voices:   remoteVoices(appCfg),
		Engine:   speechEngine,
		Audio:    audioMgr,
		Prompts:  promptMgr,
		Store:    dbConn,
		AudioDir: "data/audio",
	})

	// The TTS provider needs the narrator as its locale source, so it is
	// wired after construction.
	ttsProv := initTTS(appCfg, narratorSvc, reqClient, tr)
	narratorSvc.SetTTS(ttsProv)

	// Scene loop feeding the websocket hub.
	hub := api.NewHub()
	go hub.Run()

	animator := orbit.NewAnimator(cat, appCfg.Scene.FrameInterval.ToDuration(), appCfg.Scene.DefaultSpeed, func(f orbit.Frame) {
		hub.BroadcastJSON(f)
	})
	go animator.Run(ctx)

	// Startup probes. Remote providers are optional; the pipeline degrades
	// to its local tiers without them.
	probes := []probe.Probe{
		{
			Name:     "Body Catalog",
			Check:    func(context.Context) error { return catalogCheck(cat) },
			Critical: true,
		},
		{
			Name:     "Database",
			Check:    func(c context.Context) error { return dbConn.PingContext(c) },
			Critical: true,
		},
	}
	if llmProv != nil {
		probes = append(probes, probe.Probe{
			Name:     "LLM Providers",
			Check:    llmProv.HealthCheck,
			Critical: false,
		})
	}
	if speechEngine != nil {
		probes = append(probes, probe.Probe{
			Name: "Speech Engine",
			Check: func(c context.Context) error {
				if !speechEngine.Available(c) {
					return fmt.Errorf("engine %q not available", speechEngine.Name())
				}
				return nil
			},
			Critical: false,
		})
	}

	if err := probe.AnalyzeResults(probe.Run(ctx, probes)); err != nil {
		return fmt.Errorf("startup checks failed: %w", err)
	}

	return runServer(ctx, appCfg, cat, animator, narratorSvc, ttsProv, audioMgr, tr, hub)
}

// initLLM builds the failover chain over the configured providers. A missing
// or placeholder key returns nil: remote tiers are then skipped entirely.
func initLLM(cfg *config.Config, tr *tracker.Tracker) (llm.Provider, error) {
	if !cfg.LLM.Enabled() {
		slog.Warn("No LLM credentials configured, narration uses local tiers only")
		return nil, nil
	}

	logPath := ""
	if cfg.History.LLM.Enabled {
		logPath = cfg.History.LLM.Path
	}

	gem, err := gemini.NewClient(cfg.LLM, logPath, tr)
	if err != nil {
		return nil, err
	}

	return failover.New([]llm.Provider{gem}, []string{"gemini"}, logPath, true, tr)
}

// initTTS picks the remote synthesis engine. Edge TTS needs no credentials;
// Azure falls back to Edge when its key is missing.
func initTTS(cfg *config.Config, localeProv tts.LocaleProvider, reqClient *request.Client, tr *tracker.Tracker) tts.Provider {
	rate := cfg.Narrator.SpeechRate
	pitch := cfg.Narrator.SpeechPitch

	switch cfg.TTS.Engine {
	case "azure-speech":
		if cfg.TTS.AzureSpeech.Enabled() {
			return azure.NewProvider(cfg.TTS.AzureSpeech, localeProv, reqClient, tr, rate, pitch)
		}
		slog.Warn("Azure Speech selected but not configured, using Edge TTS")
		return edgetts.NewProvider(tr, rate, pitch)
	case "edge-tts":
		return edgetts.NewProvider(tr, rate, pitch)
	default:
		slog.Warn("Unknown TTS engine, using Edge TTS", "engine", cfg.TTS.Engine)
		return edgetts.NewProvider(tr, rate, pitch)
	}
}

// initSpeechEngine probes the on-device engine once at startup.
func initSpeechEngine(ctx context.Context) speech.Engine {
	eng := sapi.New()
	if !eng.Available(ctx) {
		slog.Warn("On-device speech engine not available, tier 2/3 narration disabled")
		return nil
	}
	slog.Info("On-device speech engine ready", "engine", eng.Name())
	return eng
}

// remoteVoices maps each locale to its configured remote voice.
func remoteVoices(cfg *config.Config) map[string]string {
	voices := map[string]string{
		cfg.Narrator.DefaultLocale:   cfg.TTS.EdgeTTS.VoiceID,
		cfg.Narrator.AlternateLocale: cfg.TTS.EdgeTTS.AlternateVoiceID,
	}
	if cfg.TTS.Engine == "azure-speech" && cfg.TTS.AzureSpeech.VoiceID != "" {
		voices[cfg.Narrator.DefaultLocale] = cfg.TTS.AzureSpeech.VoiceID
	}
	return voices
}

func catalogCheck(cat *catalog.Catalog) error {
	if cat.Len() < 2 {
		return fmt.Errorf("catalog has %d bodies, need the star and at least one planet", cat.Len())
	}
	return nil
}

func runServer(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, animator *orbit.Animator, ns *narrator.Service, ttsProv tts.Provider, audioMgr audio.Service, tr *tracker.Tracker, hub *api.Hub) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(cfg.Server.Address,
		api.NewSceneHandler(animator, cat, cfg.Scene.MaxSpeed),
		api.NewNarratorHandler(ns, cfg.Narrator.DefaultLocale),
		api.NewAudioHandler(audioMgr),
		api.NewVoicesHandler(ttsProv, cfg.Narrator.Locales(), remoteVoices(cfg), cfg.Narrator.DefaultLocale),
		api.NewStatsHandler(tr),
		hub,
		shutdownFunc,
	)

	srv.Handler = loggingMiddleware(srv.Handler)

	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}

	ns.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.RequestLogger.Info("Request Processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
