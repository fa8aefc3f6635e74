// Package config loads and persists the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderKey is the value written into generated config files where a
// real credential is expected. A key equal to this (or empty) disables the
// remote narration tiers without being treated as an error.
const PlaceholderKey = "YOUR_API_KEY_HERE"

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	History  HistoryConfig  `yaml:"history"`
	DB       DBConfig       `yaml:"db"`
	Scene    SceneConfig    `yaml:"scene"`
	LLM      LLMConfig      `yaml:"llm"`
	TTS      TTSConfig      `yaml:"tts"`
	Narrator NarratorConfig `yaml:"narrator"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
}

// HistorySettings controls one request-history log.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// HistoryConfig holds settings for the LLM/TTS request-history logs.
type HistoryConfig struct {
	LLM HistorySettings `yaml:"llm"`
	TTS HistorySettings `yaml:"tts"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// SceneConfig holds settings for the orbital scene loop.
type SceneConfig struct {
	BodiesPath    string   `yaml:"bodies_path"`
	FrameInterval Duration `yaml:"frame_interval"`
	DefaultSpeed  float64  `yaml:"default_speed"`
	MaxSpeed      float64  `yaml:"max_speed"`
}

// LLMConfig holds settings for the script-generation provider.
type LLMConfig struct {
	Provider string            `yaml:"provider"` // "gemini", "mock"
	Model    string            `yaml:"model"`
	Key      string            `yaml:"key"`
	Profiles map[string]string `yaml:"profiles"` // intent -> model
}

// Enabled reports whether a usable credential is configured. A missing or
// placeholder key degrades the pipeline to its local tiers.
func (c LLMConfig) Enabled() bool {
	return c.Key != "" && c.Key != PlaceholderKey
}

// EdgeTTSConfig holds settings for Edge TTS.
type EdgeTTSConfig struct {
	VoiceID          string `yaml:"voice"`
	AlternateVoiceID string `yaml:"alternate_voice"`
}

// AzureSpeechConfig holds settings for Azure Speech TTS.
type AzureSpeechConfig struct {
	Key     string `yaml:"key"`
	Region  string `yaml:"region"`
	VoiceID string `yaml:"voice"`
}

// Enabled reports whether the Azure credentials are usable.
func (c AzureSpeechConfig) Enabled() bool {
	return c.Key != "" && c.Key != PlaceholderKey && c.Region != ""
}

// TTSConfig holds remote speech-synthesis settings.
type TTSConfig struct {
	Engine      string            `yaml:"engine"`
	EdgeTTS     EdgeTTSConfig     `yaml:"edge_tts"`
	AzureSpeech AzureSpeechConfig `yaml:"azure_speech"`
}

// NarratorConfig holds settings for the speech acquisition pipeline.
type NarratorConfig struct {
	DefaultLocale   string   `yaml:"default_locale"`
	AlternateLocale string   `yaml:"alternate_locale"`
	SpeechRate      float64  `yaml:"speech_rate"`
	SpeechPitch     float64  `yaml:"speech_pitch"`
	SpeechVolume    float64  `yaml:"speech_volume"`
	ScriptCacheTTL  Duration `yaml:"script_cache_ttl"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:1969",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
		},
		History: HistoryConfig{
			LLM: HistorySettings{Enabled: true, Path: "./logs/llm.log"},
			TTS: HistorySettings{Enabled: true, Path: "./logs/tts.log"},
		},
		DB: DBConfig{
			Path: "./data/orrery.db",
		},
		Scene: SceneConfig{
			BodiesPath:    "configs/bodies.yaml",
			FrameInterval: Duration(50 * time.Millisecond),
			DefaultSpeed:  1.0,
			MaxSpeed:      10.0,
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.5-flash-lite",
			Key:      "",
			Profiles: map[string]string{
				"narration": "gemini-2.5-flash-lite",
			},
		},
		TTS: TTSConfig{
			Engine: "edge-tts",
			EdgeTTS: EdgeTTSConfig{
				VoiceID:          "en-US-AnaNeural",
				AlternateVoiceID: "de-DE-KatjaNeural",
			},
			AzureSpeech: AzureSpeechConfig{
				VoiceID: "en-US-AnaNeural",
			},
		},
		Narrator: NarratorConfig{
			DefaultLocale:   "en-US",
			AlternateLocale: "de-DE",
			SpeechRate:      0.9,
			SpeechPitch:     1.1,
			SpeechVolume:    1.0,
			ScriptCacheTTL:  Duration(7 * Day),
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config file: %w", err)
		}
	}

	// Env fallback for credentials left empty in the file.
	if cfg.LLM.Key == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLM.Key = key
		}
	}
	if cfg.TTS.AzureSpeech.Key == "" {
		if key := os.Getenv("AZURE_SPEECH_KEY"); key != "" {
			cfg.TTS.AzureSpeech.Key = key
		}
	}
	if cfg.TTS.AzureSpeech.Region == "" {
		if region := os.Getenv("AZURE_SPEECH_REGION"); region != "" {
			cfg.TTS.AzureSpeech.Region = region
		}
	}

	if !isValidLocale(cfg.Narrator.DefaultLocale) {
		return nil, fmt.Errorf("invalid default_locale %q: must be 'xx-YY' (e.g. 'en-US')", cfg.Narrator.DefaultLocale)
	}
	if !isValidLocale(cfg.Narrator.AlternateLocale) {
		return nil, fmt.Errorf("invalid alternate_locale %q: must be 'xx-YY' (e.g. 'de-DE')", cfg.Narrator.AlternateLocale)
	}

	return cfg, nil
}

var localeRe = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

func isValidLocale(s string) bool {
	return localeRe.MatchString(s)
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Orrery Configuration
# --------------------
# Supported Duration units: ns, us (or µs), ms, s, m, h, d (day), w (week)

`)
	data = append(header, data...)

	// Inject option comments for enum fields.
	reEngine := regexp.MustCompile(`(?m)^(\s+)engine:`)
	data = reEngine.ReplaceAll(data, []byte("${1}# Options: edge-tts, azure-speech\n${1}engine:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := DefaultConfig()
	cfg.LLM.Key = PlaceholderKey
	return Save(path, cfg)
}

// Locales returns the two configured locales, default first.
func (c *NarratorConfig) Locales() []string {
	return []string{c.DefaultLocale, c.AlternateLocale}
}

// IsSupported reports whether the given locale is one of the two configured.
func (c *NarratorConfig) IsSupported(locale string) bool {
	return locale == c.DefaultLocale || locale == c.AlternateLocale
}
