package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"50ms", 50 * time.Millisecond},
		{"30s", 30 * time.Second},
		{"1d", Day},
		{"1w", Week},
		{"1d12h", 36 * time.Hour},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDuration("5parsecs")
	assert.Error(t, err)
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	assert.Equal(t, "localhost:1969", cfg.Server.Address)
	assert.Equal(t, "en-US", cfg.Narrator.DefaultLocale)
	assert.Equal(t, "de-DE", cfg.Narrator.AlternateLocale)
	assert.Equal(t, 10.0, cfg.Scene.MaxSpeed)
	assert.Equal(t, 50*time.Millisecond, cfg.Scene.FrameInterval.ToDuration())
}

func TestLoadMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	partial := "server:\n  address: \"localhost:9999\"\n"
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden value sticks, the rest keeps defaults.
	assert.Equal(t, "localhost:9999", cfg.Server.Address)
	assert.Equal(t, 1.0, cfg.Scene.DefaultSpeed)
	assert.Equal(t, "edge-tts", cfg.TTS.Engine)
}

func TestLoadRejectsInvalidLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	bad := "narrator:\n  default_locale: \"english\"\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_locale")
}

func TestLoadEnvFallbackForKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-gemini-key")
	t.Setenv("AZURE_SPEECH_KEY", "env-azure-key")
	t.Setenv("AZURE_SPEECH_REGION", "westeurope")

	cfg, err := Load(filepath.Join(t.TempDir(), "orrery.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-gemini-key", cfg.LLM.Key)
	assert.Equal(t, "env-azure-key", cfg.TTS.AzureSpeech.Key)
	assert.Equal(t, "westeurope", cfg.TTS.AzureSpeech.Region)
}

func TestEnabledTreatsPlaceholderAsMissing(t *testing.T) {
	assert.False(t, LLMConfig{Key: ""}.Enabled())
	assert.False(t, LLMConfig{Key: PlaceholderKey}.Enabled())
	assert.True(t, LLMConfig{Key: "real-key"}.Enabled())

	assert.False(t, AzureSpeechConfig{Key: PlaceholderKey, Region: "r"}.Enabled())
	assert.False(t, AzureSpeechConfig{Key: "k"}.Enabled(), "region required")
	assert.True(t, AzureSpeechConfig{Key: "k", Region: "r"}.Enabled())
}

func TestGenerateDefaultWritesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	require.NoError(t, GenerateDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), PlaceholderKey)
	assert.Contains(t, string(data), "# Options: edge-tts, azure-speech")

	// Second call must not clobber the file.
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \"x:1\"\n"), 0o644))
	require.NoError(t, GenerateDefault(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x:1")
}

func TestNarratorConfigLocales(t *testing.T) {
	c := NarratorConfig{DefaultLocale: "en-US", AlternateLocale: "de-DE"}

	assert.Equal(t, []string{"en-US", "de-DE"}, c.Locales())
	assert.True(t, c.IsSupported("en-US"))
	assert.True(t, c.IsSupported("de-DE"))
	assert.False(t, c.IsSupported("fr-FR"))
}
