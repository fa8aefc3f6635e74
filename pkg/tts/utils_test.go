package tts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSpeakerLabels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no label", "Hello there!", "Hello there!"},
		{"simple label", "Ana: Hello there!", "Hello there!"},
		{"label with role", "Ana (child): Hello there!", "Hello there!"},
		{"multiline", "Ana: Hi!\nKatja: Hallo!", "Hi!\nHallo!"},
		{"colon mid sentence", "Remember: planets orbit the Sun.", "planets orbit the Sun."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripSpeakerLabels(tt.in))
		})
	}
}

func TestProsodyPercent(t *testing.T) {
	assert.Equal(t, "+0%", ProsodyPercent(1.0))
	assert.Equal(t, "-10%", ProsodyPercent(0.9))
	assert.Equal(t, "+10%", ProsodyPercent(1.1))
	assert.Equal(t, "+50%", ProsodyPercent(1.5))
}

func TestIsFatalError(t *testing.T) {
	assert.True(t, IsFatalError(NewFatalError(429, "rate limited")))
	assert.False(t, IsFatalError(assert.AnError))
	assert.False(t, IsFatalError(nil))
}
