package edgetts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSSMLEscapesText(t *testing.T) {
	p := NewProvider(nil, 1.0, 1.0)

	ssml := p.buildSSML("en-US-AnaNeural", `Jupiter is "big" & <bright>`)

	assert.Contains(t, ssml, "&quot;big&quot;")
	assert.Contains(t, ssml, "&amp;")
	assert.Contains(t, ssml, "&lt;bright&gt;")
	assert.Contains(t, ssml, "voice name='en-US-AnaNeural'")
	assert.False(t, strings.Contains(ssml, "<bright>"))
}

func TestBuildSSMLProsody(t *testing.T) {
	p := NewProvider(nil, 0.9, 1.1)

	ssml := p.buildSSML("en-US-AnaNeural", "Hello")
	assert.Contains(t, ssml, "rate='-10%'")
	assert.Contains(t, ssml, "pitch='+10%'")

	// Zero values fall back to neutral prosody.
	p = NewProvider(nil, 0, 0)
	ssml = p.buildSSML("en-US-AnaNeural", "Hello")
	assert.Contains(t, ssml, "rate='+0%'")
	assert.Contains(t, ssml, "pitch='+0%'")
}

func TestHandleBinaryMessageShortFrames(t *testing.T) {
	p := NewProvider(nil, 1.0, 1.0)

	// Frames shorter than their declared header are dropped silently.
	assert.NoError(t, p.handleBinaryMessage([]byte{}, nil))
	assert.NoError(t, p.handleBinaryMessage([]byte{0x00}, nil))
	assert.NoError(t, p.handleBinaryMessage([]byte{0x00, 0xFF}, nil))
}
