package sapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orrerygo/pkg/speech"
)

func TestBuildXML(t *testing.T) {
	tests := []struct {
		name string
		req  speech.Request
		want string
	}{
		{
			"neutral pitch passes text through",
			speech.Request{Text: "Hello Mars", Pitch: 1.0},
			"Hello Mars",
		},
		{
			"raised pitch wraps in pitch tag",
			speech.Request{Text: "Hello Mars", Pitch: 1.2},
			`<pitch absmiddle="2">Hello Mars</pitch>`,
		},
		{
			"escapes markup",
			speech.Request{Text: "a < b & c", Pitch: 1.0},
			"a &lt; b &amp; c",
		},
		{
			"strips speaker labels",
			speech.Request{Text: "Ana: Hello Mars", Pitch: 1.0},
			"Hello Mars",
		},
		{
			"pitch clamped to sapi range",
			speech.Request{Text: "x", Pitch: 5.0},
			`<pitch absmiddle="10">x</pitch>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildXML(tt.req))
		})
	}
}

func TestUtteranceTransportAfterDone(t *testing.T) {
	u := &utterance{cmds: make(chan command, 4), done: make(chan struct{})}
	u.finish(nil)

	// Transport on a finished utterance is a harmless no-op.
	assert.NoError(t, u.Pause())
	assert.NoError(t, u.Resume())
	assert.NoError(t, u.Stop())
	assert.NoError(t, u.Err())

	select {
	case <-u.Done():
	default:
		t.Fatal("Done should be closed")
	}
}

func TestSpeakRejectsEmptyText(t *testing.T) {
	e := New()
	_, err := e.Speak(t.Context(), speech.Request{Text: "   "})
	assert.Error(t, err)
}
