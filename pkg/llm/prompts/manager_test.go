package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type narrationData struct {
	Name        string
	Language    string
	Description string
	Facts       []string
}

func TestRenderNarration(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	out, err := m.Render("narration.tmpl", narrationData{
		Name:        "Saturn",
		Language:    "English",
		Description: "Saturn is the planet with the beautiful rings.",
		Facts:       []string{"Its rings are very thin", "It could float in water"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Saturn")
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "Saturn is the planet with the beautiful rings.")
	assert.Contains(t, out, "- Its rings are very thin")
	assert.Contains(t, out, "- It could float in water")
}

func TestRenderNarrationWithoutFacts(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	out, err := m.Render("narration.tmpl", narrationData{
		Name:        "Merkur",
		Language:    "German",
		Description: "Merkur ist der kleinste Planet.",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Merkur")
	assert.NotContains(t, out, "Facts you may weave in")
}

func TestRenderUnknownTemplate(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Render("nope.tmpl", nil)
	assert.Error(t, err)
}

func TestMaybeFunc(t *testing.T) {
	assert.Equal(t, "", maybeFunc(0, "x"))
	assert.Equal(t, "x", maybeFunc(100, "x"))
}

func TestPickFunc(t *testing.T) {
	assert.Equal(t, "only", pickFunc("only"))

	got := pickFunc("a ||| b ||| c")
	assert.Contains(t, []string{"a", "b", "c"}, got)
}
