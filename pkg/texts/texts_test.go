package texts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"orrerygo/pkg/model"
)

func testBody() *model.Body {
	return &model.Body{
		ID:   "mars",
		Kind: model.KindPlanet,
		Name: model.LocalizedText{Default: "Mars", Alternate: "Mars"},
		Description: model.LocalizedText{
			Default:   "Mars is the red planet.",
			Alternate: "Der Mars ist der rote Planet.",
		},
		Facts: model.LocalizedList{
			Default:   []string{"It has two tiny moons", "Dust storms can cover the whole planet"},
			Alternate: []string{"Er hat zwei winzige Monde", "Staubstürme können den ganzen Planeten bedecken"},
		},
		Distance: 25,
	}
}

func TestBuildScriptIsDeterministic(t *testing.T) {
	b := testBody()
	assert.Equal(t, BuildScript(b, "en-US"), BuildScript(b, "en-US"))
	assert.Equal(t, BuildScript(b, "de-DE"), BuildScript(b, "de-DE"))
}

func TestBuildScriptContainsAllParts(t *testing.T) {
	s := BuildScript(testBody(), "en-US")

	assert.Contains(t, s, "Mars")
	assert.Contains(t, s, "Mars is the red planet.")
	assert.Contains(t, s, "Fun fact number 1: It has two tiny moons.")
	assert.Contains(t, s, "Fun fact number 2: Dust storms can cover the whole planet.")
	assert.True(t, strings.HasSuffix(s, "keep exploring!"))
}

func TestBuildScriptClosingMentionsName(t *testing.T) {
	b := testBody()

	for _, locale := range []string{"en-US", "de-DE"} {
		s := BuildScript(b, locale)
		facts := Facts(b, locale)
		lastFact := strings.LastIndex(s, facts[len(facts)-1])
		lastName := strings.LastIndex(s, Name(b, locale))
		assert.Greater(t, lastName, lastFact,
			"%s: the closing must say the name again after the last fact", locale)
	}
}

func TestBuildScriptAlternateLocale(t *testing.T) {
	s := BuildScript(testBody(), "de-DE")

	assert.Contains(t, s, "Der Mars ist der rote Planet.")
	assert.Contains(t, s, "Spannende Tatsache Nummer 1: Er hat zwei winzige Monde.")
	assert.NotContains(t, s, "Fun fact")
}

func TestBuildScriptUnknownLocaleFallsBack(t *testing.T) {
	s := BuildScript(testBody(), "fr-FR")
	assert.Equal(t, BuildScript(testBody(), "en-US"), s)
}

func TestBuildScriptWithoutFacts(t *testing.T) {
	b := testBody()
	b.Facts = model.LocalizedList{}

	s := BuildScript(b, "en-US")
	assert.NotContains(t, s, "amazing facts")
	assert.Contains(t, s, "Mars is the red planet.")
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en-US"))
	assert.True(t, Supported("de-DE"))
	assert.False(t, Supported("es-ES"))
}
