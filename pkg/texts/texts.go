// Package texts builds deterministic narration scripts from catalog data.
// It is the last fallback of the narration pipeline and works without any
// network access or credentials.
package texts

import (
	"fmt"
	"strings"

	"orrerygo/pkg/model"
)

// DefaultLocale is the locale used when a requested one is not in the table.
const DefaultLocale = "en-US"

type phraseID int

const (
	phraseGreeting phraseID = iota
	phraseFactsIntro
	phraseFact
	phraseClosing
)

// phrases maps locale to the fixed template fragments of a script. Body
// names, descriptions and facts come localized from the catalog itself.
var phrases = map[string]map[phraseID]string{
	"en-US": {
		phraseGreeting:   "Hello, space explorer! Let me tell you about %s.",
		phraseFactsIntro: "Here are some amazing facts!",
		phraseFact:       "Fun fact number %d: %s.",
		phraseClosing:    "Wasn't that exciting? Wave goodbye to %s and click another planet to keep exploring!",
	},
	"de-DE": {
		phraseGreeting:   "Hallo, Weltraumforscher! Ich erzähle dir etwas über %s.",
		phraseFactsIntro: "Hier sind ein paar erstaunliche Fakten!",
		phraseFact:       "Spannende Tatsache Nummer %d: %s.",
		phraseClosing:    "War das nicht aufregend? Winke %s zum Abschied und klicke auf einen anderen Planeten!",
	},
}

// LanguageName spells out the language of a locale in English, for prompts
// and the language picker.
func LanguageName(locale string) string {
	switch locale {
	case "en-US":
		return "English"
	case "de-DE":
		return "German"
	default:
		return locale
	}
}

// Supported reports whether the locale has a phrase table.
func Supported(locale string) bool {
	_, ok := phrases[locale]
	return ok
}

// Name returns the body's name in the given locale, falling back to the
// default name when the alternate is missing.
func Name(b *model.Body, locale string) string {
	if locale != DefaultLocale && b.Name.Alternate != "" {
		return b.Name.Alternate
	}
	return b.Name.Default
}

// Description returns the body's description in the given locale.
func Description(b *model.Body, locale string) string {
	if locale != DefaultLocale && b.Description.Alternate != "" {
		return b.Description.Alternate
	}
	return b.Description.Default
}

// Facts returns the body's fact list in the given locale.
func Facts(b *model.Body, locale string) []string {
	if locale != DefaultLocale && len(b.Facts.Alternate) > 0 {
		return b.Facts.Alternate
	}
	return b.Facts.Default
}

// BuildScript assembles the full narration script for a body. The output is
// a pure function of the body and locale: equal inputs always produce the
// identical string, so cached audio stays valid.
func BuildScript(b *model.Body, locale string) string {
	p, ok := phrases[locale]
	if !ok {
		p = phrases[DefaultLocale]
		locale = DefaultLocale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(p[phraseGreeting], Name(b, locale)))
	sb.WriteString(" ")
	sb.WriteString(Description(b, locale))

	if fs := Facts(b, locale); len(fs) > 0 {
		sb.WriteString(" ")
		sb.WriteString(p[phraseFactsIntro])
		for i, f := range fs {
			sb.WriteString(" ")
			sb.WriteString(fmt.Sprintf(p[phraseFact], i+1, f))
		}
	}

	// The closing names the body again so the goodbye stays personal.
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprintf(p[phraseClosing], Name(b, locale)))
	return sb.String()
}
