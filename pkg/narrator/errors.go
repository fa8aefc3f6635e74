package narrator

import "errors"

var (
	// ErrUnknownBody is returned when the requested body is not in the catalog.
	ErrUnknownBody = errors.New("unknown body")

	// ErrUnsupportedLocale is returned for locales outside the configured pair.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrUnsupported is returned when no speech output exists at all: no
	// remote synthesis and no on-device engine. Nothing can ever be spoken.
	ErrUnsupported = errors.New("narration unsupported: no speech output available")

	// ErrAllTiersExhausted is returned when every applicable tier was tried
	// and failed for a request.
	ErrAllTiersExhausted = errors.New("all narration tiers exhausted")
)
