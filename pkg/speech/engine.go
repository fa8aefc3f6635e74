// Package speech defines the interface for on-device speech engines. Unlike
// remote TTS, an engine speaks directly through the system voice and exposes
// live transport control over the running utterance.
package speech

import "context"

// Request describes one utterance.
type Request struct {
	Text   string
	Locale string  // BCP-47, e.g. "en-US"
	Rate   float64 // speaking rate multiplier, 1.0 = engine default
	Pitch  float64 // pitch multiplier, 1.0 = engine default
	Volume float64 // 0.0 to 1.0
}

// Utterance is a running (or finished) speech playback.
type Utterance interface {
	// Pause suspends output; Resume continues from the pause point.
	Pause() error
	Resume() error

	// Stop aborts the utterance. Done is closed afterwards.
	Stop() error

	// Done is closed when the utterance finishes, is stopped, or fails.
	Done() <-chan struct{}

	// Err returns the terminal error, nil after normal completion or Stop.
	Err() error
}

// Engine produces utterances.
type Engine interface {
	// Name identifies the engine in logs and status reports.
	Name() string

	// Available reports whether the engine can speak on this system.
	Available(ctx context.Context) bool

	// Speak starts speaking the request and returns a handle to control it.
	Speak(ctx context.Context, req Request) (Utterance, error)
}
