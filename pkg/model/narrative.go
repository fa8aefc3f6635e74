package model

import "time"

// NarrationTier identifies which fallback level produced a narration.
type NarrationTier int

const (
	// TierRemoteFull is remote script generation plus remote speech synthesis.
	TierRemoteFull NarrationTier = 1
	// TierRemoteScript is remote script generation with local speech output.
	TierRemoteScript NarrationTier = 2
	// TierLocal is fully local, deterministic templated narration.
	TierLocal NarrationTier = 3
)

func (t NarrationTier) String() string {
	switch t {
	case TierRemoteFull:
		return "remote-full"
	case TierRemoteScript:
		return "remote-script"
	case TierLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Narrative represents a prepared narration ready for (or in) playback.
type Narrative struct {
	ID        string        `json:"id"`
	BodyID    string        `json:"body_id"`
	Locale    string        `json:"locale"`
	Tier      NarrationTier `json:"tier"`
	Script    string        `json:"script"`
	AudioPath string        `json:"audio_path,omitempty"` // empty for on-device speech
	Format    string        `json:"format,omitempty"`     // e.g. "mp3"
	CreatedAt time.Time     `json:"created_at"`
}
