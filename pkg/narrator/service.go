// Package narrator implements the speech acquisition pipeline. A narration
// request walks up to three tiers until one produces audible output: remote
// script plus remote synthesis, remote script spoken by the on-device engine,
// and finally a deterministic local script spoken by the on-device engine.
// A new request supersedes the previous one at any point in its lifecycle.
package narrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"orrerygo/pkg/audio"
	"orrerygo/pkg/catalog"
	"orrerygo/pkg/config"
	"orrerygo/pkg/llm"
	"orrerygo/pkg/llm/prompts"
	"orrerygo/pkg/model"
	"orrerygo/pkg/speech"
	"orrerygo/pkg/tts"
)

// State names the lifecycle phase of the current narration request.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StatePlaying    State = "playing"
	StatePaused     State = "paused"
)

// Status is a snapshot of the narrator for the API and the UI.
type Status struct {
	State     State               `json:"state"`
	RequestID string              `json:"request_id,omitempty"`
	BodyID    string              `json:"body_id,omitempty"`
	Locale    string              `json:"locale,omitempty"`
	Tier      model.NarrationTier `json:"tier,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// ScriptStore caches generated scripts between runs. *db.DB satisfies it.
type ScriptStore interface {
	GetScript(ctx context.Context, bodyID, locale string, ttl time.Duration) (string, int, bool)
	PutScript(ctx context.Context, bodyID, locale string, tier int, script string) error
}

// Options wires the narrator's collaborators. LLM, TTS, Engine and Store may
// each be nil; the pipeline degrades to whichever tiers remain possible.
type Options struct {
	Catalog  *catalog.Catalog
	Config   *config.NarratorConfig
	LLM      llm.Provider
	TTS      tts.Provider
	Voices   map[string]string // locale -> remote voice ID
	Engine   speech.Engine
	Audio    audio.Service
	Prompts  *prompts.Manager
	Store    ScriptStore
	AudioDir string
}

// Service runs the narration pipeline. At most one request is active; a new
// one cancels and replaces whatever the previous request was doing.
type Service struct {
	catalog  *catalog.Catalog
	cfg      *config.NarratorConfig
	llm      llm.Provider
	tts      tts.Provider
	voices   map[string]string
	engine   speech.Engine
	audio    audio.Service
	prompts  *prompts.Manager
	store    ScriptStore
	audioDir string

	mu        sync.Mutex
	state     State
	requestID string
	bodyID    string
	locale    string
	tier      model.NarrationTier
	cancel    context.CancelFunc
	handle    playback
	lastErr   error
}

// New creates the narrator service.
func New(opts Options) *Service {
	audioDir := opts.AudioDir
	if audioDir == "" {
		audioDir = "data/audio"
	}
	return &Service{
		catalog:  opts.Catalog,
		cfg:      opts.Config,
		llm:      opts.LLM,
		tts:      opts.TTS,
		voices:   opts.Voices,
		engine:   opts.Engine,
		audio:    opts.Audio,
		prompts:  opts.Prompts,
		store:    opts.Store,
		audioDir: audioDir,
		state:    StateIdle,
	}
}

// SetTTS installs the remote synthesis provider. The provider usually needs
// the narrator as its locale source, so it is attached after construction.
func (s *Service) SetTTS(p tts.Provider) {
	s.mu.Lock()
	s.tts = p
	s.mu.Unlock()
}

func (s *Service) ttsProvider() tts.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tts
}

// Narrate starts a narration for the given body and locale, superseding any
// request currently in flight. It returns the new request's ID immediately;
// the tier walk runs in the background.
func (s *Service) Narrate(bodyID, locale string) (string, error) {
	body, ok := s.catalog.Get(bodyID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBody, bodyID)
	}
	if !s.cfg.IsSupported(locale) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	s.mu.Lock()
	s.supersedeLocked()
	s.requestID = id
	s.cancel = cancel
	s.state = StateRequesting
	s.bodyID = bodyID
	s.locale = locale
	s.tier = 0
	s.lastErr = nil
	s.mu.Unlock()

	go s.run(ctx, id, body, locale)
	return id, nil
}

// supersedeLocked cancels the in-flight request and silences its output.
// Caller holds s.mu.
func (s *Service) supersedeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.state = StateIdle
	s.requestID = ""
	s.bodyID = ""
	s.locale = ""
	s.tier = 0
}

// Pause suspends playback. A no-op unless something is playing.
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying && s.handle != nil {
		s.handle.Pause()
		s.state = StatePaused
	}
}

// Resume continues paused playback. A no-op unless paused.
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePaused && s.handle != nil {
		s.handle.Resume()
		s.state = StatePlaying
	}
}

// Toggle flips between playing and paused. While a request is still being
// acquired (or nothing is active) it does nothing.
func (s *Service) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StatePlaying:
		if s.handle != nil {
			s.handle.Pause()
			s.state = StatePaused
		}
	case StatePaused:
		if s.handle != nil {
			s.handle.Resume()
			s.state = StatePlaying
		}
	}
}

// Stop cancels the active request, whatever its phase, and returns to idle.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
}

// Status returns a snapshot of the current request.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		State:     s.state,
		RequestID: s.requestID,
		BodyID:    s.bodyID,
		Locale:    s.locale,
		Tier:      s.tier,
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}

// ActiveLocale implements tts.LocaleProvider: the locale of the current
// request, or the configured default when idle.
func (s *Service) ActiveLocale(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locale != "" {
		return s.locale
	}
	return s.cfg.DefaultLocale
}

// startedPlaying records that request id reached playback. If the request was
// superseded in the meantime the fresh output is stopped again and the run
// goroutine must abandon the request.
func (s *Service) startedPlaying(id string, tier model.NarrationTier, h playback) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requestID != id {
		h.Stop()
		return false
	}
	s.state = StatePlaying
	s.tier = tier
	s.handle = h
	return true
}

// startAudio transitions request id to playing and starts the shared audio
// backend in the same critical section, so a superseding request cannot slip
// in between the playback start and the state change. A Play failure leaves
// the request in its previous state for the next tier.
func (s *Service) startAudio(id, path string, onComplete func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requestID != id {
		return errSuperseded
	}
	if err := s.audio.Play(path, onComplete); err != nil {
		return err
	}
	s.state = StatePlaying
	s.tier = model.TierRemoteFull
	s.handle = &audioPlayback{svc: s.audio}
	return nil
}

// finish moves request id back to idle with a terminal error (nil on normal
// completion). Superseded requests are ignored.
func (s *Service) finish(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requestID != id {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.handle = nil
	s.state = StateIdle
	s.lastErr = err
}
