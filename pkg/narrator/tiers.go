package narrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"orrerygo/pkg/llm"
	"orrerygo/pkg/model"
	"orrerygo/pkg/speech"
	"orrerygo/pkg/texts"
	"orrerygo/pkg/tts"
)

// errSuperseded aborts a tier walk whose request was replaced by a newer one.
var errSuperseded = errors.New("request superseded")

// run walks the tiers for one request. It runs in its own goroutine and only
// touches shared state through the requestID-guarded helpers.
func (s *Service) run(ctx context.Context, id string, body *model.Body, locale string) {
	remoteScript := s.llm != nil
	remoteAudio := remoteScript && s.ttsProvider() != nil && s.audio != nil
	local := s.engine != nil && s.engine.Available(ctx)

	if !remoteAudio && !local {
		s.finish(id, ErrUnsupported)
		return
	}

	log := slog.With("request", id, "body", body.ID, "locale", locale)

	// The last failure is kept so the terminal error carries a diagnostic.
	var lastErr error

	// The remote script feeds both tier 1 and tier 2; generate it once.
	var script string
	if remoteScript {
		var err error
		script, err = s.generateScript(ctx, body, locale)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("script generation failed, remote tiers skipped", "error", err)
			script = ""
			lastErr = err
		}
	}

	if remoteAudio && script != "" {
		err := s.playRemote(ctx, id, locale, script)
		if err == nil {
			log.Info("narrating", "tier", model.TierRemoteFull.String())
			return
		}
		if errors.Is(err, errSuperseded) || ctx.Err() != nil {
			return
		}
		log.Warn("remote synthesis failed, falling back", "error", err)
		lastErr = err
	}

	if local && script != "" {
		err := s.speakLocal(ctx, id, model.TierRemoteScript, locale, script)
		if err == nil {
			log.Info("narrating", "tier", model.TierRemoteScript.String(), "engine", s.engine.Name())
			return
		}
		if errors.Is(err, errSuperseded) || ctx.Err() != nil {
			return
		}
		log.Warn("speech engine rejected remote script, falling back", "error", err)
		lastErr = err
	}

	if local {
		err := s.speakLocal(ctx, id, model.TierLocal, locale, texts.BuildScript(body, locale))
		if err == nil {
			log.Info("narrating", "tier", model.TierLocal.String(), "engine", s.engine.Name())
			return
		}
		if errors.Is(err, errSuperseded) || ctx.Err() != nil {
			return
		}
		log.Error("local narration failed", "error", err)
		lastErr = err
	}

	if lastErr != nil {
		s.finish(id, fmt.Errorf("%w: %v", ErrAllTiersExhausted, lastErr))
	} else {
		s.finish(id, ErrAllTiersExhausted)
	}
}

// playRemote synthesizes the script to a file and plays it back.
func (s *Service) playRemote(ctx context.Context, id, locale, script string) error {
	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return fmt.Errorf("creating audio dir: %w", err)
	}
	path := filepath.Join(s.audioDir, "narration-"+id+".mp3")

	if _, err := s.ttsProvider().Synthesize(ctx, script, s.voiceFor(locale), path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("synthesized file missing: %w", err)
	}
	if info.Size() < tts.MinAudioSize {
		os.Remove(path)
		return fmt.Errorf("synthesized file too small (%d bytes)", info.Size())
	}

	if err := s.startAudio(id, path, func() { s.finish(id, nil) }); err != nil {
		if errors.Is(err, errSuperseded) {
			os.Remove(path)
		}
		return err
	}
	return nil
}

// speakLocal hands the script to the on-device engine and blocks until the
// utterance ends.
func (s *Service) speakLocal(ctx context.Context, id string, tier model.NarrationTier, locale, script string) error {
	utt, err := s.engine.Speak(ctx, speech.Request{
		Text:   script,
		Locale: locale,
		Rate:   s.cfg.SpeechRate,
		Pitch:  s.cfg.SpeechPitch,
		Volume: s.cfg.SpeechVolume,
	})
	if err != nil {
		return err
	}

	if !s.startedPlaying(id, tier, &speechPlayback{utt: utt}) {
		return errSuperseded
	}

	<-utt.Done()
	s.finish(id, utt.Err())
	return nil
}

// generateScript returns the LLM narration script for a body, consulting the
// persistent cache first.
func (s *Service) generateScript(ctx context.Context, body *model.Body, locale string) (string, error) {
	ttl := s.cfg.ScriptCacheTTL.ToDuration()
	if s.store != nil && ttl > 0 {
		if script, _, ok := s.store.GetScript(ctx, body.ID, locale, ttl); ok && script != "" {
			return script, nil
		}
	}

	data := struct {
		Name        string
		Language    string
		Description string
		Facts       []string
	}{
		Name:        texts.Name(body, locale),
		Language:    texts.LanguageName(locale),
		Description: texts.Description(body, locale),
		Facts:       texts.Facts(body, locale),
	}

	prompt, err := s.prompts.Render("narration.tmpl", data)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := s.llm.GenerateText(ctx, "narration", prompt)
	if err != nil {
		return "", err
	}

	script := llm.CleanScript(raw)
	if script == "" {
		return "", fmt.Errorf("provider returned an empty script")
	}

	if s.store != nil {
		if err := s.store.PutScript(ctx, body.ID, locale, int(model.TierRemoteScript), script); err != nil {
			slog.Warn("failed to cache script", "body", body.ID, "error", err)
		}
	}
	return script, nil
}

// GenerateScript produces a narration script without playing it. It prefers
// the remote provider and falls back to the local template, mirroring the
// script side of the tier walk.
func (s *Service) GenerateScript(ctx context.Context, bodyID, locale string) (*model.Narrative, error) {
	body, ok := s.catalog.Get(bodyID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBody, bodyID)
	}
	if !s.cfg.IsSupported(locale) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	n := &model.Narrative{
		ID:        uuid.NewString(),
		BodyID:    bodyID,
		Locale:    locale,
		CreatedAt: time.Now(),
	}

	if s.llm != nil {
		script, err := s.generateScript(ctx, body, locale)
		if err == nil {
			n.Script = script
			n.Tier = model.TierRemoteScript
			return n, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("script generation failed, using local template", "body", bodyID, "error", err)
	}

	n.Script = texts.BuildScript(body, locale)
	n.Tier = model.TierLocal
	return n, nil
}

// voiceFor picks the remote voice for a locale, falling back to the default
// locale's voice.
func (s *Service) voiceFor(locale string) string {
	if v, ok := s.voices[locale]; ok && v != "" {
		return v
	}
	return s.voices[s.cfg.DefaultLocale]
}
