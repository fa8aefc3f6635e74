// Package sapi implements speech.Engine using Windows SAPI5 via OLE.
package sapi

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"orrerygo/pkg/speech"
	"orrerygo/pkg/tts"
)

// SAPI Speak flags.
const (
	svsfFlagsAsync       = 1
	svsfPurgeBeforeSpeak = 2
	svsfIsXML            = 8
)

// Engine implements speech.Engine using SAPI.SpVoice.
type Engine struct {
	mu sync.Mutex
}

// New creates a new SAPI engine.
func New() *Engine {
	return &Engine{}
}

// Name implements speech.Engine.
func (e *Engine) Name() string { return "sapi" }

// Available reports whether SAPI can be instantiated on this system.
func (e *Engine) Available(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ole.CoInitialize(0); err == nil {
		defer ole.CoUninitialize()
	}

	unknown, err := oleutil.CreateObject("SAPI.SpVoice")
	if err != nil {
		return false
	}
	unknown.Release()
	return true
}

type command int

const (
	cmdPause command = iota
	cmdResume
	cmdStop
)

type utterance struct {
	cmds chan command
	done chan struct{}

	mu  sync.Mutex
	err error
}

func (u *utterance) Pause() error  { return u.send(cmdPause) }
func (u *utterance) Resume() error { return u.send(cmdResume) }
func (u *utterance) Stop() error   { return u.send(cmdStop) }

func (u *utterance) Done() <-chan struct{} { return u.done }

func (u *utterance) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.err
}

func (u *utterance) send(c command) error {
	select {
	case u.cmds <- c:
		return nil
	case <-u.done:
		return nil // Utterance already over, transport is a no-op.
	}
}

func (u *utterance) finish(err error) {
	u.mu.Lock()
	u.err = err
	u.mu.Unlock()
	close(u.done)
}

// Speak starts speaking asynchronously. The OLE voice object lives on a
// dedicated OS thread (SAPI is apartment threaded); transport commands are
// forwarded to that thread over a channel.
func (e *Engine) Speak(ctx context.Context, req speech.Request) (speech.Utterance, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("empty text")
	}

	u := &utterance{
		cmds: make(chan command, 4),
		done: make(chan struct{}),
	}

	started := make(chan error, 1)
	go e.run(ctx, req, u, started)

	if err := <-started; err != nil {
		return nil, err
	}
	return u, nil
}

func (e *Engine) run(ctx context.Context, req speech.Request, u *utterance, started chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitialize(0); err == nil {
		defer ole.CoUninitialize()
	}

	unknown, err := oleutil.CreateObject("SAPI.SpVoice")
	if err != nil {
		started <- fmt.Errorf("failed to create SAPI.SpVoice: %w", err)
		return
	}
	voice, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		started <- fmt.Errorf("QueryInterface SpVoice failed: %w", err)
		return
	}
	defer voice.Release()

	e.applyVoiceSettings(voice, req)

	text := buildXML(req)
	tts.Log("SAPI", text, 0, nil)

	if _, err := oleutil.CallMethod(voice, "Speak", text, svsfFlagsAsync|svsfIsXML); err != nil {
		started <- fmt.Errorf("Speak failed: %w", err)
		return
	}
	started <- nil

	for {
		select {
		case <-ctx.Done():
			_, _ = oleutil.CallMethod(voice, "Speak", "", svsfFlagsAsync|svsfPurgeBeforeSpeak)
			u.finish(ctx.Err())
			return

		case c := <-u.cmds:
			switch c {
			case cmdPause:
				if _, err := oleutil.CallMethod(voice, "Pause"); err != nil {
					slog.Warn("SAPI pause failed", "error", err)
				}
			case cmdResume:
				if _, err := oleutil.CallMethod(voice, "Resume"); err != nil {
					slog.Warn("SAPI resume failed", "error", err)
				}
			case cmdStop:
				// Purge cancels the pending utterance; Resume first in case
				// we are stopping out of a paused state.
				_, _ = oleutil.CallMethod(voice, "Resume")
				_, _ = oleutil.CallMethod(voice, "Speak", "", svsfFlagsAsync|svsfPurgeBeforeSpeak)
				u.finish(nil)
				return
			}

		default:
			doneVar, err := oleutil.CallMethod(voice, "WaitUntilDone", 100)
			if err != nil {
				u.finish(fmt.Errorf("WaitUntilDone failed: %w", err))
				return
			}
			if doneVar != nil && doneVar.Value() == true {
				u.finish(nil)
				return
			}
		}
	}
}

func (e *Engine) applyVoiceSettings(voice *ole.IDispatch, req speech.Request) {
	// SAPI rate is -10..10 around the default.
	if req.Rate > 0 {
		rate := int32((req.Rate - 1.0) * 10)
		if rate < -10 {
			rate = -10
		}
		if rate > 10 {
			rate = 10
		}
		if _, err := oleutil.PutProperty(voice, "Rate", rate); err != nil {
			slog.Warn("SAPI set rate failed", "error", err)
		}
	}

	// SAPI volume is 0..100.
	if req.Volume > 0 {
		vol := int32(req.Volume * 100)
		if vol > 100 {
			vol = 100
		}
		if _, err := oleutil.PutProperty(voice, "Volume", vol); err != nil {
			slog.Warn("SAPI set volume failed", "error", err)
		}
	}
}

// buildXML wraps the text in SAPI XML to apply pitch, which has no
// property on SpVoice.
func buildXML(req speech.Request) string {
	text := tts.StripSpeakerLabels(req.Text)

	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	escaped := replacer.Replace(text)

	pitch := 0
	if req.Pitch > 0 {
		pitch = int((req.Pitch - 1.0) * 10)
		if pitch < -10 {
			pitch = -10
		}
		if pitch > 10 {
			pitch = 10
		}
	}
	if pitch == 0 {
		return escaped
	}
	return fmt.Sprintf(`<pitch absmiddle="%d">%s</pitch>`, pitch, escaped)
}
