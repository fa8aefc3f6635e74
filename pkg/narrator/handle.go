package narrator

import (
	"orrerygo/pkg/audio"
	"orrerygo/pkg/speech"
)

// playback abstracts over the two output paths (decoded audio file vs.
// on-device speech) so transport control is uniform.
type playback interface {
	Pause()
	Resume()
	Stop()
}

// audioPlayback controls a file playing through the audio manager.
type audioPlayback struct {
	svc audio.Service
}

func (p *audioPlayback) Pause()  { p.svc.Pause() }
func (p *audioPlayback) Resume() { p.svc.Resume() }
func (p *audioPlayback) Stop()   { p.svc.Stop() }

// speechPlayback controls a live utterance of a speech engine.
type speechPlayback struct {
	utt speech.Utterance
}

func (p *speechPlayback) Pause()  { _ = p.utt.Pause() }
func (p *speechPlayback) Resume() { _ = p.utt.Resume() }
func (p *speechPlayback) Stop()   { _ = p.utt.Stop() }
