package orbit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orrerygo/pkg/catalog"
	"orrerygo/pkg/model"
)

// Frame is one snapshot of the scene, produced once per tick.
type Frame struct {
	Elapsed    float64           `json:"elapsed"` // orbit clock, seconds
	Speed      float64           `json:"speed"`
	Transforms []model.Transform `json:"transforms"`
}

// FrameFunc receives every produced frame.
type FrameFunc func(Frame)

// Animator advances the scene clocks and emits frames. It keeps two clocks:
// the spin clock always advances in real time, the orbit clock advances at
// real time scaled by the speed multiplier. Changing the multiplier therefore
// never causes a positional jump; it only changes the rate from that moment.
type Animator struct {
	catalog  *catalog.Catalog
	interval time.Duration
	onFrame  FrameFunc

	mu     sync.Mutex
	spinT  float64
	orbitT float64
	speed  float64
}

// NewAnimator creates an Animator over the given catalog. onFrame may be nil
// when frames are pulled via Snapshot instead of pushed.
func NewAnimator(cat *catalog.Catalog, interval time.Duration, speed float64, onFrame FrameFunc) *Animator {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Animator{
		catalog:  cat,
		interval: interval,
		onFrame:  onFrame,
		speed:    speed,
	}
}

// Run drives the animator off a wall-clock ticker until ctx is cancelled.
func (a *Animator) Run(ctx context.Context) {
	slog.Info("Animator started", "interval", a.interval, "bodies", a.catalog.Len())

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Animator stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			frame := a.Advance(dt)
			if a.onFrame != nil {
				a.onFrame(frame)
			}
		}
	}
}

// Advance moves both clocks forward by dt of real time and returns the
// resulting frame. Exposed so the loop can be driven deterministically.
func (a *Animator) Advance(dt time.Duration) Frame {
	a.mu.Lock()
	a.spinT += dt.Seconds()
	a.orbitT += dt.Seconds() * a.speed
	frame := a.frameLocked()
	a.mu.Unlock()
	return frame
}

// Snapshot returns the current frame without advancing the clocks.
func (a *Animator) Snapshot() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frameLocked()
}

func (a *Animator) frameLocked() Frame {
	bodies := a.catalog.Bodies()
	frame := Frame{
		Elapsed:    a.orbitT,
		Speed:      a.speed,
		Transforms: make([]model.Transform, 0, len(bodies)),
	}
	for i := range bodies {
		frame.Transforms = append(frame.Transforms, TransformAt(&bodies[i], a.spinT, a.orbitT))
	}
	return frame
}

// SetSpeed changes the orbit speed multiplier. A multiplier of 0 freezes
// orbital positions while axial rotation keeps going. Callers are expected
// to have range-checked the value already.
func (a *Animator) SetSpeed(speed float64) {
	a.mu.Lock()
	a.speed = speed
	a.mu.Unlock()
	slog.Debug("Scene speed changed", "speed", speed)
}

// Speed returns the current orbit speed multiplier.
func (a *Animator) Speed() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speed
}
