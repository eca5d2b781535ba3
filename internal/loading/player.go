package loading

import (
	"context"
	"math/rand/v2"
	"time"
)

type EventKind string

const (
	EventProgress EventKind = "progress"
	EventComplete EventKind = "complete"
	EventHide     EventKind = "hide"
)

type Event struct {
	Kind     EventKind `json:"kind"`
	Progress int       `json:"progress"`
	Phase    string    `json:"phase,omitempty"`
}

// Player replays a plan in real time.
type Player struct {
	Phases    []Phase
	HideDelay time.Duration
	// Scale multiplies every delay. Zero plays the whole plan immediately.
	Scale float64
	// Rand returns the source for one playback. Defaults to an unseeded PCG.
	Rand func() *rand.Rand
}

func NewPlayer(scale float64) *Player {
	return &Player{
		Phases:    DefaultPhases,
		HideDelay: DefaultHideDelay,
		Scale:     scale,
	}
}

func (p *Player) rng() *rand.Rand {
	if p.Rand != nil {
		return p.Rand()
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (p *Player) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * p.Scale)
}

// Play emits one progress event per step, then complete, then hide after the
// hide delay. It stops early with ctx.Err() on cancellation or with the first
// error returned by emit.
func (p *Player) Play(ctx context.Context, emit func(Event) error) error {
	steps, err := Plan(p.Phases, p.rng())
	if err != nil {
		return err
	}

	start := time.Now()
	for _, s := range steps {
		if err := sleepUntil(ctx, start.Add(p.scaled(s.At))); err != nil {
			return err
		}
		if err := emit(Event{Kind: EventProgress, Progress: s.Percent(), Phase: s.Phase}); err != nil {
			return err
		}
	}

	if err := emit(Event{Kind: EventComplete, Progress: 100}); err != nil {
		return err
	}

	if err := sleepUntil(ctx, time.Now().Add(p.scaled(p.HideDelay))); err != nil {
		return err
	}
	return emit(Event{Kind: EventHide, Progress: 100})
}

func sleepUntil(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := time.Until(deadline)
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
