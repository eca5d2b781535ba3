// Package loading drives the splash-screen progress counter. A Plan is the
// full, precomputed sequence of progress steps; a Player replays it in real
// time and reports completion.
package loading

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Phase advances progress by a random increment in [MinStep, MaxStep) every
// Tick until Ceiling is reached. Start is the earliest time the phase may begin.
type Phase struct {
	Name    string
	Start   time.Duration
	Tick    time.Duration
	MinStep float64
	MaxStep float64
	Ceiling float64
}

// DefaultPhases: a quick burst to 30%, a slower climb to 70%, then a crawl to 100%.
var DefaultPhases = []Phase{
	{Name: "quick", Start: 0, Tick: 150 * time.Millisecond, MinStep: 2, MaxStep: 10, Ceiling: 30},
	{Name: "medium", Start: 800 * time.Millisecond, Tick: 300 * time.Millisecond, MinStep: 1, MaxStep: 6, Ceiling: 70},
	{Name: "final", Start: 2000 * time.Millisecond, Tick: 200 * time.Millisecond, MinStep: 0.5, MaxStep: 3.5, Ceiling: 100},
}

// DefaultHideDelay is the pause between reaching 100% and hiding the splash.
const DefaultHideDelay = 500 * time.Millisecond

// Step is progress reached at offset At from the start of the animation.
type Step struct {
	At       time.Duration
	Progress float64
	Phase    string
}

// Percent is the progress rounded down for display.
func (s Step) Percent() int { return int(math.Floor(s.Progress)) }

var ErrInvalidPhases = errors.New("invalid loading phases")

func validate(phases []Phase) error {
	if len(phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidPhases)
	}
	prev := 0.0
	for _, ph := range phases {
		switch {
		case ph.Tick <= 0:
			return fmt.Errorf("%w: phase %q has non-positive tick", ErrInvalidPhases, ph.Name)
		case ph.MinStep <= 0 || ph.MaxStep < ph.MinStep:
			return fmt.Errorf("%w: phase %q has bad step range", ErrInvalidPhases, ph.Name)
		case ph.Ceiling < prev:
			return fmt.Errorf("%w: phase %q ceiling below previous phase", ErrInvalidPhases, ph.Name)
		}
		prev = ph.Ceiling
	}
	if prev != 100 {
		return fmt.Errorf("%w: last ceiling must be 100", ErrInvalidPhases)
	}
	return nil
}

// Plan precomputes every step. Progress never decreases, each phase stops
// exactly at its ceiling, and a phase begins at the later of its Start and the
// previous phase's last step. The final step is exactly 100.
func Plan(phases []Phase, rng *rand.Rand) ([]Step, error) {
	if err := validate(phases); err != nil {
		return nil, err
	}

	var (
		steps    []Step
		progress float64
		clock    time.Duration
	)
	for _, ph := range phases {
		at := max(ph.Start, clock)
		for progress < ph.Ceiling {
			at += ph.Tick
			progress += ph.MinStep + rng.Float64()*(ph.MaxStep-ph.MinStep)
			if progress >= ph.Ceiling {
				progress = ph.Ceiling
			}
			steps = append(steps, Step{At: at, Progress: progress, Phase: ph.Name})
		}
		clock = at
	}
	return steps, nil
}
