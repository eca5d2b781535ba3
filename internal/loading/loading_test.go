package loading

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPlanIsMonotoneAndEndsAtHundred(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		steps, err := Plan(DefaultPhases, seeded(seed))
		require.NoError(t, err)
		require.NotEmpty(t, steps)

		prev := Step{}
		for _, s := range steps {
			assert.GreaterOrEqual(t, s.Progress, prev.Progress)
			assert.Greater(t, s.At, prev.At)
			prev = s
		}
		assert.Equal(t, 100.0, steps[len(steps)-1].Progress)
	}
}

func TestPlanRespectsPhaseCeilingsAndStarts(t *testing.T) {
	steps, err := Plan(DefaultPhases, seeded(42))
	require.NoError(t, err)

	last := map[string]Step{}
	first := map[string]Step{}
	for _, s := range steps {
		if _, ok := first[s.Phase]; !ok {
			first[s.Phase] = s
		}
		last[s.Phase] = s
	}

	for _, ph := range DefaultPhases {
		require.Contains(t, last, ph.Name)
		assert.Equal(t, ph.Ceiling, last[ph.Name].Progress, ph.Name)
		assert.GreaterOrEqual(t, first[ph.Name].At, ph.Start+ph.Tick, ph.Name)
	}

	// medium cannot begin before quick has finished
	assert.Greater(t, first["medium"].At, last["quick"].At)
	assert.Greater(t, first["final"].At, last["medium"].At)
}

func TestPlanStepSizes(t *testing.T) {
	steps, err := Plan(DefaultPhases, seeded(3))
	require.NoError(t, err)

	bounds := map[string]Phase{}
	for _, ph := range DefaultPhases {
		bounds[ph.Name] = ph
	}
	const eps = 1e-9
	prev := 0.0
	for _, s := range steps {
		ph := bounds[s.Phase]
		delta := s.Progress - prev
		if s.Progress < ph.Ceiling {
			assert.GreaterOrEqual(t, delta, ph.MinStep-eps)
		}
		assert.Less(t, delta, ph.MaxStep+eps)
		prev = s.Progress
	}
}

func TestPlanIsDeterministicForSeed(t *testing.T) {
	a, err := Plan(DefaultPhases, seeded(9))
	require.NoError(t, err)
	b, err := Plan(DefaultPhases, seeded(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlanRejectsInvalidPhases(t *testing.T) {
	cases := map[string][]Phase{
		"empty":     nil,
		"zero tick": {{Name: "a", Tick: 0, MinStep: 1, MaxStep: 2, Ceiling: 100}},
		"zero step": {{Name: "a", Tick: time.Millisecond, MinStep: 0, MaxStep: 2, Ceiling: 100}},
		"inverted":  {{Name: "a", Tick: time.Millisecond, MinStep: 3, MaxStep: 2, Ceiling: 100}},
		"short":     {{Name: "a", Tick: time.Millisecond, MinStep: 1, MaxStep: 2, Ceiling: 90}},
		"descending": {
			{Name: "a", Tick: time.Millisecond, MinStep: 1, MaxStep: 2, Ceiling: 100},
			{Name: "b", Tick: time.Millisecond, MinStep: 1, MaxStep: 2, Ceiling: 50},
		},
	}
	for name, phases := range cases {
		_, err := Plan(phases, seeded(1))
		assert.ErrorIs(t, err, ErrInvalidPhases, name)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 29, Step{Progress: 29.99}.Percent())
	assert.Equal(t, 100, Step{Progress: 100}.Percent())
}

func TestPlayEmitsProgressThenCompleteThenHide(t *testing.T) {
	p := NewPlayer(0)
	p.Rand = func() *rand.Rand { return seeded(5) }

	var events []Event
	err := p.Play(context.Background(), func(e Event) error {
		events = append(events, e)
		return nil
	})
	require.NoError(t, err)

	steps, _ := Plan(DefaultPhases, seeded(5))
	require.Len(t, events, len(steps)+2)
	for i := range steps {
		assert.Equal(t, EventProgress, events[i].Kind)
		assert.Equal(t, steps[i].Percent(), events[i].Progress)
	}
	assert.Equal(t, EventComplete, events[len(events)-2].Kind)
	assert.Equal(t, Event{Kind: EventHide, Progress: 100}, events[len(events)-1])
}

func TestPlayHonoursScaledTiming(t *testing.T) {
	p := &Player{
		Phases:    []Phase{{Name: "only", Tick: 10 * time.Millisecond, MinStep: 50, MaxStep: 50, Ceiling: 100}},
		HideDelay: 10 * time.Millisecond,
		Scale:     2,
		Rand:      func() *rand.Rand { return seeded(1) },
	}

	start := time.Now()
	err := p.Play(context.Background(), func(Event) error { return nil })
	require.NoError(t, err)
	// two ticks and a hide delay, each doubled
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestPlayStopsOnCancel(t *testing.T) {
	p := NewPlayer(1)
	ctx, cancel := context.WithCancel(context.Background())

	var count int
	err := p.Play(ctx, func(e Event) error {
		count++
		if count == 2 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, count)
}

func TestPlayStopsOnEmitError(t *testing.T) {
	p := NewPlayer(0)
	boom := errors.New("client gone")

	var count int
	err := p.Play(context.Background(), func(Event) error {
		count++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count)
}
