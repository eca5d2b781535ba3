package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalize(t *testing.T) {
	m := Message{Name: "  Ada ", Email: " ada@example.com\n", Message: "\thello there  "}.Normalize()
	assert.Equal(t, Message{Name: "Ada", Email: "ada@example.com", Message: "hello there"}, m)
}

func TestValidationAndFieldErrors(t *testing.T) {
	err := binding.Validator.ValidateStruct(Message{Name: "", Email: "not-an-email", Message: "short"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Please enter your name.", fields["name"])
	assert.Equal(t, "Please enter a valid email address.", fields["email"])
	assert.Equal(t, "Your message must be at least 10 characters.", fields["message"])

	ok := Message{Name: "Ada", Email: "ada@example.com", Message: "A message long enough."}
	assert.NoError(t, binding.Validator.ValidateStruct(ok))
}

func TestFieldErrorsForNonValidationError(t *testing.T) {
	fields := FieldErrors(errors.New("bad body"))
	assert.Contains(t, fields, "form")
	assert.Len(t, fields, 1)
}

func TestSimulatedSubmitter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSimulatedSubmitter(20*time.Millisecond, zap.New(core))

	start := time.Now()
	r, err := s.Submit(context.Background(), Message{Name: "Ada", Message: "secret words"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	_, err = uuid.Parse(r.ID)
	assert.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	for _, v := range entries[0].ContextMap() {
		assert.NotEqual(t, "secret words", v)
	}
}

func TestSimulatedSubmitterCancel(t *testing.T) {
	s := NewSimulatedSubmitter(time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Submit(ctx, Message{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(60, 2)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "clients are independent")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token per second at 60/min")
}

func TestLimiterEvictsIdleClients(t *testing.T) {
	l := NewLimiter(1, 1)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	now = now.Add(11 * time.Minute)
	assert.True(t, l.Allow("c"))
	assert.Equal(t, 1, l.Len())

	assert.True(t, l.Allow("a"), "evicted client starts with a fresh bucket")
}
