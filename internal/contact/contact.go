// Package contact handles the contact form. Submissions are validated,
// rate limited per client and acknowledged after a short simulated delay.
// Nothing is delivered or stored.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SuccessText = "Your message has been sent. I'll respond as soon as possible."
	FailureText = "Sorry, there was an error sending your message. Please try again later."
	LimitedText = "You're sending messages too quickly. Please wait a minute and try again."

	// DismissAfter is how long the success notice stays on screen.
	DismissAfter = 5 * time.Second
)

var ErrRateLimited = errors.New("contact rate limit exceeded")

// Message is bound from the contact form fields.
type Message struct {
	Name    string `form:"name" json:"name" binding:"required,max=100"`
	Email   string `form:"email" json:"email" binding:"required,email,max=254"`
	Message string `form:"message" json:"message" binding:"required,min=10,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// FieldErrors maps a binding error to user-facing messages keyed by form
// field. Errors that are not validation failures map to a single "form" entry.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "The form could not be read. Please try again."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = describe(field, fe.Tag(), fe.Param())
	}
	return out
}

func describe(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("Please enter your %s.", field)
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("Your %s must be at least %s characters.", field, param)
	case "max":
		return fmt.Sprintf("Your %s must be at most %s characters.", field, param)
	default:
		return fmt.Sprintf("Please check your %s.", field)
	}
}

type Receipt struct {
	ID string
	At time.Time
}

// Submitter accepts a validated message.
type Submitter interface {
	Submit(ctx context.Context, msg Message) (Receipt, error)
}

// SimulatedSubmitter acknowledges messages after Delay without sending them.
type SimulatedSubmitter struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedSubmitter(delay time.Duration, logger *zap.Logger) *SimulatedSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedSubmitter{Delay: delay, Logger: logger}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, msg Message) (Receipt, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("submit contact message: %w", ctx.Err())
		case <-timer.C:
		}
	}

	r := Receipt{ID: uuid.NewString(), At: time.Now().UTC()}
	// Message content stays out of the logs.
	s.Logger.Info("contact message accepted",
		zap.String("receipt", r.ID),
		zap.Int("message_length", len(msg.Message)),
	)
	return r, nil
}
