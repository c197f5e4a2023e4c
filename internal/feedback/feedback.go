// Package feedback accepts and validates user feedback submissions.
package feedback

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/logger"
)

var (
	// Names are letters and whitespace only.
	nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	// Messages allow a restricted punctuation set; anything else is rejected
	// rather than sanitized.
	messageRe = regexp.MustCompile(`^[A-Za-z0-9_.,?! ]+$`)
)

// Submission represents a feedback form submission.
type Submission struct {
	Name    string `json:"name" validate:"required,feedback_name"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,feedback_message"`
}

// Validate validates the Submission using the validator.
func (s *Submission) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("feedback_name", validName); err != nil {
		return err
	}
	if err := validate.RegisterValidation("feedback_message", validMessage); err != nil {
		return err
	}
	return validate.Struct(s)
}

func validName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != "" && nameRe.MatchString(value)
}

func validMessage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != "" && messageRe.MatchString(value)
}

// Sender delivers a validated submission.
type Sender interface {
	Send(ctx context.Context, sub Submission) error
}

// LogSender records submissions to the application log. It stands in for a
// mail or ticketing integration.
type LogSender struct{}

// Send logs the submission.
func (LogSender) Send(_ context.Context, sub Submission) error {
	logger.Info().
		Str("name", sub.Name).
		Str("email", sub.Email).
		Int("message_length", len(sub.Message)).
		Msg("feedback received")
	return nil
}
