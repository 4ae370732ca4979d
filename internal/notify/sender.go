package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	model "nelo-tasks.com/nelo-tasks/internal/models"
)

// Result is the outcome of one send attempt. Failure is reported through
// Success=false and Error, never through a returned error: a sender must not
// fail its caller.
type Result struct {
	Success   bool
	Message   string
	TaskCount int
	Error     string
}

// Sender delivers a pending-task reminder to a recipient.
type Sender interface {
	Send(ctx context.Context, tasks []model.Task, recipient string) Result
}

// EmailSender simulates an email transport. It renders the reminder, waits a
// configurable latency in place of a real delivery round trip, and logs what
// would have been sent. A real transport (SendGrid, SES) would slot in behind
// the same interface.
type EmailSender struct {
	logger  zerolog.Logger
	latency time.Duration
}

func NewEmailSender(logger zerolog.Logger, latency time.Duration) *EmailSender {
	return &EmailSender{
		logger:  logger,
		latency: latency,
	}
}

func (s *EmailSender) Send(ctx context.Context, tasks []model.Task, recipient string) Result {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return Result{
			Success:   false,
			Message:   "failed to send email",
			TaskCount: len(tasks),
			Error:     ctx.Err().Error(),
		}
	}

	if len(tasks) == 0 {
		return Result{
			Success:   true,
			Message:   "No pending tasks to send",
			TaskCount: 0,
		}
	}

	body, err := FormatHTML(tasks)
	if err != nil {
		return Result{
			Success:   false,
			Message:   "failed to send email",
			TaskCount: len(tasks),
			Error:     err.Error(),
		}
	}

	s.logger.Info().
		Str("recipient", recipient).
		Int("pending", len(tasks)).
		Int("body_bytes", len(body)).
		Msg("email sent")
	for _, t := range tasks {
		s.logger.Debug().
			Str("title", t.Title).
			Str("priority", string(t.Priority)).
			Str("due", t.DueDate.Format(time.DateOnly)).
			Msg("reminder line")
	}

	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Email sent successfully to %s", recipient),
		TaskCount: len(tasks),
	}
}
