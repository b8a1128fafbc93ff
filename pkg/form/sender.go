package form

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactform/pkg/eventloop"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

// Submission is the normalized form data handed to a Sender.
type Submission struct {
	Name      string
	Email     string
	Message   string
	UserAgent string
}

// Receipt acknowledges a sent submission.
type Receipt struct {
	ID          uuid.UUID
	SubmittedAt time.Time
}

// Sender delivers a submission. It runs off the event loop and may block.
type Sender interface {
	Send(ctx context.Context, s Submission) (Receipt, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, s Submission) (Receipt, error)

func (f SenderFunc) Send(ctx context.Context, s Submission) (Receipt, error) {
	return f(ctx, s)
}

// SimulatedSender pretends to deliver a submission: it waits Delay on Clock,
// logs the data once and always succeeds.
type SimulatedSender struct {
	clock  eventloop.Clock
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedSender returns a sender sleeping delay on clock. A nil logger discards.
func NewSimulatedSender(clock eventloop.Clock, delay time.Duration, log *slog.Logger) *SimulatedSender {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatedSender{clock: clock, delay: delay, logger: log}
}

func (s *SimulatedSender) Send(ctx context.Context, sub Submission) (Receipt, error) {
	if err := s.clock.Sleep(ctx, s.delay); err != nil {
		return Receipt{}, errors.Join(ErrSendFailed, err)
	}

	r := Receipt{ID: uuid.New(), SubmittedAt: s.clock.Now().UTC()}
	s.logger.InfoContext(ctx, "form data",
		logger.Group("form",
			slog.String("name", sub.Name),
			slog.String("email", sub.Email),
			slog.String("message", sub.Message),
		),
		slog.String("timestamp", r.SubmittedAt.Format(time.RFC3339Nano)),
		slog.String("user_agent", sub.UserAgent),
		slog.String("receipt_id", r.ID.String()),
	)
	return r, nil
}
