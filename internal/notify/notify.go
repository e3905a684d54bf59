package notify

import (
	"context"

	"go.uber.org/zap"
)

// Message is an outbound transactional email. Actual delivery lives behind
// Sender; the core only composes and dispatches.
type Message struct {
	Recipient string
	Subject   string
	HTMLBody  string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender records the notification instead of delivering it. Used as the
// default sender and in tests.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("notification",
		zap.String("recipient", msg.Recipient),
		zap.String("subject", msg.Subject),
	)
	return nil
}

var _ Sender = (*LogSender)(nil)
