package notify

import (
	"context"

	"go.uber.org/zap"
)

// Dispatcher decouples notification delivery from the request path. A failed
// or dropped notification never rolls back the booking that triggered it.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	queue  chan Message
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(context.Background(), msg); err != nil {
			d.log.Warn("notification send failed",
				zap.String("recipient", msg.Recipient),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// queue full: drop rather than block the API
		d.log.Warn("notification queue full, dropping message",
			zap.String("recipient", msg.Recipient),
		)
	}
}
