// Package notify delivers best-effort notifications about forwarding orders
// and transport requests. Nothing in this package returns an error or panics
// to the caller; every outcome is a ports.NotificationResult.
package notify

import (
	"context"
	"fmt"
	"strings"

	"logistics/internal/core/ports"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const skipped = "skipped"

// Mail is one rendered message.
type Mail struct {
	ID      string
	To      []string
	Subject string
	Body    string
}

// Sender transports a rendered message.
type Sender interface {
	Send(ctx context.Context, mail Mail) error
}

// Dispatcher implements ports.Notifier on top of a Sender.
type Dispatcher struct {
	policy RecipientPolicy
	sender Sender
	logger logrus.FieldLogger
}

func NewDispatcher(policy RecipientPolicy, sender Sender, logger logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{policy: policy, sender: sender, logger: logger.WithField("component", "notify")}
}

func (d *Dispatcher) Notify(ctx context.Context, n ports.Notification) (result ports.NotificationResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WithField("kind", n.Kind).Errorf("notification panicked: %v", r)
			result = ports.NotificationResult{Success: false, Message: fmt.Sprintf("notification failed: %v", r)}
		}
	}()

	to := d.policy.Recipients(n)
	if len(to) == 0 {
		return ports.NotificationResult{Success: true, Message: skipped}
	}

	msg, err := render(n)
	if err != nil {
		return ports.NotificationResult{Success: false, Message: err.Error(), RecipientInfo: to}
	}

	mail := Mail{ID: uuid.NewString(), To: to, Subject: msg.Subject, Body: msg.Body}
	if err = d.sender.Send(ctx, mail); err != nil {
		return ports.NotificationResult{
			Success:       false,
			Message:       fmt.Sprintf("sending to %s failed: %v", strings.Join(to, ", "), err),
			RecipientInfo: to,
		}
	}

	d.logger.WithFields(logrus.Fields{"kind": n.Kind, "mail": mail.ID}).Info("notification sent")
	return ports.NotificationResult{
		Success:       true,
		Message:       fmt.Sprintf("sent to %d recipient(s)", len(to)),
		RecipientInfo: to,
	}
}
