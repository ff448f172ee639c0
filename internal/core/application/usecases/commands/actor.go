package commands

import (
	"context"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

func requireActor(actor access.User) error {
	if actor.Email() == "" {
		return errs.NewUnauthenticatedError()
	}
	return nil
}

func authorize(actor access.User, capability access.Capability, action string) error {
	if !actor.CanPerform(capability) {
		return errs.NewForbiddenError(actor.Email(), action)
	}
	return nil
}

// dispatch sends a notification and logs an unsuccessful result. The result is
// returned to the caller as an advisory.
func dispatch(ctx context.Context, notifier ports.Notifier, logger logrus.FieldLogger, n ports.Notification) ports.NotificationResult {
	if notifier == nil {
		return ports.NotificationResult{Success: false, Message: "notifications are disabled"}
	}
	result := notifier.Notify(ctx, n)
	if !result.Success {
		logger.WithField("kind", n.Kind).Warnf("notification failed: %s", result.Message)
	}
	return result
}
