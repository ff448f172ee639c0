package cmd

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/notify"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier(t *testing.T) {
	t.Run("logs messages when no smtp host is configured", func(t *testing.T) {
		logger, _ := test.NewNullLogger()

		notifier, err := newNotifier(Config{NotifyManagers: "boss@example.com"}, logger)
		require.NoError(t, err)
		assert.IsType(t, &notify.Dispatcher{}, notifier)

		result := notifier.Notify(context.Background(), ports.Notification{Kind: ports.NotifyForwardingResponse})
		assert.Equal(t, ports.NotificationResult{Success: true, Message: "skipped"}, result)
	})

	t.Run("rejects an smtp host without a sender address", func(t *testing.T) {
		logger, _ := test.NewNullLogger()

		_, err := newNotifier(Config{SMTPHost: "mail"}, logger)

		assert.Error(t, err)
	})
}
