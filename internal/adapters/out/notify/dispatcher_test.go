package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/adapters/out/notify"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []notify.Mail
	err  error
	hook func()
}

func (s *recordingSender) Send(_ context.Context, mail notify.Mail) error {
	if s.hook != nil {
		s.hook()
	}
	s.sent = append(s.sent, mail)
	return s.err
}

func order(t *testing.T, creator string) *forwarding.Order {
	t.Helper()
	delivery, err := kernel.NewAddress("Kraków", "30-001", "ul. Długa 5")
	require.NoError(t, err)
	response := &forwarding.Response{
		DriverName:    "Jan",
		DriverSurname: "Kowalski",
		VehicleNumber: "WX 12345",
		DeliveryPrice: decimal.NewFromInt(1200),
		DistanceKm:    400,
		PricePerKm:    decimal.NewFromFloat(3),
	}
	return forwarding.RestoreOrder(5,
		forwarding.NextOrderNumber(nil, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)),
		forwarding.StatusNew,
		forwarding.Creator{Name: "Ola", Email: creator},
		forwarding.Details{
			Pickup:          forwarding.PickupZielonka,
			DeliveryAddress: delivery,
			DeliveryDate:    time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
			Goods:           forwarding.Goods{Description: "rury"},
		},
		response, "", time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC))
}

func pending(t *testing.T, requester string) *request.Request {
	t.Helper()
	content := request.Content{
		TransportType:   request.TypeStandard,
		DestinationCity: "Warszawa",
		CostCenter:      "521-01-07",
		DeliveryDate:    time.Now().AddDate(0, 0, 3),
		Justification:   "pilne",
	}
	r, err := request.NewRequest(request.Requester{Email: requester}, content, time.Now())
	require.NoError(t, err)
	require.NoError(t, r.AssignID(12))
	return r
}

func policy() notify.RecipientPolicy {
	return notify.RecipientPolicy{
		Managers:         notify.SplitList("kierownik@example.com, ,szef@example.com"),
		ResponseCreators: []string{"Ola@Example.com"},
	}
}

func Test_Dispatcher_ForwardingResponse(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("creator on the list is notified", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(policy(), sender, logger)

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyForwardingResponse, Actor: "spedytor@example.com", Order: order(t, "ola@example.com"),
		})

		assert.True(t, result.Success)
		assert.Equal(t, []string{"ola@example.com"}, result.RecipientInfo)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Odpowiedź na zlecenie spedycyjne 0001/06/2025", sender.sent[0].Subject)
		assert.Contains(t, sender.sent[0].Body, "Jan Kowalski")
		assert.Contains(t, sender.sent[0].Body, "1200.00 PLN, 400 km (3.00 PLN/km)")
		assert.NotEmpty(t, sender.sent[0].ID)
	})

	t.Run("other creators are skipped", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(policy(), sender, logger)

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyForwardingResponse, Order: order(t, "piotr@example.com"),
		})

		assert.Equal(t, ports.NotificationResult{Success: true, Message: "skipped"}, result)
		assert.Empty(t, sender.sent)
	})
}

func Test_Dispatcher_TransportRequests(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("managers receive new requests", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(policy(), sender, logger)

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyTransportRequestCreated, Request: pending(t, "anna@example.com"),
		})

		assert.True(t, result.Success)
		assert.Equal(t, []string{"kierownik@example.com", "szef@example.com"}, result.RecipientInfo)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Nowy wniosek transportowy #12", sender.sent[0].Subject)
	})

	t.Run("requester receives the decision", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(policy(), sender, logger)
		r := pending(t, "anna@example.com")
		require.NoError(t, r.Reject("mag@example.com", "", time.Now()))

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyTransportRequestRejected, Actor: "mag@example.com", Request: r,
		})

		assert.True(t, result.Success)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"anna@example.com"}, sender.sent[0].To)
		assert.Contains(t, sender.sent[0].Body, request.DefaultRejectionReason)
	})

	t.Run("approval names the transport", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(policy(), sender, logger)

		d.Notify(t.Context(), ports.Notification{
			Kind:          ports.NotifyTransportRequestApproved,
			Request:       pending(t, "anna@example.com"),
			TransportID:   77,
			WarehouseName: "Magazyn Zielonka",
		})

		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].Body, "Transport #77 realizuje Magazyn Zielonka")
	})

	t.Run("no managers configured", func(t *testing.T) {
		sender := &recordingSender{}
		d := notify.NewDispatcher(notify.RecipientPolicy{}, sender, logger)

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyTransportRequestCreated, Request: pending(t, "anna@example.com"),
		})

		assert.Equal(t, "skipped", result.Message)
		assert.Empty(t, sender.sent)
	})
}

func Test_Dispatcher_Failures(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("send error becomes a failed result", func(t *testing.T) {
		d := notify.NewDispatcher(policy(), &recordingSender{err: errors.New("relay down")}, logger)

		result := d.Notify(t.Context(), ports.Notification{
			Kind: ports.NotifyTransportRequestCreated, Request: pending(t, "anna@example.com"),
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "relay down")
		assert.Len(t, result.RecipientInfo, 2)
	})

	t.Run("panic is contained", func(t *testing.T) {
		hook.Reset()
		d := notify.NewDispatcher(policy(), &recordingSender{hook: func() { panic("boom") }}, logger)

		var result ports.NotificationResult
		assert.NotPanics(t, func() {
			result = d.Notify(t.Context(), ports.Notification{
				Kind: ports.NotifyTransportRequestCreated, Request: pending(t, "anna@example.com"),
			})
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "boom")
		assert.Len(t, hook.AllEntries(), 1)
	})

	t.Run("unknown kind", func(t *testing.T) {
		d := notify.NewDispatcher(policy(), &recordingSender{}, logger)

		result := d.Notify(t.Context(), ports.Notification{Kind: "unknown"})

		assert.Equal(t, "skipped", result.Message)
	})
}

func Test_LogSender(t *testing.T) {
	logger, hook := test.NewNullLogger()

	err := notify.NewLogSender(logger).Send(context.Background(), notify.Mail{
		ID: "m1", To: []string{"a@example.com"}, Subject: "temat", Body: "treść",
	})

	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "treść", hook.LastEntry().Message)
	assert.Equal(t, "temat", hook.LastEntry().Data["subject"])
}
