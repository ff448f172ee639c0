package ports

import (
	"context"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/request"
)

// NotificationKind selects the message template and recipient rule.
type NotificationKind string

const (
	NotifyForwardingResponse       NotificationKind = "forwarding_response"
	NotifyTransportRequestCreated  NotificationKind = "transport_request_created"
	NotifyTransportRequestApproved NotificationKind = "transport_request_approved"
	NotifyTransportRequestRejected NotificationKind = "transport_request_rejected"
)

// Notification carries the entity state a message is rendered from. Only the
// fields relevant to Kind are set.
type Notification struct {
	Kind          NotificationKind
	Actor         string
	Order         *forwarding.Order
	Request       *request.Request
	TransportID   int64
	WarehouseName string
}

// NotificationResult is an advisory outcome. It never fails the operation that
// triggered it.
type NotificationResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	RecipientInfo []string `json:"recipientInfo,omitempty"`
}

// Notifier dispatches best-effort notifications. Implementations must not panic
// or return errors; every failure is reported through the result.
type Notifier interface {
	Notify(ctx context.Context, n Notification) NotificationResult
}
