package access

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Capability is a named action that can be granted to a user.
type Capability string

const (
	RespondForwardingOrders  Capability = "respond_forwarding_orders"
	SubmitTransportRequests  Capability = "submit_transport_requests"
	ApproveTransportRequests Capability = "approve_transport_requests"
)

// documentPaths maps a capability to its section and key in the permission document.
var documentPaths = map[Capability][2]string{
	RespondForwardingOrders:  {"spedycja", "respond"},
	SubmitTransportRequests:  {"transport_requests", "add"},
	ApproveTransportRequests: {"transport_requests", "approve"},
}

func (c Capability) Validate() error {
	if _, ok := documentPaths[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("capability", fmt.Errorf("%q is unknown", string(c)))
	}
	return nil
}

func (c Capability) String() string { return string(c) }

// Permission is a dotted section.key entry of the permission document.
type Permission string

func (c Capability) Permission() Permission {
	p := documentPaths[c]
	return Permission(p[0] + "." + p[1])
}
