package notify

import (
	"strings"

	"logistics/internal/core/ports"
)

// RecipientPolicy decides who receives each kind of notification.
type RecipientPolicy struct {
	// Managers receive every new transport request.
	Managers []string
	// ResponseCreators are the order creators who are told about carrier
	// responses. Creators outside this list are not notified.
	ResponseCreators []string
}

// Recipients returns the addresses for n. An empty result means the
// notification is skipped.
func (p RecipientPolicy) Recipients(n ports.Notification) []string {
	switch n.Kind {
	case ports.NotifyForwardingResponse:
		if n.Order == nil {
			return nil
		}
		creator := n.Order.Creator().Email
		if contains(p.ResponseCreators, creator) {
			return []string{creator}
		}
	case ports.NotifyTransportRequestCreated:
		return clean(p.Managers)
	case ports.NotifyTransportRequestApproved, ports.NotifyTransportRequestRejected:
		if n.Request != nil && n.Request.Requester().Email != "" {
			return []string{n.Request.Requester().Email}
		}
	}
	return nil
}

func contains(list []string, email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), email) {
			return true
		}
	}
	return false
}

func clean(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitList parses a comma separated address list.
func SplitList(s string) []string {
	return clean(strings.Split(s, ","))
}
