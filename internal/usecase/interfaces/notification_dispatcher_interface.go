package interfaces

import "context"

// INotificationDispatcher sends a templated message over the external
// messaging channel (e.g. WhatsApp).
//
// Contract: best-effort, one way. Callers never block a state transition on
// the result, never retry, and never roll back because delivery failed; they
// log and move on. Implementations must return promptly.

type INotificationDispatcher interface {
	Notify(ctx context.Context, recipientContact, templateID string, params map[string]string) (delivered bool, err error)
}
