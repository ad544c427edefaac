package notifier

import "context"

// Workflow identifiers known to the notification service.
const (
	EventVerifyAccount  = "kora-verify-account"
	EventForgotPassword = "kora-forgot-password"
	EventTransaction    = "kora-transaction"
)

// To identifies the recipient of a trigger.
type To struct {
	SubscriberID string `json:"subscriberId"`
	Email        string `json:"email,omitempty"`
}

// Provider dispatches transactional notification triggers. Implementations
// must be safe for concurrent use.
type Provider interface {
	Trigger(ctx context.Context, event string, to To, payload map[string]interface{}) error
}
