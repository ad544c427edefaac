package notifier

import (
	"context"
	"log/slog"
)

// NoopProvider logs triggers instead of sending them. Used when no API key is
// configured and in development.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Trigger(ctx context.Context, event string, to To, payload map[string]interface{}) error {
	slog.Info("notification trigger skipped", "event", event, "subscriber", to.SubscriberID)
	return nil
}
