package service

import (
	"context"
	"log"
)

// Notifier delivers informational messages (OTP codes, payout alerts) to a
// phone number. Dispatch is best-effort: callers log failures and move on;
// a broken notifier must never roll back ledger or payout writes.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// LogNotifier writes messages to the process log instead of sending SMS.
// Used in development and as the default when no gateway is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, recipient, message string) error {
	log.Printf("[notify] to=%s %s", recipient, message)
	return nil
}
