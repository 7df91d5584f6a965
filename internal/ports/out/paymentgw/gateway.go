package paymentgw

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the gateway has no credentials. Callers must
// degrade to a clean failure outcome, never crash.
var ErrNotConfigured = errors.New("payment gateway not configured")

// DeclinedError is a processor-rejected attempt. UserMessage is safe to show
// to the caller; raw processor internals stay behind this type.
type DeclinedError struct {
	Code        string
	UserMessage string
}

func (e *DeclinedError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return "payment declined"
}

// CreateIntentParams describes one immediate-confirmation payment attempt.
// AmountMinor is the amount in the currency's minor unit (e.g. cents).
// The confirmation/redirect configuration is fixed per client, not per call.
type CreateIntentParams struct {
	AmountMinor     int64
	Currency        string
	PaymentMethodID string
	Description     string
}

// Intent is the processor's view of a created payment attempt.
type Intent struct {
	ID           string
	Status       string
	ClientSecret string
	ReceiptURL   string
}

// Client performs one payment attempt against the external processor.
// Implementations must be safe for concurrent use and must bound the call
// with their own timeout; this port carries no retry semantics.
type Client interface {
	CreateIntent(ctx context.Context, p CreateIntentParams) (Intent, error)
}
