package payments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wanderplan/travel-planner-api/internal/ports/out/paymentgw"
)

var oneHundred = decimal.NewFromInt(100)

// GatewayStrategy processes payments through the external card gateway.
// It holds no per-request state.
type GatewayStrategy struct {
	gw  paymentgw.Client
	log zerolog.Logger
}

func NewGatewayStrategy(gw paymentgw.Client, log zerolog.Logger) *GatewayStrategy {
	return &GatewayStrategy{gw: gw, log: log}
}

func (s *GatewayStrategy) Attempt(ctx context.Context, req *Request) Response {
	// Minor-unit conversion truncates anything finer than two decimal places
	// (49.999 becomes 4999 cents). Callers are expected to supply at most two
	// decimals; sub-cent precision is dropped, not rejected.
	amountMinor := req.Amount.Mul(oneHundred).IntPart()

	intent, err := s.gw.CreateIntent(ctx, paymentgw.CreateIntentParams{
		AmountMinor:     amountMinor,
		Currency:        strings.ToLower(req.Currency),
		PaymentMethodID: req.PaymentMethodID,
		Description:     req.Description,
	})
	if err != nil {
		// Faults never escape this boundary; every error becomes a Failed
		// response with a sanitized message.
		if errors.Is(err, paymentgw.ErrNotConfigured) {
			s.log.Error().Msg("payment gateway credentials missing")
			return Failed("Payment gateway is not configured")
		}
		var declined *paymentgw.DeclinedError
		if errors.As(err, &declined) {
			s.log.Error().Str("code", declined.Code).Msg("gateway declined payment")
			return Failed("Payment failed: " + declined.UserMessage)
		}
		s.log.Error().Err(err).Msg("gateway call failed")
		return Failed("Payment processing failed")
	}

	s.log.Info().Str("payment_id", intent.ID).Str("status", intent.Status).Msg("payment attempt completed")

	amount := *req.Amount
	return Response{
		PaymentID:     intent.ID,
		Status:        intent.Status,
		Amount:        &amount,
		Currency:      req.Currency,
		PaymentMethod: "stripe_gateway",
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
		ClientSecret:  intent.ClientSecret,
		ReceiptURL:    intent.ReceiptURL,
		Success:       intent.Status == "succeeded" || intent.Status == "requires_action",
	}
}
