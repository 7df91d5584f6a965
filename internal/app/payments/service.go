package payments

import (
	"context"

	"github.com/rs/zerolog"
)

// Service orchestrates one payment attempt: validate, resolve the strategy,
// invoke it, and always hand back a normalized Response. Process never
// returns an error and never panics outward.
type Service struct {
	registry *Registry
	log      zerolog.Logger
}

func NewService(registry *Registry, log zerolog.Logger) *Service {
	return &Service{registry: registry, log: log}
}

// Process runs the payment pipeline, short-circuiting on the first failure.
// It does not retry and does not impose its own timeout; bounding the
// external call is the strategy's job.
func (s *Service) Process(ctx context.Context, req *Request) (resp Response) {
	// Last line of defense: anything that escapes the layers below is turned
	// into a generic failure instead of propagating to the caller.
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("unexpected fault during payment processing")
			resp = Failed("Payment processing failed due to unexpected error")
		}
	}()

	if verr := ValidateRequest(req); verr != nil {
		s.log.Error().Str("field", verr.Field).Msg("invalid payment request")
		return Failed(verr.Reason)
	}

	strategy, ok := s.registry.Resolve(req.PaymentType)
	if !ok {
		s.log.Error().Str("payment_type", req.PaymentType).Msg("unsupported payment type")
		return Failed("Unsupported payment type: " + req.PaymentType)
	}

	s.log.Info().
		Str("amount", req.Amount.String()).
		Str("currency", req.Currency).
		Str("payment_type", req.PaymentType).
		Msg("processing payment")

	resp = strategy.Attempt(ctx, req)

	s.log.Info().
		Bool("success", resp.Success).
		Str("payment_id", resp.PaymentID).
		Msg("payment processing completed")

	return resp
}
