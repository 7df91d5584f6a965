package payments

import (
	"context"

	"github.com/rs/zerolog"
)

// CryptoStrategy is a placeholder backend. It honors the strategy contract by
// always returning a well-formed failure response.
type CryptoStrategy struct {
	log zerolog.Logger
}

func NewCryptoStrategy(log zerolog.Logger) CryptoStrategy {
	return CryptoStrategy{log: log}
}

func (s CryptoStrategy) Attempt(ctx context.Context, req *Request) Response {
	_ = ctx
	s.log.Info().Msg("crypto payment requested; backend not implemented")
	return Failed("Cryptocurrency payments are not yet supported")
}
