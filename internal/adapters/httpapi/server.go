package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/app/authz"
	"github.com/wanderplan/travel-planner-api/internal/app/itineraries"
	"github.com/wanderplan/travel-planner-api/internal/app/payments"
	"github.com/wanderplan/travel-planner-api/internal/app/reviews"
	"github.com/wanderplan/travel-planner-api/internal/app/users"
	"github.com/wanderplan/travel-planner-api/internal/platform/metrics"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/mailer"
)

// Server implements the HTTP handlers and holds the wired application
// services. Route registration lives in router.go.
type Server struct {
	users       *users.Service
	itineraries *itineraries.Service
	reviews     *reviews.Service
	payments    *payments.Service
	guard       *authz.Guard
	signer      users.TokenSigner
	mail        mailer.Mailer
	metrics     *metrics.Metrics

	// publishableKey is exposed to browser clients via the config endpoint.
	publishableKey string

	validate *validator.Validate
	log      zerolog.Logger
}

type ServerOptions struct {
	Users       *users.Service
	Itineraries *itineraries.Service
	Reviews     *reviews.Service
	Payments    *payments.Service
	Guard       *authz.Guard
	Signer      users.TokenSigner
	Mail        mailer.Mailer
	Metrics     *metrics.Metrics

	StripePublishableKey string
}

func NewServer(opts ServerOptions, log zerolog.Logger) *Server {
	return &Server{
		users:          opts.Users,
		itineraries:    opts.Itineraries,
		reviews:        opts.Reviews,
		payments:       opts.Payments,
		guard:          opts.Guard,
		signer:         opts.Signer,
		mail:           opts.Mail,
		metrics:        opts.Metrics,
		publishableKey: opts.StripePublishableKey,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		log:            log,
	}
}
