package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/adapters/httpapi"
	memitineraryrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/itineraryrepo"
	memreviewrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/reviewrepo"
	memuserrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/userrepo"
	postgres "github.com/wanderplan/travel-planner-api/internal/adapters/postgres"
	pgitineraryrepo "github.com/wanderplan/travel-planner-api/internal/adapters/postgres/itineraryrepo"
	pgreviewrepo "github.com/wanderplan/travel-planner-api/internal/adapters/postgres/reviewrepo"
	pguserrepo "github.com/wanderplan/travel-planner-api/internal/adapters/postgres/userrepo"
	"github.com/wanderplan/travel-planner-api/internal/adapters/smtpmailer"
	"github.com/wanderplan/travel-planner-api/internal/adapters/stripegw"
	"github.com/wanderplan/travel-planner-api/internal/app/authn"
	"github.com/wanderplan/travel-planner-api/internal/app/authz"
	"github.com/wanderplan/travel-planner-api/internal/app/itineraries"
	"github.com/wanderplan/travel-planner-api/internal/app/payments"
	"github.com/wanderplan/travel-planner-api/internal/app/reviews"
	"github.com/wanderplan/travel-planner-api/internal/app/users"
	"github.com/wanderplan/travel-planner-api/internal/platform/auth/tokens"
	platformclock "github.com/wanderplan/travel-planner-api/internal/platform/clock"
	"github.com/wanderplan/travel-planner-api/internal/platform/config"
	"github.com/wanderplan/travel-planner-api/internal/platform/logger"
	"github.com/wanderplan/travel-planner-api/internal/platform/metrics"
	itineraryrepoport "github.com/wanderplan/travel-planner-api/internal/ports/out/itineraryrepo"
	reviewrepoport "github.com/wanderplan/travel-planner-api/internal/ports/out/reviewrepo"
	userrepoport "github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl := logger.New(cfg.Environment, cfg.LogLevel)

	signer := tokens.NewWithOptions(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, cfg.ClockSkew, nil)

	// Auth configuration:
	// - Production: enforce bearer auth against the signing secret
	// - Local dev: set AUTH_MODE=dev to bypass verification and use X-Debug-Subject
	var authMW func(http.Handler) http.Handler
	switch cfg.AuthMode {
	case "dev":
		authMW = httpapi.NewDevAuthMiddleware(cfg.DevSubject)
	default:
		authMW = httpapi.NewAuthMiddleware(authn.New(signer))
	}

	clk := platformclock.NewSystemClock()

	var (
		userRepo      userrepoport.Repository
		itineraryRepo itineraryrepoport.Repository
		reviewRepo    reviewrepoport.Repository
		cleanup       func()
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			zl.Fatal().Err(err).Msg("invalid postgres config")
		}
		cleanup = pool.Close

		userRepo = pguserrepo.NewRepo(pool)
		itineraryRepo = pgitineraryrepo.NewRepo(pool)
		reviewRepo = pgreviewrepo.NewRepo(pool)
	default:
		userRepo = memuserrepo.NewRepo()
		itineraryRepo = memitineraryrepo.NewRepo()
		reviewRepo = memreviewrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	gateway := stripegw.NewClient(stripegw.Config{
		SecretKey: cfg.StripeSecretKey,
		BaseURL:   cfg.StripeBaseURL,
		ReturnURL: cfg.PaymentReturnURL,
		Timeout:   cfg.StripeTimeout,
	}, zl)

	// The strategy registry is built once at startup and never mutated.
	registry := payments.NewRegistry(
		payments.NewGatewayStrategy(gateway, zl),
		payments.NewCryptoStrategy(zl),
	)

	mail := smtpmailer.New(smtpmailer.Config{
		Host:     cfg.SMTPHost,
		Port:     strconv.Itoa(cfg.SMTPPort),
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}, zl)

	m := metrics.New()

	server := httpapi.NewServer(httpapi.ServerOptions{
		Users:                users.NewService(userRepo, signer, clk),
		Itineraries:          itineraries.NewService(itineraryRepo, clk),
		Reviews:              reviews.NewService(reviewRepo, userRepo, clk),
		Payments:             payments.NewService(registry, zl),
		Guard:                authz.NewGuard(userRepo),
		Signer:               signer,
		Mail:                 mail,
		Metrics:              m,
		StripePublishableKey: cfg.StripePublishableKey,
	}, zl)

	handler := httpapi.NewRouter(server, httpapi.RouterOptions{
		AuthMiddleware: authMW,
		Logger:         zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info().Str("port", cfg.Port).Str("storage", cfg.StorageBackend).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	zl.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
