package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type RouterOptions struct {
	AuthMiddleware func(http.Handler) http.Handler
	Logger         zerolog.Logger
}

// NewRouter constructs the API HTTP router.
//
// Routes split into a public group (health, metrics, signup/login, the
// existence probes, the public review listing, and the payment config/health
// endpoints) and a bearer-protected group carrying everything that acts on a
// user's data.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(countRequests(s))
	}

	// Infra endpoints, unauthenticated.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Public surface.
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/check-username/{username}", s.handleCheckUsername)
		r.Get("/auth/check-email/{email}", s.handleCheckEmail)

		r.Get("/review", s.handleListReviews)

		r.Get("/payments/config", s.handlePaymentConfig)
		r.Get("/payments/health", s.handlePaymentHealth)

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			if opts.AuthMiddleware != nil {
				r.Use(opts.AuthMiddleware)
			}

			r.Get("/auth/profile", s.handleProfile)
			r.Post("/token/generate", s.handleGenerateToken)

			r.Post("/itineraries", s.handleSaveItinerary)
			r.Get("/itineraries", s.handleListItineraries)
			r.Get("/itineraries/search", s.handleSearchItineraries)
			r.Get("/itineraries/{id}", s.handleGetItinerary)
			r.Delete("/itineraries/{id}", s.handleDeleteItinerary)

			r.Post("/review", s.handleSubmitReview)

			r.Post("/payments/process", s.handleProcessPayment)

			r.Post("/mail/send", s.handleSendMail)
		})
	})

	return r
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}

func countRequests(s *Server) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			s.metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	}
}
