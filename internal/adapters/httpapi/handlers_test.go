package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/adapters/httpapi"
	memitineraryrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/itineraryrepo"
	memreviewrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/reviewrepo"
	memuserrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/userrepo"
	"github.com/wanderplan/travel-planner-api/internal/app/authn"
	"github.com/wanderplan/travel-planner-api/internal/app/authz"
	"github.com/wanderplan/travel-planner-api/internal/app/itineraries"
	"github.com/wanderplan/travel-planner-api/internal/app/payments"
	"github.com/wanderplan/travel-planner-api/internal/app/reviews"
	"github.com/wanderplan/travel-planner-api/internal/app/users"
	"github.com/wanderplan/travel-planner-api/internal/platform/auth/tokens"
	platformclock "github.com/wanderplan/travel-planner-api/internal/platform/clock"
	"github.com/wanderplan/travel-planner-api/internal/platform/metrics"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/mailer"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/paymentgw"
)

// fakeGateway is a programmable paymentgw.Client for handler tests.
type fakeGateway struct {
	intent paymentgw.Intent
	err    error
}

func (f *fakeGateway) CreateIntent(_ context.Context, _ paymentgw.CreateIntentParams) (paymentgw.Intent, error) {
	if f.err != nil {
		return paymentgw.Intent{}, f.err
	}
	return f.intent, nil
}

// fakeMailer records sent messages instead of talking to a relay.
type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type testAPI struct {
	handler http.Handler
	gateway *fakeGateway
	mailer  *fakeMailer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log := zerolog.Nop()
	clk := platformclock.NewSystemClock()
	signer := tokens.New("test-secret", "travel-planner-api", time.Hour)

	userRepo := memuserrepo.NewRepo()
	mail := &fakeMailer{}
	gw := &fakeGateway{intent: paymentgw.Intent{ID: "pi_1", Status: "succeeded", ClientSecret: "sec", ReceiptURL: "https://r"}}
	registry := payments.NewRegistry(
		payments.NewGatewayStrategy(gw, log),
		payments.NewCryptoStrategy(log),
	)

	server := httpapi.NewServer(httpapi.ServerOptions{
		Users:                users.NewService(userRepo, signer, clk),
		Itineraries:          itineraries.NewService(memitineraryrepo.NewRepo(), clk),
		Reviews:              reviews.NewService(memreviewrepo.NewRepo(), userRepo, clk),
		Payments:             payments.NewService(registry, log),
		Guard:                authz.NewGuard(userRepo),
		Signer:               signer,
		Mail:                 mail,
		Metrics:              metrics.New(),
		StripePublishableKey: "pk_test_123",
	}, log)

	handler := httpapi.NewRouter(server, httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(authn.New(signer)),
		Logger:         log,
	})

	return &testAPI{handler: handler, gateway: gw, mailer: mail}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// signUp provisions a user through the API and returns (token, userID).
func (a *testAPI) signUp(t *testing.T, username string) (string, string) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "correct horse",
		"firstName": "Test",
		"lastName":  "User",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup %s: status=%d body=%s", username, rec.Code, rec.Body.String())
	}
	var res struct {
		Token string `json:"token"`
		ID    string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	return res.Token, res.ID
}

func TestSignUpAndLogin(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token, userID := api.signUp(t, "alice")
	if token == "" || userID == "" {
		t.Fatalf("token=%q userID=%q", token, userID)
	}

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "alice",
		"password": "correct horse",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "alice",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status=%d", rec.Code)
	}
}

func TestProfile_RequiresToken(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token, _ := api.signUp(t, "alice")

	if rec := api.do(t, http.MethodGet, "/api/auth/profile", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status=%d", rec.Code)
	}
	if rec := api.do(t, http.MethodGet, "/api/auth/profile", "garbage", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status=%d", rec.Code)
	}

	rec := api.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var profile struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Username != "alice" {
		t.Fatalf("username=%q", profile.Username)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatalf("profile leaks password data: %s", rec.Body.String())
	}
}

func TestCheckUsernameAndEmail(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	api.signUp(t, "alice")

	for path, want := range map[string]bool{
		"/api/auth/check-username/alice":             true,
		"/api/auth/check-username/bob":               false,
		"/api/auth/check-email/alice@example.com":    true,
		"/api/auth/check-email/stranger@example.com": false,
	} {
		rec := api.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, rec.Code)
		}
		var res struct {
			Exists bool `json:"exists"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Exists != want {
			t.Errorf("%s: exists=%v, want %v", path, res.Exists, want)
		}
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token, _ := api.signUp(t, "alice")

	rec := api.do(t, http.MethodPost, "/api/token/generate", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var res struct {
		Token string `json:"token"`
		Type  string `json:"type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Token == "" || res.Type != "Bearer" {
		t.Fatalf("res=%+v", res)
	}

	// The reissued token must be accepted on protected routes.
	if rec := api.do(t, http.MethodGet, "/api/auth/profile", res.Token, nil); rec.Code != http.StatusOK {
		t.Fatalf("reissued token rejected: status=%d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	if rec := api.do(t, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}
