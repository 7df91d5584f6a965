package httpapi_test

import (
	"errors"
	"net/http"
	"testing"
)

func TestSendMail(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token, _ := api.signUp(t, "alice")

	rec := api.do(t, http.MethodPost, "/api/mail/send", token, map[string]any{
		"to":      "bob@example.com",
		"subject": "Your itinerary",
		"body":    "See the attached plan.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if len(api.mailer.sent) != 1 || api.mailer.sent[0].To != "bob@example.com" {
		t.Fatalf("sent=%+v", api.mailer.sent)
	}
}

func TestSendMail_RequiresToken(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/api/mail/send", "", map[string]any{
		"to": "bob@example.com", "subject": "s", "body": "b",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestSendMail_MissingFields(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token, _ := api.signUp(t, "alice")

	rec := api.do(t, http.MethodPost, "/api/mail/send", token, map[string]any{
		"to": "bob@example.com",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSendMail_DeliveryFailure(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	api.mailer.err = errors.New("relay refused")
	token, _ := api.signUp(t, "alice")

	rec := api.do(t, http.MethodPost, "/api/mail/send", token, map[string]any{
		"to": "bob@example.com", "subject": "s", "body": "b",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status=%d", rec.Code)
	}
}
