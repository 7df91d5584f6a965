package smtpmailer_test

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/adapters/smtpmailer"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/mailer"
)

func newMailer(t *testing.T) (*smtpmailer.Mailer, *sentCall) {
	t.Helper()
	m := smtpmailer.New(smtpmailer.Config{
		Host: "smtp.example.com",
		Port: "587",
		From: "noreply@example.com",
	}, zerolog.Nop())
	call := &sentCall{}
	m.SetSendForTest(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		call.addr, call.from, call.to, call.msg = addr, from, to, string(msg)
		return nil
	})
	return m, call
}

type sentCall struct {
	addr string
	from string
	to   []string
	msg  string
}

func TestSend(t *testing.T) {
	t.Parallel()

	m, call := newMailer(t)
	err := m.Send(context.Background(), mailer.Message{
		To:      "alice@example.com",
		Subject: "Your itinerary",
		Body:    "See attached plan.",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if call.addr != "smtp.example.com:587" {
		t.Fatalf("addr=%q", call.addr)
	}
	if len(call.to) != 1 || call.to[0] != "alice@example.com" {
		t.Fatalf("to=%v", call.to)
	}
	if !strings.Contains(call.msg, "Subject: Your itinerary\r\n") {
		t.Fatalf("msg=%q", call.msg)
	}
	if !strings.HasSuffix(call.msg, "\r\nSee attached plan.") {
		t.Fatalf("msg=%q", call.msg)
	}
}

func TestSend_BccStaysOffHeaders(t *testing.T) {
	t.Parallel()

	m, call := newMailer(t)
	err := m.Send(context.Background(), mailer.Message{
		To:   "alice@example.com",
		CC:   "bob@example.com",
		BCC:  "carol@example.com",
		Body: "hi",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if len(call.to) != 3 {
		t.Fatalf("envelope recipients=%v", call.to)
	}
	if strings.Contains(call.msg, "carol@example.com") {
		t.Fatalf("bcc leaked into headers: %q", call.msg)
	}
	if !strings.Contains(call.msg, "Cc: bob@example.com\r\n") {
		t.Fatalf("cc header missing: %q", call.msg)
	}
}

func TestSend_EmptyRecipient(t *testing.T) {
	t.Parallel()

	m, _ := newMailer(t)
	if err := m.Send(context.Background(), mailer.Message{Body: "hi"}); err == nil {
		t.Fatal("err=nil, want error")
	}
}
