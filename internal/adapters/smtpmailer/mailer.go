package smtpmailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/ports/out/mailer"
)

// Config carries SMTP relay settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Mailer delivers mail through a single SMTP relay using net/smtp.
type Mailer struct {
	cfg Config
	log zerolog.Logger

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ mailer.Mailer = (*Mailer)(nil)

func New(cfg Config, log zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:  cfg,
		log:  log.With().Str("component", "smtpmailer").Logger(),
		send: smtp.SendMail,
	}
}

// SetSendForTest overrides the underlying SMTP call. It should not be used in
// production code.
func (m *Mailer) SetSendForTest(fn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	if fn != nil {
		m.send = fn
	}
}

func (m *Mailer) Send(ctx context.Context, msg mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Host == "" {
		return errors.New("smtp relay not configured")
	}
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return errors.New("empty recipient")
	}

	recipients := []string{to}
	var headers strings.Builder
	fmt.Fprintf(&headers, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&headers, "To: %s\r\n", to)
	if cc := strings.TrimSpace(msg.CC); cc != "" {
		fmt.Fprintf(&headers, "Cc: %s\r\n", cc)
		recipients = append(recipients, splitAddresses(cc)...)
	}
	// BCC recipients go on the envelope only, never into headers.
	if bcc := strings.TrimSpace(msg.BCC); bcc != "" {
		recipients = append(recipients, splitAddresses(bcc)...)
	}
	fmt.Fprintf(&headers, "Subject: %s\r\n", msg.Subject)
	headers.WriteString("MIME-Version: 1.0\r\n")
	headers.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	headers.WriteString("\r\n")

	payload := []byte(headers.String() + msg.Body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, recipients, payload); err != nil {
		m.log.Error().Err(err).Str("to", to).Msg("mail delivery failed")
		return fmt.Errorf("send mail: %w", err)
	}
	m.log.Info().Str("to", to).Msg("mail delivered")
	return nil
}

func splitAddresses(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
