package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
	CC      string
	BCC     string
}

// Mailer delivers outbound email. Delivery failures are returned as errors;
// callers decide how much of the failure to surface.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}
