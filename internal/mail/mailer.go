package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// Message is a contact-form submission. Email is the sender's reply
// address, not the envelope sender.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Mailer delivers contact messages. Implementations are a boundary to
// an external collaborator; delivery failure is an operational error,
// never a validation one.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer stands in when no SMTP host is configured. It writes the
// message to the log and reports success.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Str("message", msg.Body).
		Msg("contact message (mail delivery disabled)")
	return nil
}

var (
	_ Mailer = (*LogMailer)(nil)
	_ Mailer = (*SMTPMailer)(nil)
)
