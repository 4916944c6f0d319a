package ports

import "context"

// Mail is a template-addressed message. The mail service renders the named
// template with the variables before handing it to the configured transport.
type Mail struct {
	To        string
	Subject   string
	Template  string
	Variables map[string]string
}

// Mailer renders and delivers mail. The transport (SMTP, Mailgun, SendGrid)
// is selected at startup from configuration and injected, never chosen from
// globals.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// SMSSender delivers a short text message.
type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}
