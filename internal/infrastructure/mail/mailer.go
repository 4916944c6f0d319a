// Package mail implements the outbound mail providers: SMTP, Mailgun,
// SendGrid, or a disabled no-op. Message bodies come from named templates
// rendered with simple {{ var }} substitution.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

// New selects and initialises the mail provider for the configured mode.
func New(cfg config.MailConfig, log zerolog.Logger) (ports.Mailer, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPMailer(cfg, log), nil
	case "mailgun":
		return NewMailgunMailer(cfg, log), nil
	case "sendgrid":
		return NewSendgridMailer(cfg, log), nil
	case "false", "":
		return &DisabledMailer{log: log}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

// DisabledMailer drops mail on the floor with a debug log line.
type DisabledMailer struct {
	log zerolog.Logger
}

func (m *DisabledMailer) Send(ctx context.Context, mail ports.Mail) error {
	m.log.Debug().Str("to", mail.To).Str("template", mail.Template).Msg("mail disabled, message skipped")
	return nil
}

// templates maps template names to their HTML bodies. Placeholders use the
// {{ name }} form.
var templates = map[string]string{
	"verify_email": `<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Welcome to Life Planner, {{ name }}!</h2>
  <p>Confirm your email address to activate all account features.</p>
  <p><a href="{{ link }}" style="background:#2b6cb0;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none;">Verify email address</a></p>
  <p>If the button does not work, copy this link into your browser:</p>
  <p>{{ link }}</p>
  <p>This link expires in 24 hours. If you did not create an account, ignore this message.</p>
</body>
</html>`,
}

// render substitutes the mail variables into the named template.
func render(name string, vars map[string]string) (string, error) {
	body, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", name)
	}
	for k, v := range vars {
		body = strings.ReplaceAll(body, "{{ "+k+" }}", v)
	}
	return body, nil
}
