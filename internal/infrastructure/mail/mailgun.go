package mail

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

// MailgunMailer sends rendered templates through the Mailgun messages API.
type MailgunMailer struct {
	cfg    config.MailConfig
	client *http.Client
	log    zerolog.Logger
}

func NewMailgunMailer(cfg config.MailConfig, log zerolog.Logger) *MailgunMailer {
	return &MailgunMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

func (m *MailgunMailer) Send(ctx context.Context, mail ports.Mail) error {
	body, err := render(mail.Template, mail.Variables)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("from", m.cfg.From)
	form.Set("to", mail.To)
	form.Set("subject", mail.Subject)
	form.Set("html", body)

	endpoint := fmt.Sprintf("https://api.mailgun.net/v3/%s/messages", m.cfg.MailgunDomain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth("api", m.cfg.MailgunAPIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailgun send: status %d: %s", resp.StatusCode, detail)
	}

	m.log.Debug().Str("to", mail.To).Str("template", mail.Template).Msg("mail sent")
	return nil
}
