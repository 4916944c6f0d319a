package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

const sendgridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendgridMailer sends rendered templates through the SendGrid v3 API.
type SendgridMailer struct {
	cfg    config.MailConfig
	client *http.Client
	log    zerolog.Logger
}

func NewSendgridMailer(cfg config.MailConfig, log zerolog.Logger) *SendgridMailer {
	return &SendgridMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

func (m *SendgridMailer) Send(ctx context.Context, mail ports.Mail) error {
	body, err := render(mail.Template, mail.Variables)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": mail.To}}},
		},
		"from":    map[string]string{"email": m.cfg.From},
		"subject": mail.Subject,
		"content": []map[string]string{
			{"type": "text/html", "value": body},
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridEndpoint, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.SendgridAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, detail)
	}

	m.log.Debug().Str("to", mail.To).Str("template", mail.Template).Msg("mail sent")
	return nil
}
