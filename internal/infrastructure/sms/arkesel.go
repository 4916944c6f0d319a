package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

const arkeselEndpoint = "https://sms.arkesel.com/api/v2/sms/send"

// ArkeselSender sends messages through the Arkesel v2 SMS API.
type ArkeselSender struct {
	cfg    config.SMSConfig
	client *http.Client
	log    zerolog.Logger
}

func NewArkeselSender(cfg config.SMSConfig, log zerolog.Logger) *ArkeselSender {
	return &ArkeselSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

func (s *ArkeselSender) Send(ctx context.Context, to, message string) error {
	payload := map[string]any{
		"sender":     s.cfg.ArkeselSender,
		"message":    message,
		"recipients": []string{to},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, arkeselEndpoint, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", s.cfg.ArkeselAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("arkesel send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("arkesel send: status %d: %s", resp.StatusCode, detail)
	}

	s.log.Debug().Str("to", to).Msg("sms sent")
	return nil
}
