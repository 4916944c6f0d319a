// Package sms implements the outbound SMS providers: Twilio, Arkesel, or a
// disabled no-op.
package sms

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

// New selects and initialises the SMS provider for the configured mode.
func New(cfg config.SMSConfig, log zerolog.Logger) (ports.SMSSender, error) {
	switch cfg.Provider {
	case "twilio":
		return NewTwilioSender(cfg, log), nil
	case "arkesel":
		return NewArkeselSender(cfg, log), nil
	case "false", "":
		return &DisabledSender{log: log}, nil
	default:
		return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
	}
}

// DisabledSender drops messages with a debug log line.
type DisabledSender struct {
	log zerolog.Logger
}

func (s *DisabledSender) Send(ctx context.Context, to, message string) error {
	s.log.Debug().Str("to", to).Msg("sms disabled, message skipped")
	return nil
}
