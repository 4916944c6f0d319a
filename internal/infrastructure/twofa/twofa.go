// Package twofa implements TOTP secret issuance and code verification.
package twofa

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/brvhprince/planner-api/internal/core/ports"
)

const issuer = "Life Planner"

// TOTP issues and verifies time-based one-time passwords. Verification
// accepts one period of clock skew either side.
type TOTP struct{}

func New() *TOTP { return &TOTP{} }

// Generate issues a fresh secret for the account and renders the provisioning
// QR code as a base64 PNG data URL.
func (t *TOTP) Generate(account string) (*ports.TwoFaSecret, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
	})
	if err != nil {
		return nil, fmt.Errorf("totp generate: %w", err)
	}

	img, err := key.Image(256, 256)
	if err != nil {
		return nil, fmt.Errorf("totp qr image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("totp qr encode: %w", err)
	}

	return &ports.TwoFaSecret{
		Secret: key.Secret(),
		URI:    key.URL(),
		QR:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Verify checks a submitted code against the stored secret.
func (t *TOTP) Verify(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
