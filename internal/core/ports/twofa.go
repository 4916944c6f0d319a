package ports

// TwoFaSecret is a freshly issued TOTP secret with its provisioning URI and
// an inline QR image (base64 PNG data URL).
type TwoFaSecret struct {
	Secret string
	URI    string
	QR     string
}

// TwoFa wraps time-based one-time-password generation and verification.
type TwoFa interface {
	Generate(account string) (*TwoFaSecret, error)
	Verify(secret, code string) bool
}
