package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AppURL is the public base URL used in verification links and local
	// storage file URLs.
	AppURL string `env:"APP_URL, default=http://localhost:8080"`

	JWTSecret  string        `env:"JWT_SECRET"`
	SecretKey  string        `env:"SECRET_KEY"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=720h"`

	VerifyEmail bool `env:"VERIFY_EMAIL, default=true"`
	VerifyPhone bool `env:"VERIFY_PHONE, default=true"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
	Mail    MailConfig
	SMS     SMSConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=life_planner"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StorageConfig selects the file storage backend. Mode is one of "s3",
// "local" or "false" (uploads silently skipped).
type StorageConfig struct {
	Mode     string `env:"STORAGE_MODE, default=false"`
	LocalDir string `env:"STORAGE_LOCAL_DIR, default=./static"`

	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSBucket          string `env:"AWS_BUCKET"`
}

// MailConfig selects the mail provider. Provider is one of "smtp", "mailgun",
// "sendgrid" or "false" (mail silently skipped).
type MailConfig struct {
	Provider string `env:"MAIL_PROVIDER, default=false"`
	From     string `env:"MAIL_FROM"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT, default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`

	SendgridAPIKey string `env:"SENDGRID_API_KEY"`
}

// SMSConfig selects the SMS provider. Provider is one of "twilio", "arkesel"
// or "false" (SMS silently skipped).
type SMSConfig struct {
	Provider string `env:"SMS_PROVIDER, default=false"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom       string `env:"TWILIO_FROM"`

	ArkeselAPIKey string `env:"ARKESEL_API_KEY"`
	ArkeselSender string `env:"ARKESEL_SENDER"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every selected provider has its required settings.
// Provider-specific variables are only required when the provider is active.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}

	switch c.Storage.Mode {
	case "false", "local":
	case "s3":
		if c.Storage.AWSRegion == "" || c.Storage.AWSAccessKeyID == "" ||
			c.Storage.AWSSecretAccessKey == "" || c.Storage.AWSBucket == "" {
			return fmt.Errorf("AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_BUCKET are required when STORAGE_MODE=s3")
		}
	default:
		return fmt.Errorf("invalid STORAGE_MODE %q: expected s3, local or false", c.Storage.Mode)
	}

	switch c.Mail.Provider {
	case "false":
	case "smtp":
		if c.Mail.SMTPHost == "" || c.Mail.SMTPUsername == "" || c.Mail.SMTPPassword == "" {
			return fmt.Errorf("SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD are required when MAIL_PROVIDER=smtp")
		}
	case "mailgun":
		if c.Mail.MailgunDomain == "" || c.Mail.MailgunAPIKey == "" {
			return fmt.Errorf("MAILGUN_DOMAIN and MAILGUN_API_KEY are required when MAIL_PROVIDER=mailgun")
		}
	case "sendgrid":
		if c.Mail.SendgridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid")
		}
	default:
		return fmt.Errorf("invalid MAIL_PROVIDER %q: expected smtp, mailgun, sendgrid or false", c.Mail.Provider)
	}
	if c.Mail.Provider != "false" && c.Mail.From == "" {
		return fmt.Errorf("MAIL_FROM is required when mail is enabled")
	}

	switch c.SMS.Provider {
	case "false":
	case "twilio":
		if c.SMS.TwilioAccountSID == "" || c.SMS.TwilioAuthToken == "" || c.SMS.TwilioFrom == "" {
			return fmt.Errorf("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM are required when SMS_PROVIDER=twilio")
		}
	case "arkesel":
		if c.SMS.ArkeselAPIKey == "" || c.SMS.ArkeselSender == "" {
			return fmt.Errorf("ARKESEL_API_KEY and ARKESEL_SENDER are required when SMS_PROVIDER=arkesel")
		}
	default:
		return fmt.Errorf("invalid SMS_PROVIDER %q: expected twilio, arkesel or false", c.SMS.Provider)
	}

	return nil
}
