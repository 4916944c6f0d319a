package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/api/metrics"
	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

// TwoFaService drives the TOTP lifecycle: Unconfigured → SecretIssued →
// Enabled. Generate always issues a fresh secret, replacing any prior one.
type TwoFaService struct {
	users      ports.UserRepository
	profiles   ports.ProfileRepository
	twofa      ports.TwoFa
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewTwoFaService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	twofa ports.TwoFa,
	activities ports.ActivityRecorder,
	logger zerolog.Logger,
) *TwoFaService {
	return &TwoFaService{
		users:      users,
		profiles:   profiles,
		twofa:      twofa,
		activities: activities,
		logger:     logger,
	}
}

// TwoFaGenerated is the Generate envelope item. The secret itself stays on
// the server; clients get the provisioning URI and QR only.
type TwoFaGenerated struct {
	QR  string `json:"qr"`
	URI string `json:"uri"`
}

// Generate issues a new secret for the user and persists it with 2FA enabled,
// overwriting any existing secret regardless of prior state.
func (s *TwoFaService) Generate(ctx context.Context, userID string, source *domain.Source) (*ports.Response, error) {
	if userID == "" {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}

	user, err := s.users.FindByID(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}

	issued, err := s.twofa.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(userID, "TwoFa Secret Generated",
		"A new twofa secret has been generated", source, nil))

	if err := s.profiles.SetTwoFaSecret(ctx, userID, issued.Secret); err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(userID, "TwoFa Secret Save",
		"A new secret has been saved on user profile", source, nil))

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "TwoFa secrets generated successfully",
		Item:    &TwoFaGenerated{QR: issued.QR, URI: issued.URI},
	}, nil
}

// Verify checks a submitted numeric code against the stored secret. Failure
// never mutates profile state; both outcomes append an activity record.
func (s *TwoFaService) Verify(ctx context.Context, in ports.VerifyInput) (*ports.Response, error) {
	if in.UserID == "" {
		return nil, domain.ErrNotAuthorized()
	}
	if in.Value == "" {
		return nil, &domain.PropertyRequiredError{Message: "Verification code is required", Property: "code"}
	}
	for _, r := range in.Value {
		if r < '0' || r > '9' {
			return nil, &domain.ValidationError{Message: "Invalid verification code. Only numbers are supported"}
		}
	}

	profile, err := s.profiles.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotAuthorized()
	}
	if !profile.TwoFa || profile.TwoFaSecret == "" {
		return nil, &domain.ResponseError{Message: "Your profile is not setup to use 2FA Verification. Login to your account and set it up first"}
	}

	if !s.twofa.Verify(profile.TwoFaSecret, in.Value) {
		s.activities.Record(domain.NewActivity(in.UserID, "TwoFa Verification failed",
			"A 2FA verification failed on this account", in.Source,
			map[string]string{"code": in.Value}))
		metrics.TwoFaVerificationsTotal.WithLabelValues("failure").Inc()
		return nil, &domain.ResponseError{Message: "Your verification code is invalid or has expired. Retry again"}
	}

	s.activities.Record(domain.NewActivity(in.UserID, "TwoFa Verification",
		"A 2FA verification was passed successfully", in.Source, nil))
	metrics.TwoFaVerificationsTotal.WithLabelValues("success").Inc()

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "2FA verification was successful",
		Item:    map[string]bool{"status": true},
	}, nil
}
