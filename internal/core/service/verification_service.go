package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

const (
	codeKindEmail = "email"
	codeKindPhone = "phone"

	emailCodeTTL = 24 * time.Hour
	phoneCodeTTL = 10 * time.Minute
)

// VerificationService issues and redeems email/phone ownership codes. Codes
// live in the short-lived code store; expiry is handled by its TTL.
type VerificationService struct {
	codes      ports.CodeStore
	users      ports.UserRepository
	mailer     ports.Mailer
	sms        ports.SMSSender
	activities ports.ActivityRecorder
	cipher     *secure.Cipher
	appURL     string
	logger     zerolog.Logger
}

func NewVerificationService(
	codes ports.CodeStore,
	users ports.UserRepository,
	mailer ports.Mailer,
	sms ports.SMSSender,
	activities ports.ActivityRecorder,
	cipher *secure.Cipher,
	appURL string,
	logger zerolog.Logger,
) *VerificationService {
	return &VerificationService{
		codes:      codes,
		users:      users,
		mailer:     mailer,
		sms:        sms,
		activities: activities,
		cipher:     cipher,
		appURL:     appURL,
		logger:     logger,
	}
}

// SendEmailCode stores a fresh 6-digit code mapping to the email and mails a
// link carrying the encrypted code.
func (s *VerificationService) SendEmailCode(ctx context.Context, userID, email, firstName string) error {
	code := secure.Digits(6)
	if err := s.codes.Put(ctx, codeKindEmail, code, email, emailCodeTTL); err != nil {
		return err
	}

	sealed, err := s.cipher.Encrypt(code)
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, ports.Mail{
		To:       email,
		Subject:  "Verify your email address",
		Template: "verify_email",
		Variables: map[string]string{
			"name": firstName,
			"link": fmt.Sprintf("%s/verification/email/%s", s.appURL, sealed),
		},
	})
}

// VerifyEmail redeems an encrypted code from a verification link.
func (s *VerificationService) VerifyEmail(ctx context.Context, code string) (*ports.Response, error) {
	if code == "" {
		return nil, &domain.ResponseError{Message: "Verification link url is invalid"}
	}

	decoded := s.cipher.Decrypt(code)
	if decoded == "" {
		return nil, &domain.ResponseError{Message: "Verification link url is invalid"}
	}

	email, err := s.codes.Get(ctx, codeKindEmail, decoded)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, &domain.ResponseError{Message: "Invalid verification link. Check and retry"}
	}

	if err := s.users.VerifyEmail(ctx, email); err != nil {
		return nil, err
	}
	if err := s.codes.Delete(ctx, codeKindEmail, decoded); err != nil {
		s.logger.Warn().Err(err).Msg("verification code not removed")
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Email verification successful. You may close this page now",
	}, nil
}

// SendPhoneCode texts a fresh 6-digit code to the user's phone.
func (s *VerificationService) SendPhoneCode(ctx context.Context, userID string, source *domain.Source) (*ports.Response, error) {
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
	if user.Phone == "" {
		return nil, &domain.ResponseError{Message: "No phone number is set on your account. Add one to your profile first"}
	}

	code := secure.Digits(6)
	if err := s.codes.Put(ctx, codeKindPhone, code, userID, phoneCodeTTL); err != nil {
		return nil, err
	}
	if err := s.sms.Send(ctx, user.Phone, fmt.Sprintf("Your Life Planner verification code is %s", code)); err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(userID, "Phone Verification Requested",
		"A phone verification code was sent by SMS", source, nil))

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Verification code sent to your phone number",
	}, nil
}

// VerifyPhone redeems an SMS code and marks the phone verified.
func (s *VerificationService) VerifyPhone(ctx context.Context, in ports.VerifyInput) (*ports.Response, error) {
	if in.UserID == "" {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}
	if in.Value == "" {
		return nil, &domain.PropertyRequiredError{Message: "Verification code is required", Property: "code"}
	}

	owner, err := s.codes.Get(ctx, codeKindPhone, in.Value)
	if err != nil {
		return nil, err
	}
	if owner == "" || owner != in.UserID {
		s.activities.Record(domain.NewActivity(in.UserID, "Phone Verification failed",
			"A phone verification was attempted on this account but failed.", in.Source,
			map[string]string{"code": in.Value}))
		return nil, &domain.ResponseError{Message: "Your verification code is invalid or has expired. Retry again"}
	}

	if err := s.users.VerifyPhone(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := s.codes.Delete(ctx, codeKindPhone, in.Value); err != nil {
		s.logger.Warn().Err(err).Msg("verification code not removed")
	}

	s.activities.Record(domain.NewActivity(in.UserID, "Phone Verification",
		"A phone verification was passed successfully", in.Source, nil))

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Phone verification was successful",
	}, nil
}
