package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// UserService serves account details and credential re-checks.
type UserService struct {
	users      ports.UserRepository
	profiles   ports.ProfileRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	activities ports.ActivityRecorder,
	logger zerolog.Logger,
) *UserService {
	return &UserService{users: users, profiles: profiles, activities: activities, logger: logger}
}

// Details fetches the caller's identity record, expanding the profile when
// requested, and appends an audit record.
func (s *UserService) Details(ctx context.Context, in ports.DetailsInput) (*ports.Response, error) {
	if in.UserID == "" {
		return nil, domain.ErrNotAuthorized()
	}

	s.activities.Record(domain.NewActivity(in.UserID, "Account details",
		"User account details was requested", in.Source, nil))

	user, err := s.users.FindByID(ctx, in.UserID, in.Profile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotAuthorized()
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "User query executed successfully",
		Item:    user,
	}, nil
}

// VerifyPassword re-checks the caller's password. Both outcomes append an
// audit record; failure is terminal for the request.
func (s *UserService) VerifyPassword(ctx context.Context, in ports.VerifyInput) (*ports.Response, error) {
	if in.UserID == "" {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}
	if in.Value == "" {
		return nil, &domain.PropertyRequiredError{Message: "Password is required", Property: "password"}
	}
	if len(in.Value) < 8 {
		return nil, &domain.ValidationError{Message: "Password should be at least 8 characters"}
	}

	creds, err := s.users.Credentials(ctx, ports.CredentialsQuery{UserID: in.UserID})
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}

	if !secure.CheckPassword(in.Value, creds.Salt, creds.Password) {
		s.activities.Record(domain.NewActivity(in.UserID, "Password verification failed",
			"A password verification was attempted on this account but failed.", in.Source, nil))
		return nil, &domain.ResponseError{Message: "Invalid password. Check and retry"}
	}

	s.activities.Record(domain.NewActivity(in.UserID, "Password verification passed",
		"A password verification was attempted on this account and was successful.", in.Source, nil))

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Password verification was successful",
		Item:    map[string]bool{"status": true},
	}, nil
}

// VerifyPinCode re-checks the caller's transactional pin.
func (s *UserService) VerifyPinCode(ctx context.Context, in ports.VerifyInput) (*ports.Response, error) {
	if in.UserID == "" {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}
	if in.Value == "" {
		return nil, &domain.PropertyRequiredError{Message: "Pin code is required", Property: "code"}
	}
	for _, r := range in.Value {
		if r < '0' || r > '9' {
			return nil, &domain.ValidationError{Message: "Invalid pin code. only numbers are allowed"}
		}
	}

	profile, err := s.profiles.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &domain.PermissionError{Message: "You are not authorized to access this resource"}
	}

	if profile.PinCode == "" || profile.PinCode != in.Value {
		s.activities.Record(domain.NewActivity(in.UserID, "Pincode verification failed",
			"A pin code verification was attempted on this account but failed.", in.Source,
			map[string]string{"code": in.Value}))
		return nil, &domain.ResponseError{Message: "Pin code verification failed. Your pin code is invalid"}
	}

	s.activities.Record(domain.NewActivity(in.UserID, "Pin code verification passed",
		"A pin code verification was attempted on this account and was successful.", in.Source, nil))

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Pin code verification was successful",
		Item:    map[string]bool{"status": true},
	}, nil
}
