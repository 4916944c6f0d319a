package service

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/api/metrics"
	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// AuthService implements registration and login.
type AuthService struct {
	users        ports.UserRepository
	sessions     ports.SessionRepository
	verification ports.VerificationService
	activities   ports.ActivityRecorder
	jwtSecret    string
	sessionTTL   time.Duration
	logger       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	verification ports.VerificationService,
	activities ports.ActivityRecorder,
	jwtSecret string,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		users:        users,
		sessions:     sessions,
		verification: verification,
		activities:   activities,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Register validates the input, rejects duplicate emails by hash, creates the
// identity and empty profile records and queues the verification mail.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Response, error) {
	user, err := domain.NewUser(domain.NewUserParams{
		FirstName:  in.FirstName,
		OtherNames: in.OtherNames,
		Email:      in.Email,
		Password:   in.Password,
		Phone:      in.Phone,
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByHash(ctx, user.Hash())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ResponseError{Message: "User account already exists. Try logging in"}
	}

	created, err := s.users.Create(ctx, &ports.CreateUserRecord{
		UserID:     user.ID(),
		FirstName:  user.FirstName(),
		OtherNames: user.OtherNames(),
		Email:      user.Email(),
		Phone:      user.Phone(),
		Password:   user.Password(),
		Salt:       user.Salt(),
		Hash:       user.Hash(),
	})
	if err != nil {
		return nil, err
	}

	// Verification mail is best effort: a provider outage must not lose the
	// registration.
	if err := s.verification.SendEmailCode(ctx, user.ID(), user.Email(), user.FirstName()); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID()).Msg("verification mail not sent")
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", user.ID()).Msg("user registered")

	return &ports.Response{
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Item:    created,
	}, nil
}

// LoginResult is the login envelope item.
type LoginResult struct {
	Token string              `json:"token"`
	User  *domain.UserDetails `json:"user"`
}

// Login checks the credentials, opens a session and returns a signed token
// naming it.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.Response, error) {
	if in.Email == "" {
		return nil, &domain.PropertyRequiredError{Message: "Email address is required", Property: "email"}
	}
	if in.Password == "" {
		return nil, &domain.PropertyRequiredError{Message: "Password is required", Property: "password"}
	}
	if !domain.IsEmail(in.Email) {
		return nil, &domain.ValidationError{Message: "A valid email address is required"}
	}
	if len(in.Password) < 8 {
		return nil, &domain.ValidationError{Message: "Password should be atleast 8 characters"}
	}

	creds, err := s.users.Credentials(ctx, ports.CredentialsQuery{Email: in.Email})
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, &domain.ResponseError{Message: "No user was found with the provided email. Check credentials and retry"}
	}

	if !secure.CheckPassword(in.Password, creds.Salt, creds.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, &domain.ResponseError{Message: "Invalid credentials. Check and retry"}
	}

	now := time.Now().UTC()
	session := &domain.AppSession{
		SessionID: secure.HMAC(s.jwtSecret, secure.Reference()),
		UserID:    creds.UserID,
		Platform:  "other",
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if in.Source != nil {
		if in.Source.Platform() != "" {
			session.Platform = in.Source.Platform()
		}
		session.PlatformDetails = map[string]string{
			"ip":       in.Source.IP(),
			"browser":  in.Source.Browser(),
			"referrer": in.Source.Referrer(),
			"platform": in.Source.Platform(),
			"version":  in.Source.Version(),
		}
	}

	sessionID, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(sessionID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, creds.UserID, true)
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(creds.UserID, "User Login",
		"A new login session was opened on this account", in.Source, nil))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "User logged in successfully",
		Item:    &LoginResult{Token: token, User: user},
	}, nil
}

// signToken wraps the session id in a signed bearer credential. The session
// row remains the source of truth: it is looked up, and revocable, on every
// request.
func (s *AuthService) signToken(sessionID string, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expires.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
