package ports

import (
	"context"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

// RegisterInput is the raw registration request.
type RegisterInput struct {
	FirstName  string
	OtherNames string
	Email      string
	Password   string
	Phone      string
	Source     *domain.Source
}

// LoginInput is the raw login request.
type LoginInput struct {
	Email    string
	Password string
	Source   *domain.Source
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Response, error)
	Login(ctx context.Context, in LoginInput) (*Response, error)
}

// DetailsInput selects the expansions for a user-details fetch.
type DetailsInput struct {
	UserID  string
	Profile bool
	Source  *domain.Source
}

// VerifyInput is a generic authenticated secret re-check (password, pin,
// 2FA or SMS code depending on the operation).
type VerifyInput struct {
	UserID string
	Value  string
	Source *domain.Source
}

// UserService serves account details and credential re-checks.
type UserService interface {
	Details(ctx context.Context, in DetailsInput) (*Response, error)
	VerifyPassword(ctx context.Context, in VerifyInput) (*Response, error)
	VerifyPinCode(ctx context.Context, in VerifyInput) (*Response, error)
}

// TwoFaService implements the TOTP secret lifecycle.
type TwoFaService interface {
	Generate(ctx context.Context, userID string, source *domain.Source) (*Response, error)
	Verify(ctx context.Context, in VerifyInput) (*Response, error)
}

// VerificationService implements email and phone ownership verification.
type VerificationService interface {
	SendEmailCode(ctx context.Context, userID, email, firstName string) error
	VerifyEmail(ctx context.Context, code string) (*Response, error)
	SendPhoneCode(ctx context.Context, userID string, source *domain.Source) (*Response, error)
	VerifyPhone(ctx context.Context, in VerifyInput) (*Response, error)
}

// AccountService implements account creation and queries.
type AccountService interface {
	Create(ctx context.Context, p domain.NewAccountParams) (*Response, error)
	List(ctx context.Context, userID string) (*Response, error)
	Get(ctx context.Context, userID, accountID string) (*Response, error)
}

// ProfileService implements partial profile updates.
type ProfileService interface {
	Update(ctx context.Context, p domain.NewProfileParams) (*Response, error)
}

// GoalService implements savings-goal creation and listing.
type GoalService interface {
	Create(ctx context.Context, p domain.NewGoalParams) (*Response, error)
	List(ctx context.Context, userID string) (*Response, error)
}

// TransactionService implements ledger-entry creation and listing.
type TransactionService interface {
	Create(ctx context.Context, p domain.NewTransactionParams) (*Response, error)
	List(ctx context.Context, userID, accountID string) (*Response, error)
}
