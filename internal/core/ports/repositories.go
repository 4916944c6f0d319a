package ports

import (
	"context"
	"time"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

// CreateUserRecord is the persistence payload for a registration. The
// repository creates the identity row and an empty profile row together.
type CreateUserRecord struct {
	UserID     string
	FirstName  string
	OtherNames string
	Email      string
	Phone      string
	Password   string
	Salt       string
	Hash       string
}

// CredentialsQuery selects the credential projection by email or user id.
type CredentialsQuery struct {
	Email  string
	UserID string
}

// UserRepository persists identity records. Lookups return (nil, nil) when no
// record matches; errors are reserved for storage failures.
type UserRepository interface {
	Create(ctx context.Context, rec *CreateUserRecord) (*domain.UserDetails, error)
	FindByHash(ctx context.Context, hash string) (*domain.UserDetails, error)
	FindByID(ctx context.Context, userID string, withProfile bool) (*domain.UserDetails, error)
	Credentials(ctx context.Context, q CredentialsQuery) (*domain.Credentials, error)
	VerifyEmail(ctx context.Context, email string) error
	VerifyPhone(ctx context.Context, userID string) error
}

// ProfileRepository persists the extended user attributes.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.ProfileDetails, error)
	Update(ctx context.Context, update *domain.ProfileUpdate) (*domain.ProfileDetails, error)
	SetTwoFaSecret(ctx context.Context, userID, secret string) error
}

// AccountRepository persists transactional accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.AccountDetails, userID string) (*domain.AccountDetails, error)
	FindByHash(ctx context.Context, hash string) (*domain.AccountDetails, error)
	FindByID(ctx context.Context, userID, accountID string) (*domain.AccountDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.AccountDetails, error)
	ClearPrimary(ctx context.Context, userID string) error
}

// SessionRepository persists bearer sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.AppSession) (string, error)
	Find(ctx context.Context, sessionID string) (*domain.AppSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// ActivityRepository appends audit records.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
}

// FileRepository persists upload metadata rows.
type FileRepository interface {
	Create(ctx context.Context, file *domain.FileDetails) (*domain.FileDetails, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.FileDetails, error)
}

// GoalRepository persists savings goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.GoalDetails) (*domain.GoalDetails, error)
	FindByHash(ctx context.Context, hash string) (*domain.GoalDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.GoalDetails, error)
}

// TransactionRepository persists account ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.TransactionDetails) (*domain.TransactionDetails, error)
	ListByAccount(ctx context.Context, userID, accountID string) ([]*domain.TransactionDetails, error)
}

// CodeStore keeps short-lived verification codes. Get returns ("", nil) when
// the code is unknown or expired.
type CodeStore interface {
	Put(ctx context.Context, kind, code, value string, ttl time.Duration) error
	Get(ctx context.Context, kind, code string) (string, error)
	Delete(ctx context.Context, kind, code string) error
}
