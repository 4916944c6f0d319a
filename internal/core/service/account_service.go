package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/api/metrics"
	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// AccountService implements transactional-account creation and queries.
type AccountService struct {
	accounts   ports.AccountRepository
	files      ports.FileRepository
	store      ports.Store
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewAccountService(
	accounts ports.AccountRepository,
	files ports.FileRepository,
	store ports.Store,
	activities ports.ActivityRecorder,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		accounts:   accounts,
		files:      files,
		store:      store,
		activities: activities,
		logger:     logger,
	}
}

// Create validates the account, rejects duplicates by hash, uploads any
// attached image and reference files, and persists the record. When the new
// account is primary, every other primary for the user is cleared first.
func (s *AccountService) Create(ctx context.Context, p domain.NewAccountParams) (*ports.Response, error) {
	account, err := domain.NewAccount(p)
	if err != nil {
		return nil, err
	}

	existing, err := s.accounts.FindByHash(ctx, account.Hash())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ResponseError{Message: "Transactional account already exists"}
	}

	var imageID string
	if img := account.Image(); img != nil {
		record, err := uploadAndRecord(ctx, s.store, s.files, account.UserID(), domain.StorageAccount,
			img, fmt.Sprintf("%s%d", account.Hash(), time.Now().UnixMilli()))
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, &domain.ResponseError{Message: "An error uploading your account image/icon"}
		}
		imageID = record.ID
	}

	// Partial batch failure leaves earlier uploads in place; there is no
	// rollback of already-stored files.
	var fileIDs []string
	for _, f := range account.Files() {
		record, err := uploadAndRecord(ctx, s.store, s.files, account.UserID(), domain.StorageAccount,
			f, secure.MD5(fmt.Sprintf("%s%d", account.Hash(), time.Now().UnixMilli())))
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, &domain.ResponseError{Message: "An error uploading one of your account reference files"}
		}
		fileIDs = append(fileIDs, record.ID)
	}

	if account.Primary() {
		if err := s.accounts.ClearPrimary(ctx, account.UserID()); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	created, err := s.accounts.Create(ctx, &domain.AccountDetails{
		AccountID:   account.ID(),
		Title:       account.Title(),
		Description: account.Description(),
		Currency:    account.Currency(),
		Type:        account.Type(),
		Balance:     account.Balance(),
		Primary:     account.Primary(),
		Hash:        account.Hash(),
		Metadata:    account.Metadata(),
		ImageID:     imageID,
		FileIDs:     fileIDs,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, account.UserID())
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(account.UserID(), "Account Create",
		"A new transactional account has been created", account.Source(), nil))
	metrics.AccountsCreatedTotal.WithLabelValues(string(account.Type())).Inc()
	s.logger.Info().Str("account_id", account.ID()).Str("user_id", account.UserID()).Msg("account created")

	return &ports.Response{
		Status:  http.StatusCreated,
		Message: "Account created successfully",
		Item:    s.withFiles(ctx, created),
	}, nil
}

// List returns all accounts owned by the user.
func (s *AccountService) List(ctx context.Context, userID string) (*ports.Response, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthorized()
	}

	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		s.withFiles(ctx, a)
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Accounts query executed successfully",
		Items:   accounts,
	}, nil
}

// Get returns a single account owned by the user.
func (s *AccountService) Get(ctx context.Context, userID, accountID string) (*ports.Response, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthorized()
	}

	account, err := s.accounts.FindByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.ResponseError{Message: "No account was found with the provided reference"}
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Account query executed successfully",
		Item:    s.withFiles(ctx, account),
	}, nil
}

// withFiles expands the image/file id references into metadata rows. Lookup
// failures only log; the account itself is still served.
func (s *AccountService) withFiles(ctx context.Context, account *domain.AccountDetails) *domain.AccountDetails {
	if account == nil {
		return nil
	}

	ids := account.FileIDs
	if account.ImageID != "" {
		ids = append([]string{account.ImageID}, ids...)
	}
	if len(ids) == 0 {
		return account
	}

	records, err := s.files.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Str("account_id", account.AccountID).Msg("file expansion failed")
		return account
	}

	byID := make(map[string]*domain.FileDetails, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	if account.ImageID != "" {
		account.Image = byID[account.ImageID]
	}
	for _, id := range account.FileIDs {
		if f := byID[id]; f != nil {
			account.Files = append(account.Files, f)
		}
	}
	return account
}
