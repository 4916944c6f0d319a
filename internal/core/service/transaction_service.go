package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

// TransactionService implements account ledger entries. Every entry must
// reference an account owned by the caller.
type TransactionService struct {
	transactions ports.TransactionRepository
	accounts     ports.AccountRepository
	activities   ports.ActivityRecorder
	logger       zerolog.Logger
}

func NewTransactionService(
	transactions ports.TransactionRepository,
	accounts ports.AccountRepository,
	activities ports.ActivityRecorder,
	logger zerolog.Logger,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		accounts:     accounts,
		activities:   activities,
		logger:       logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, p domain.NewTransactionParams) (*ports.Response, error) {
	tx, err := domain.NewTransaction(p)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, tx.UserID(), tx.AccountID())
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.ResponseError{Message: "No account was found with the provided reference"}
	}

	created, err := s.transactions.Create(ctx, &domain.TransactionDetails{
		TransactionID: tx.ID(),
		UserID:        tx.UserID(),
		AccountID:     tx.AccountID(),
		Type:          tx.Type(),
		Amount:        tx.Amount(),
		Category:      tx.Category(),
		Note:          tx.Note(),
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(tx.UserID(), "Transaction Create",
		"A new account transaction has been recorded", tx.Source(), nil))
	s.logger.Info().Str("transaction_id", tx.ID()).Str("account_id", tx.AccountID()).Msg("transaction recorded")

	return &ports.Response{
		Status:  http.StatusCreated,
		Message: "Transaction recorded successfully",
		Item:    created,
	}, nil
}

func (s *TransactionService) List(ctx context.Context, userID, accountID string) (*ports.Response, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthorized()
	}
	if accountID == "" {
		return nil, &domain.PropertyRequiredError{Message: "Transaction account is required", Property: "accountId"}
	}

	account, err := s.accounts.FindByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.ResponseError{Message: "No account was found with the provided reference"}
	}

	entries, err := s.transactions.ListByAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Transactions query executed successfully",
		Items:   entries,
	}, nil
}
