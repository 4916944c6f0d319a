package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

func transactionFixture(t *testing.T) (*stubTransactionRepo, *stubAccountRepo, *stubRecorder, *TransactionService, string) {
	t.Helper()

	accounts := newStubAccountRepo()
	accountSvc := NewAccountService(accounts, &stubFileRepo{}, &stubStore{}, &stubRecorder{}, zerolog.Nop())
	if _, err := accountSvc.Create(context.Background(), accountParams("Wallet")); err != nil {
		t.Fatalf("account setup failed: %v", err)
	}

	transactions := &stubTransactionRepo{}
	recorder := &stubRecorder{}
	svc := NewTransactionService(transactions, accounts, recorder, zerolog.Nop())
	return transactions, accounts, recorder, svc, accounts.created[0].AccountID
}

func transactionParams(accountID string) domain.NewTransactionParams {
	return domain.NewTransactionParams{
		UserID:    "user-1",
		AccountID: accountID,
		Type:      domain.TransactionDebit,
		Amount:    "42.75",
		Category:  "groceries",
		Source:    testSource(),
	}
}

func TestTransactionService_Create_Success(t *testing.T) {
	transactions, _, recorder, svc, accountID := transactionFixture(t)

	resp, err := svc.Create(context.Background(), transactionParams(accountID))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.Status)
	}

	if len(transactions.created) != 1 {
		t.Fatalf("expected one stored transaction")
	}
	tx := transactions.created[0]
	if tx.Amount != 42.75 || tx.Type != domain.TransactionDebit || tx.AccountID != accountID {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if len(recorder.records) != 1 || recorder.records[0].Title != "Transaction Create" {
		t.Fatalf("unexpected activities: %v", recorder.titles())
	}
}

func TestTransactionService_Create_UnknownAccount(t *testing.T) {
	transactions, _, _, svc, _ := transactionFixture(t)

	_, err := svc.Create(context.Background(), transactionParams("not-an-account"))
	if err == nil || err.Error() != "No account was found with the provided reference" {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions.created) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestTransactionService_Create_InvalidType(t *testing.T) {
	_, _, _, svc, accountID := transactionFixture(t)

	p := transactionParams(accountID)
	p.Type = "transfer"
	_, err := svc.Create(context.Background(), p)
	if err == nil || err.Error() != "Invalid transaction type. should be one of credit, debit" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionService_List(t *testing.T) {
	_, _, _, svc, accountID := transactionFixture(t)

	if _, err := svc.Create(context.Background(), transactionParams(accountID)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.List(context.Background(), "user-1", accountID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items, ok := resp.Items.([]*domain.TransactionDetails); !ok || len(items) != 1 {
		t.Fatalf("unexpected items: %#v", resp.Items)
	}
}

func TestTransactionService_List_MissingAccount(t *testing.T) {
	_, _, _, svc, _ := transactionFixture(t)

	_, err := svc.List(context.Background(), "user-1", "")
	var required *domain.PropertyRequiredError
	if !asError(err, &required) {
		t.Fatalf("unexpected error: %v", err)
	}
	if required.Property != "accountId" {
		t.Fatalf("unexpected property: %q", required.Property)
	}
}
