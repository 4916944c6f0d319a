package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

func accountParams(title string) domain.NewAccountParams {
	return domain.NewAccountParams{
		UserID:      "user-1",
		Title:       title,
		AccountType: domain.AccountCash,
		Balance:     "150.50",
		Currency:    "USD",
		Source:      testSource(),
	}
}

func testUpload(name, contentType string) *domain.FileUpload {
	return &domain.FileUpload{
		Name:        name,
		ContentType: contentType,
		Size:        4,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("data")), nil
		},
	}
}

func TestAccountService_Create_Success(t *testing.T) {
	accounts := newStubAccountRepo()
	recorder := &stubRecorder{}
	svc := NewAccountService(accounts, &stubFileRepo{}, &stubStore{}, recorder, zerolog.Nop())

	resp, err := svc.Create(context.Background(), accountParams("Wallet"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.Status)
	}
	if len(accounts.created) != 1 {
		t.Fatalf("expected one stored account")
	}
	if accounts.created[0].Balance != 150.50 {
		t.Fatalf("unexpected balance: %v", accounts.created[0].Balance)
	}
	if len(recorder.records) == 0 || recorder.records[0].Title != "Account Create" {
		t.Fatalf("expected create activity, got %v", recorder.titles())
	}
}

func TestAccountService_Create_NegativeBalance(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := NewAccountService(accounts, &stubFileRepo{}, &stubStore{}, &stubRecorder{}, zerolog.Nop())

	p := accountParams("Wallet")
	p.Balance = "-5"
	_, err := svc.Create(context.Background(), p)
	if err == nil || err.Error() != "Balance cannot be negative" {
		t.Fatalf("unexpected error: %v", err)
	}
	// Validation happens before any persistence.
	if len(accounts.created) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestAccountService_Create_Duplicate(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := NewAccountService(accounts, &stubFileRepo{}, &stubStore{}, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), accountParams("Wallet")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), accountParams("Wallet"))
	if err == nil || err.Error() != "Transactional account already exists" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountService_Create_PrimaryClearsOthersFirst(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := NewAccountService(accounts, &stubFileRepo{}, &stubStore{}, &stubRecorder{}, zerolog.Nop())

	first := accountParams("Savings")
	first.Primary = true
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := accountParams("Checking")
	second.Primary = true
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	// Existing primaries are cleared before the new record lands, so at most
	// one account per user is ever primary.
	if len(accounts.ops) != 4 ||
		accounts.ops[0] != "clear_primary" || accounts.ops[1] != "create" ||
		accounts.ops[2] != "clear_primary" || accounts.ops[3] != "create" {
		t.Fatalf("unexpected op order: %v", accounts.ops)
	}

	primaries := 0
	for _, a := range accounts.created {
		if a.Primary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Fatalf("expected exactly one primary, got %d", primaries)
	}
}

func TestAccountService_Create_WithUploads(t *testing.T) {
	accounts := newStubAccountRepo()
	files := &stubFileRepo{}
	store := &stubStore{}
	svc := NewAccountService(accounts, files, store, &stubRecorder{}, zerolog.Nop())

	p := accountParams("Wallet")
	p.Image = testUpload("icon.png", "image/png")
	p.Files = []*domain.FileUpload{testUpload("statement.pdf", "application/pdf")}

	resp, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(files.files) != 2 {
		t.Fatalf("expected 2 metadata rows, got %d", len(files.files))
	}
	if len(store.puts) != 2 {
		t.Fatalf("expected 2 stored objects, got %d", len(store.puts))
	}

	account, ok := resp.Item.(*domain.AccountDetails)
	if !ok {
		t.Fatalf("unexpected item type %T", resp.Item)
	}
	if account.Image == nil || account.ImageID != account.Image.ID {
		t.Fatalf("expected image reference expanded")
	}
	if len(account.Files) != 1 {
		t.Fatalf("expected one reference file expanded")
	}
}

func TestAccountService_Create_StorageDisabledImage(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), &stubFileRepo{}, &stubStore{disabled: true}, &stubRecorder{}, zerolog.Nop())

	p := accountParams("Wallet")
	p.Image = testUpload("icon.png", "image/png")

	_, err := svc.Create(context.Background(), p)
	if err == nil || err.Error() != "An error uploading your account image/icon" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountService_Get_NotFound(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), &stubFileRepo{}, &stubStore{}, &stubRecorder{}, zerolog.Nop())

	_, err := svc.Get(context.Background(), "user-1", "missing")
	if err == nil || err.Error() != "No account was found with the provided reference" {
		t.Fatalf("unexpected error: %v", err)
	}
}
