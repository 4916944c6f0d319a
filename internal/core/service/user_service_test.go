package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

func newUserFixture() (*stubUserRepo, *stubProfileRepo, *stubRecorder, *UserService) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	recorder := &stubRecorder{}
	svc := NewUserService(users, profiles, recorder, zerolog.Nop())
	return users, profiles, recorder, svc
}

func TestUserService_Details(t *testing.T) {
	users, _, recorder, svc := newUserFixture()
	users.byID["user-1"] = &domain.UserDetails{UserID: "user-1", Email: "a@b.com"}

	resp, err := svc.Details(context.Background(), ports.DetailsInput{UserID: "user-1", Source: testSource()})
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if resp.Item.(*domain.UserDetails).Email != "a@b.com" {
		t.Fatalf("unexpected item: %+v", resp.Item)
	}
	if len(recorder.records) != 1 || recorder.records[0].Title != "Account details" {
		t.Fatalf("unexpected activities: %v", recorder.titles())
	}
}

func TestUserService_VerifyPassword(t *testing.T) {
	users, _, recorder, svc := newUserFixture()

	salt := secure.Salt(22)
	hash, err := secure.HashPassword("Sup3rSecret", salt)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	users.creds["user-1"] = &domain.Credentials{UserID: "user-1", Password: hash, Salt: salt}

	if _, err := svc.VerifyPassword(context.Background(), ports.VerifyInput{
		UserID: "user-1", Value: "Sup3rSecret", Source: testSource(),
	}); err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}

	_, err = svc.VerifyPassword(context.Background(), ports.VerifyInput{
		UserID: "user-1", Value: "WrongPass1", Source: testSource(),
	})
	if err == nil || err.Error() != "Invalid password. Check and retry" {
		t.Fatalf("unexpected error: %v", err)
	}

	titles := recorder.titles()
	if len(titles) != 2 || titles[0] != "Password verification passed" || titles[1] != "Password verification failed" {
		t.Fatalf("unexpected activities: %v", titles)
	}
}

func TestUserService_VerifyPinCode(t *testing.T) {
	_, profiles, _, svc := newUserFixture()
	profiles.profiles["user-1"] = &domain.ProfileDetails{UserID: "user-1", PinCode: "4321"}

	if _, err := svc.VerifyPinCode(context.Background(), ports.VerifyInput{
		UserID: "user-1", Value: "4321", Source: testSource(),
	}); err != nil {
		t.Fatalf("VerifyPinCode returned error: %v", err)
	}

	_, err := svc.VerifyPinCode(context.Background(), ports.VerifyInput{
		UserID: "user-1", Value: "0000", Source: testSource(),
	})
	if err == nil || err.Error() != "Pin code verification failed. Your pin code is invalid" {
		t.Fatalf("unexpected error: %v", err)
	}
}
