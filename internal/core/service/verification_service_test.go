package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

func newVerificationFixture() (*stubUserRepo, *stubCodeStore, *stubMailer, *stubSMS, *stubRecorder, *VerificationService) {
	users := newStubUserRepo()
	codes := newStubCodeStore()
	mailer := &stubMailer{}
	sms := &stubSMS{}
	recorder := &stubRecorder{}
	svc := NewVerificationService(codes, users, mailer, sms, recorder,
		secure.NewCipher("verification-test-key"), "https://app.test", zerolog.Nop())
	return users, codes, mailer, sms, recorder, svc
}

func TestVerificationService_EmailRoundTrip(t *testing.T) {
	users, codes, mailer, _, _, svc := newVerificationFixture()

	if err := svc.SendEmailCode(context.Background(), "user-1", "a@b.com", "Ama"); err != nil {
		t.Fatalf("SendEmailCode returned error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.sent))
	}

	link := mailer.sent[0].Variables["link"]
	prefix := "https://app.test/verification/email/"
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("unexpected link: %q", link)
	}

	resp, err := svc.VerifyEmail(context.Background(), strings.TrimPrefix(link, prefix))
	if err != nil {
		t.Fatalf("VerifyEmail returned error: %v", err)
	}
	if resp.Message != "Email verification successful. You may close this page now" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(users.emailOK) != 1 || users.emailOK[0] != "a@b.com" {
		t.Fatalf("expected email marked verified, got %v", users.emailOK)
	}
	// Codes are single use.
	if len(codes.values) != 0 {
		t.Fatalf("expected code removed, have %v", codes.values)
	}
}

func TestVerificationService_VerifyEmail_UnknownCode(t *testing.T) {
	_, _, _, _, _, svc := newVerificationFixture()

	// A well-formed ciphertext whose code was never issued (or has expired).
	sealed, err := secure.NewCipher("verification-test-key").Encrypt("123456")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	_, err = svc.VerifyEmail(context.Background(), sealed)
	if err == nil || err.Error() != "Invalid verification link. Check and retry" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerificationService_VerifyEmail_BadCiphertext(t *testing.T) {
	_, _, _, _, _, svc := newVerificationFixture()

	for _, code := range []string{"", "not-a-ciphertext"} {
		_, err := svc.VerifyEmail(context.Background(), code)
		if err == nil || err.Error() != "Verification link url is invalid" {
			t.Fatalf("code %q: unexpected error: %v", code, err)
		}
	}
}

func TestVerificationService_PhoneRoundTrip(t *testing.T) {
	users, codes, _, sms, recorder, svc := newVerificationFixture()
	users.byID["user-1"] = &domain.UserDetails{UserID: "user-1", Phone: "+233201234567"}

	if _, err := svc.SendPhoneCode(context.Background(), "user-1", testSource()); err != nil {
		t.Fatalf("SendPhoneCode returned error: %v", err)
	}
	if len(sms.sent) != 1 {
		t.Fatalf("expected one sms, got %d", len(sms.sent))
	}

	var code string
	for key := range codes.values {
		code = strings.TrimPrefix(key, "phone:")
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	if _, err := svc.VerifyPhone(context.Background(), ports.VerifyInput{UserID: "user-1", Value: code, Source: testSource()}); err != nil {
		t.Fatalf("VerifyPhone returned error: %v", err)
	}
	if len(users.phoneOK) != 1 {
		t.Fatalf("expected phone marked verified")
	}
	if titles := recorder.titles(); titles[len(titles)-1] != "Phone Verification" {
		t.Fatalf("unexpected activities: %v", titles)
	}
}

func TestVerificationService_VerifyPhone_WrongOwner(t *testing.T) {
	users, codes, _, _, _, svc := newVerificationFixture()
	users.byID["user-1"] = &domain.UserDetails{UserID: "user-1", Phone: "+233201234567"}
	_ = codes.Put(context.Background(), "phone", "654321", "someone-else", 0)

	_, err := svc.VerifyPhone(context.Background(), ports.VerifyInput{UserID: "user-1", Value: "654321", Source: testSource()})
	if err == nil || err.Error() != "Your verification code is invalid or has expired. Retry again" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerificationService_SendPhoneCode_NoPhone(t *testing.T) {
	users, _, _, _, _, svc := newVerificationFixture()
	users.byID["user-1"] = &domain.UserDetails{UserID: "user-1"}

	_, err := svc.SendPhoneCode(context.Background(), "user-1", testSource())
	if err == nil || err.Error() != "No phone number is set on your account. Add one to your profile first" {
		t.Fatalf("unexpected error: %v", err)
	}
}
