package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

func asError(err error, target any) bool { return errors.As(err, target) }

func TestValidator_Passes(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		FirstName: "Ama",
		Email:     "a@b.com",
		Password:  "Sup3rSecret",
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidator_MissingFieldNamesProperty(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{Email: "a@b.com"})
	var required *domain.PropertyRequiredError
	if !asError(err, &required) {
		t.Fatalf("unexpected error: %v", err)
	}
	if required.Property != "password" {
		t.Fatalf("unexpected property: %q", required.Property)
	}
}

func TestValidator_ShapeFailures(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name    string
		req     any
		message string
	}{
		{"bad email", &loginRequest{Email: "not-an-email", Password: "Sup3rSecret"}, "email must be a valid email"},
		{"short password", &passwordVerifyRequest{Password: "short"}, "password must be at least 8 characters"},
		{"non-numeric pin", &pinVerifyRequest{Code: "12a4"}, "code must contain only numbers"},
		{"wrong pin length", &pinVerifyRequest{Code: "12345"}, "code must be exactly 4 characters"},
		{"bad transaction type", &transactionRequest{AccountID: "acc-1", Type: "transfer", Amount: "5"}, "type must be one of: credit debit"},
		{"bad deadline", &goalRequest{Title: "Fund", Amount: "10", Currency: "GHS", Deadline: "30-06-2027"}, "deadline must match the 2006-01-02 format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			var ve *domain.ValidationError
			if !asError(err, &ve) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(ve.Message, tc.message) {
				t.Fatalf("message %q does not mention %q", ve.Message, tc.message)
			}
		})
	}
}
