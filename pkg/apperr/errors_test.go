package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusByKind(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
		code string
	}{
		{InvalidInput("", "bad"), http.StatusBadRequest, CodeValidationFailed},
		{InvalidInput(CodeInvalidAddress, "Invalid address"), http.StatusBadRequest, CodeInvalidAddress},
		{Unauthorized("no"), http.StatusUnauthorized, CodeInvalidToken},
		{NotFound("gone"), http.StatusNotFound, CodeNotFound},
		{DependencyUnavailable("Web3 not connected", nil), http.StatusInternalServerError, CodeWeb3Unavailable},
		{Internal("", "oops", nil), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		if tt.err.Status() != tt.want || tt.err.Code != tt.code {
			t.Errorf("%q: got %d %s, want %d %s", tt.err.Message, tt.err.Status(), tt.err.Code, tt.want, tt.code)
		}
	}
}

func TestFromAndWrapping(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	wrapped := fmt.Errorf("balance: %w", DependencyUnavailable("Web3 not connected", cause))

	appErr := From(wrapped)
	if appErr.Kind != KindDependencyUnavailable || appErr.Message != "Web3 not connected" {
		t.Fatalf("unexpected %+v", appErr)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("cause lost through Unwrap")
	}
	if !IsKind(wrapped, KindDependencyUnavailable) || IsKind(wrapped, KindNotFound) {
		t.Fatal("IsKind mismatch")
	}

	plain := From(errors.New("boom"))
	if plain.Kind != KindInternal || plain.Message != "boom" {
		t.Fatalf("unexpected plain conversion %+v", plain)
	}
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}

	if MissingField("amount").Message != "Missing required field: amount" {
		t.Fatal("unexpected missing field message")
	}
}
