package services

import (
	"strings"
	"testing"

	"github.com/connecthire/connecthire-server/internal/models"
)

func TestOTPEmailSignup(t *testing.T) {
	subject, body := otpEmail("482913", models.PurposeSignup)
	if subject != "Welcome to ConnectHire - Verify Your Email" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "482913") {
		t.Fatal("body does not carry the code")
	}
	if !strings.Contains(body, "complete your registration") {
		t.Fatal("body missing signup intro")
	}
}

func TestOTPEmailSignin(t *testing.T) {
	subject, body := otpEmail("100000", models.PurposeSignin)
	if subject != "ConnectHire - Sign In Verification" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "sign in to your account") {
		t.Fatal("body missing signin intro")
	}
}
