package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/models"
	"github.com/connecthire/connecthire-server/internal/services"
)

func newOTPService(db *gorm.DB, mailer services.Mailer, production bool) *services.OTPService {
	return services.NewOTPService(db, mailer, 15*time.Minute, production)
}

func storedCode(t *testing.T, db *gorm.DB, email string) models.OTPVerification {
	t.Helper()
	var rec models.OTPVerification
	if err := db.Order("id DESC").First(&rec, "email = ?", email).Error; err != nil {
		t.Fatalf("load stored OTP: %v", err)
	}
	return rec
}

func TestSendStoresCodeAndMails(t *testing.T) {
	db := setupDB(t)
	mailer := &fakeMailer{}
	svc := newOTPService(db, mailer, false)

	result, err := svc.Send(context.Background(), "dev@example.com", models.PurposeSignup)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !result.EmailSent {
		t.Fatal("expected email to be reported sent")
	}
	if result.DevCode != "" {
		t.Fatalf("code must not be echoed on successful send, got %q", result.DevCode)
	}

	rec := storedCode(t, db, "dev@example.com")
	if len(rec.OTPCode) != 6 {
		t.Fatalf("expected 6-digit code, got %q", rec.OTPCode)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Code != rec.OTPCode {
		t.Fatalf("mailed code does not match stored code: %+v", mailer.sent)
	}
	if got := time.Until(rec.ExpiresAt); got < 14*time.Minute || got > 16*time.Minute {
		t.Fatalf("expiry not ~15 minutes out: %v", got)
	}
}

func TestSendInvalidPurpose(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)

	if _, err := svc.Send(context.Background(), "dev@example.com", "reset"); !errors.Is(err, models.ErrInvalidPurpose) {
		t.Fatalf("expected ErrInvalidPurpose, got %v", err)
	}
}

func TestSendMailFailureOutsideProduction(t *testing.T) {
	db := setupDB(t)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := newOTPService(db, mailer, false)

	result, err := svc.Send(context.Background(), "dev@example.com", models.PurposeSignin)
	if err != nil {
		t.Fatalf("send should not fail outside production: %v", err)
	}
	if result.EmailSent {
		t.Fatal("email was not sent")
	}
	if result.DevCode == "" {
		t.Fatal("expected plaintext code echo for development")
	}
	if rec := storedCode(t, db, "dev@example.com"); rec.OTPCode != result.DevCode {
		t.Fatalf("echoed code %q does not match stored %q", result.DevCode, rec.OTPCode)
	}
}

func TestSendMailFailureInProduction(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{err: errors.New("smtp down")}, true)

	if _, err := svc.Send(context.Background(), "dev@example.com", models.PurposeSignin); !errors.Is(err, models.ErrMailSend) {
		t.Fatalf("expected ErrMailSend, got %v", err)
	}
}

func TestVerifySucceedsExactlyOnce(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)
	ctx := context.Background()

	if _, err := svc.Send(ctx, "new@example.com", models.PurposeSignup); err != nil {
		t.Fatalf("send: %v", err)
	}
	code := storedCode(t, db, "new@example.com").OTPCode

	user, err := svc.Verify(ctx, "new@example.com", code, models.PurposeSignup)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Email != "new@example.com" || user.ID == 0 {
		t.Fatalf("unexpected user: %+v", user)
	}

	var userCount int64
	db.Model(&models.User{}).Where("email = ?", "new@example.com").Count(&userCount)
	if userCount != 1 {
		t.Fatalf("expected exactly one user row, got %d", userCount)
	}

	// The row is marked used; the same code must not verify twice.
	if _, err := svc.Verify(ctx, "new@example.com", code, models.PurposeSignup); !errors.Is(err, models.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode on reuse, got %v", err)
	}
}

func TestVerifyUnknownCode(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)
	ctx := context.Background()

	if _, err := svc.Send(ctx, "dev@example.com", models.PurposeSignup); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Verify(ctx, "dev@example.com", "000000", models.PurposeSignup); !errors.Is(err, models.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)

	rec := models.OTPVerification{
		Email:     "late@example.com",
		OTPCode:   "123456",
		Purpose:   models.PurposeSignup,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed OTP: %v", err)
	}

	if _, err := svc.Verify(context.Background(), "late@example.com", "123456", models.PurposeSignup); !errors.Is(err, models.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestVerifyScansPastExpiredNewestCandidate(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)
	now := time.Now()

	older := models.OTPVerification{
		Email:     "both@example.com",
		OTPCode:   "654321",
		Purpose:   models.PurposeSignin,
		ExpiresAt: now.Add(10 * time.Minute),
		CreatedAt: now.Add(-10 * time.Minute),
	}
	newer := models.OTPVerification{
		Email:     "both@example.com",
		OTPCode:   "654321",
		Purpose:   models.PurposeSignin,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-5 * time.Minute),
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed older OTP: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer OTP: %v", err)
	}
	createUser(t, db, "both@example.com")

	// The newest matching row is expired but an older one is still valid;
	// verification must find it.
	if _, err := svc.Verify(context.Background(), "both@example.com", "654321", models.PurposeSignin); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifySigninUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newOTPService(db, &fakeMailer{}, false)
	ctx := context.Background()

	if _, err := svc.Send(ctx, "ghost@example.com", models.PurposeSignin); err != nil {
		t.Fatalf("send: %v", err)
	}
	code := storedCode(t, db, "ghost@example.com").OTPCode

	if _, err := svc.Verify(ctx, "ghost@example.com", code, models.PurposeSignin); !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("signin must not create users, found %d", count)
	}
}
