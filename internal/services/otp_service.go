package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/models"
)

type OTPService struct {
	db         *gorm.DB
	mailer     Mailer
	ttl        time.Duration
	production bool
}

func NewOTPService(db *gorm.DB, mailer Mailer, ttl time.Duration, production bool) *OTPService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &OTPService{db: db, mailer: mailer, ttl: ttl, production: production}
}

// SendResult reports how an issued code left the building. Outside
// production a failed email still counts as success and the plaintext code
// is echoed back so development stays unblocked.
type SendResult struct {
	ExpiresAt time.Time
	EmailSent bool
	EmailErr  error
	DevCode   string
}

// Send stores a fresh 6-digit code and emails it. Prior unused codes for
// the same email and purpose stay live until they expire.
func (s *OTPService) Send(ctx context.Context, email string, purpose models.Purpose) (*SendResult, error) {
	if !purpose.Valid() {
		return nil, models.ErrInvalidPurpose
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generate OTP: %w", err)
	}

	record := models.OTPVerification{
		Email:     email,
		OTPCode:   code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("store OTP: %w", err)
	}

	result := &SendResult{ExpiresAt: record.ExpiresAt}
	if err := s.mailer.SendOTP(email, code, purpose); err != nil {
		if s.production {
			return nil, fmt.Errorf("%w: %v", models.ErrMailSend, err)
		}
		slog.Warn("OTP email failed, echoing code in response", "email", email, "error", err)
		result.EmailErr = err
		result.DevCode = code
		return result, nil
	}

	result.EmailSent = true
	return result, nil
}

// Verify consumes a code and resolves the account. All unused candidate
// rows are scanned newest-first; an expired newest code does not mask a
// still-valid older one.
func (s *OTPService) Verify(ctx context.Context, email, code string, purpose models.Purpose) (*models.User, error) {
	if !purpose.Valid() {
		return nil, models.ErrInvalidPurpose
	}

	var records []models.OTPVerification
	err := s.db.WithContext(ctx).
		Where("email = ? AND otp_code = ? AND purpose = ? AND is_used = ?", email, code, purpose, false).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("fetch OTP: %w", err)
	}
	if len(records) == 0 {
		return nil, models.ErrInvalidCode
	}

	now := time.Now()
	var match *models.OTPVerification
	for i := range records {
		if records[i].ExpiresAt.After(now) {
			match = &records[i]
			break
		}
	}
	if match == nil {
		return nil, models.ErrOTPExpired
	}

	if err := s.db.WithContext(ctx).
		Model(&models.OTPVerification{}).
		Where("id = ?", match.ID).
		Update("is_used", true).Error; err != nil {
		return nil, fmt.Errorf("mark OTP used: %w", err)
	}

	return s.resolveUser(ctx, email, purpose)
}

func (s *OTPService) resolveUser(ctx context.Context, email string, purpose models.Purpose) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound) && purpose == models.PurposeSignup:
		user = models.User{Email: email}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.ErrUserNotFound
	default:
		return nil, fmt.Errorf("lookup user: %w", err)
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
