package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/models"
)

// DiagnosticsService backs the health and table-probe endpoints. Nothing
// here is part of the functional contract; it only proves the store is
// reachable and shows row samples.
type DiagnosticsService struct {
	db *gorm.DB
}

func NewDiagnosticsService(db *gorm.DB) *DiagnosticsService {
	return &DiagnosticsService{db: db}
}

func (s *DiagnosticsService) Ping(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("ping users table: %w", err)
	}
	return nil
}

type TableProbe struct {
	JobsCount      int
	EmployersCount int
}

func (s *DiagnosticsService) ProbeTables(ctx context.Context) (*TableProbe, error) {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Limit(1).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("jobs table: %w", err)
	}
	var employers []models.EmployerProfile
	if err := s.db.WithContext(ctx).Limit(1).Find(&employers).Error; err != nil {
		return nil, fmt.Errorf("employer profiles table: %w", err)
	}
	return &TableProbe{JobsCount: len(jobs), EmployersCount: len(employers)}, nil
}

func (s *DiagnosticsService) ProbeOTP(ctx context.Context) ([]models.OTPVerification, error) {
	var rows []models.OTPVerification
	if err := s.db.WithContext(ctx).Limit(5).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("otp_verification table: %w", err)
	}
	return rows, nil
}

// UserState dumps everything known about one email for debugging.
type UserState struct {
	User      *models.User
	Developer *models.DeveloperProfile
	Employer  *models.EmployerProfile
}

func (s *DiagnosticsService) UserState(ctx context.Context, email string) (*UserState, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	state := &UserState{User: &user}

	var dev models.DeveloperProfile
	if err := s.db.WithContext(ctx).First(&dev, "user_id = ?", user.ID).Error; err == nil {
		state.Developer = &dev
	}
	var emp models.EmployerProfile
	if err := s.db.WithContext(ctx).First(&emp, "user_id = ?", user.ID).Error; err == nil {
		state.Employer = &emp
	}
	return state, nil
}
