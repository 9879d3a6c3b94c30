package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// DeveloperFilter narrows developer listings. The two location fields match
// different columns: the profile browse endpoint searches the preferred job
// location, the developer search endpoint the current location.
type DeveloperFilter struct {
	PreferredLocation string
	Location          string
	Experience        string
	Skills            []string
	Limit             int
	Offset            int
}

type EmployerFilter struct {
	Location string
	Industry string
	Limit    int
	Offset   int
}

// UpsertDeveloper creates the profile on first submission and overwrites
// all provided fields thereafter, keyed on user_id. The first profile a
// user submits also fixes their role.
func (s *ProfileService) UpsertDeveloper(ctx context.Context, req dtos.DeveloperProfileRequest) (*models.DeveloperProfile, error) {
	var existing models.DeveloperProfile
	err := s.db.WithContext(ctx).First(&existing, "user_id = ?", req.UserID).Error

	switch {
	case err == nil:
		updates := map[string]any{
			"name":                   req.Name,
			"location":               req.Location,
			"preferred_job_location": req.PreferredJobLocation,
			"experience":             req.Experience,
			"skills":                 models.StringList(req.Skills),
			"short_description":      req.ShortDescription,
			"photo_url":              req.PhotoURL,
			"resume_url":             req.ResumeURL,
			"portfolio_url":          req.PortfolioURL,
		}
		if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update developer profile: %w", err)
		}
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		profile := models.DeveloperProfile{
			UserID:               req.UserID,
			Name:                 req.Name,
			Location:             req.Location,
			PreferredJobLocation: req.PreferredJobLocation,
			Experience:           req.Experience,
			Skills:               models.StringList(req.Skills),
			ShortDescription:     req.ShortDescription,
			PhotoURL:             req.PhotoURL,
			ResumeURL:            req.ResumeURL,
			PortfolioURL:         req.PortfolioURL,
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("create developer profile: %w", err)
		}
		s.assignRole(ctx, req.UserID, models.RoleDeveloper)
		return &profile, nil

	default:
		return nil, fmt.Errorf("lookup developer profile: %w", err)
	}
}

func (s *ProfileService) UpsertEmployer(ctx context.Context, req dtos.EmployerProfileRequest) (*models.EmployerProfile, error) {
	var existing models.EmployerProfile
	err := s.db.WithContext(ctx).First(&existing, "user_id = ?", req.UserID).Error

	switch {
	case err == nil:
		updates := map[string]any{
			"name":                req.Name,
			"company_name":        req.CompanyName,
			"company_location":    req.CompanyLocation,
			"company_logo_url":    req.CompanyLogoURL,
			"company_description": req.CompanyDescription,
			"industry":            req.Industry,
			"website":             req.Website,
		}
		if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update employer profile: %w", err)
		}
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		profile := models.EmployerProfile{
			UserID:             req.UserID,
			Name:               req.Name,
			CompanyName:        req.CompanyName,
			CompanyLocation:    req.CompanyLocation,
			CompanyLogoURL:     req.CompanyLogoURL,
			CompanyDescription: req.CompanyDescription,
			Industry:           req.Industry,
			Website:            req.Website,
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("create employer profile: %w", err)
		}
		s.assignRole(ctx, req.UserID, models.RoleEmployer)
		return &profile, nil

	default:
		return nil, fmt.Errorf("lookup employer profile: %w", err)
	}
}

// assignRole records the role on the user the first time a profile is
// created; a role already set is never overwritten. Best-effort: the
// profile write has already succeeded.
func (s *ProfileService) assignRole(ctx context.Context, userID uint, role models.Role) {
	s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND (role IS NULL OR role = '')", userID).
		Update("role", role)
}

// GetDeveloper returns nil without error when no profile exists.
func (s *ProfileService) GetDeveloper(ctx context.Context, userID uint) (*models.DeveloperProfile, error) {
	var profile models.DeveloperProfile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch developer profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) GetEmployer(ctx context.Context, userID uint) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch employer profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) ListDevelopers(ctx context.Context, f DeveloperFilter) ([]models.DeveloperProfile, error) {
	q := s.db.WithContext(ctx).Model(&models.DeveloperProfile{})

	if f.PreferredLocation != "" {
		q = likeFold(q, "preferred_job_location", f.PreferredLocation)
	}
	if f.Location != "" {
		q = likeFold(q, "location", f.Location)
	}
	if f.Experience != "" {
		q = q.Where("experience = ?", f.Experience)
	}
	if len(f.Skills) > 0 {
		q = q.Where(skillsOverlap(s.db, "skills", f.Skills))
	}

	var profiles []models.DeveloperProfile
	if err := applyPage(q.Order("created_at DESC, id DESC"), f.Limit, f.Offset).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list developer profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileService) ListEmployers(ctx context.Context, f EmployerFilter) ([]models.EmployerProfile, error) {
	q := s.db.WithContext(ctx).Model(&models.EmployerProfile{})

	if f.Location != "" {
		q = likeFold(q, "company_location", f.Location)
	}
	if f.Industry != "" {
		q = likeFold(q, "industry", f.Industry)
	}

	var profiles []models.EmployerProfile
	if err := applyPage(q.Order("created_at DESC, id DESC"), f.Limit, f.Offset).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list employer profiles: %w", err)
	}
	return profiles, nil
}

// AuthStatus is what GET /api/auth/status reports: whether the email maps
// to an account, and the profile for the user's assigned role. A user with
// an account but no profile yet is authenticated with a null profile.
type AuthStatus struct {
	Authenticated bool
	User          *models.User
	Role          models.Role
	Developer     *models.DeveloperProfile
	Employer      *models.EmployerProfile
}

func (s *ProfileService) Status(ctx context.Context, email string) (*AuthStatus, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AuthStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	status := &AuthStatus{Authenticated: true, User: &user, Role: user.Role}
	switch user.Role {
	case models.RoleDeveloper:
		if status.Developer, err = s.GetDeveloper(ctx, user.ID); err != nil {
			return nil, err
		}
	case models.RoleEmployer:
		if status.Employer, err = s.GetEmployer(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return status, nil
}
