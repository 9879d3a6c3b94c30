package models

import (
	"time"
)

// Role is assigned once, when the user submits their first profile.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleEmployer  Role = "employer"
)

// Purpose selects the OTP flow: account creation vs sign-in.
type Purpose string

const (
	PurposeSignup Purpose = "signup"
	PurposeSignin Purpose = "signin"
)

func (p Purpose) Valid() bool {
	return p == PurposeSignup || p == PurposeSignin
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Role  Role   `gorm:"type:varchar(20)" json:"role,omitempty"`
}

type OTPVerification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email     string    `gorm:"index;not null" json:"email"`
	OTPCode   string    `gorm:"column:otp_code;not null" json:"otp_code"`
	Purpose   Purpose   `gorm:"type:varchar(20);not null" json:"purpose"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"not null;default:false" json:"is_used"`
}

func (OTPVerification) TableName() string { return "otp_verification" }

type DeveloperProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Name                 string     `json:"name"`
	Location             string     `json:"location"`
	PreferredJobLocation string     `json:"preferred_job_location"`
	Experience           string     `json:"experience"`
	Skills               StringList `gorm:"type:text" json:"skills"`
	ShortDescription     string     `gorm:"type:text" json:"short_description"`
	PhotoURL             string     `json:"photo_url"`
	ResumeURL            string     `json:"resume_url"`
	PortfolioURL         string     `json:"portfolio_url"`
}

type EmployerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Name is the contact person, not the company.
	Name               string `json:"name"`
	CompanyName        string `json:"company_name"`
	CompanyLocation    string `json:"company_location"`
	CompanyLogoURL     string `json:"company_logo_url"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	Industry           string `json:"industry"`
	Website            string `json:"website"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployerID uint `gorm:"index;not null" json:"employer_id"`

	Title          string     `gorm:"not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Location       string     `json:"location"`
	JobType        string     `json:"job_type"`
	SalaryRange    string     `json:"salary_range"`
	Experience     string     `json:"experience"`
	SkillsRequired StringList `gorm:"type:text" json:"skills_required"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobID       uint `gorm:"index;not null" json:"job_id"`
	DeveloperID uint `gorm:"index;not null" json:"developer_id"`

	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes"`
	ReviewedAt  *time.Time        `json:"reviewed_at"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`
}

// Skill is static reference data; this service only reads it.
type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `gorm:"index" json:"category"`
}
