package dtos

import "github.com/connecthire/connecthire-server/internal/models"

type DeveloperProfileRequest struct {
	UserID uint `json:"userId" binding:"required"`

	Name                 string   `json:"name"`
	Location             string   `json:"location"`
	PreferredJobLocation string   `json:"preferred_job_location"`
	Experience           string   `json:"experience"`
	Skills               []string `json:"skills"`
	ShortDescription     string   `json:"short_description"`
	PhotoURL             string   `json:"photo_url"`
	ResumeURL            string   `json:"resume_url"`
	PortfolioURL         string   `json:"portfolio_url"`
}

type EmployerProfileRequest struct {
	UserID uint `json:"userId" binding:"required"`

	Name               string `json:"name"`
	CompanyName        string `json:"company_name"`
	CompanyLocation    string `json:"company_location"`
	CompanyLogoURL     string `json:"company_logo_url"`
	CompanyDescription string `json:"company_description"`
	Industry           string `json:"industry"`
	Website            string `json:"website"`
}

// DeveloperProfileView is a profile row with the user's role merged in, as
// returned by the fetch and auth-status endpoints.
type DeveloperProfileView struct {
	models.DeveloperProfile
	Role string `json:"role"`
}

type EmployerProfileView struct {
	models.EmployerProfile
	Role string `json:"role"`
}

// DeveloperSummary is the fixed projection attached to application listings.
type DeveloperSummary struct {
	Name             string   `json:"name"`
	PhotoURL         string   `json:"photo_url"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	ShortDescription string   `json:"short_description"`
}
