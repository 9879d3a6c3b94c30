package dtos

import "github.com/connecthire/connecthire-server/internal/models"

type JobCreationRequest struct {
	EmployerID uint   `json:"employerId" binding:"required"`
	Title      string `json:"title" binding:"required"`

	// Optional fields
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	JobType        string   `json:"job_type"`
	SalaryRange    string   `json:"salary_range"`
	Experience     string   `json:"experience"`
	SkillsRequired []string `json:"skills_required"`
}

// EmployerSummary is the fixed projection attached to jobs and application
// listings; never the whole profile row.
type EmployerSummary struct {
	ID              uint   `json:"id,omitempty"`
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"company_location"`
	CompanyLogoURL  string `json:"company_logo_url"`
	Name            string `json:"name"`
}

// JobDetailSummary additionally carries the company description, matching
// the single-job view.
type JobDetailSummary struct {
	CompanyName        string `json:"company_name"`
	CompanyLocation    string `json:"company_location"`
	CompanyLogoURL     string `json:"company_logo_url"`
	Name               string `json:"name"`
	CompanyDescription string `json:"company_description"`
}

// JobView is a job row with its employer summary merged in, as returned by
// the jobs listing. The key matches the related table name the frontend
// already consumes.
type JobView struct {
	models.Job
	Employer *EmployerSummary `json:"employer_profiles"`
}

type JobDetailView struct {
	models.Job
	Employer *JobDetailSummary `json:"employer_profiles"`
}
