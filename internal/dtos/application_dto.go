package dtos

import "github.com/connecthire/connecthire-server/internal/models"

type ApplicationRequest struct {
	JobID       uint   `json:"jobId" binding:"required"`
	DeveloperID uint   `json:"developerId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// AppliedJobView is the job attached to an application listing, itself
// carrying the employer summary.
type AppliedJobView struct {
	models.Job
	Employer *EmployerSummary `json:"employer_profiles"`
}

// JobApplicationView lists an application from the job's side: the
// applying developer's summary only.
type JobApplicationView struct {
	models.Application
	Developer *DeveloperSummary `json:"developer_profiles"`
}

// DeveloperApplicationView lists an application from the developer's side:
// the job and its employer.
type DeveloperApplicationView struct {
	models.Application
	Job *AppliedJobView `json:"jobs"`
}

// EmployerApplicationView carries both sides for the employer dashboard.
type EmployerApplicationView struct {
	models.Application
	Job       *AppliedJobView   `json:"jobs"`
	Developer *DeveloperSummary `json:"developer_profiles"`
}
