package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
)

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Create inserts a pending application unless the developer already applied
// to the job. The duplicate check and the insert are two round-trips with
// no unique constraint behind them, so two simultaneous submissions can
// both pass the check; that race is inherited from the store schema.
func (s *ApplicationService) Create(ctx context.Context, req dtos.ApplicationRequest) (*models.Application, error) {
	var existing models.Application
	err := s.db.WithContext(ctx).
		Select("id").
		First(&existing, "job_id = ? AND developer_id = ?", req.JobID, req.DeveloperID).Error
	if err == nil {
		return nil, models.ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	application := models.Application{
		JobID:       req.JobID,
		DeveloperID: req.DeveloperID,
		CoverLetter: req.CoverLetter,
		Status:      models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&application).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &application, nil
}

// ListByJob returns a job's applications with each developer's summary.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID uint) ([]dtos.JobApplicationView, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}

	developers, err := s.developerSummaries(ctx, apps)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.JobApplicationView, len(apps))
	for i, app := range apps {
		views[i] = dtos.JobApplicationView{Application: app, Developer: developers[app.DeveloperID]}
	}
	return views, nil
}

// ListByDeveloper returns everything a developer has applied to, each with
// the job and the job's employer summary, newest application first.
func (s *ApplicationService) ListByDeveloper(ctx context.Context, developerID uint) ([]dtos.DeveloperApplicationView, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("developer_id = ?", developerID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list developer applications: %w", err)
	}

	jobs, err := s.appliedJobs(ctx, apps)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.DeveloperApplicationView, len(apps))
	for i, app := range apps {
		views[i] = dtos.DeveloperApplicationView{Application: app, Job: jobs[app.JobID]}
	}
	return views, nil
}

// ListByEmployer returns applications across all the employer's jobs with
// both the job and developer sides attached.
func (s *ApplicationService) ListByEmployer(ctx context.Context, employerID uint) ([]dtos.EmployerApplicationView, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.applied_at DESC, applications.id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list employer applications: %w", err)
	}

	jobs, err := s.appliedJobs(ctx, apps)
	if err != nil {
		return nil, err
	}
	developers, err := s.developerSummaries(ctx, apps)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.EmployerApplicationView, len(apps))
	for i, app := range apps {
		views[i] = dtos.EmployerApplicationView{
			Application: app,
			Job:         jobs[app.JobID],
			Developer:   developers[app.DeveloperID],
		}
	}
	return views, nil
}

// UpdateStatus sets a reviewed status and stamps reviewed_at. Unknown
// status strings are rejected at this boundary instead of being stored.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus, notes string) (*models.Application, error) {
	if !status.Valid() {
		return nil, models.ErrInvalidStatus
	}

	now := time.Now()
	res := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"notes":       notes,
			"reviewed_at": &now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update application status: %w", res.Error)
	}

	var application models.Application
	if err := s.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload application: %w", err)
	}
	return &application, nil
}

// developerSummaries batch-fetches the fixed developer projection for the
// distinct developer ids present in a page of applications.
func (s *ApplicationService) developerSummaries(ctx context.Context, apps []models.Application) (map[uint]*dtos.DeveloperSummary, error) {
	byID := make(map[uint]*dtos.DeveloperSummary)
	ids := collectIDs(apps, func(a models.Application) uint { return a.DeveloperID })
	if len(ids) == 0 {
		return byID, nil
	}

	var developers []models.DeveloperProfile
	err := s.db.WithContext(ctx).
		Select("id", "name", "photo_url", "skills", "experience", "short_description").
		Find(&developers, "id IN ?", ids).Error
	if err != nil {
		return nil, fmt.Errorf("fetch developer summaries: %w", err)
	}
	for i := range developers {
		d := developers[i]
		byID[d.ID] = &dtos.DeveloperSummary{
			Name:             d.Name,
			PhotoURL:         d.PhotoURL,
			Skills:           d.Skills,
			Experience:       d.Experience,
			ShortDescription: d.ShortDescription,
		}
	}
	return byID, nil
}

// appliedJobs batch-fetches the jobs referenced by a page of applications
// together with each job's employer summary.
func (s *ApplicationService) appliedJobs(ctx context.Context, apps []models.Application) (map[uint]*dtos.AppliedJobView, error) {
	byID := make(map[uint]*dtos.AppliedJobView)
	ids := collectIDs(apps, func(a models.Application) uint { return a.JobID })
	if len(ids) == 0 {
		return byID, nil
	}

	var jobs []models.Job
	if err := s.db.WithContext(ctx).Find(&jobs, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("fetch applied jobs: %w", err)
	}

	employerIDs := collectIDs(jobs, func(j models.Job) uint { return j.EmployerID })
	employers := make(map[uint]*dtos.EmployerSummary)
	if len(employerIDs) > 0 {
		var rows []models.EmployerProfile
		err := s.db.WithContext(ctx).
			Select("id", "company_name", "company_location", "company_logo_url", "name").
			Find(&rows, "id IN ?", employerIDs).Error
		if err != nil {
			return nil, fmt.Errorf("fetch employer summaries: %w", err)
		}
		for i := range rows {
			e := rows[i]
			employers[e.ID] = &dtos.EmployerSummary{
				CompanyName:     e.CompanyName,
				CompanyLocation: e.CompanyLocation,
				CompanyLogoURL:  e.CompanyLogoURL,
				Name:            e.Name,
			}
		}
	}

	for i := range jobs {
		job := jobs[i]
		byID[job.ID] = &dtos.AppliedJobView{Job: job, Employer: employers[job.EmployerID]}
	}
	return byID, nil
}

func collectIDs[T any](rows []T, key func(T) uint) []uint {
	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		id := key(row)
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
