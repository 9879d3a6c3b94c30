package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

type JobFilter struct {
	Location string
	Skills   []string
	Limit    int
	Offset   int
}

// Create verifies the employer profile exists before inserting. The check
// and the insert are separate round-trips; the store declares no FK, so a
// profile deleted in between would slip through.
func (s *JobService) Create(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error) {
	var employer models.EmployerProfile
	err := s.db.WithContext(ctx).Select("id").First(&employer, "id = ?", req.EmployerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrInvalidEmployer
	}
	if err != nil {
		return nil, fmt.Errorf("lookup employer: %w", err)
	}

	job := models.Job{
		EmployerID:     req.EmployerID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		JobType:        req.JobType,
		SalaryRange:    req.SalaryRange,
		Experience:     req.Experience,
		SkillsRequired: models.StringList(req.SkillsRequired),
	}
	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &job, nil
}

// List returns one page of jobs, newest first, each enriched with its
// employer summary via a single batched second query.
func (s *JobService) List(ctx context.Context, f JobFilter) ([]dtos.JobView, error) {
	q := s.db.WithContext(ctx).Model(&models.Job{})

	if f.Location != "" {
		q = likeFold(q, "location", f.Location)
	}
	if len(f.Skills) > 0 {
		q = q.Where(skillsOverlap(s.db, "skills_required", f.Skills))
	}

	var jobs []models.Job
	if err := applyPage(q.Order("created_at DESC, id DESC"), f.Limit, f.Offset).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return s.attachEmployerSummaries(ctx, jobs)
}

// attachEmployerSummaries is the enrichment step: collect the distinct
// employer ids on the page, fetch their summaries in one query, merge by
// key. Jobs whose employer row is gone keep a null summary.
func (s *JobService) attachEmployerSummaries(ctx context.Context, jobs []models.Job) ([]dtos.JobView, error) {
	views := make([]dtos.JobView, len(jobs))
	if len(jobs) == 0 {
		return views, nil
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		if job.EmployerID != 0 && !seen[job.EmployerID] {
			seen[job.EmployerID] = true
			ids = append(ids, job.EmployerID)
		}
	}

	byID := make(map[uint]*dtos.EmployerSummary)
	if len(ids) > 0 {
		var employers []models.EmployerProfile
		err := s.db.WithContext(ctx).
			Select("id", "company_name", "company_location", "company_logo_url", "name").
			Find(&employers, "id IN ?", ids).Error
		if err != nil {
			return nil, fmt.Errorf("fetch employer summaries: %w", err)
		}
		for i := range employers {
			e := employers[i]
			byID[e.ID] = &dtos.EmployerSummary{
				ID:              e.ID,
				CompanyName:     e.CompanyName,
				CompanyLocation: e.CompanyLocation,
				CompanyLogoURL:  e.CompanyLogoURL,
				Name:            e.Name,
			}
		}
	}

	for i, job := range jobs {
		views[i] = dtos.JobView{Job: job, Employer: byID[job.EmployerID]}
	}
	return views, nil
}

// Get returns nil without error when the job does not exist. The employer
// summary is best-effort: a failed enrichment leaves it null rather than
// failing the fetch.
func (s *JobService) Get(ctx context.Context, id uint) (*dtos.JobDetailView, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch job: %w", err)
	}

	view := &dtos.JobDetailView{Job: job}
	if job.EmployerID != 0 {
		var employer models.EmployerProfile
		err := s.db.WithContext(ctx).
			Select("company_name", "company_location", "company_logo_url", "name", "company_description").
			First(&employer, "id = ?", job.EmployerID).Error
		if err == nil {
			view.Employer = &dtos.JobDetailSummary{
				CompanyName:        employer.CompanyName,
				CompanyLocation:    employer.CompanyLocation,
				CompanyLogoURL:     employer.CompanyLogoURL,
				Name:               employer.Name,
				CompanyDescription: employer.CompanyDescription,
			}
		}
	}
	return view, nil
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	return jobs, nil
}
