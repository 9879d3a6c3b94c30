package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
	"github.com/connecthire/connecthire-server/internal/services"
)

func TestCreateApplicationRejectsDuplicate(t *testing.T) {
	db := setupDB(t)
	svc := services.NewApplicationService(db)
	ctx := context.Background()

	employer := createEmployer(t, db, 1, "Acme")
	job := createJobAt(t, db, employer.ID, "Gopher", time.Now())
	developer := createDeveloper(t, db, 2, "Ada", "go")

	first, err := svc.Create(ctx, dtos.ApplicationRequest{JobID: job.ID, DeveloperID: developer.ID, CoverLetter: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != models.StatusPending {
		t.Fatalf("new application must be pending, got %q", first.Status)
	}

	if _, err := svc.Create(ctx, dtos.ApplicationRequest{JobID: job.ID, DeveloperID: developer.ID}); !errors.Is(err, models.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one application row, got %d", count)
	}
}

func TestListApplicationsByJob(t *testing.T) {
	db := setupDB(t)
	svc := services.NewApplicationService(db)
	ctx := context.Background()

	employer := createEmployer(t, db, 1, "Acme")
	job := createJobAt(t, db, employer.ID, "Gopher", time.Now())
	ada := createDeveloper(t, db, 2, "Ada", "go", "sql")
	grace := createDeveloper(t, db, 3, "Grace", "cobol")

	for _, dev := range []*models.DeveloperProfile{ada, grace} {
		if _, err := svc.Create(ctx, dtos.ApplicationRequest{JobID: job.ID, DeveloperID: dev.ID}); err != nil {
			t.Fatalf("apply %s: %v", dev.Name, err)
		}
	}

	apps, err := svc.ListByJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	for _, app := range apps {
		if app.Developer == nil {
			t.Fatalf("application %d missing developer summary", app.ID)
		}
	}
	byName := map[string]bool{apps[0].Developer.Name: true, apps[1].Developer.Name: true}
	if !byName["Ada"] || !byName["Grace"] {
		t.Fatalf("wrong developer summaries: %+v", byName)
	}
}

func TestListApplicationsByDeveloper(t *testing.T) {
	db := setupDB(t)
	svc := services.NewApplicationService(db)
	ctx := context.Background()
	now := time.Now()

	acme := createEmployer(t, db, 1, "Acme")
	globex := createEmployer(t, db, 2, "Globex")
	first := createJobAt(t, db, acme.ID, "First", now.Add(-time.Hour))
	second := createJobAt(t, db, globex.ID, "Second", now)
	dev := createDeveloper(t, db, 3, "Ada", "go")

	appOld := models.Application{JobID: first.ID, DeveloperID: dev.ID, Status: models.StatusPending, AppliedAt: now.Add(-time.Hour)}
	appNew := models.Application{JobID: second.ID, DeveloperID: dev.ID, Status: models.StatusPending, AppliedAt: now}
	if err := db.Create(&appOld).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&appNew).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	apps, err := svc.ListByDeveloper(ctx, dev.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	if apps[0].Job == nil || apps[0].Job.Title != "Second" {
		t.Fatalf("expected newest application first with job attached, got %+v", apps[0])
	}
	if apps[0].Job.Employer == nil || apps[0].Job.Employer.CompanyName != "Globex" {
		t.Fatalf("employer summary missing on applied job: %+v", apps[0].Job)
	}
}

func TestListApplicationsByEmployer(t *testing.T) {
	db := setupDB(t)
	svc := services.NewApplicationService(db)
	ctx := context.Background()
	now := time.Now()

	acme := createEmployer(t, db, 1, "Acme")
	globex := createEmployer(t, db, 2, "Globex")
	acmeJob := createJobAt(t, db, acme.ID, "Acme Gopher", now.Add(-time.Hour))
	globexJob := createJobAt(t, db, globex.ID, "Globex Gopher", now)
	dev := createDeveloper(t, db, 3, "Ada", "go")

	for _, job := range []*models.Job{acmeJob, globexJob} {
		if _, err := svc.Create(ctx, dtos.ApplicationRequest{JobID: job.ID, DeveloperID: dev.ID}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	apps, err := svc.ListByEmployer(ctx, acme.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected only Acme's application, got %d", len(apps))
	}
	app := apps[0]
	if app.Job == nil || app.Job.Title != "Acme Gopher" {
		t.Fatalf("wrong job attached: %+v", app.Job)
	}
	if app.Developer == nil || app.Developer.Name != "Ada" {
		t.Fatalf("developer summary missing: %+v", app.Developer)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	db := setupDB(t)
	svc := services.NewApplicationService(db)
	ctx := context.Background()

	employer := createEmployer(t, db, 1, "Acme")
	job := createJobAt(t, db, employer.ID, "Gopher", time.Now())
	dev := createDeveloper(t, db, 2, "Ada")
	app, err := svc.Create(ctx, dtos.ApplicationRequest{JobID: job.ID, DeveloperID: dev.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, app.ID, models.StatusAccepted, "great fit")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.StatusAccepted || updated.Notes != "great fit" {
		t.Fatalf("status not applied: %+v", updated)
	}
	if updated.ReviewedAt == nil {
		t.Fatal("reviewed_at not stamped")
	}

	if _, err := svc.UpdateStatus(ctx, app.ID, "archived", ""); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
