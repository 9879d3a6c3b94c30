package services_test

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/connecthire/connecthire-server/internal/database"
	"github.com/connecthire/connecthire-server/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see a different in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type sentMail struct {
	To      string
	Code    string
	Purpose models.Purpose
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendOTP(to, code string, purpose models.Purpose) error {
	m.sent = append(m.sent, sentMail{To: to, Code: code, Purpose: purpose})
	return m.err
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return &user
}

func createEmployer(t *testing.T, db *gorm.DB, userID uint, company string) *models.EmployerProfile {
	t.Helper()
	profile := models.EmployerProfile{
		UserID:          userID,
		Name:            "Recruiter",
		CompanyName:     company,
		CompanyLocation: "Berlin",
		CompanyLogoURL:  "https://logo.test/" + company,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create employer %s: %v", company, err)
	}
	return &profile
}

func createDeveloper(t *testing.T, db *gorm.DB, userID uint, name string, skills ...string) *models.DeveloperProfile {
	t.Helper()
	profile := models.DeveloperProfile{
		UserID:           userID,
		Name:             name,
		Experience:       "senior",
		Skills:           models.StringList(skills),
		ShortDescription: name + " writes software",
		PhotoURL:         "https://photo.test/" + name,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create developer %s: %v", name, err)
	}
	return &profile
}

func createJobAt(t *testing.T, db *gorm.DB, employerID uint, title string, createdAt time.Time, skills ...string) *models.Job {
	t.Helper()
	job := models.Job{
		EmployerID:     employerID,
		Title:          title,
		Location:       "Berlin, Germany",
		SkillsRequired: models.StringList(skills),
		CreatedAt:      createdAt,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("create job %s: %v", title, err)
	}
	return &job
}
