package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/connecthire/connecthire-server/internal/config"
	"github.com/connecthire/connecthire-server/internal/database"
	"github.com/connecthire/connecthire-server/internal/handlers"
	"github.com/connecthire/connecthire-server/internal/observability/logging"
	"github.com/connecthire/connecthire-server/internal/services"
)

func main() {
	// 1. Environment
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "connecthire",
		Environment: cfg.Environment,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connect", "error", err)
		os.Exit(1)
	}

	// 3. Core services
	mailer := services.NewSMTPMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
		cfg.SMTPFromName, cfg.SMTPFromEmail,
	)
	otpService := services.NewOTPService(db, mailer, cfg.OTPTTL, cfg.Production())
	profileService := services.NewProfileService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	skillService := services.NewSkillService(db)
	diagnosticsService := services.NewDiagnosticsService(db)

	// 4. Handlers and routes
	r := handlers.NewRouter(
		handlers.NewAuthHandler(otpService, profileService),
		handlers.NewProfileHandler(profileService),
		handlers.NewJobHandler(jobService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewSkillHandler(skillService),
		handlers.NewDebugHandler(diagnosticsService),
	)

	logger.Info("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
