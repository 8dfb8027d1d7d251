package main

import (
	"github.com/abicrealty/voucher-api/internal/application/service"
	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/abicrealty/voucher-api/internal/infrastructure/database"
	"github.com/abicrealty/voucher-api/internal/infrastructure/repository"
	"github.com/abicrealty/voucher-api/internal/presentation/http/handler"
	"github.com/abicrealty/voucher-api/internal/presentation/http/routes"
	"github.com/abicrealty/voucher-api/pkg/email"
	"github.com/abicrealty/voucher-api/pkg/logger"
	"github.com/abicrealty/voucher-api/pkg/oauth"
	"github.com/abicrealty/voucher-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed the admin user when configured
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	cashVoucherRepo := repository.NewCashVoucherRepository(db)
	cashVoucherItemRepo := repository.NewCashVoucherItemRepository(db)
	chequeVoucherRepo := repository.NewChequeVoucherRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService, activityService)
	accountService := service.NewAccountService(accountRepo, activityService)
	cashVoucherService := service.NewCashVoucherService(cashVoucherRepo, cashVoucherItemRepo, accountRepo, activityService, cfg.Export)
	chequeVoucherService := service.NewChequeVoucherService(chequeVoucherRepo, accountRepo, activityService, cfg.Export)
	reportService := service.NewReportService(cashVoucherRepo, chequeVoucherRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Account:       handler.NewAccountHandler(accountService),
		CashVoucher:   handler.NewCashVoucherHandler(cashVoucherService),
		ChequeVoucher: handler.NewChequeVoucherHandler(chequeVoucherService),
		Activity:      handler.NewActivityHandler(activityService),
		Report:        handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
