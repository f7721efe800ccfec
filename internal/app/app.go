package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/habitflow/habitflow/internal/config"
	"github.com/habitflow/habitflow/internal/db"
	"github.com/habitflow/habitflow/internal/repository"
	"github.com/habitflow/habitflow/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	HabitService      *service.HabitService
	CompletionService *service.CompletionService
	MetricsService    *service.MetricsService
	SettingsService   *service.SettingsService
	EmailService      *service.EmailService
	ReminderService   *service.ReminderService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	completionRepository := repository.NewCompletionRepository(database)
	settingsRepository := repository.NewSettingsRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	habitService := service.NewHabitService(habitRepository)
	completionService := service.NewCompletionService(completionRepository, habitRepository)
	metricsService := service.NewMetricsService(habitRepository, completionRepository)
	settingsService := service.NewSettingsService(settingsRepository)
	reminderService := service.NewReminderService(
		settingsRepository,
		userRepository,
		habitRepository,
		completionRepository,
		emailService,
	)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		HabitService:      habitService,
		CompletionService: completionService,
		MetricsService:    metricsService,
		SettingsService:   settingsService,
		EmailService:      emailService,
		ReminderService:   reminderService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
