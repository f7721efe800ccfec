package routes

import (
	"net/http"

	"github.com/habitflow/habitflow/internal/app"
	"github.com/habitflow/habitflow/internal/handler"
	"github.com/habitflow/habitflow/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	habit := handler.NewHabitHandler(app.HabitService)
	completion := handler.NewCompletionHandler(app.CompletionService)
	metrics := handler.NewMetricsHandler(app.MetricsService)
	settings := handler.NewSettingsHandler(app.SettingsService)
	cron := handler.NewCronHandler(app.ReminderService, app.Cfg.CronSecret, app.Cfg.IsProduction())
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Check)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))

	// Habits
	mux.HandleFunc("GET /api/habits", middleware.RequireAuth(habit.List))
	mux.HandleFunc("POST /api/habits", middleware.RequireAuth(habit.Create))
	mux.HandleFunc("GET /api/habits/{id}", middleware.RequireAuth(habit.Get))
	mux.HandleFunc("PUT /api/habits/{id}", middleware.RequireAuth(habit.Update))
	mux.HandleFunc("DELETE /api/habits/{id}", middleware.RequireAuth(habit.Delete))

	// Completions
	mux.HandleFunc("GET /api/completions", middleware.RequireAuth(completion.List))
	mux.HandleFunc("POST /api/completions", middleware.RequireAuth(completion.Create))
	mux.HandleFunc("DELETE /api/completions/{id}", middleware.RequireAuth(completion.Delete))

	// Metrics
	mux.HandleFunc("GET /api/metrics", middleware.RequireAuth(metrics.Get))

	// Settings
	mux.HandleFunc("GET /api/settings", middleware.RequireAuth(settings.Get))
	mux.HandleFunc("PUT /api/settings", middleware.RequireAuth(settings.Update))

	// Batch jobs (externally scheduled)
	mux.HandleFunc("POST /api/cron/reminders", cron.Reminders)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}
