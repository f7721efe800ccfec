package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
)

// CronHandler exposes the externally-triggered batch jobs.
type CronHandler struct {
	reminderService *service.ReminderService
	cronSecret      string
	isProduction    bool
}

func NewCronHandler(reminderService *service.ReminderService, cronSecret string, isProduction bool) *CronHandler {
	return &CronHandler{
		reminderService: reminderService,
		cronSecret:      cronSecret,
		isProduction:    isProduction,
	}
}

// Reminders runs the daily reminder sweep. Production requires the
// scheduler to present the shared secret; development allows manual
// triggering.
func (h *CronHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	if h.isProduction {
		if h.cronSecret == "" || r.Header.Get("Authorization") != "Bearer "+h.cronSecret {
			response.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
	}

	report, err := h.reminderService.Run(time.Now())
	if err != nil {
		slog.Error("reminder sweep failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "reminder sweep failed")
		return
	}

	response.JSON(w, http.StatusOK, report)
}
