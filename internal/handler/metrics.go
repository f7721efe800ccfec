package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/habitflow/habitflow/internal/ctxkeys"
	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
)

type MetricsHandler struct {
	metricsService *service.MetricsService
}

func NewMetricsHandler(metricsService *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// Get computes the dashboard metrics. ?today=YYYY-MM-DD overrides the
// server clock, which keeps the endpoint usable across timezones.
func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	today := r.URL.Query().Get("today")
	if today == "" {
		today = time.Now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, today); err != nil {
		response.Error(w, http.StatusBadRequest, "today must be in YYYY-MM-DD format")
		return
	}

	m, err := h.metricsService.Compute(user.ID, today)
	if err != nil {
		slog.Error("failed to compute metrics", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to compute metrics")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"metrics": m})
}
