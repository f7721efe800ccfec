package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/habitflow/habitflow/internal/ctxkeys"
	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
	"github.com/habitflow/habitflow/internal/validation"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	settings, err := h.settingsService.Get(user.ID)
	if err != nil {
		slog.Error("failed to get settings", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"settings": settings})
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var update service.SettingsUpdate
	err := json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settingsService.Update(user.ID, update)
	if err != nil {
		if _, ok := err.(*validation.FieldError); ok {
			response.ValidationError(w, err)
			return
		}
		slog.Error("failed to update settings", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"settings": settings})
}
