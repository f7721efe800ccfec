package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/habitflow/habitflow/internal/ctxkeys"
	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
	"github.com/habitflow/habitflow/internal/validation"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// List returns the user's habits, optionally filtered to those active
// on a given date (?active_on=YYYY-MM-DD).
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	activeOn := r.URL.Query().Get("active_on")
	if activeOn != "" {
		date, err := time.Parse(model.DateLayout, activeOn)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "active_on must be in YYYY-MM-DD format")
			return
		}

		habits, err := h.habitService.ActiveOn(user.ID, date)
		if err != nil {
			slog.Error("failed to list habits", "error", err, "user_id", user.ID)
			response.Error(w, http.StatusInternalServerError, "failed to load habits")
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"habits": habits})
		return
	}

	habits, err := h.habitService.Habits(user.ID)
	if err != nil {
		slog.Error("failed to list habits", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to load habits")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"habits": habits})
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.HabitInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	habit, err := h.habitService.Create(user.ID, input)
	if err != nil {
		if _, ok := err.(*validation.FieldError); ok {
			response.ValidationError(w, err)
			return
		}
		slog.Error("failed to create habit", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to create habit")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"habit": habit})
}

func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	habit, err := h.habitService.ByID(user.ID, habitID)
	if err != nil {
		if service.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "habit not found")
			return
		}
		slog.Error("failed to get habit", "error", err, "user_id", user.ID, "habit_id", habitID)
		response.Error(w, http.StatusInternalServerError, "failed to load habit")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"habit": habit})
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var update service.HabitUpdate
	err := json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	habit, err := h.habitService.Update(user.ID, habitID, update)
	if err != nil {
		if service.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "habit not found")
			return
		}
		if _, ok := err.(*validation.FieldError); ok {
			response.ValidationError(w, err)
			return
		}
		slog.Error("failed to update habit", "error", err, "user_id", user.ID, "habit_id", habitID)
		response.Error(w, http.StatusInternalServerError, "failed to update habit")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"habit": habit})
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	err := h.habitService.Delete(user.ID, habitID)
	if err != nil {
		if service.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "habit not found")
			return
		}
		slog.Error("failed to delete habit", "error", err, "user_id", user.ID, "habit_id", habitID)
		response.Error(w, http.StatusInternalServerError, "failed to delete habit")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}
