package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/habitflow/habitflow/internal/ctxkeys"
	"github.com/habitflow/habitflow/internal/repository"
	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
	"github.com/habitflow/habitflow/internal/validation"
)

type CompletionHandler struct {
	completionService *service.CompletionService
}

func NewCompletionHandler(completionService *service.CompletionService) *CompletionHandler {
	return &CompletionHandler{completionService: completionService}
}

func (h *CompletionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	filter := repository.CompletionFilter{
		HabitID:   r.URL.Query().Get("habit_id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	completions, err := h.completionService.List(user.ID, filter)
	if err != nil {
		if _, ok := err.(*validation.FieldError); ok {
			response.ValidationError(w, err)
			return
		}
		slog.Error("failed to list completions", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to load completions")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"completions": completions})
}

type createCompletionRequest struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

func (h *CompletionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createCompletionRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.HabitID == "" {
		response.JSON(w, http.StatusBadRequest, map[string]any{"error": "habit_id is required", "field": "habit_id"})
		return
	}

	completion, err := h.completionService.Create(user.ID, req.HabitID, req.Date)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			response.Error(w, http.StatusBadRequest, "already completed")
			return
		}
		if service.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "habit not found")
			return
		}
		if _, ok := err.(*validation.FieldError); ok {
			response.ValidationError(w, err)
			return
		}
		slog.Error("failed to create completion", "error", err, "user_id", user.ID, "habit_id", req.HabitID)
		response.Error(w, http.StatusInternalServerError, "failed to create completion")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"completion": completion})
}

func (h *CompletionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	completionID := r.PathValue("id")

	deleted, err := h.completionService.Delete(user.ID, completionID)
	if err != nil {
		slog.Error("failed to delete completion", "error", err, "user_id", user.ID, "completion_id", completionID)
		response.Error(w, http.StatusInternalServerError, "failed to delete completion")
		return
	}
	if !deleted {
		response.Error(w, http.StatusNotFound, "completion not found")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}
