package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/habitflow/habitflow/internal/response"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	err := h.db.Ping()
	if err != nil {
		response.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
