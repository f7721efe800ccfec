package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/habitflow/habitflow/internal/ctxkeys"
	"github.com/habitflow/habitflow/internal/response"
	"github.com/habitflow/habitflow/internal/service"
	"github.com/habitflow/habitflow/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			response.Error(w, http.StatusConflict, "email already registered")
			return
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			response.Error(w, http.StatusBadRequest, "invalid email address")
			return
		}
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			response.ValidationError(w, fieldErr)
			return
		}
		slog.Error("failed to register user", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	token, expiry, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.authService.SetJWTCookie(w, token, expiry)
	response.JSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, expiry, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		response.Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.authService.SetJWTCookie(w, token, expiry)
	response.JSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	response.JSON(w, http.StatusOK, map[string]any{"user": user})
}
