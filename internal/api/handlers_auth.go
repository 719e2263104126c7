package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bluesmoth12/Blossom/internal/auth"
	"github.com/bluesmoth12/Blossom/internal/logger"
	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/internal/validation"
)

type credentialsRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register handles POST /api/auth/register. A fresh session is minted
// so registration doubles as login.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.Credentials(req.Username, req.Password); err != nil {
		ValidationError(w, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(w, "Failed to register", err)
		return
	}

	user, err := h.store.CreateUser(models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			Error(w, http.StatusBadRequest, "Username already exists")
			return
		}
		internalError(w, "Failed to register", err)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		internalError(w, "Failed to register", err)
		return
	}
	h.sessions.SetCookie(w, token)

	logger.Info("user registered", "user", user.ID)
	JSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		internalError(w, "Failed to log in", err)
		return
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		internalError(w, "Failed to log in", err)
		return
	}
	if !ok {
		Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		internalError(w, "Failed to log in", err)
		return
	}
	h.sessions.SetCookie(w, token)

	JSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CurrentUser handles GET /api/auth/current-user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(UserID(r.Context()))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		internalError(w, "Failed to fetch user", err)
		return
	}
	JSON(w, http.StatusOK, user)
}
