package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nghuy/gameledger/internal/api/middleware"
	"github.com/nghuy/gameledger/internal/api/request"
	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/services/auth"
)

// AuthHandler handles login and identity endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.authService.VerifyAndIssue(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponseFromSession(session))
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	id, _ := strconv.ParseInt(claims.Subject, 10, 64)
	response.JSON(w, http.StatusOK, response.User{
		ID:       id,
		Username: claims.Username,
		Role:     claims.Role,
	})
}
