package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrasyah/preferensi-api/internal/domain"
	"github.com/andrasyah/preferensi-api/internal/service"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a registration request.
// POST /register
// Request:  {"email":"...","name":"...","password":"..."}
// Response: 201 {"success":true,"message":"User Created"}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if _, err := h.auth.Register(r.Context(), req.Email, req.Name, req.Password); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeResult(w, http.StatusConflict, false, "Email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeResult(w, http.StatusUnprocessableEntity, false, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeResult(w, http.StatusInternalServerError, false, "Error adding user")
		return
	}

	writeResult(w, http.StatusCreated, true, "User Created")
}

// HandleLogin processes a login request.
// POST /login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"success":true,"message":"Login Successful","loginResult":{...}}
//
// Unknown email and wrong password produce byte-identical 401
// responses so the two cases cannot be told apart.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			slog.Info("login rejected", "email", req.Email)
			writeResult(w, http.StatusUnauthorized, false, "Invalid Credentials")
			return
		}
		slog.Error("login user", "error", err)
		writeResult(w, http.StatusInternalServerError, false, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login Successful",
		"loginResult": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"token": token,
		},
	})
}
