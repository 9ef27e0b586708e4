package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/adit/movie-catalog-api/internal/validation"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	authService *service.AuthService
	tokens      *service.TokenService
}

func NewAuthHandler(authService *service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisteredUser echoes the plaintext password in the immediate registration
// response. Known sensitive-data exposure kept for API compatibility; the
// password is stored hashed only.
type RegisteredUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message   string         `json:"message"`
	User      RegisteredUser `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expires_at"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.Check(req); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeJSON(w, http.StatusUnprocessableEntity, validation.Errors{
				"email": {"The email has already been taken."},
			})
			return
		}
		if errors.Is(err, domain.ErrTokenExpiry) {
			writeError(w, http.StatusInternalServerError, "Invalid expiration timestamp")
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User: RegisteredUser{
			Name:     result.User.Name,
			Email:    result.User.Email,
			Password: req.Password,
		},
		Token:     result.Token,
		ExpiresAt: h.tokens.FormatExpiry(result.ExpiresAt),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.Check(req); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if errors.Is(err, domain.ErrTokenExpiry) {
			writeError(w, http.StatusInternalServerError, "Invalid expiration timestamp")
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("failed to log in user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:   "User login successfully",
		Token:     result.Token,
		ExpiresAt: h.tokens.FormatExpiry(result.ExpiresAt),
	})
}
