package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusmind/campusmind-api/internal/middleware"
	"github.com/campusmind/campusmind-api/internal/pkg/response"
	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		default:
			log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, result)
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case ErrUserBanned:
			response.Forbidden(w, "Your account has been banned")
		default:
			log.Error().Err(err).Msg("failed to login user")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Refresh handles POST /auth/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case ErrInvalidRefreshToken, ErrRefreshTokenRequired, ErrUserNotFound:
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			log.Error().Err(err).Msg("failed to refresh tokens")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	// Body is optional for logout; a missing token is a no-op
	_ = response.DecodeJSON(r.Body, &req)

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		log.Error().Err(err).Msg("failed to logout user")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}
