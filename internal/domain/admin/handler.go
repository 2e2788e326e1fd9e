package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/pkg/response"
	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
	jwtSvc  *JWTService
}

// NewHandler creates admin handler
func NewHandler(service *Service, jwtSvc *JWTService) *Handler {
	return &Handler{
		service: service,
		jwtSvc:  jwtSvc,
	}
}

// --- Authentication ---

// Login handles POST /admin/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case ErrAdminInactive:
			response.Forbidden(w, "Account is inactive")
		case ErrAccountLocked:
			response.Locked(w, "Account temporarily locked, try again later")
		default:
			response.InternalError(w)
		}
		return
	}

	token, err := h.jwtSvc.GenerateToken(admin)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, &LoginResponse{
		AccessToken: token,
		Admin:       AdminResponseFromEntity(admin),
	})
}

// Me handles GET /admin/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	adminID := GetAdminID(r.Context())

	admin, err := h.service.GetAdminByID(r.Context(), adminID)
	if err != nil {
		response.NotFound(w, "Admin not found")
		return
	}

	response.OK(w, AdminResponseFromEntity(admin))
}

// --- Admin Management ---

// ListAdmins handles GET /admin/admins
func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.ListAdmins(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*AdminResponse, len(admins))
	for i, a := range admins {
		items[i] = AdminResponseFromEntity(a)
	}

	response.OK(w, items)
}

// CreateAdmin handles POST /admin/admins
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrEmailTaken:
			response.Conflict(w, "Email already in use")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, AdminResponseFromEntity(admin))
}

// UpdateAdmin handles PATCH /admin/admins/{id}
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid admin ID")
		return
	}

	var req UpdateAdminRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	actorID := GetAdminID(r.Context())
	admin, err := h.service.UpdateAdmin(r.Context(), actorID, targetID, &req)
	if err != nil {
		switch err {
		case ErrAdminNotFound:
			response.NotFound(w, "Admin not found")
		case ErrCannotManageRole:
			response.Forbidden(w, "Cannot manage admin with equal or higher role")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, AdminResponseFromEntity(admin))
}

// --- User Management ---

// AdminUserResponse represents a platform user in the admin panel
type AdminUserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	IsBanned     bool      `json:"is_banned"`
	LastActiveAt *string   `json:"last_active_at,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

func adminUserResponseFromEntity(u *user.User) *AdminUserResponse {
	resp := &AdminUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		IsBanned:    u.IsBanned,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastActiveAt.Valid {
		s := u.LastActiveAt.Time.Format(time.RFC3339)
		resp.LastActiveAt = &s
	}
	return resp
}

// ListUsers handles GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := UserListFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  20,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			filter.Limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			filter.Offset = v
		}
	}
	if b := r.URL.Query().Get("banned"); b == "true" || b == "false" {
		banned := b == "true"
		filter.Banned = &banned
	}

	users, total, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*AdminUserResponse, len(users))
	for i, u := range users {
		items[i] = adminUserResponseFromEntity(u)
	}

	response.WithMeta(w, items, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// BanUser handles POST /admin/users/{id}/ban
func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req BanUserRequest
	if r.ContentLength > 0 {
		if err := response.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
		if errs := validator.Validate(&req); errs != nil {
			response.ValidationError(w, errs)
			return
		}
	}

	adminID := GetAdminID(r.Context())
	if err := h.service.BanUser(r.Context(), adminID, userID, req.Reason); err != nil {
		switch err {
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]bool{"is_banned": true})
}

// UnbanUser handles POST /admin/users/{id}/unban
func (h *Handler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	adminID := GetAdminID(r.Context())
	if err := h.service.UnbanUser(r.Context(), adminID, userID); err != nil {
		switch err {
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]bool{"is_banned": false})
}

// --- Dashboard ---

// Stats handles GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}
