package moderation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/domain/admin"
	"github.com/campusmind/campusmind-api/internal/middleware"
	"github.com/campusmind/campusmind-api/internal/pkg/response"
	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

// Handler handles moderation HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates moderation handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateReport files a new report
// POST /moderation/reports
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateReportRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	report, err := h.service.CreateReport(r.Context(), userID, &req)
	if err != nil {
		if err == ErrPostNotFound {
			response.NotFound(w, "Reported post not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, report)
}

// ListMyReports lists reports created by current user
// GET /moderation/reports/mine
func (h *Handler) ListMyReports(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reports, err := h.service.ListMyReports(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, reports)
}

// ListReports lists the moderation queue (admin only)
// GET /admin/reports?status=pending&limit=50&offset=0
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	filter := &ListReportsFilter{
		Limit:  50,
		Offset: 0,
	}

	if status := r.URL.Query().Get("status"); status != "" && status != "all" {
		filter.Status = ReportStatus(status)
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 200 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	reports, err := h.service.ListReports(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	total, err := h.service.CountReports(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, reports, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetReport returns one report (admin only)
// GET /admin/reports/{id}
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	report, err := h.service.GetReport(r.Context(), reportID)
	if err != nil {
		if err == ErrReportNotFound {
			response.NotFound(w, "Report not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, report)
}

// UpdateStatus transitions a report (admin only)
// PATCH /admin/reports/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adminID := admin.GetAdminID(r.Context())

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	var req UpdateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	found, err := h.service.UpdateStatus(r.Context(), reportID, req.Status, adminID, req.Resolution)
	if err != nil {
		if err == ErrInvalidReportStatus {
			response.BadRequest(w, "Invalid status")
		} else {
			response.InternalError(w)
		}
		return
	}
	if !found {
		response.NotFound(w, "Report not found")
		return
	}

	response.OK(w, map[string]string{"message": "Report updated successfully"})
}
