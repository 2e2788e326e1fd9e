package wellness

import (
	"net/http"
	"strconv"
	"time"

	"github.com/campusmind/campusmind-api/internal/middleware"
	"github.com/campusmind/campusmind-api/internal/pkg/response"
	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

// Handler handles wellness HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates wellness handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RecordMood records a mood entry
// POST /wellness/mood
func (h *Handler) RecordMood(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecordMoodRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	entry, err := h.service.RecordMood(r.Context(), userID, &req)
	if err != nil {
		if err == ErrScoreOutOfRange {
			response.ValidationError(w, map[string]string{"score": "Value must be between 1 and 5"})
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, entry)
}

// RecordStress records a stress entry
// POST /wellness/stress
func (h *Handler) RecordStress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecordStressRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	entry, err := h.service.RecordStress(r.Context(), userID, &req)
	if err != nil {
		if err == ErrScoreOutOfRange {
			response.ValidationError(w, map[string]string{"level": "Value must be between 1 and 5"})
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, entry)
}

// RecordSleep records a sleep entry
// POST /wellness/sleep
func (h *Handler) RecordSleep(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecordSleepRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	entry, err := h.service.RecordSleep(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrScoreOutOfRange:
			response.ValidationError(w, map[string]string{"quality": "Value must be between 1 and 5"})
		case ErrMissingBedTimes:
			response.ValidationError(w, map[string]string{"bed_time": "Bed and wake times are required"})
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, entry)
}

// RecordSocial records a social connection entry
// POST /wellness/social
func (h *Handler) RecordSocial(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecordSocialRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	entry, err := h.service.RecordSocial(r.Context(), userID, &req)
	if err != nil {
		if err == ErrScoreOutOfRange {
			response.ValidationError(w, map[string]string{"connection_quality": "Value must be between 1 and 5"})
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, entry)
}

// GetInsights returns aggregated insights
// GET /wellness/insights?days=30
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	insights, err := h.service.GetInsights(r.Context(), userID, windowFromQuery(r))
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, insights)
}

// MoodHistory lists the caller's mood entries
// GET /wellness/mood?days=30
func (h *Handler) MoodHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	entries, err := h.service.ListMoodHistory(r.Context(), userID, windowFromQuery(r))
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, entries)
}

// StressHistory lists the caller's stress entries
// GET /wellness/stress?days=30
func (h *Handler) StressHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	entries, err := h.service.ListStressHistory(r.Context(), userID, windowFromQuery(r))
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, entries)
}

// windowFromQuery parses the optional trailing-days window.
// Absent or invalid "days" means all history.
func windowFromQuery(r *http.Request) InsightsWindow {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		return InsightsWindow{}
	}
	return InsightsWindow{Since: time.Now().AddDate(0, 0, -days)}
}
