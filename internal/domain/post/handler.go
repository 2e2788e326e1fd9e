package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/middleware"
	"github.com/campusmind/campusmind-api/internal/pkg/response"
	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

// Handler handles forum post HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates post handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create creates a post
// POST /posts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePostRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	p, err := h.service.CreatePost(r.Context(), userID, &req)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, p)
}

// List lists the forum feed
// GET /posts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := &ListPostsFilter{
		Tag:    r.URL.Query().Get("tag"),
		Limit:  20,
		Offset: 0,
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	posts, total, err := h.service.ListPosts(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, posts, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Get returns one post
// GET /posts/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	p, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		if err == ErrPostNotFound {
			response.NotFound(w, "Post not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, p)
}

// Delete removes the caller's own post
// DELETE /posts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	if err := h.service.DeletePost(r.Context(), userID, postID); err != nil {
		switch err {
		case ErrPostNotFound:
			response.NotFound(w, "Post not found")
		case ErrNotAuthor:
			response.Forbidden(w, "Only the author can delete this post")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}
