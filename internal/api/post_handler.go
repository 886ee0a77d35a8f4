package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/api/shared"
	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
)

// PostUseCase is the slice of the post service the handler needs.
type PostUseCase interface {
	CreatePost(ctx context.Context, title, content string, authorID uuid.UUID) (*domain.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	UpdatePost(ctx context.Context, id, requesterID uuid.UUID, title, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id, requesterID uuid.UUID) error
	ListPosts(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)
}

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService PostUseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postService PostUseCase, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		logger:      log.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /api/post.
// The author is the authenticated identity; a client-supplied author field
// would be ignored even if sent.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		log.Warn("identity not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.Title, req.Content, identity.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// GetPost handles GET /api/post/{id}. Public, no ownership check.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// UpdatePost handles PUT /api/post/{id}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		log.Warn("identity not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, identity.UserID, req.Title, req.Content)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// DeletePost handles DELETE /api/post/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		log.Warn("identity not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id, identity.UserID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPosts handles GET /api/posts.
// Returns only the requester's own posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		log.Warn("identity not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	posts, err := h.postService.ListPosts(r.Context(), identity.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postToResponse(post))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// postIDFromRequest extracts and parses the {id} URL parameter. On failure
// it writes the error response and returns false.
func postIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Post ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Post not found")
		return uuid.Nil, false
	}

	return id, true
}
