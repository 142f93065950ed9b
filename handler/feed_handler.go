package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/auth"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/service"
)

// ViewCache is the path-keyed cache consulted on read endpoints. Only the
// anonymous rendering of a view is cached; personalized responses are
// recomputed per request.
type ViewCache interface {
	Get(ctx context.Context, path string) ([]byte, bool)
	Set(ctx context.Context, path string, payload []byte)
}

type FeedHandler struct {
	feed       service.Feed
	content    service.Content
	engagement service.Engagement
	views      ViewCache
}

func NewFeedHandler(feed service.Feed, content service.Content, engagement service.Engagement, views ViewCache) *FeedHandler {
	return &FeedHandler{
		feed:       feed,
		content:    content,
		engagement: engagement,
		views:      views,
	}
}

// GetFeed handles GET /api/feed
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := auth.UserID(r.Context())

	if viewerID == nil {
		if payload, ok := h.views.Get(r.Context(), service.ViewFeed); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)
			return
		}
	}

	posts := h.feed.Assemble(r.Context(), viewerID, nil)

	if viewerID == nil {
		if payload, err := json.Marshal(posts); err == nil {
			h.views.Set(r.Context(), service.ViewFeed, payload)
		}
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetUserPosts handles GET /api/users/{id}/posts
func (h *FeedHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid user id"))
		return
	}

	viewerID := auth.UserID(r.Context())
	writeJSON(w, http.StatusOK, h.feed.Assemble(r.Context(), viewerID, &ownerID))
}

// CreatePost handles POST /api/posts
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("create a post"))
		return
	}

	var req struct {
		Content  string  `json:"content"`
		Type     string  `json:"type"`
		ImageURL *string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	post, err := h.content.CreatePost(r.Context(), identity.UserID, req.Content, req.Type, req.ImageURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// GetPost handles GET /api/posts/{id}
func (h *FeedHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	post, err := h.content.GetPost(r.Context(), postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// UpdatePost handles PUT /api/posts/{id}
func (h *FeedHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("edit a post"))
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	var input models.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	post, err := h.content.UpdatePost(r.Context(), identity.UserID, postID, &input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{id}
func (h *FeedHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("delete a post"))
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	if err := h.content.DeletePost(r.Context(), identity.UserID, postID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ToggleLike handles POST /api/posts/{id}/like
func (h *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("like a post"))
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	liked, err := h.engagement.ToggleLike(r.Context(), identity.UserID, postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "liked": liked})
}

// GetComments handles GET /api/posts/{id}/comments
func (h *FeedHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	writeJSON(w, http.StatusOK, h.feed.Comments(r.Context(), postID))
}

// AddComment handles POST /api/posts/{id}/comments
func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("comment"))
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid post id"))
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	comment, err := h.engagement.AddComment(r.Context(), identity.UserID, postID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/comments/{id}
func (h *FeedHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("delete a comment"))
		return
	}

	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid comment id"))
		return
	}

	if err := h.engagement.DeleteComment(r.Context(), identity.UserID, commentID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
