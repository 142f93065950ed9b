package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/auth"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/service"
)

type ProfileHandler struct {
	profile service.Profile
}

func NewProfileHandler(profile service.Profile) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// GetOwnProfile handles GET /api/profile
func (h *ProfileHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("view your profile"))
		return
	}

	profile, err := h.profile.Get(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GetProfile handles GET /api/profile/{id}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid user id"))
		return
	}

	profile, err := h.profile.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("update your profile"))
		return
	}

	var input models.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	user, err := h.profile.Update(r.Context(), identity.UserID, &input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UploadAvatar handles POST /api/profile/avatar (multipart form, field "avatar")
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("upload an avatar"))
		return
	}

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeError(w, apperror.Validation("invalid upload"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, apperror.Validation("no file uploaded"))
		return
	}
	defer file.Close()

	url, err := h.profile.UploadAvatar(r.Context(), identity.UserID, header.Filename, header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"avatar_url": url})
}

// UploadPostImage handles POST /api/uploads/post-image (multipart form, field "image")
func (h *ProfileHandler) UploadPostImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r.Context()); !ok {
		writeError(w, apperror.Unauthenticated("upload an image"))
		return
	}

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeError(w, apperror.Validation("invalid upload"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperror.Validation("no file uploaded"))
		return
	}
	defer file.Close()

	url, err := h.profile.UploadPostImage(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image_url": url})
}
