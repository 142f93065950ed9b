package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/auth"
	"github.com/Prajwal-sudo-600/AEGIS/service"
)

type NetworkHandler struct {
	network service.Network
	graph   service.SocialGraph
	views   ViewCache
}

func NewNetworkHandler(network service.Network, graph service.SocialGraph, views ViewCache) *NetworkHandler {
	return &NetworkHandler{
		network: network,
		graph:   graph,
		views:   views,
	}
}

// ListUsers handles GET /api/network
func (h *NetworkHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	viewerID := auth.UserID(r.Context())

	if viewerID == nil {
		if payload, ok := h.views.Get(r.Context(), service.ViewNetwork); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)
			return
		}
	}

	users := h.network.List(r.Context(), viewerID)

	if viewerID == nil {
		if payload, err := json.Marshal(users); err == nil {
			h.views.Set(r.Context(), service.ViewNetwork, payload)
		}
	}

	writeJSON(w, http.StatusOK, users)
}

// ToggleFollow handles POST /api/network/{id}/follow
func (h *NetworkHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("follow users"))
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid user id"))
		return
	}

	following, err := h.graph.ToggleFollow(r.Context(), identity.UserID, targetID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "is_following": following})
}
