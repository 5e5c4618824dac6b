package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"SpotiQ/core/spotify"
	"SpotiQ/logger"

	"github.com/gorilla/mux"
)

// GetPlaylistByIDHandler returns the full playlist rendering.
func (h *APIHandler) GetPlaylistByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["playlistId"]

	playlist, err := h.service.GetPlaylist(r.Context(), id)
	if err != nil {
		h.respondPlaylistError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, PlaylistToResponse(playlist))
}

// LikePlaylistHandler toggles the caller's like on the playlist and returns
// the caller's profile as it looks after the toggle.
func (h *APIHandler) LikePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["playlistId"]

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Token invalid")
		return
	}

	if err := h.service.AddOrRemoveLike(r.Context(), userID, id); err != nil {
		h.respondPlaylistError(w, err, id)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.respondUserError(w, err, userID)
		return
	}

	respondJSON(w, http.StatusOK, UserToUserResponse(user))
}

// EditPlaylistHandler fully replaces name, description, image and songs.
// Ownership is enforced inside the domain service.
func (h *APIHandler) EditPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["playlistId"]

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Token invalid")
		return
	}

	var req playlistDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	playlist, err := h.service.ModifyPlaylist(r.Context(), userID, id, req.toDraft())
	if err != nil {
		h.respondPlaylistError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, PlaylistToResponse(playlist))
}

// respondPlaylistError maps domain failures from the playlist operations.
func (h *APIHandler) respondPlaylistError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, spotify.ErrPlaylistNotFound):
		respondError(w, http.StatusNotFound, fmt.Sprintf("Not found playlist with id %s", id))
	case errors.Is(err, spotify.ErrSongNotFound):
		respondError(w, http.StatusNotFound, "Not found song in playlist draft")
	case errors.Is(err, spotify.ErrUserNotFound):
		respondError(w, http.StatusNotFound, fmt.Sprintf("Not found playlist with id %s", id))
	default:
		logger.Error("Playlist operation failed", logger.String("playlistId", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
