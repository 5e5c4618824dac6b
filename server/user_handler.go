package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"SpotiQ/core/auth"
	"SpotiQ/core/spotify"
	"SpotiQ/logger"

	"github.com/gorilla/mux"
)

// RegisterHandler creates an account. A taken email renders 404, matching
// the observed contract, not 409.
func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.service.Register(r.Context(), req.toDraft())
	if err != nil {
		if errors.Is(err, spotify.ErrEmailTaken) {
			respondError(w, http.StatusNotFound, "The e-mail is not available")
			return
		}
		logger.Error("Failed to register user", logger.String("email", req.Email), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("User registered", logger.String("userId", user.ID))
	respondJSON(w, http.StatusCreated, UserToRegisterResponse(user))
}

// LoginHandler authenticates by email and password. The issued token goes
// out in the Authorization response header, the profile DTO in the body.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, spotify.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, LoginErrorResponse{Result: "error", Message: "User not found"})
			return
		}
		logger.Error("Failed to log in user", logger.String("email", req.Email), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		logger.Error("Failed to generate token", logger.String("userId", user.ID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", token)
	respondJSON(w, http.StatusOK, UserToRegisterResponse(user))
}

// GetUserHandler returns the authenticated caller's profile.
func (h *APIHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Token invalid")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.respondUserError(w, err, userID)
		return
	}

	respondJSON(w, http.StatusOK, UserToUserResponse(user))
}

// GetUserByIDHandler returns the profile for a path-specified id.
func (h *APIHandler) GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["userId"]

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.respondUserError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, UserToUserResponse(user))
}

// EditUserHandler replaces image, password and display name for the caller.
func (h *APIHandler) EditUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Token invalid")
		return
	}

	var req editUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.service.EditUser(r.Context(), userID, req.toEdit())
	if err != nil {
		h.respondUserError(w, err, userID)
		return
	}

	respondJSON(w, http.StatusOK, UserToUserResponse(user))
}

// AddPlaylistHandler creates a playlist owned by the caller.
func (h *APIHandler) AddPlaylistHandler(w http.ResponseWriter, r *http.Request) {
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

	playlist, err := h.service.AddPlaylist(r.Context(), userID, req.toDraft())
	if err != nil {
		switch {
		case errors.Is(err, spotify.ErrUserNotFound):
			respondError(w, http.StatusNotFound, fmt.Sprintf("Not found user with id %s", userID))
		case errors.Is(err, spotify.ErrSongNotFound):
			respondError(w, http.StatusNotFound, "Not found song in playlist draft")
		default:
			logger.Error("Failed to add playlist", logger.String("userId", userID), logger.ErrorField(err))
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, PlaylistToResponse(playlist))
}

// respondUserError maps domain failures from the user operations.
func (h *APIHandler) respondUserError(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, spotify.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Not found user with id %s", id))
		return
	}
	logger.Error("User operation failed", logger.String("userId", id), logger.ErrorField(err))
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
