package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"SpotiQ/core/spotify"
	"SpotiQ/logger"
	"SpotiQ/model"
)

// SearchHandler searches playlists, songs and users independently by
// case-insensitive substring. The three result lists are parallel, with no
// cross-entity ranking.
func (h *APIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Nothing to search")
		return
	}

	ctx := r.Context()

	playlists, err := h.service.SearchPlaylists(ctx, query)
	if err != nil {
		logger.Error("Playlist search failed", logger.String("query", query), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	songs, err := h.service.SearchSongs(ctx, query)
	if err != nil {
		logger.Error("Song search failed", logger.String("query", query), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	users, err := h.service.SearchUsers(ctx, query)
	if err != nil {
		logger.Error("User search failed", logger.String("query", query), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, SearchResponse{
		Playlists: PlaylistsToSimplePlaylists(playlists),
		Songs:     ensureSongs(songs),
		Users:     LikesToSimpleUsers(users),
	})
}

// AddSongHandler creates a song and returns it as stored.
func (h *APIHandler) AddSongHandler(w http.ResponseWriter, r *http.Request) {
	var req songDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	song, err := h.service.AddSong(r.Context(), model.SongDraft{
		Name:     req.Name,
		Band:     req.Band,
		URL:      req.URL,
		Duration: req.Duration,
	})
	if err != nil {
		if errors.Is(err, spotify.ErrDuplicateSong) {
			// Uniqueness conflicts render 404, same as lookups; see the
			// error taxonomy note in DESIGN.md.
			respondError(w, http.StatusNotFound, "A song with the same name already exists")
			return
		}
		logger.Error("Failed to add song", logger.String("name", req.Name), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, song)
}

// GetSongsHandler lists the whole song catalog.
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.service.AllSongs(r.Context())
	if err != nil {
		logger.Error("Failed to list songs", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, ensureSongs(songs))
}

// GetPlaylistsHandler lists every playlist in compact form.
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.service.AllPlaylists(r.Context())
	if err != nil {
		logger.Error("Failed to list playlists", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, PlaylistsToSimplePlaylists(playlists))
}

// ensureSongs keeps empty catalogs rendering as [] rather than null.
func ensureSongs(songs []model.Song) []model.Song {
	if songs == nil {
		return make([]model.Song, 0)
	}
	return songs
}
