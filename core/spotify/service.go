// Package spotify holds the domain service the HTTP layer talks to: user
// accounts, the song catalog, playlists and search. Controllers depend on
// the Service interface only; the MySQL-backed implementation lives in this
// package too.
package spotify

import (
	"context"
	"errors"

	"SpotiQ/model"
)

var (
	// ErrUserNotFound also covers failed logins: invalid credentials are
	// indistinguishable from a missing user at the API surface.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken means registration hit an already-registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrPlaylistNotFound covers unknown ids and playlists the caller may
	// not modify.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrSongNotFound means a draft referenced an unknown song id.
	ErrSongNotFound = errors.New("song not found")
	// ErrDuplicateSong means a song with the same name already exists.
	ErrDuplicateSong = errors.New("a song with the same name already exists")
)

// Service is the domain-facing surface consumed by the controllers. All
// returned entities are fully hydrated (playlists carry songs, author and
// likers; users carry their owned and liked playlists).
type Service interface {
	Register(ctx context.Context, draft model.UserDraft) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	EditUser(ctx context.Context, id string, edit model.EditUser) (*model.User, error)

	AddPlaylist(ctx context.Context, userID string, draft model.PlaylistDraft) (*model.Playlist, error)
	ModifyPlaylist(ctx context.Context, userID, playlistID string, draft model.PlaylistDraft) (*model.Playlist, error)
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	AddOrRemoveLike(ctx context.Context, userID, playlistID string) error

	AddSong(ctx context.Context, draft model.SongDraft) (*model.Song, error)
	AllSongs(ctx context.Context) ([]model.Song, error)
	AllPlaylists(ctx context.Context) ([]model.Playlist, error)

	SearchPlaylists(ctx context.Context, query string) ([]model.Playlist, error)
	SearchSongs(ctx context.Context, query string) ([]model.Song, error)
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
}
