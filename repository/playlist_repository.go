package repository

import (
	"context"
	"database/sql"
	"fmt"

	"SpotiQ/model"
)

// PlaylistRepository defines the interface for playlist data operations.
// Songs and likes are stored in join tables; the *model.Playlist values
// returned here carry only the base columns, hydration happens one layer up.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist, songIDs []string) error
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist *model.Playlist, songIDs []string) error
	GetSongsForPlaylist(ctx context.Context, playlistID string) ([]model.Song, error)
	GetLikersForPlaylist(ctx context.Context, playlistID string) ([]model.User, error)
	ToggleLike(ctx context.Context, playlistID, userID string) error
	GetPlaylistsByAuthor(ctx context.Context, authorID string) ([]model.Playlist, error)
	GetLikedPlaylists(ctx context.Context, userID string) ([]model.Playlist, error)
	GetAllPlaylists(ctx context.Context) ([]model.Playlist, error)
	SearchPlaylists(ctx context.Context, query string) ([]model.Playlist, error)
}

// mysqlPlaylistRepository implements PlaylistRepository for MySQL.
type mysqlPlaylistRepository struct {
	db *sql.DB
}

// NewMySQLPlaylistRepository creates a new mysqlPlaylistRepository.
func NewMySQLPlaylistRepository(db *sql.DB) PlaylistRepository {
	return &mysqlPlaylistRepository{db: db}
}

const playlistColumns = "id, name, description, image, author_id, last_modified"

func scanPlaylist(row interface{ Scan(...interface{}) error }) (*model.Playlist, error) {
	p := &model.Playlist{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.AuthorID, &p.LastModified)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePlaylist inserts the playlist and its ordered song references in a
// single transaction.
func (r *mysqlPlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist, songIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin create playlist transaction: %w", err)
	}
	defer tx.Rollback()

	query := "INSERT INTO playlists (id, name, description, image, author_id, last_modified) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err = tx.ExecContext(ctx, query, playlist.ID, playlist.Name, playlist.Description,
		playlist.Image, playlist.AuthorID, playlist.LastModified); err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	if err = insertPlaylistSongs(ctx, tx, playlist.ID, songIDs); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit create playlist transaction: %w", err)
	}
	return nil
}

// UpdatePlaylist fully replaces name, description, image and the song list,
// bumping last_modified, in a single transaction.
func (r *mysqlPlaylistRepository) UpdatePlaylist(ctx context.Context, playlist *model.Playlist, songIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin update playlist transaction: %w", err)
	}
	defer tx.Rollback()

	query := "UPDATE playlists SET name = ?, description = ?, image = ?, last_modified = ? WHERE id = ?"
	if _, err = tx.ExecContext(ctx, query, playlist.Name, playlist.Description,
		playlist.Image, playlist.LastModified, playlist.ID); err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM playlist_songs WHERE playlist_id = ?", playlist.ID); err != nil {
		return fmt.Errorf("failed to clear playlist songs: %w", err)
	}

	if err = insertPlaylistSongs(ctx, tx, playlist.ID, songIDs); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update playlist transaction: %w", err)
	}
	return nil
}

func insertPlaylistSongs(ctx context.Context, tx *sql.Tx, playlistID string, songIDs []string) error {
	if len(songIDs) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO playlist_songs (playlist_id, position, song_id) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare playlist songs statement: %w", err)
	}
	defer stmt.Close()

	for i, songID := range songIDs {
		if _, err = stmt.ExecContext(ctx, playlistID, i, songID); err != nil {
			return fmt.Errorf("failed to insert playlist song at position %d: %w", i, err)
		}
	}
	return nil
}

// GetPlaylistByID retrieves a playlist's base row.
func (r *mysqlPlaylistRepository) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	query := "SELECT " + playlistColumns + " FROM playlists WHERE id = ?"
	playlist, err := scanPlaylist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Playlist not found
		}
		return nil, fmt.Errorf("failed to scan playlist row for ID %s: %w", id, err)
	}
	return playlist, nil
}

// GetSongsForPlaylist returns the playlist's songs in playlist order.
func (r *mysqlPlaylistRepository) GetSongsForPlaylist(ctx context.Context, playlistID string) ([]model.Song, error) {
	query := `
		SELECT s.id, s.name, s.band, s.url, s.duration
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = ?
		ORDER BY ps.position`
	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

// GetLikersForPlaylist returns the users who like the playlist, in the order
// the likes were added.
func (r *mysqlPlaylistRepository) GetLikersForPlaylist(ctx context.Context, playlistID string) ([]model.User, error) {
	query := `
		SELECT u.id, u.display_name, u.email, u.password_hash, u.image, u.created_at, u.updated_at
		FROM playlist_likes pl
		JOIN users u ON u.id = pl.user_id
		WHERE pl.playlist_id = ?
		ORDER BY pl.position`
	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist likers: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liker row: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// ToggleLike flips the user's membership in the playlist's like set inside a
// transaction, so two concurrent toggles for the same pair stay consistent.
func (r *mysqlPlaylistRepository) ToggleLike(ctx context.Context, playlistID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin toggle like transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM playlist_likes WHERE playlist_id = ? AND user_id = ? FOR UPDATE",
		playlistID, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check like membership: %w", err)
	}

	if exists > 0 {
		_, err = tx.ExecContext(ctx,
			"DELETE FROM playlist_likes WHERE playlist_id = ? AND user_id = ?",
			playlistID, userID)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO playlist_likes (playlist_id, user_id, position)
			SELECT ?, ?, COALESCE(MAX(position) + 1, 0)
			FROM playlist_likes WHERE playlist_id = ?`,
			playlistID, userID, playlistID)
		if err != nil {
			return fmt.Errorf("failed to add like: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit toggle like transaction: %w", err)
	}
	return nil
}

// GetPlaylistsByAuthor returns a user's own playlists in creation order.
func (r *mysqlPlaylistRepository) GetPlaylistsByAuthor(ctx context.Context, authorID string) ([]model.Playlist, error) {
	query := "SELECT " + playlistColumns + " FROM playlists WHERE author_id = ? ORDER BY created_at"
	return r.queryPlaylists(ctx, query, authorID)
}

// GetLikedPlaylists returns the playlists a user likes, in like order.
func (r *mysqlPlaylistRepository) GetLikedPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	query := `
		SELECT p.id, p.name, p.description, p.image, p.author_id, p.last_modified
		FROM playlist_likes pl
		JOIN playlists p ON p.id = pl.playlist_id
		WHERE pl.user_id = ?
		ORDER BY pl.position`
	return r.queryPlaylists(ctx, query, userID)
}

// GetAllPlaylists returns every playlist in creation order.
func (r *mysqlPlaylistRepository) GetAllPlaylists(ctx context.Context) ([]model.Playlist, error) {
	query := "SELECT " + playlistColumns + " FROM playlists ORDER BY created_at"
	return r.queryPlaylists(ctx, query)
}

// SearchPlaylists returns playlists whose name contains the query,
// case-insensitively.
func (r *mysqlPlaylistRepository) SearchPlaylists(ctx context.Context, query string) ([]model.Playlist, error) {
	q := "SELECT " + playlistColumns + " FROM playlists WHERE LOWER(name) LIKE ? ORDER BY created_at"
	return r.queryPlaylists(ctx, q, "%"+lowered(query)+"%")
}

func (r *mysqlPlaylistRepository) queryPlaylists(ctx context.Context, query string, args ...interface{}) ([]model.Playlist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]model.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, *playlist)
	}
	return playlists, rows.Err()
}
