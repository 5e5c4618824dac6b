package repository

import (
	"context"
	"database/sql"
	"fmt"

	"SpotiQ/model"
)

// SongRepository defines the interface for song data operations.
type SongRepository interface {
	CreateSong(ctx context.Context, song *model.Song) error
	GetSongByID(ctx context.Context, id string) (*model.Song, error)
	GetAllSongs(ctx context.Context) ([]model.Song, error)
	SearchSongs(ctx context.Context, query string) ([]model.Song, error)
}

// mysqlSongRepository implements SongRepository for MySQL.
type mysqlSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository creates a new mysqlSongRepository.
func NewMySQLSongRepository(db *sql.DB) SongRepository {
	return &mysqlSongRepository{db: db}
}

const songColumns = "id, name, band, url, duration"

func scanSong(row interface{ Scan(...interface{}) error }) (*model.Song, error) {
	song := &model.Song{}
	if err := row.Scan(&song.ID, &song.Name, &song.Band, &song.URL, &song.Duration); err != nil {
		return nil, err
	}
	return song, nil
}

// CreateSong adds a new song. A unique-key violation on the name column is
// reported as ErrDuplicateSong.
func (r *mysqlSongRepository) CreateSong(ctx context.Context, song *model.Song) error {
	query := "INSERT INTO songs (" + songColumns + ") VALUES (?, ?, ?, ?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare create song statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, song.ID, song.Name, song.Band, song.URL, song.Duration)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateSong
		}
		return fmt.Errorf("failed to execute create song statement: %w", err)
	}
	return nil
}

// GetSongByID retrieves a song by its ID.
func (r *mysqlSongRepository) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	query := "SELECT " + songColumns + " FROM songs WHERE id = ?"
	song, err := scanSong(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Song not found
		}
		return nil, fmt.Errorf("failed to scan song row for ID %s: %w", id, err)
	}
	return song, nil
}

// GetAllSongs returns every song, ordered by name.
func (r *mysqlSongRepository) GetAllSongs(ctx context.Context) ([]model.Song, error) {
	query := "SELECT " + songColumns + " FROM songs ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

// SearchSongs returns songs whose name contains the query, case-insensitively.
func (r *mysqlSongRepository) SearchSongs(ctx context.Context, query string) ([]model.Song, error) {
	q := "SELECT " + songColumns + " FROM songs WHERE LOWER(name) LIKE ? ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, "%"+lowered(query)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

func collectSongs(rows *sql.Rows) ([]model.Song, error) {
	songs := make([]model.Song, 0)
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song row: %w", err)
		}
		songs = append(songs, *song)
	}
	return songs, rows.Err()
}
