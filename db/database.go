package db

import (
	"database/sql"
	"fmt"

	"SpotiQ/config"
	"SpotiQ/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	if err := createUsersTable(); err != nil {
		return err
	}
	if err := createSongsTable(); err != nil {
		return err
	}
	if err := createPlaylistsTable(); err != nil {
		return err
	}
	if err := createPlaylistSongsTable(); err != nil {
		return err
	}
	if err := createPlaylistLikesTable(); err != nil {
		return err
	}

	logger.Info("Database schema initialized.")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		display_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		image VARCHAR(767) NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func createSongsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS songs (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		band VARCHAR(255) NOT NULL,
		url VARCHAR(767) NOT NULL,
		duration INT NOT NULL
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}
	return nil
}

func createPlaylistsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS playlists (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		image VARCHAR(767) NOT NULL DEFAULT '',
		author_id VARCHAR(36) NOT NULL,
		last_modified TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_playlists_name (name),
		CONSTRAINT fk_playlist_author FOREIGN KEY (author_id) REFERENCES users(id)
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlists table: %w", err)
	}
	return nil
}

func createPlaylistSongsTable() error {
	// Position is part of the key: the same song may appear twice in one
	// playlist.
	query := `
	CREATE TABLE IF NOT EXISTS playlist_songs (
		playlist_id VARCHAR(36) NOT NULL,
		position INT NOT NULL,
		song_id VARCHAR(36) NOT NULL,
		PRIMARY KEY (playlist_id, position),
		CONSTRAINT fk_ps_playlist FOREIGN KEY (playlist_id) REFERENCES playlists(id) ON DELETE CASCADE,
		CONSTRAINT fk_ps_song FOREIGN KEY (song_id) REFERENCES songs(id)
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlist_songs table: %w", err)
	}
	return nil
}

func createPlaylistLikesTable() error {
	// The composite primary key keeps the like set duplicate-free.
	query := `
	CREATE TABLE IF NOT EXISTS playlist_likes (
		playlist_id VARCHAR(36) NOT NULL,
		user_id VARCHAR(36) NOT NULL,
		position INT NOT NULL,
		PRIMARY KEY (playlist_id, user_id),
		CONSTRAINT fk_pl_playlist FOREIGN KEY (playlist_id) REFERENCES playlists(id) ON DELETE CASCADE,
		CONSTRAINT fk_pl_user FOREIGN KEY (user_id) REFERENCES users(id)
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlist_likes table: %w", err)
	}
	return nil
}
