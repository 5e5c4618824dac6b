package model

import "time"

// User represents a registered account. Owned and liked playlists are
// relational back-references hydrated by the catalog service, not columns.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	DisplayName  string    `json:"displayName" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // never rendered
	Image        string    `json:"image" gorm:"size:767"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	MyPlaylists []Playlist `json:"-" gorm:"-"` // creation order
	Likes       []Playlist `json:"-" gorm:"-"` // liked playlists, like order
}
