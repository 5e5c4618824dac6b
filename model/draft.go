package model

// Drafts are transient input shapes carrying only the fields a client may
// set. They are validated at the controller boundary and never persisted.

// UserDraft is the registration intent.
type UserDraft struct {
	Email    string
	Image    string
	Password string // plaintext, hashed before storage
	Name     string
}

// EditUser is a full replace of the mutable profile fields.
type EditUser struct {
	Image       string
	Password    string
	DisplayName string
}

// PlaylistDraft creates or fully replaces a playlist. Songs are referenced
// by id; the list may be empty.
type PlaylistDraft struct {
	Name        string
	Description string
	Image       string
	SongIDs     []string
}

// SongDraft creates a song.
type SongDraft struct {
	Name     string
	Band     string
	URL      string
	Duration int
}
