package server

import (
	"SpotiQ/model"
)

// Wire-format DTOs. Field names are part of the API contract; note that the
// profile DTO returned by GET/PUT /user uses "name" where the registration
// and login DTO uses "displayName".

// OkResponse is a bare success acknowledgment.
type OkResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Result string `json:"result"`
}

// LoginErrorResponse is the login-specific error body.
type LoginErrorResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// SimpleUser is the compact user rendering: never password, never email.
type SimpleUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image"`
}

// SimplePlaylist is the compact playlist rendering used in lists.
type SimplePlaylist struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	Author           SimpleUser   `json:"author"`
	LastModifiedDate string       `json:"lastModifiedDate"`
	Likes            []SimpleUser `json:"likes"`
	Duration         int          `json:"duration"`
}

// PlaylistResponse is the full playlist rendering, songs included.
type PlaylistResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	Songs            []model.Song `json:"songs"`
	Author           SimpleUser   `json:"author"`
	LastModifiedDate string       `json:"lastModifiedDate"`
	Likes            []SimpleUser `json:"likes"`
	Duration         int          `json:"duration"`
}

// RegisterResponse is the profile DTO returned by /register and /login.
type RegisterResponse struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Image       string           `json:"image"`
	MyPlaylist  []SimplePlaylist `json:"myPlaylist"`
	Likes       []SimplePlaylist `json:"likes"`
}

// UserResponse is the profile DTO returned by the /user routes.
type UserResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Image      string           `json:"image"`
	MyPlaylist []SimplePlaylist `json:"myPlaylist"`
	Likes      []SimplePlaylist `json:"likes"`
}

// SearchResponse carries the three independent result lists.
type SearchResponse struct {
	Playlists []SimplePlaylist `json:"playlists"`
	Songs     []model.Song     `json:"songs"`
	Users     []SimpleUser     `json:"users"`
}
