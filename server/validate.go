package server

import (
	"regexp"

	"SpotiQ/model"
)

// Request bodies and their validation. Rules run in declaration order and
// the first failing rule's message becomes the 400 body, so the messages
// here are part of the API contract.

// emailPattern is the RFC-5322-style address check applied to register and
// login bodies.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

func (r *registerRequest) validate() string {
	switch {
	case r.Name == "":
		return "Name cannot be empty"
	case r.Email == "":
		return "Email cannot be empty"
	case !emailPattern.MatchString(r.Email):
		return "Invalid email address"
	case r.Password == "":
		return "Password cannot be empty"
	case r.Image == "":
		return "Image cannot be empty"
	}
	return ""
}

func (r *registerRequest) toDraft() model.UserDraft {
	return model.UserDraft{Email: r.Email, Image: r.Image, Password: r.Password, Name: r.Name}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) validate() string {
	switch {
	case r.Email == "":
		return "Email cannot be empty"
	case !emailPattern.MatchString(r.Email):
		return "Invalid email address"
	case r.Password == "":
		return "Password cannot be empty"
	}
	return ""
}

type editUserRequest struct {
	Image       string `json:"image"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (r *editUserRequest) validate() string {
	switch {
	case r.Image == "":
		return "Image cannot be empty"
	case r.Password == "":
		return "Password cannot be empty"
	case r.DisplayName == "":
		return "DisplayName cannot be empty"
	}
	return ""
}

func (r *editUserRequest) toEdit() model.EditUser {
	return model.EditUser{Image: r.Image, Password: r.Password, DisplayName: r.DisplayName}
}

// playlistDraftRequest accepts songs as full song objects; only their ids
// cross into the domain service.
type playlistDraftRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Songs       []model.Song `json:"songs"`
}

func (r *playlistDraftRequest) validate() string {
	switch {
	case r.Name == "":
		return "Name cannot be empty"
	case r.Description == "":
		return "Description cannot be empty"
	case r.Image == "":
		return "Image cannot be empty"
	}
	// The songs list may be empty.
	return ""
}

func (r *playlistDraftRequest) toDraft() model.PlaylistDraft {
	songIDs := make([]string, 0, len(r.Songs))
	for _, s := range r.Songs {
		songIDs = append(songIDs, s.ID)
	}
	return model.PlaylistDraft{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		SongIDs:     songIDs,
	}
}

type songDraftRequest struct {
	Name     string `json:"name"`
	Band     string `json:"band"`
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}

func (r *songDraftRequest) validate() string {
	switch {
	case r.Name == "":
		return "Name cannot be empty"
	case r.Band == "":
		return "Band cannot be empty"
	case r.URL == "":
		return "Url cannot be empty"
	case r.Duration <= 0:
		return "Duration must be positive"
	}
	return ""
}
