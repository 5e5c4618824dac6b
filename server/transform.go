package server

import (
	"time"

	"SpotiQ/model"
)

// The transform functions are pure: entity in, DTO out, input order
// preserved, empty lists rendered as [] rather than null.

// dateLayout renders lastModifiedDate as dd/MM/yyyy - HH:mm, 24-hour,
// zero-padded.
const dateLayout = "02/01/2006 - 15:04"

// FormatDate renders a timestamp in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// UserToSimpleUser strips a user down to id, display name and image.
func UserToSimpleUser(user *model.User) SimpleUser {
	if user == nil {
		return SimpleUser{}
	}
	return SimpleUser{ID: user.ID, DisplayName: user.DisplayName, Image: user.Image}
}

// LikesToSimpleUsers maps a like set element-wise.
func LikesToSimpleUsers(likes []model.User) []SimpleUser {
	out := make([]SimpleUser, 0, len(likes))
	for i := range likes {
		out = append(out, UserToSimpleUser(&likes[i]))
	}
	return out
}

// PlaylistToSimplePlaylist builds the compact playlist rendering.
func PlaylistToSimplePlaylist(playlist *model.Playlist) SimplePlaylist {
	return SimplePlaylist{
		ID:               playlist.ID,
		Name:             playlist.Name,
		Description:      playlist.Description,
		Image:            playlist.Image,
		Author:           UserToSimpleUser(playlist.Author),
		LastModifiedDate: FormatDate(playlist.LastModified),
		Likes:            LikesToSimpleUsers(playlist.LikedBy),
		Duration:         playlist.Duration(),
	}
}

// PlaylistsToSimplePlaylists maps a playlist list element-wise.
func PlaylistsToSimplePlaylists(playlists []model.Playlist) []SimplePlaylist {
	out := make([]SimplePlaylist, 0, len(playlists))
	for i := range playlists {
		out = append(out, PlaylistToSimplePlaylist(&playlists[i]))
	}
	return out
}

// PlaylistToResponse builds the full playlist rendering.
func PlaylistToResponse(playlist *model.Playlist) PlaylistResponse {
	songs := playlist.Songs
	if songs == nil {
		songs = make([]model.Song, 0)
	}
	return PlaylistResponse{
		ID:               playlist.ID,
		Name:             playlist.Name,
		Description:      playlist.Description,
		Image:            playlist.Image,
		Songs:            songs,
		Author:           UserToSimpleUser(playlist.Author),
		LastModifiedDate: FormatDate(playlist.LastModified),
		Likes:            LikesToSimpleUsers(playlist.LikedBy),
		Duration:         playlist.Duration(),
	}
}

// UserToRegisterResponse builds the profile DTO used by /register and /login.
func UserToRegisterResponse(user *model.User) RegisterResponse {
	return RegisterResponse{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Image:       user.Image,
		MyPlaylist:  PlaylistsToSimplePlaylists(user.MyPlaylists),
		Likes:       PlaylistsToSimplePlaylists(user.Likes),
	}
}

// UserToUserResponse builds the profile DTO used by the /user routes.
func UserToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.DisplayName,
		Image:      user.Image,
		MyPlaylist: PlaylistsToSimplePlaylists(user.MyPlaylists),
		Likes:      PlaylistsToSimplePlaylists(user.Likes),
	}
}
