package server

import (
	"encoding/json"
	"testing"
	"time"

	"SpotiQ/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2023, time.January, 5, 9, 7, 42, 0, time.UTC)
	assert.Equal(t, "05/01/2023 - 09:07", FormatDate(ts))
}

func TestUserToSimpleUserStripsSensitiveFields(t *testing.T) {
	user := &model.User{
		ID:           "u1",
		DisplayName:  "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$hash",
		Image:        "http://img/ann.png",
	}

	body, err := json.Marshal(UserToSimpleUser(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"u1","displayName":"Ann","image":"http://img/ann.png"}`, string(body))
	assert.NotContains(t, string(body), "email")
	assert.NotContains(t, string(body), "password")
}

func TestUserToSimpleUserNil(t *testing.T) {
	assert.Equal(t, SimpleUser{}, UserToSimpleUser(nil))
}

func TestPlaylistDurationSumsSongs(t *testing.T) {
	playlist := &model.Playlist{
		Songs: []model.Song{
			{ID: "s1", Duration: 120},
			{ID: "s2", Duration: 95},
			{ID: "s3", Duration: 0},
		},
	}
	assert.Equal(t, 215, playlist.Duration())

	playlist.Songs = nil
	assert.Equal(t, 0, playlist.Duration())
}

func TestPlaylistToResponseEmptyLists(t *testing.T) {
	playlist := &model.Playlist{
		ID:           "p1",
		Name:         "Chill",
		LastModified: time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(PlaylistToResponse(playlist))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, []interface{}{}, decoded["songs"])
	assert.Equal(t, []interface{}{}, decoded["likes"])
	assert.Equal(t, "01/03/2023 - 12:00", decoded["lastModifiedDate"])
	assert.Equal(t, float64(0), decoded["duration"])
}

func TestProfileDTOFieldNames(t *testing.T) {
	user := &model.User{ID: "u1", DisplayName: "Ann", Image: "img"}

	regBody, err := json.Marshal(UserToRegisterResponse(user))
	require.NoError(t, err)
	assert.Contains(t, string(regBody), `"displayName":"Ann"`)
	assert.Contains(t, string(regBody), `"myPlaylist":[]`)
	assert.Contains(t, string(regBody), `"likes":[]`)

	// The /user profile DTO uses "name" where register/login use
	// "displayName".
	userBody, err := json.Marshal(UserToUserResponse(user))
	require.NoError(t, err)
	assert.Contains(t, string(userBody), `"name":"Ann"`)
	assert.NotContains(t, string(userBody), `"displayName"`)
}

func TestPlaylistToSimplePlaylist(t *testing.T) {
	author := &model.User{ID: "u1", DisplayName: "Ann", Image: "img"}
	playlist := &model.Playlist{
		ID:           "p1",
		Name:         "Road Trip",
		Description:  "For driving",
		Image:        "cover",
		Author:       author,
		LastModified: time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC),
		LikedBy:      []model.User{{ID: "u2", DisplayName: "Bob"}},
		Songs:        []model.Song{{ID: "s1", Duration: 60}},
	}

	simple := PlaylistToSimplePlaylist(playlist)
	assert.Equal(t, "p1", simple.ID)
	assert.Equal(t, "Road Trip", simple.Name)
	assert.Equal(t, "u1", simple.Author.ID)
	assert.Equal(t, "31/12/2024 - 23:59", simple.LastModifiedDate)
	require.Len(t, simple.Likes, 1)
	assert.Equal(t, "u2", simple.Likes[0].ID)
	assert.Equal(t, 60, simple.Duration)
}
