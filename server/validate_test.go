package server

import (
	"testing"

	"SpotiQ/model"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"ann@example.com",
		"a.b+c@sub.domain.org",
		"user_name@host.io",
	}
	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"not-an-email",
		"@example.com",
		"ann@",
		"ann@-bad.com",
		"ann example@host.com",
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "expected %q to be invalid", email)
	}
}

func TestValidationStopsAtFirstFailure(t *testing.T) {
	// All fields empty: only the first rule's message is reported.
	req := registerRequest{}
	assert.Equal(t, "Name cannot be empty", req.validate())

	req.Name = "Ann"
	assert.Equal(t, "Email cannot be empty", req.validate())

	req.Email = "bad"
	assert.Equal(t, "Invalid email address", req.validate())

	req.Email = "ann@example.com"
	assert.Equal(t, "Password cannot be empty", req.validate())

	req.Password = "pw"
	assert.Equal(t, "Image cannot be empty", req.validate())

	req.Image = "img"
	assert.Empty(t, req.validate())
}

func TestSongDraftValidation(t *testing.T) {
	req := songDraftRequest{Name: "Song", Band: "Band", URL: "http://u", Duration: 0}
	assert.Equal(t, "Duration must be positive", req.validate())

	req.Duration = -5
	assert.Equal(t, "Duration must be positive", req.validate())

	req.Duration = 1
	assert.Empty(t, req.validate())
}

func TestPlaylistDraftToDraftExtractsSongIDs(t *testing.T) {
	req := playlistDraftRequest{Name: "N", Description: "D", Image: "I"}
	req.Songs = []model.Song{{ID: "s1"}, {ID: "s2"}}

	draft := req.toDraft()
	assert.Equal(t, []string{"s1", "s2"}, draft.SongIDs)
}
