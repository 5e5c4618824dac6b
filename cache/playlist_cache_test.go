package cache

import (
	"context"
	"testing"
	"time"

	"SpotiQ/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedEnvelopeRoundTrip(t *testing.T) {
	playlist := &model.Playlist{
		ID:           "p1",
		Name:         "Chill",
		Description:  "d",
		Image:        "i",
		AuthorID:     "u1",
		LastModified: time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC),
		Songs:        []model.Song{{ID: "s1", Name: "Song", Band: "B", URL: "http://u", Duration: 60}},
		Author:       &model.User{ID: "u1", DisplayName: "Ann", Image: "img", Email: "ann@example.com", PasswordHash: "hash"},
		LikedBy:      []model.User{{ID: "u2", DisplayName: "Bob", Email: "bob@example.com"}},
	}

	got := fromCached(toCached(playlist))

	assert.Equal(t, playlist.ID, got.ID)
	assert.Equal(t, playlist.LastModified, got.LastModified)
	require.Len(t, got.Songs, 1)
	assert.Equal(t, "s1", got.Songs[0].ID)
	require.NotNil(t, got.Author)
	assert.Equal(t, "u1", got.Author.ID)
	assert.Equal(t, "Ann", got.Author.DisplayName)
	require.Len(t, got.LikedBy, 1)
	assert.Equal(t, "u2", got.LikedBy[0].ID)

	// Credentials never survive the envelope.
	assert.Empty(t, got.Author.Email)
	assert.Empty(t, got.Author.PasswordHash)
	assert.Empty(t, got.LikedBy[0].Email)
}

func TestCachedEnvelopeEmptyRelations(t *testing.T) {
	got := fromCached(toCached(&model.Playlist{ID: "p1"}))

	assert.Nil(t, got.Author)
	assert.NotNil(t, got.Songs)
	assert.Empty(t, got.Songs)
	assert.NotNil(t, got.LikedBy)
	assert.Empty(t, got.LikedBy)
}

func TestNilCacheIsDisabled(t *testing.T) {
	ctx := context.Background()
	var c *PlaylistCache

	got, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Set(ctx, &model.Playlist{ID: "p1"}))
	assert.NoError(t, c.Invalidate(ctx, "p1"))
}
