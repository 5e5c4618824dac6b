package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SpotiQ/logger"
	"SpotiQ/model"

	"github.com/redis/go-redis/v9"
)

// playlistTTL bounds staleness for entries whose invalidation was missed.
const playlistTTL = 10 * time.Minute

// cachedUser carries the subset of a user that outbound representations
// need. Password hashes and emails never enter Redis.
type cachedUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image"`
}

// cachedPlaylist is the Redis envelope for a hydrated playlist. The model
// structs hide their relations from JSON, so the cache keeps its own shape.
type cachedPlaylist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	AuthorID     string       `json:"authorId"`
	LastModified time.Time    `json:"lastModified"`
	Songs        []model.Song `json:"songs"`
	Author       *cachedUser  `json:"author,omitempty"`
	LikedBy      []cachedUser `json:"likedBy"`
}

func toCached(p *model.Playlist) *cachedPlaylist {
	c := &cachedPlaylist{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		AuthorID:     p.AuthorID,
		LastModified: p.LastModified,
		Songs:        p.Songs,
		LikedBy:      make([]cachedUser, 0, len(p.LikedBy)),
	}
	if p.Author != nil {
		c.Author = &cachedUser{ID: p.Author.ID, DisplayName: p.Author.DisplayName, Image: p.Author.Image}
	}
	for _, u := range p.LikedBy {
		c.LikedBy = append(c.LikedBy, cachedUser{ID: u.ID, DisplayName: u.DisplayName, Image: u.Image})
	}
	return c
}

func fromCached(c *cachedPlaylist) *model.Playlist {
	p := &model.Playlist{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		AuthorID:     c.AuthorID,
		LastModified: c.LastModified,
		Songs:        c.Songs,
		LikedBy:      make([]model.User, 0, len(c.LikedBy)),
	}
	if p.Songs == nil {
		p.Songs = make([]model.Song, 0)
	}
	if c.Author != nil {
		p.Author = &model.User{ID: c.Author.ID, DisplayName: c.Author.DisplayName, Image: c.Author.Image}
	}
	for _, u := range c.LikedBy {
		p.LikedBy = append(p.LikedBy, model.User{ID: u.ID, DisplayName: u.DisplayName, Image: u.Image})
	}
	return p
}

// PlaylistCache keeps fully hydrated playlists in Redis so repeated reads
// skip the multi-table assembly. Mutations go through Invalidate. A nil
// cache is valid and disables caching.
type PlaylistCache struct {
	client *redis.Client
}

// NewPlaylistCache creates a PlaylistCache on the given client.
func NewPlaylistCache(client *redis.Client) *PlaylistCache {
	return &PlaylistCache{client: client}
}

func playlistKey(id string) string {
	return fmt.Sprintf("playlist:%s", id)
}

// Get returns the cached playlist, or nil on a miss.
func (c *PlaylistCache) Get(ctx context.Context, id string) (*model.Playlist, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, playlistKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached playlist: %w", err)
	}

	cached := &cachedPlaylist{}
	if err := json.Unmarshal(data, cached); err != nil {
		// A corrupt entry is dropped rather than served.
		logger.Warn("Dropping unreadable playlist cache entry",
			logger.String("playlistId", id), logger.ErrorField(err))
		c.client.Del(ctx, playlistKey(id))
		return nil, nil
	}
	return fromCached(cached), nil
}

// Set stores the hydrated playlist.
func (c *PlaylistCache) Set(ctx context.Context, playlist *model.Playlist) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(toCached(playlist))
	if err != nil {
		return fmt.Errorf("failed to marshal playlist for cache: %w", err)
	}

	if err := c.client.Set(ctx, playlistKey(playlist.ID), data, playlistTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache playlist: %w", err)
	}
	return nil
}

// Invalidate removes a playlist entry after a mutation.
func (c *PlaylistCache) Invalidate(ctx context.Context, id string) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, playlistKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached playlist: %w", err)
	}
	return nil
}
