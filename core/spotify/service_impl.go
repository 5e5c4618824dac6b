package spotify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SpotiQ/cache"
	"SpotiQ/core/auth"
	"SpotiQ/logger"
	"SpotiQ/model"
	"SpotiQ/repository"

	"github.com/google/uuid"
)

// spotifyService implements Service over the MySQL repositories, with an
// optional Redis read-through cache for hydrated playlists.
type spotifyService struct {
	users     repository.UserRepository
	songs     repository.SongRepository
	playlists repository.PlaylistRepository
	cache     *cache.PlaylistCache // nil disables caching
}

// NewService wires the repositories into a Service.
func NewService(
	users repository.UserRepository,
	songs repository.SongRepository,
	playlists repository.PlaylistRepository,
	playlistCache *cache.PlaylistCache,
) Service {
	return &spotifyService{
		users:     users,
		songs:     songs,
		playlists: playlists,
		cache:     playlistCache,
	}
}

// Register creates a user with empty playlist and like lists. The plaintext
// password is hashed before it crosses into the repository.
func (s *spotifyService) Register(ctx context.Context, draft model.UserDraft) (*model.User, error) {
	hash, err := auth.HashPassword(draft.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		DisplayName:  draft.Name,
		Email:        draft.Email,
		PasswordHash: hash,
		Image:        draft.Image,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.MyPlaylists = make([]model.Playlist, 0)
	user.Likes = make([]model.Playlist, 0)
	return user, nil
}

// Login resolves the user by email and checks the password. Both unknown
// email and wrong password come back as ErrUserNotFound.
func (s *spotifyService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user == nil || !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUserNotFound
	}

	if err := s.hydrateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns the hydrated user for an id.
func (s *spotifyService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.hydrateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EditUser replaces image, password and display name.
func (s *spotifyService) EditUser(ctx context.Context, id string, edit model.EditUser) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	hash, err := auth.HashPassword(edit.Password)
	if err != nil {
		return nil, err
	}

	user.Image = edit.Image
	user.PasswordHash = hash
	user.DisplayName = edit.DisplayName

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.hydrateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddPlaylist creates a playlist owned by the given user.
func (s *spotifyService) AddPlaylist(ctx context.Context, userID string, draft model.PlaylistDraft) (*model.Playlist, error) {
	owner, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	if err := s.checkSongsExist(ctx, draft.SongIDs); err != nil {
		return nil, err
	}

	playlist := &model.Playlist{
		ID:           uuid.New().String(),
		Name:         draft.Name,
		Description:  draft.Description,
		Image:        draft.Image,
		AuthorID:     userID,
		LastModified: time.Now(),
	}

	if err := s.playlists.CreatePlaylist(ctx, playlist, draft.SongIDs); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	if err := s.hydratePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// ModifyPlaylist fully replaces name, description, image and songs, and
// bumps lastModified. Ownership is enforced here: a playlist not authored by
// the caller behaves as if it didn't exist.
func (s *spotifyService) ModifyPlaylist(ctx context.Context, userID, playlistID string, draft model.PlaylistDraft) (*model.Playlist, error) {
	playlist, err := s.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up playlist: %w", err)
	}
	if playlist == nil || playlist.AuthorID != userID {
		return nil, ErrPlaylistNotFound
	}

	if err := s.checkSongsExist(ctx, draft.SongIDs); err != nil {
		return nil, err
	}

	playlist.Name = draft.Name
	playlist.Description = draft.Description
	playlist.Image = draft.Image
	playlist.LastModified = time.Now()

	if err := s.playlists.UpdatePlaylist(ctx, playlist, draft.SongIDs); err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}

	s.invalidateCached(ctx, playlistID)

	if err := s.hydratePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetPlaylist returns the hydrated playlist, served from the cache when
// possible.
func (s *spotifyService) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		// The cache must never take the read path down.
		logger.Warn("Playlist cache read failed", logger.String("playlistId", id), logger.ErrorField(err))
	}
	if cached != nil {
		return cached, nil
	}

	playlist, err := s.playlists.GetPlaylistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up playlist: %w", err)
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}

	if err := s.hydratePlaylist(ctx, playlist); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, playlist); err != nil {
		logger.Warn("Playlist cache write failed", logger.String("playlistId", id), logger.ErrorField(err))
	}
	return playlist, nil
}

// AddOrRemoveLike toggles the caller's membership in the playlist's like
// set; present removes, absent adds.
func (s *spotifyService) AddOrRemoveLike(ctx context.Context, userID, playlistID string) error {
	playlist, err := s.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("failed to look up playlist: %w", err)
	}
	if playlist == nil {
		return ErrPlaylistNotFound
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.playlists.ToggleLike(ctx, playlistID, userID); err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}

	s.invalidateCached(ctx, playlistID)
	return nil
}

// AddSong creates a song. Names are globally unique.
func (s *spotifyService) AddSong(ctx context.Context, draft model.SongDraft) (*model.Song, error) {
	song := &model.Song{
		ID:       uuid.New().String(),
		Name:     draft.Name,
		Band:     draft.Band,
		URL:      draft.URL,
		Duration: draft.Duration,
	}

	if err := s.songs.CreateSong(ctx, song); err != nil {
		if errors.Is(err, repository.ErrDuplicateSong) {
			return nil, ErrDuplicateSong
		}
		return nil, fmt.Errorf("failed to create song: %w", err)
	}
	return song, nil
}

// AllSongs lists the whole catalog.
func (s *spotifyService) AllSongs(ctx context.Context) ([]model.Song, error) {
	return s.songs.GetAllSongs(ctx)
}

// AllPlaylists lists every playlist, hydrated.
func (s *spotifyService) AllPlaylists(ctx context.Context) ([]model.Playlist, error) {
	playlists, err := s.playlists.GetAllPlaylists(ctx)
	if err != nil {
		return nil, err
	}
	return s.hydratePlaylists(ctx, playlists)
}

// SearchPlaylists matches playlist names case-insensitively.
func (s *spotifyService) SearchPlaylists(ctx context.Context, query string) ([]model.Playlist, error) {
	playlists, err := s.playlists.SearchPlaylists(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.hydratePlaylists(ctx, playlists)
}

// SearchSongs matches song names case-insensitively.
func (s *spotifyService) SearchSongs(ctx context.Context, query string) ([]model.Song, error) {
	return s.songs.SearchSongs(ctx, query)
}

// SearchUsers matches display names case-insensitively. Results are bare
// users; the transformer only renders id, display name and image.
func (s *spotifyService) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	return s.users.SearchUsers(ctx, query)
}

// checkSongsExist verifies every referenced song id before a playlist write.
func (s *spotifyService) checkSongsExist(ctx context.Context, songIDs []string) error {
	for _, id := range songIDs {
		song, err := s.songs.GetSongByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to look up song %s: %w", id, err)
		}
		if song == nil {
			return ErrSongNotFound
		}
	}
	return nil
}

// hydratePlaylist attaches songs, author and likers to a base playlist row.
func (s *spotifyService) hydratePlaylist(ctx context.Context, playlist *model.Playlist) error {
	songs, err := s.playlists.GetSongsForPlaylist(ctx, playlist.ID)
	if err != nil {
		return fmt.Errorf("failed to load playlist songs: %w", err)
	}
	playlist.Songs = songs

	author, err := s.users.GetUserByID(ctx, playlist.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to load playlist author: %w", err)
	}
	playlist.Author = author

	likers, err := s.playlists.GetLikersForPlaylist(ctx, playlist.ID)
	if err != nil {
		return fmt.Errorf("failed to load playlist likes: %w", err)
	}
	playlist.LikedBy = likers
	return nil
}

func (s *spotifyService) hydratePlaylists(ctx context.Context, playlists []model.Playlist) ([]model.Playlist, error) {
	for i := range playlists {
		if err := s.hydratePlaylist(ctx, &playlists[i]); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

// hydrateUser attaches the user's owned and liked playlists, each hydrated
// so the transformer can compute durations and render authors and likers.
func (s *spotifyService) hydrateUser(ctx context.Context, user *model.User) error {
	owned, err := s.playlists.GetPlaylistsByAuthor(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load owned playlists: %w", err)
	}
	if user.MyPlaylists, err = s.hydratePlaylists(ctx, owned); err != nil {
		return err
	}

	liked, err := s.playlists.GetLikedPlaylists(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load liked playlists: %w", err)
	}
	if user.Likes, err = s.hydratePlaylists(ctx, liked); err != nil {
		return err
	}
	return nil
}

// invalidateCached drops the playlist's cache entry after a mutation.
func (s *spotifyService) invalidateCached(ctx context.Context, playlistID string) {
	if err := s.cache.Invalidate(ctx, playlistID); err != nil {
		logger.Warn("Playlist cache invalidation failed",
			logger.String("playlistId", playlistID), logger.ErrorField(err))
	}
}
