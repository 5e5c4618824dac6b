package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"SpotiQ/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaylistWithSongs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLPlaylistRepository(db)
	playlist := &model.Playlist{
		ID: "p1", Name: "Chill", Description: "d", Image: "i",
		AuthorID: "u1", LastModified: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlists")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO playlist_songs"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_songs")).
		WithArgs("p1", 0, "s1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_songs")).
		WithArgs("p1", 1, "s2").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreatePlaylist(context.Background(), playlist, []string{"s1", "s2"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeAdds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLPlaylistRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM playlist_likes")).
		WithArgs("p1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_likes")).
		WithArgs("p1", "u1", "p1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ToggleLike(context.Background(), "p1", "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeRemoves(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLPlaylistRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM playlist_likes")).
		WithArgs("p1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM playlist_likes")).
		WithArgs("p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ToggleLike(context.Background(), "p1", "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlaylistByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLPlaylistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM playlists WHERE id = ?")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image", "author_id", "last_modified"}))

	playlist, err := repo.GetPlaylistByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, playlist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSongsForPlaylistKeepsOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLPlaylistRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "band", "url", "duration"}).
		AddRow("s2", "Second", "B", "http://2", 90).
		AddRow("s1", "First", "B", "http://1", 60)
	mock.ExpectQuery("ORDER BY ps.position").
		WithArgs("p1").
		WillReturnRows(rows)

	songs, err := repo.GetSongsForPlaylist(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, "s2", songs[0].ID)
	assert.Equal(t, "s1", songs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
