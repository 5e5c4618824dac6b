package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"SpotiQ/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(users ...model.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "display_name", "email", "password_hash", "image", "created_at", "updated_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.DisplayName, u.Email, u.PasswordHash, u.Image, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)
	user := &model.User{ID: "u1", DisplayName: "Ann", Email: "ann@example.com", PasswordHash: "hash", Image: "img"}

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO users")).
		ExpectExec().
		WithArgs("u1", "Ann", "ann@example.com", "hash", "img").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO users")).
		ExpectExec().
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err = repo.CreateUser(context.Background(), &model.User{ID: "u1", Email: "taken@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)
	now := time.Now()
	want := model.User{ID: "u1", DisplayName: "Ann", Email: "ann@example.com",
		PasswordHash: "hash", Image: "img", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = ?")).
		WithArgs("ann@example.com").
		WillReturnRows(userRows(want))

	user, err := repo.GetUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, want.ID, user.ID)
	assert.Equal(t, want.PasswordHash, user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs("ghost").
		WillReturnRows(userRows())

	// A missing row is nil, nil; not-found is a domain decision.
	user, err := repo.GetUserByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchUsersLowersQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LOWER(display_name) LIKE ?")).
		WithArgs("%ann%").
		WillReturnRows(userRows(model.User{ID: "u1", DisplayName: "Ann"}))

	users, err := repo.SearchUsers(context.Background(), "ANN")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
