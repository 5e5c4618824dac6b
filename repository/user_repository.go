package repository

import (
	"context"
	"database/sql"
	"fmt"

	"SpotiQ/model"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

const userColumns = "id, display_name, email, password_hash, image, created_at, updated_at"

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.DisplayName, &user.Email, &user.PasswordHash,
		&user.Image, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser adds a new user to the database. A unique-key violation on the
// email column is reported as ErrDuplicateUser.
func (r *mysqlUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := "INSERT INTO users (id, display_name, email, password_hash, image) VALUES (?, ?, ?, ?, ?)"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.DisplayName, user.Email, user.PasswordHash, user.Image)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to execute create user statement: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *mysqlUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for ID %s: %w", id, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *mysqlUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for email %s: %w", email, err)
	}
	return user, nil
}

// UpdateUser replaces the mutable profile fields of an existing user.
func (r *mysqlUserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	query := "UPDATE users SET display_name = ?, password_hash = ?, image = ?, updated_at = NOW() WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare update user statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(ctx, user.DisplayName, user.PasswordHash, user.Image, user.ID); err != nil {
		return fmt.Errorf("failed to execute update user statement: %w", err)
	}
	return nil
}

// SearchUsers returns users whose display name contains the query,
// case-insensitively.
func (r *mysqlUserRepository) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	q := "SELECT " + userColumns + " FROM users WHERE LOWER(display_name) LIKE ? ORDER BY created_at"
	rows, err := r.db.QueryContext(ctx, q, "%"+lowered(query)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
