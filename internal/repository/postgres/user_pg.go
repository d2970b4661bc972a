package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

const userColumns = `id, email, password_hash, created_at, updated_at`

// CreateUser inserts a new user row.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := q.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := q.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email %q: %w", email, err)
	}
	return &user, nil
}

// GetAllUsers lists every registered user.
func (r *UserRepository) GetAllUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
