package repository

import (
	"context"

	"finflow-backend/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	GetAllUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
}
