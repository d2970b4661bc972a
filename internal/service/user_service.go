package service

import (
	"context"
	"fmt"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
)

// UserService exposes user lookups.
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{dbExecutor: dbExecutor, userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
