package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
	"finflow-backend/pkg/token"
)

// AuthResult is returned from registration and login.
type AuthResult struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthService handles registration and login. Registration creates the
// user's single zero-balance wallet in the same unit of work.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	txManager  repository.TxManager
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	tokens     *token.Manager
	log        *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	txManager repository.TxManager,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	tokens *token.Manager,
	log *zap.Logger,
) AuthService {
	return &authService{
		txManager:  txManager,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		tokens:     tokens,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(email, string(hash))
	err = s.txManager.WithinTx(ctx, func(q repository.DBExecutor) error {
		_, err := s.userRepo.GetUserByEmail(ctx, q, email)
		if err == nil {
			return util.ErrUserAlreadyExists
		}
		if !errors.Is(err, util.ErrUserNotFound) {
			return fmt.Errorf("check existing user: %w", err)
		}

		if err := s.userRepo.CreateUser(ctx, q, user); err != nil {
			return err
		}
		return s.walletRepo.CreateWallet(ctx, q, domain.NewWallet(user.ID, domain.DefaultCurrency))
	})
	if err != nil {
		return nil, err
	}

	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Int64("user_id", user.ID))
	return &AuthResult{Email: user.Email, Token: signed}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			// Same error for unknown email and wrong password.
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Email: user.Email, Token: signed}, nil
}
