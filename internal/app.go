package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"finflow-backend/internal/api"
	"finflow-backend/internal/api/handler"
	"finflow-backend/internal/api/middleware"
	"finflow-backend/internal/config"
	"finflow-backend/internal/logger"
	"finflow-backend/internal/repository/postgres"
	"finflow-backend/internal/service"
	"finflow-backend/pkg/db"
	"finflow-backend/pkg/token"
)

// Application holds the initialized components of the service.
type Application struct {
	Config *config.AppConfig
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client

	HTTPHandler http.Handler
}

// NewApplication creates an uninitialized Application.
func NewApplication() *Application {
	return &Application{}
}

// Initialize wires configuration, logging, storage, services and the HTTP
// API together.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	app.Config = cfg

	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	app.Logger = log

	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	app.DB = database
	log.Info("database connection established")

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	txManager := postgres.NewTxManager(database, log)
	userRepo := postgres.NewUserRepository()
	walletRepo := postgres.NewWalletRepository()
	transactionRepo := postgres.NewTransactionRepository()

	transactionService := service.NewTransactionService(txManager, walletRepo, transactionRepo, log)
	walletService := service.NewWalletService(database, walletRepo, transactionRepo, transactionService, log)
	authService := service.NewAuthService(txManager, database, userRepo, walletRepo, tokens, log)
	userService := service.NewUserService(database, userRepo)

	var rateLimiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		app.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rateLimiter = middleware.NewRateLimiter(app.Redis, cfg.RateLimit, cfg.RateLimitWindow, log)
		log.Info("rate limiter enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	app.HTTPHandler = api.NewRouter(api.Handlers{
		Auth:        handler.NewAuthHandler(authService, log),
		Wallet:      handler.NewWalletHandler(walletService, log),
		Transaction: handler.NewTransactionHandler(transactionService, log),
		User:        handler.NewUserHandler(userService, log),
	}, middleware.NewAuthenticator(tokens, log), rateLimiter)

	log.Info("application initialized")
	return nil
}

// Shutdown releases application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Error("failed to close redis client", zap.Error(err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			return fmt.Errorf("close database connection: %w", err)
		}
	}
	app.Logger.Info("application shut down")
	_ = app.Logger.Sync()
	return nil
}
