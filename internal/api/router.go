package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metricsprometheus "github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	"finflow-backend/internal/api/handler"
	"finflow-backend/internal/api/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Wallet      *handler.WalletHandler
	Transaction *handler.TransactionHandler
	User        *handler.UserHandler
}

// NewRouter sets up the HTTP router. The rate limiter is optional; the
// authenticator guards everything under /api/v1 except the auth routes.
func NewRouter(h Handlers, auth *middleware.Authenticator, rateLimiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	mdlw := httpmetrics.New(httpmetrics.Config{
		Recorder: metricsprometheus.NewRecorder(metricsprometheus.Config{}),
	})
	r.Use(func(next http.Handler) http.Handler {
		return std.Handler("", mdlw, next)
	})

	if rateLimiter != nil {
		r.Use(rateLimiter.Handler)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Handler)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.Wallet.GetMyWallet)
				r.Post("/topup", h.Wallet.TopUp)
				r.Get("/{walletID}/transactions", h.Wallet.GetTransactionHistory)
			})

			r.Post("/transaction", h.Transaction.Create)
			r.Get("/user/all", h.User.GetAll)
		})
	})

	return r
}
