package handlers

import (
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
	"net/http"
)

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.NewHashMiddleware(secretKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Get("/wallet", handler.GetWallet)
			r.Get("/wallet/transactions", handler.GetTransactions)
			r.Post("/wallet/requests", handler.CreateRequest)
			r.Get("/wallet/requests", handler.GetRequests)
			r.Post("/wallet/requests/{id}/cancel", handler.CancelRequest)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.RequireAdmin)
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Get("/wallet/requests", handler.GetAllRequests)
		r.Post("/wallet/requests/{id}", handler.ProcessRequest)
		r.Post("/wallet/adjust", handler.AdjustBalance)
		r.Patch("/wallet/{userID}/status", handler.SetWalletStatus)
	})

	return r
}
