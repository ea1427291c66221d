package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stakeit-app/stakeit-api/internal/analytics"
	"github.com/stakeit-app/stakeit-api/internal/auth"
	"github.com/stakeit-app/stakeit-api/internal/checkin"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
	"github.com/stakeit-app/stakeit-api/internal/middlewares"
	"github.com/stakeit-app/stakeit-api/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	GoalHandler      *goal.Handler
	CheckinHandler   *checkin.Handler
	LedgerHandler    *ledger.Handler
	AnalyticsHandler *analytics.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/transactions", ledger.Routes(cfg.LedgerHandler))

		r.Route("/goals", func(r chi.Router) {
			r.Post("/{id}/checkin", cfg.CheckinHandler.CheckIn)
			r.Get("/{id}/progress", cfg.CheckinHandler.GetProgress)
			r.Mount("/", goal.Routes(cfg.GoalHandler))
		})

		r.Get("/analytics", cfg.AnalyticsHandler.GetAnalytics)
	})

	return r
}
