package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jwhitfield/ember-api/internal/api"
	apiMiddleware "github.com/jwhitfield/ember-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	dailyHandler := api.NewDailyHandler(app.riskService, app.answerStore)
	signalHandler := api.NewSignalHandler(app.signalStore)
	dashboardHandler := api.NewDashboardHandler(app.assessmentService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			// Daily check-in endpoints
			r.Get("/daily/questions", dailyHandler.GetQuestions)
			r.Post("/daily/response", dailyHandler.SubmitResponse)

			// Behavior signal endpoints
			r.Post("/signals/track", signalHandler.TrackSignal)

			// Dashboard endpoints
			r.Get("/dashboard/status", dashboardHandler.GetStatus)
			r.Get("/dashboard/history", dashboardHandler.GetHistory)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
