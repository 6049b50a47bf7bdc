package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/draftpilot/draftpilot-api/internal/api"
	apiMiddleware "github.com/draftpilot/draftpilot-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	draftHandler := api.NewDraftHandler(app.draftService)
	extractHandler := api.NewExtractHandler(app.extractService)
	preferenceHandler := api.NewPreferenceHandler(app.preferenceStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/drafts", draftHandler.CreateDraft)
		r.Post("/drafts/variations", draftHandler.Variations)
		r.Post("/extract", extractHandler.Extract)

		r.Get("/preferences", preferenceHandler.GetPreferences)
		r.Put("/preferences", preferenceHandler.UpdatePreferences)
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
