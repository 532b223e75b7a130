package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/youtubext/download-server/internal/http/handlers"
	"github.com/youtubext/download-server/internal/middleware"
)

// NewRouter assembles the HTTP surface. CORS sits outermost so its headers
// reach every response, 404s and preflights included.
func NewRouter(app *handlers.App, defaultLocale string, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
	)
	r.Use(
		middleware.CORS,
		middleware.Logger(log),
		middleware.Locale(defaultLocale),
	)

	r.Get("/healthz", app.Health)

	r.Post("/download", app.Download)
	r.Get("/status", app.Status)
	r.Get("/file", app.File)
	r.Head("/file", app.File)

	// Unknown paths and wrong methods both answer the flat JSON 404 the
	// extension expects.
	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.NotFound)

	return r
}
