package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/youtubext/download-server/internal/jobs"
)

// App carries the dependencies the HTTP handlers need.
type App struct {
	Dispatcher *jobs.Dispatcher
	Registry   *jobs.Registry
	Logger     zerolog.Logger
}

// NewApp builds the handler container.
func NewApp(dispatcher *jobs.Dispatcher, registry *jobs.Registry, logger zerolog.Logger) *App {
	return &App{Dispatcher: dispatcher, Registry: registry, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]any{"success": false, "error": msg})
}

// NotFound answers every unrouted path.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusNotFound, "not found")
}
