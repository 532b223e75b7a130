package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/youtubext/download-server/internal/jobs"
	"github.com/youtubext/download-server/internal/middleware"
)

type downloadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

// Download accepts an asynchronous download request and returns its job id
// immediately; the work itself runs detached and is observable via /status.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	var req jobs.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid json")
		return
	}

	locale := middleware.LocaleFromContext(r.Context())
	jobID, err := a.Dispatcher.Dispatch(req, locale)
	switch {
	case errors.Is(err, jobs.ErrMissingVideoID):
		a.error(w, http.StatusBadRequest, "missing videoId")
	case errors.Is(err, jobs.ErrJobInFlight):
		a.error(w, http.StatusConflict, "job already in progress")
	case err != nil:
		a.Logger.Error().Err(err).Msg("dispatch failed")
		a.error(w, http.StatusInternalServerError, "failed to start download")
	default:
		a.json(w, http.StatusAccepted, downloadResponse{
			Success: true,
			Message: "Download started",
			JobID:   jobID,
		})
	}
}
