package handlers

import (
	"net/http"

	"github.com/youtubext/download-server/internal/jobs"
)

type statusResponse struct {
	Success bool `json:"success"`
	jobs.Job
}

// Status is a pure read of the job registry; it may race with the job's
// worker and can observe any intermediate state.
func (a *App) Status(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		a.error(w, http.StatusBadRequest, "missing job id")
		return
	}

	job, ok := a.Registry.Get(jobID)
	if !ok {
		a.error(w, http.StatusNotFound, "job not found")
		return
	}

	a.json(w, http.StatusOK, statusResponse{Success: true, Job: job})
}
