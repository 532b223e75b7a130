package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// File streams a job's output file. The path may have been recorded before
// the engine finished writing, so a concurrent reader can legitimately
// observe a partial stream; only status=finished guarantees completeness.
func (a *App) File(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		a.error(w, http.StatusBadRequest, "missing job id")
		return
	}

	job, ok := a.Registry.Get(jobID)
	if !ok || job.FilePath == "" {
		a.error(w, http.StatusNotFound, "file not found")
		return
	}

	f, err := os.Open(job.FilePath)
	if err != nil {
		a.error(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		a.error(w, http.StatusNotFound, "file not found")
		return
	}

	name := filepath.Base(job.FilePath)
	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, f); err != nil {
		a.Logger.Debug().Err(err).Str("job_id", jobID).Msg("file stream aborted")
	}
}
