package jobs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/youtubext/download-server/internal/engine"
	"github.com/youtubext/download-server/internal/i18n"
	"github.com/youtubext/download-server/internal/storage"
)

const watchURLTemplate = "https://www.youtube.com/watch?v=%s"

var (
	// ErrMissingVideoID rejects a request before it enters the job system.
	ErrMissingVideoID = errors.New("missing videoId")

	// ErrJobInFlight rejects a requestId whose previous job has not reached
	// a terminal state yet.
	ErrJobInFlight = errors.New("job already in progress")
)

// Request is the download payload accepted by Dispatch. Only VideoID is
// required; Quality is advisory and never alters format selection.
type Request struct {
	VideoID   string `json:"videoId"`
	RequestID string `json:"requestId"`
	Mode      string `json:"mode"`
	Title     string `json:"title"`
	PageURL   string `json:"pageUrl"`
	Quality   string `json:"quality"`
}

// Dispatcher accepts validated requests, seeds queued records and launches
// one detached worker goroutine per job. Workers report back exclusively
// through the registry; the dispatcher never observes their outcome.
type Dispatcher struct {
	registry  *Registry
	engine    engine.Engine
	downloads *storage.Downloads
	baseURL   string
	log       zerolog.Logger
}

// NewDispatcher wires a dispatcher. baseURL is the externally reachable
// prefix used to mint downloadUrl values.
func NewDispatcher(registry *Registry, eng engine.Engine, downloads *storage.Downloads, baseURL string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		engine:    eng,
		downloads: downloads,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		log:       log,
	}
}

// Dispatch validates the request, registers a queued job and starts its
// worker. It returns the job id before any download work has happened. A
// requestId naming a still-running job is refused; ids of terminal jobs may
// be reused and replace the old record.
func (d *Dispatcher) Dispatch(req Request, locale string) (string, error) {
	if strings.TrimSpace(req.VideoID) == "" {
		return "", ErrMissingVideoID
	}

	jobID := req.RequestID
	if jobID == "" {
		jobID = uuid.NewString()
	}

	if _, err := d.registry.Start(jobID, Patch{
		Message: strPtr(i18n.Message(locale, i18n.KeyQueued)),
	}); err != nil {
		return "", err
	}

	d.log.Info().
		Str("job_id", jobID).
		Str("video_id", req.VideoID).
		Str("mode", string(engine.ParseMode(req.Mode))).
		Msg("download accepted")

	go d.run(jobID, req, locale)

	return jobID, nil
}

// run is the download worker. It owns the blocking engine call and the
// terminal state transition; every failure is converted into registry state,
// never propagated.
func (d *Dispatcher) run(jobID string, req Request, locale string) {
	target := req.PageURL
	if target == "" {
		target = fmt.Sprintf(watchURLTemplate, req.VideoID)
	}
	mode := engine.ParseMode(req.Mode)

	evt := d.log.Info().Str("job_id", jobID).Str("url", target)
	if req.Quality != "" {
		evt = evt.Str("quality", req.Quality)
	}
	evt.Msgf("requesting %s download", mode)

	d.registry.Upsert(jobID, Patch{
		Status:   statusPtr(StatusDownloading),
		Progress: intPtr(0),
		Message:  strPtr(i18n.Message(locale, i18n.KeyDownloading)),
	})

	finalPath, err := d.engine.Download(context.Background(), engine.Request{
		URL:   target,
		Mode:  mode,
		Title: req.Title,
	}, d.progressFunc(jobID, locale))
	if err != nil {
		d.log.Error().Err(err).Str("job_id", jobID).Msg("download failed")
		d.registry.Upsert(jobID, Patch{
			Status:   statusPtr(StatusError),
			Progress: intPtr(0),
			Message:  strPtr(err.Error()),
		})
		return
	}

	d.finish(jobID, finalPath, locale)
}

// finish performs the terminal success transition. The engine claimed
// success, so the job is marked finished either way; a downloadUrl is only
// minted when a real file could be located on disk.
func (d *Dispatcher) finish(jobID, finalPath, locale string) {
	job, _ := d.registry.Get(jobID)
	path := finalPath
	if path == "" {
		path = job.FilePath
	}

	patch := Patch{
		Status:   statusPtr(StatusFinished),
		Progress: intPtr(100),
		Message:  strPtr(i18n.Message(locale, i18n.KeyFinished)),
	}

	switch {
	case path == "":
		// The engine never reported a file; nothing to link.
	case fileExists(path):
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		patch.FilePath = strPtr(path)
		patch.DownloadURL = strPtr(d.fileURL(jobID))
	default:
		// The recorded path predates post-processing. Probe for the renamed
		// output; keep the stale path and skip the URL when nothing matches.
		if sibling, ok := d.downloads.FindSibling(path); ok {
			patch.FilePath = strPtr(sibling)
			patch.DownloadURL = strPtr(d.fileURL(jobID))
		}
	}

	d.registry.Upsert(jobID, patch)
	d.log.Info().Str("job_id", jobID).Msg("download finished")
}

// progressFunc builds the per-job adapter translating engine progress events
// into registry updates. It runs on the engine's goroutine and must stay
// non-blocking; a registry upsert is the only work it does. Terminal states
// are never written here, that is the worker's job once the engine returns.
func (d *Dispatcher) progressFunc(jobID, locale string) engine.ProgressFunc {
	return func(ev engine.Event) {
		switch ev.Kind {
		case engine.EventDownloading:
			patch := Patch{
				Status:  statusPtr(StatusDownloading),
				Message: strPtr(i18n.Message(locale, i18n.KeyDownloading)),
			}
			// Unknown totals leave the last progress value untouched.
			if ev.TotalBytes > 0 {
				patch.Progress = intPtr(int(ev.DownloadedBytes * 100 / ev.TotalBytes))
			}
			d.registry.Upsert(jobID, patch)
		case engine.EventFinished:
			patch := Patch{
				Status:   statusPtr(StatusProcessing),
				Progress: intPtr(100),
				Message:  strPtr(i18n.Message(locale, i18n.KeyProcessing)),
			}
			if ev.Filename != "" {
				path := ev.Filename
				if abs, err := filepath.Abs(path); err == nil {
					path = abs
				}
				patch.FilePath = strPtr(path)
			}
			d.registry.Upsert(jobID, patch)
		}
	}
}

func (d *Dispatcher) fileURL(jobID string) string {
	return d.baseURL + "/file?job=" + url.QueryEscape(jobID)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
