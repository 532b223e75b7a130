package engine

import (
	"context"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"
)

const progressInterval = 500 * time.Millisecond

// YTDLP is the production Engine backed by yt-dlp. It writes output files
// into a fixed download directory and reports progress through the injected
// callback.
type YTDLP struct {
	downloadDir string
	log         zerolog.Logger
}

// NewYTDLP creates an engine writing into downloadDir.
func NewYTDLP(downloadDir string, log zerolog.Logger) *YTDLP {
	return &YTDLP{downloadDir: downloadDir, log: log}
}

// Install makes sure a yt-dlp binary is available, downloading one if needed.
// Call it once at startup, before any download is dispatched.
func Install(ctx context.Context) {
	ytdlp.MustInstall(ctx, nil)
}

// Download runs the blocking yt-dlp call for one request. The engine's own
// retry policy covers transient network failures; any error that survives it
// is returned as-is for the worker to record.
func (e *YTDLP) Download(ctx context.Context, req Request, progress ProgressFunc) (string, error) {
	output := filepath.Join(e.downloadDir, OutputBaseName(req.Title, req.Mode)+".%(ext)s")

	dl := ytdlp.New().
		ForceOverwrites().
		NoPlaylist().
		NoCheckCertificates().
		Retries("3").
		FragmentRetries("5").
		Output(output)

	if req.Mode == ModeAudio {
		dl = dl.Format("bestaudio/best").
			ExtractAudio().
			AudioFormat("mp3").
			AudioQuality("0")
	} else {
		dl = dl.Format("bestvideo+bestaudio/best").
			MergeOutputFormat("mp4")
	}

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		switch update.Status {
		case ytdlp.ProgressStatusDownloading:
			progress(Event{
				Kind:            EventDownloading,
				DownloadedBytes: int64(update.DownloadedBytes),
				TotalBytes:      int64(update.TotalBytes),
				Filename:        update.Filename,
			})
		case ytdlp.ProgressStatusFinished:
			progress(Event{Kind: EventFinished, Filename: update.Filename})
		}
	})

	e.log.Debug().Str("url", req.URL).Str("output", output).Msg("invoking yt-dlp")

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return "", err
	}

	// Post-processing can rename the file the progress events reported, so
	// prefer the path from the extracted info when yt-dlp exposes it.
	if result != nil {
		if info, infoErr := result.GetExtractedInfo(); infoErr == nil && len(info) > 0 && info[0].Filename != nil {
			return *info[0].Filename, nil
		}
	}
	return "", nil
}
