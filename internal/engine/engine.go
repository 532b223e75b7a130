package engine

import "context"

// Mode selects what the engine should produce for a request.
type Mode string

const (
	// ModeVideo downloads best video+audio and remuxes into mp4.
	ModeVideo Mode = "video"

	// ModeAudio downloads best audio and extracts it to mp3.
	ModeAudio Mode = "audio"
)

// ParseMode maps a request payload value onto a Mode, defaulting to video.
func ParseMode(s string) Mode {
	if s == string(ModeAudio) {
		return ModeAudio
	}
	return ModeVideo
}

// EventKind identifies the progress event kinds this core understands. The
// engine may internally know more kinds; they are never surfaced.
type EventKind string

const (
	// EventDownloading carries byte counters while media is retrieved.
	EventDownloading EventKind = "downloading"

	// EventFinished reports the raw output filename before post-processing.
	EventFinished EventKind = "finished"
)

// Event is one progress notification emitted during a blocking download.
type Event struct {
	Kind            EventKind
	DownloadedBytes int64
	TotalBytes      int64
	Filename        string
}

// ProgressFunc receives progress events. The engine invokes it synchronously
// on its own goroutine, so implementations must not block.
type ProgressFunc func(Event)

// Request describes one download the engine should perform.
type Request struct {
	URL   string
	Mode  Mode
	Title string
}

// Engine performs the actual retrieval and format selection. Download blocks
// until the engine (including its post-processing step) is done and returns
// the final output path when the engine could resolve it.
type Engine interface {
	Download(ctx context.Context, req Request, progress ProgressFunc) (string, error)
}
