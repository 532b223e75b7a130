package jobs

// Status enumerates job lifecycle states.
type Status string

const (
	// StatusQueued means the job was accepted but its worker has not
	// started the engine yet.
	StatusQueued Status = "queued"

	// StatusDownloading means the engine is retrieving media bytes.
	StatusDownloading Status = "downloading"

	// StatusProcessing means the engine wrote the raw file and is
	// post-processing it (muxing, audio extraction).
	StatusProcessing Status = "processing"

	// StatusFinished means the job completed successfully.
	StatusFinished Status = "finished"

	// StatusError means the job failed.
	StatusError Status = "error"
)

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// Terminal returns true once no further transitions can occur.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusError
}

// rank orders states along the lifecycle. Transitions never move backward;
// both terminal states share the highest rank.
func (s Status) rank() int {
	switch s {
	case StatusDownloading:
		return 1
	case StatusProcessing:
		return 2
	case StatusFinished, StatusError:
		return 3
	default:
		return 0
	}
}

// Job is the single mutable record tracked per download request. Snapshots of
// it are serialized verbatim on the /status wire.
type Job struct {
	JobID       string `json:"jobId"`
	Status      Status `json:"status"`
	Progress    int    `json:"progress"`
	Message     string `json:"message,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}
