package jobs

import "sync"

// Patch holds the fields an upsert should overwrite. Nil fields are left
// untouched.
type Patch struct {
	Status      *Status
	Progress    *int
	Message     *string
	FilePath    *string
	DownloadURL *string
}

// Registry is the shared mapping from job id to job record. All access is
// serialized through one mutex held only for in-memory field copies, never
// across I/O. Entries live for the lifetime of the process.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

// Upsert creates a default queued record if the id is unknown, applies the
// patch and returns a snapshot copy. Callers never receive a live reference.
func (r *Registry) Upsert(jobID string, patch Patch) Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		job = &Job{JobID: jobID, Status: StatusQueued}
		r.jobs[jobID] = job
	}
	apply(job, patch)
	return *job
}

// Get returns a snapshot of the record for jobID, if present.
func (r *Registry) Get(jobID string) (Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Start seeds a fresh queued record for jobID. A non-terminal record already
// registered under the same id means another worker still owns it, so the
// seed is refused; a terminal record is replaced.
func (r *Registry) Start(jobID string, patch Patch) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.jobs[jobID]; ok && !existing.Status.Terminal() {
		return *existing, ErrJobInFlight
	}
	job := &Job{JobID: jobID, Status: StatusQueued}
	apply(job, patch)
	r.jobs[jobID] = job
	return *job, nil
}

// apply mutates job under the registry lock. Status changes that would move
// backward along the lifecycle are dropped and terminal records accept no
// further status. Progress only ever grows, except on the error transition
// which resets it; the engine restarts its byte counters for every stream it
// fetches, so raw percentages can regress.
func apply(job *Job, patch Patch) {
	if patch.Status != nil && !job.Status.Terminal() && patch.Status.rank() >= job.Status.rank() {
		job.Status = *patch.Status
	}
	if patch.Progress != nil {
		p := clampPercent(*patch.Progress)
		if p >= job.Progress || job.Status == StatusError {
			job.Progress = p
		}
	}
	if patch.Message != nil {
		job.Message = *patch.Message
	}
	if patch.FilePath != nil {
		job.FilePath = *patch.FilePath
	}
	if patch.DownloadURL != nil {
		job.DownloadURL = *patch.DownloadURL
	}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func statusPtr(s Status) *Status { return &s }
func intPtr(i int) *int          { return &i }
func strPtr(s string) *string    { return &s }
