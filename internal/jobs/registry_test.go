package jobs

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestUpsertCreatesQueuedDefault(t *testing.T) {
	reg := NewRegistry()

	job := reg.Upsert("j1", Patch{})
	if job.JobID != "j1" {
		t.Fatalf("JobID = %q", job.JobID)
	}
	if job.Status != StatusQueued {
		t.Fatalf("Status = %q, want queued", job.Status)
	}
	if job.Progress != 0 {
		t.Fatalf("Progress = %d, want 0", job.Progress)
	}
}

func TestUpsertReturnsSnapshot(t *testing.T) {
	reg := NewRegistry()

	snap := reg.Upsert("j1", Patch{Message: strPtr("first")})
	reg.Upsert("j1", Patch{Message: strPtr("second")})

	if snap.Message != "first" {
		t.Fatalf("snapshot mutated: %q", snap.Message)
	}
	cur, ok := reg.Get("j1")
	if !ok || cur.Message != "second" {
		t.Fatalf("current record = %+v", cur)
	}
}

func TestGetUnknownJob(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get("missing"); ok {
		t.Fatal("expected absent job")
	}
}

func TestStatusNeverMovesBackward(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("j1", Patch{Status: statusPtr(StatusProcessing)})

	job := reg.Upsert("j1", Patch{Status: statusPtr(StatusDownloading)})
	if job.Status != StatusProcessing {
		t.Fatalf("Status regressed to %q", job.Status)
	}
	job = reg.Upsert("j1", Patch{Status: statusPtr(StatusQueued)})
	if job.Status != StatusProcessing {
		t.Fatalf("Status regressed to %q", job.Status)
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("done", Patch{Status: statusPtr(StatusFinished)})
	if job := reg.Upsert("done", Patch{Status: statusPtr(StatusError)}); job.Status != StatusFinished {
		t.Fatalf("finished flipped to %q", job.Status)
	}

	reg.Upsert("broken", Patch{Status: statusPtr(StatusError)})
	if job := reg.Upsert("broken", Patch{Status: statusPtr(StatusFinished)}); job.Status != StatusError {
		t.Fatalf("error flipped to %q", job.Status)
	}
}

func TestProgressClampedAndMonotoneWhileDownloading(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("j1", Patch{Status: statusPtr(StatusDownloading), Progress: intPtr(40)})

	if job := reg.Upsert("j1", Patch{Progress: intPtr(25)}); job.Progress != 40 {
		t.Fatalf("progress regressed to %d", job.Progress)
	}
	if job := reg.Upsert("j1", Patch{Progress: intPtr(250)}); job.Progress != 100 {
		t.Fatalf("progress not clamped: %d", job.Progress)
	}
	if job := reg.Upsert("j1", Patch{Progress: intPtr(-5)}); job.Progress != 100 {
		t.Fatalf("negative progress accepted: %d", job.Progress)
	}
}

func TestProgressStaysPinnedAfterProcessing(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("j1", Patch{Status: statusPtr(StatusProcessing), Progress: intPtr(100)})

	// A second stream restarting its byte counters must not drag the
	// reported progress back down.
	if job := reg.Upsert("j1", Patch{Progress: intPtr(12)}); job.Progress != 100 {
		t.Fatalf("pinned progress regressed to %d", job.Progress)
	}
}

func TestProgressResetsOnError(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("j1", Patch{Status: statusPtr(StatusDownloading), Progress: intPtr(80)})

	job := reg.Upsert("j1", Patch{Status: statusPtr(StatusError), Progress: intPtr(0)})
	if job.Status != StatusError || job.Progress != 0 {
		t.Fatalf("error transition = %+v", job)
	}
}

func TestStartRejectsInFlightDuplicate(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Start("j1", Patch{}); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}
	reg.Upsert("j1", Patch{Status: statusPtr(StatusDownloading)})

	if _, err := reg.Start("j1", Patch{}); !errors.Is(err, ErrJobInFlight) {
		t.Fatalf("expected ErrJobInFlight, got %v", err)
	}
}

func TestStartReplacesTerminalRecord(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert("j1", Patch{Status: statusPtr(StatusError), Message: strPtr("boom")})

	job, err := reg.Start("j1", Patch{})
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if job.Status != StatusQueued || job.Message != "" {
		t.Fatalf("terminal record not replaced: %+v", job)
	}
}

func TestConcurrentJobsStayIndependent(t *testing.T) {
	reg := NewRegistry()
	const workers = 8
	const steps = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("job-%d", i)
			reg.Upsert(id, Patch{Status: statusPtr(StatusDownloading)})
			for p := 0; p <= steps; p++ {
				reg.Upsert(id, Patch{Progress: intPtr(p)})
			}
			reg.Upsert(id, Patch{Status: statusPtr(StatusFinished), Progress: intPtr(100)})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		job, ok := reg.Get(fmt.Sprintf("job-%d", i))
		if !ok {
			t.Fatalf("job-%d missing", i)
		}
		if job.Status != StatusFinished || job.Progress != 100 {
			t.Fatalf("job-%d inconsistent: %+v", i, job)
		}
	}
}
