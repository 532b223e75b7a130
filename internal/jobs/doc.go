// Package jobs implements the download job orchestration core: the
// mutex-guarded job registry, the dispatcher that accepts requests and
// launches one worker goroutine per job, and the progress adapter that
// translates engine events into registry updates.
package jobs
