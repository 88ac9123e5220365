// Package progress provides a lightweight tracker that keeps aggregated
// scheduling counters (steps taken, work done, processes terminated) for a
// single simulation run. The tracker instance lives in the run context -
// every component that receives the context can update the counters via the
// Delta helper without requiring a global registry.

package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the scheduler
// after each step.
type Delta struct {
	Steps      int
	WorkDone   int
	Terminated int
}

// Progress keeps aggregated counters for one simulation run. It is safe for
// concurrent use.
type Progress struct {
	// Identification - informative only, filled when the run starts.
	RunID     string
	Workload  string
	StartedAt time.Time

	// Inputs - fixed at run start.
	TotalProcesses int
	TotalWork      int

	// Counters - modified via Update().
	Steps      int
	WorkDone   int
	Terminated int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker. If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section so that the callback can perform slow
// operations (e.g. rendering, I/O) without blocking the scheduler.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.Steps += d.Steps
	p.WorkDone += d.WorkDone
	p.Terminated += d.Terminated
	snapshot := *p
	cb := p.onChange
	p.Unlock()
	// The copy was taken while the mutex was held; reset it so the
	// snapshot's own lock is usable.
	snapshot.Mutex = sync.Mutex{}

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	snapshot := *p
	p.Unlock()
	snapshot.Mutex = sync.Mutex{}
	return snapshot
}

// Done reports whether every declared process has terminated.
func (p *Progress) Done() bool {
	if p == nil {
		return false
	}
	p.Lock()
	defer p.Unlock()
	return p.TotalProcesses > 0 && p.Terminated == p.TotalProcesses
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback. Only one callback can be active; subsequent calls
// overwrite the previous value.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, runID, workload string, totalProcesses, totalWork int, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:          runID,
		Workload:       workload,
		StartedAt:      time.Now(),
		TotalProcesses: totalProcesses,
		TotalWork:      totalWork,
		onChange:       onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx. The second return
// value is false when the context carries no tracker.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot. The boolean return value is
// false when the context does not carry a tracker.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
