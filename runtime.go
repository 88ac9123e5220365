package kernsim

import (
	"context"
	"fmt"
	"io"

	"github.com/kernsim/kernsim/internal/clock"
	"github.com/kernsim/kernsim/internal/idgen"
	"github.com/kernsim/kernsim/model"
	"github.com/kernsim/kernsim/progress"
	"github.com/kernsim/kernsim/runtime/scheduler"
	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/dao"
	"github.com/kernsim/kernsim/service/event"
	"github.com/kernsim/kernsim/service/loader"
	"github.com/kernsim/kernsim/service/report"
)

// Runtime represents a simulation runtime: it loads workloads, drives them
// to completion and archives the resulting runs.
type Runtime struct {
	loader    *loader.Service
	runDAO    dao.Service[string, sim.Run]
	publisher *event.Publisher[sim.Snapshot]
	output    io.Writer
	quantum   int
	onChange  func(progress.Progress)
	reporters []report.Reporter
}

// LoadWorkload loads a YAML workload from any afs-supported URL.
func (r *Runtime) LoadWorkload(ctx context.Context, URL string) (*model.Workload, error) {
	return r.loader.Load(ctx, URL)
}

// ParseWorkload parses a plain text workload definition.
func (r *Runtime) ParseWorkload(data []byte) (*model.Workload, error) {
	return r.loader.Parse(data)
}

// ReadWorkload consumes the reader fully and parses it as a text workload.
func (r *Runtime) ReadWorkload(rd io.Reader) (*model.Workload, error) {
	return r.loader.Read(rd)
}

// Simulate runs the workload to completion and archives the resulting run.
// The trace is written to the configured output as the run progresses; a
// workload that fails validation produces no output at all. A workload-level
// quantum overrides the runtime default.
func (r *Runtime) Simulate(ctx context.Context, workload *model.Workload) (*sim.Run, error) {
	if workload == nil {
		return nil, fmt.Errorf("workload is nil")
	}
	registry, err := sim.NewRegistryFromWorkload(workload)
	if err != nil {
		return nil, err
	}
	quantum := r.quantum
	if workload.Quantum > 0 {
		quantum = workload.Quantum
	}

	run := &sim.Run{
		ID:        idgen.New(),
		Workload:  workload.Name,
		Quantum:   quantum,
		StartedAt: clock.Now(),
	}

	recorder := report.NewRecorder()
	reporters := report.Multi{recorder}
	if r.output != nil {
		reporters = append(reporters, report.NewWriter(r.output))
	}
	if r.publisher != nil {
		reporters = append(reporters, report.NewEvents(r.publisher, run.ID, workload.Name))
	}
	reporters = append(reporters, r.reporters...)

	ctx, _ = progress.WithNewTracker(ctx, run.ID, workload.Name, len(workload.Processes), workload.TotalWork(), r.onChange)

	service, err := scheduler.New(registry,
		scheduler.WithQuantum(quantum),
		scheduler.WithReporter(reporters))
	if err != nil {
		return nil, err
	}
	if err = service.Run(ctx); err != nil {
		return nil, err
	}

	finished := clock.Now()
	run.FinishedAt = &finished
	run.Steps = service.Steps()
	run.Trace = recorder.Trace()
	if n := len(run.Trace); n > 0 {
		run.Final = run.Trace[n-1]
	}
	if err = r.runDAO.Save(ctx, run); err != nil {
		return run, fmt.Errorf("failed to archive run %v: %w", run.ID, err)
	}
	return run, nil
}

// Run returns an archived run.
func (r *Runtime) Run(ctx context.Context, id string) (*sim.Run, error) {
	return r.runDAO.Load(ctx, id)
}

// Runs lists archived runs ordered by start time.
func (r *Runtime) Runs(ctx context.Context) ([]*sim.Run, error) {
	return r.runDAO.List(ctx)
}
