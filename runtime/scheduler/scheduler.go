// Package scheduler implements the deterministic round-robin stepping loop:
// dequeue the head of the ready queue, execute it for up to one quantum,
// report the post-execution snapshot, then requeue or retire the process.
// Quantum-based round robin with no priority gives starvation-free, fair CPU
// sharing - every ready process advances by at most one quantum per visit
// and queue order preserves arrival/re-insertion order.
package scheduler

import (
	"context"
	"fmt"

	"github.com/kernsim/kernsim/progress"
	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/tracing"
)

// DefaultQuantum is the number of work units a process may execute before
// mandatory preemption, unless overridden.
const DefaultQuantum = 2

// Reporter receives the snapshot emitted after every scheduling step and a
// single completion notification once all processes have terminated.
type Reporter interface {
	// ReportStep observes the post-execution registry state of one step,
	// before the preempted process is requeued.
	ReportStep(ctx context.Context, snapshot *sim.Snapshot) error

	// ReportCompletion is invoked exactly once, after the final step.
	ReportCompletion(ctx context.Context) error
}

// Option customises a scheduler Service.
type Option func(s *Service)

// WithQuantum sets the scheduling quantum.
func WithQuantum(quantum int) Option {
	return func(s *Service) { s.quantum = quantum }
}

// WithReporter sets the step reporter.
func WithReporter(reporter Reporter) Option {
	return func(s *Service) { s.reporter = reporter }
}

// Service owns the ready queue and drives a registry to completion. It is
// single-threaded and fully synchronous: one sequential loop, no suspension
// points, no mutation of the registry from outside once started.
type Service struct {
	registry *sim.Registry
	queue    *readyQueue
	reporter Reporter
	quantum  int
	step     int
}

// New creates a scheduler over a validated registry. All Ready processes are
// enqueued in their creation order. The scheduler itself has no recoverable
// error paths once given a valid registry - unique pids and positive work
// are enforced at registry construction, upstream of this service.
func New(registry *sim.Registry, options ...Option) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	s := &Service{
		registry: registry,
		queue:    &readyQueue{},
		quantum:  DefaultQuantum,
	}
	for _, option := range options {
		option(s)
	}
	if s.quantum <= 0 {
		return nil, fmt.Errorf("quantum %d must be positive", s.quantum)
	}
	for _, pid := range registry.PIDs() {
		if pcb := registry.Lookup(pid); pcb != nil && pcb.State == sim.StateReady {
			s.queue.Enqueue(pid)
		}
	}
	return s, nil
}

// Step performs one discrete scheduling iteration and returns the snapshot
// it reported. The sequence is an explicit three-phase contract: apply
// execution, emit observation, apply requeue/terminate - the snapshot shows
// the selected process as Running (or Terminated) before it is requeued.
func (s *Service) Step(ctx context.Context) (*sim.Snapshot, error) {
	s.step++

	var current *sim.PCB
	workDone := 0
	if pid, ok := s.queue.Dequeue(); ok {
		current = s.registry.Lookup(pid)
		current.State = sim.StateRunning
		workDone = current.Advance(s.quantum)
	}
	// An empty queue with unterminated processes cannot occur while every
	// process is CPU-bound, but the step still observes the registry and
	// loops rather than crashing (future blocking states would reach this).

	snapshot := s.registry.Snapshot(s.step)
	if s.reporter != nil {
		if err := s.reporter.ReportStep(ctx, snapshot); err != nil {
			return nil, err
		}
	}

	delta := progress.Delta{Steps: 1, WorkDone: workDone}
	if current != nil {
		if current.Terminated() {
			delta.Terminated = 1
		} else {
			current.State = sim.StateReady
			s.queue.Enqueue(current.PID)
		}
	}
	progress.UpdateCtx(ctx, delta)
	return snapshot, nil
}

// Run steps the simulation until every process has terminated, then notifies
// the reporter exactly once. Deterministic: the same registry contents,
// insertion order and quantum always produce the same trace.
func (s *Service) Run(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "scheduler.Run", "INTERNAL")
	defer tracing.EndSpan(span, err)
	span.WithAttributes(map[string]string{
		"scheduler.quantum":   fmt.Sprintf("%d", s.quantum),
		"scheduler.processes": fmt.Sprintf("%d", s.registry.Len()),
	})

	for !s.registry.AllTerminated() {
		if _, err = s.Step(ctx); err != nil {
			return err
		}
	}
	if s.reporter != nil {
		err = s.reporter.ReportCompletion(ctx)
	}
	return err
}

// Steps returns the number of steps taken so far.
func (s *Service) Steps() int {
	return s.step
}

// Quantum returns the configured scheduling quantum.
func (s *Service) Quantum() int {
	return s.quantum
}
