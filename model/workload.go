package model

import (
	"errors"
	"fmt"
)

// Validation errors shared by the workload model and the process registry.
// Sentinel variables allow callers to reliably detect error conditions via
// errors.Is instead of brittle string comparisons.
var (
	// ErrInvalidPID indicates a non-positive process identifier.
	ErrInvalidPID = errors.New("model: invalid pid")

	// ErrInvalidWork indicates a non-positive total work value.
	ErrInvalidWork = errors.New("model: invalid work")

	// ErrDuplicatePID indicates a process identifier seen more than once.
	ErrDuplicatePID = errors.New("model: duplicate pid")
)

// ProcessSpec declares a single process to simulate: its identifier and the
// total units of work it needs to reach termination.
type ProcessSpec struct {
	PID  int `json:"pid" yaml:"pid"`
	Work int `json:"work" yaml:"work"`
}

// Validate checks the per-process invariants.
func (p *ProcessSpec) Validate() error {
	if p.PID <= 0 {
		return fmt.Errorf("pid %d: %w", p.PID, ErrInvalidPID)
	}
	if p.Work <= 0 {
		return fmt.Errorf("pid %d: work %d: %w", p.PID, p.Work, ErrInvalidWork)
	}
	return nil
}

// Workload describes a complete simulation input: the set of processes to
// schedule and an optional quantum override. Workloads are immutable once
// handed to the runtime.
type Workload struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Quantum   int            `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes []*ProcessSpec `json:"processes" yaml:"processes"`
}

// NewWorkload creates a named, empty workload.
func NewWorkload(name string) *Workload {
	return &Workload{Name: name}
}

// AddProcess appends a process declaration and returns the workload for
// chaining.
func (w *Workload) AddProcess(pid, work int) *Workload {
	w.Processes = append(w.Processes, &ProcessSpec{PID: pid, Work: work})
	return w
}

// Validate checks the whole workload: at least one process, every process
// valid, no duplicate pid, quantum (when set) positive. The first violation
// is returned.
func (w *Workload) Validate() error {
	if w == nil {
		return fmt.Errorf("workload is nil")
	}
	if len(w.Processes) == 0 {
		return fmt.Errorf("workload has no processes")
	}
	if w.Quantum < 0 {
		return fmt.Errorf("quantum %d must be positive", w.Quantum)
	}
	seen := make(map[int]bool, len(w.Processes))
	for _, spec := range w.Processes {
		if err := spec.Validate(); err != nil {
			return err
		}
		if seen[spec.PID] {
			return fmt.Errorf("pid %d: %w", spec.PID, ErrDuplicatePID)
		}
		seen[spec.PID] = true
	}
	return nil
}

// TotalWork returns the sum of work units across all declared processes.
func (w *Workload) TotalWork() int {
	total := 0
	for _, spec := range w.Processes {
		total += spec.Work
	}
	return total
}
