package sim

import (
	"fmt"
	"sort"

	"github.com/kernsim/kernsim/model"
)

// Registry is the authoritative collection of PCBs for one simulation run.
// It is owned exclusively by the scheduler for the duration of the run; no
// external mutation is permitted once the simulation starts, so the registry
// carries no locking of its own. Snapshots are value copies and safe to hand
// to reporters or event listeners.
type Registry struct {
	pcbs  map[int]*PCB
	order []int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pcbs: map[int]*PCB{}}
}

// NewRegistryFromWorkload validates the workload and builds a registry with
// one Ready PCB per declared process, preserving declaration order.
func NewRegistryFromWorkload(workload *model.Workload) (*Registry, error) {
	if err := workload.Validate(); err != nil {
		return nil, err
	}
	registry := NewRegistry()
	for _, spec := range workload.Processes {
		if _, err := registry.Create(spec.PID, spec.Work); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Create inserts a new PCB in Ready state with a zero program counter. It
// fails with model.ErrDuplicatePID when the pid is already present, with
// model.ErrInvalidPID on a non-positive pid, and with model.ErrInvalidWork
// when totalWork is not positive.
func (r *Registry) Create(pid, totalWork int) (*PCB, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("pid %d: %w", pid, model.ErrInvalidPID)
	}
	if totalWork <= 0 {
		return nil, fmt.Errorf("pid %d: work %d: %w", pid, totalWork, model.ErrInvalidWork)
	}
	if _, ok := r.pcbs[pid]; ok {
		return nil, fmt.Errorf("pid %d: %w", pid, model.ErrDuplicatePID)
	}
	pcb := newPCB(pid, totalWork)
	r.pcbs[pid] = pcb
	r.order = append(r.order, pid)
	return pcb, nil
}

// Lookup returns the PCB for the given pid, or nil when absent.
func (r *Registry) Lookup(pid int) *PCB {
	return r.pcbs[pid]
}

// PIDs returns process identifiers in creation order.
func (r *Registry) PIDs() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered processes.
func (r *Registry) Len() int {
	return len(r.pcbs)
}

// AllTerminated returns true iff every PCB reached the Terminated state.
// Pure query, no side effects.
func (r *Registry) AllTerminated() bool {
	for _, pcb := range r.pcbs {
		if pcb.State != StateTerminated {
			return false
		}
	}
	return true
}

// Snapshot produces a read-only, ordered-by-pid view of all PCBs tagged with
// the given step number. Calling it twice without an intervening scheduler
// step yields identical results.
func (r *Registry) Snapshot(step int) *Snapshot {
	processes := make([]ProcessStatus, 0, len(r.pcbs))
	for _, pcb := range r.pcbs {
		processes = append(processes, ProcessStatus{PID: pcb.PID, State: pcb.State, PC: pcb.PC})
	}
	sort.Slice(processes, func(i, j int) bool { return processes[i].PID < processes[j].PID })
	return &Snapshot{Step: step, Processes: processes}
}
