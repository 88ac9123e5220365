package sim

// ProcessStatus is the reported view of a single process at one time step.
type ProcessStatus struct {
	PID   int   `json:"pid"`
	State State `json:"state"`
	PC    int   `json:"pc"`
}

// Snapshot is the reported view of the whole registry at one time step,
// ordered ascending by pid. Snapshots are value copies detached from the
// registry: mutating the registry after the fact does not affect them.
type Snapshot struct {
	Step      int             `json:"step"`
	Processes []ProcessStatus `json:"processes"`
}

// Running returns the status of the process observed Running in this
// snapshot, or nil when the step was degenerate (empty ready queue).
func (s *Snapshot) Running() *ProcessStatus {
	for i := range s.Processes {
		if s.Processes[i].State == StateRunning {
			return &s.Processes[i]
		}
	}
	return nil
}

// Terminated counts processes observed Terminated in this snapshot.
func (s *Snapshot) Terminated() int {
	count := 0
	for i := range s.Processes {
		if s.Processes[i].State == StateTerminated {
			count++
		}
	}
	return count
}
