package sim

import "time"

// Run is the archived record of one completed simulation: identity, inputs,
// timing and the full emitted trace. Runs are written after the scheduler
// loop finishes; the loop itself never blocks on persistence.
type Run struct {
	ID         string      `json:"id"`
	Workload   string      `json:"workload,omitempty"`
	Quantum    int         `json:"quantum"`
	StartedAt  time.Time   `json:"startedAt"`
	FinishedAt *time.Time  `json:"finishedAt,omitempty"`
	Steps      int         `json:"steps"`
	Final      *Snapshot   `json:"final,omitempty"`
	Trace      []*Snapshot `json:"trace,omitempty"`
}

// CopyFrom updates the record from src. Used by the in-memory DAO to upsert
// without replacing the stored pointer.
func (r *Run) CopyFrom(src *Run) {
	if src == nil || src == r {
		return
	}
	r.Workload = src.Workload
	r.Quantum = src.Quantum
	r.StartedAt = src.StartedAt
	r.FinishedAt = src.FinishedAt
	r.Steps = src.Steps
	r.Final = src.Final
	r.Trace = src.Trace
}
