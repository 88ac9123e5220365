package sim

// State represents the execution state of a simulated process. The literal
// values appear verbatim in the reported trace.
type State string

const (
	// StateReady marks a process eligible to run, waiting in the ready queue.
	StateReady State = "Ready"

	// StateRunning marks the process currently holding the CPU. At most one
	// PCB is Running at any instant (single-core model).
	StateRunning State = "Running"

	// StateTerminated marks a process whose program counter reached its total
	// work. Terminal: no further transitions.
	StateTerminated State = "Terminated"
)

// PCB is the process control block: identity, state and progress of one
// simulated process. PID and TotalWork are fixed at creation; State and PC
// are mutated only by the scheduler that owns the registry.
type PCB struct {
	PID       int   `json:"pid"`
	State     State `json:"state"`
	PC        int   `json:"pc"`
	TotalWork int   `json:"totalWork"`
}

func newPCB(pid, totalWork int) *PCB {
	return &PCB{PID: pid, State: StateReady, TotalWork: totalWork}
}

// Advance executes the process for up to quantum units of work and returns
// the units actually consumed: min(quantum, remaining). When the program
// counter reaches TotalWork the PCB transitions to Terminated. Advancing a
// terminated PCB is a no-op.
func (p *PCB) Advance(quantum int) int {
	if p.State == StateTerminated {
		return 0
	}
	done := p.TotalWork - p.PC
	if quantum < done {
		done = quantum
	}
	if done < 0 {
		done = 0
	}
	p.PC += done
	if p.PC >= p.TotalWork {
		p.State = StateTerminated
	}
	return done
}

// Remaining returns the units of work still needed to terminate.
func (p *PCB) Remaining() int {
	return p.TotalWork - p.PC
}

// Terminated reports whether the process reached its terminal state.
func (p *PCB) Terminated() bool {
	return p.State == StateTerminated
}
