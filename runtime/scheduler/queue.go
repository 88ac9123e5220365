package scheduler

// readyQueue is the FIFO order of process identifiers eligible to run next.
// It stores pids only - PCBs live in the registry (arena+index), so the
// queue never duplicates or dangles process state. Invariant: it contains
// exactly the identifiers of all Ready processes, each exactly once, in the
// order they become eligible.
type readyQueue struct {
	pids []int
}

func (q *readyQueue) Enqueue(pid int) {
	q.pids = append(q.pids, pid)
}

func (q *readyQueue) Dequeue() (int, bool) {
	if len(q.pids) == 0 {
		return 0, false
	}
	pid := q.pids[0]
	q.pids = q.pids[1:]
	return pid, true
}

func (q *readyQueue) Len() int {
	return len(q.pids)
}
