// Package kernsim provides a deterministic round-robin CPU scheduling
// simulator.
//
// A workload declares a set of processes, each with a pid and a total amount
// of work. The scheduler visits the ready queue in FIFO order, executes the
// head process for up to one quantum and emits a snapshot of every process
// after each step. The layers are pluggable:
//
//   - loader    - workload parsing (plain text and YAML)
//   - scheduler - the stepping loop and ready queue
//   - report    - trace rendering, recording and event fan-out
//   - dao       - run archival (in-memory or file system)
//
// Kernsim is designed to be embedded in host applications. End-users
// typically interact with the simulator via the high-level Service facade
// exposed by the root package:
//
//	srv := kernsim.New()
//	rt := srv.Runtime()
//	workload, _ := rt.ParseWorkload(data)
//	run, _ := rt.Simulate(ctx, workload)
//
// For more details see the README and individual sub-packages.
package kernsim
