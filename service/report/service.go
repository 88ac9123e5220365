// Package report renders and fans out the per-step trace emitted by the
// scheduler. The Writer reproduces the canonical interrupt-table format; the
// Recorder captures snapshots for archival; Events taps the trace onto a
// message queue for external observers.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kernsim/kernsim/runtime/sim"
)

// Reporter observes per-step snapshots and the final completion notice.
// It mirrors the narrow contract the scheduler consumes.
type Reporter interface {
	ReportStep(ctx context.Context, snapshot *sim.Snapshot) error
	ReportCompletion(ctx context.Context) error
}

// completedLine is emitted exactly once, after the final step.
const completedLine = "All processes completed.\n"

// Writer renders each snapshot as an interrupt block:
//
//	Interrupt <t>:
//	PID <pid>: <State>, at pc <progress>
//
// one line per process, ascending by pid, followed by a single trailing
// completion line once the run finishes.
type Writer struct {
	w io.Writer
}

// NewWriter creates a trace writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) ReportStep(_ context.Context, snapshot *sim.Snapshot) error {
	_, err := io.WriteString(r.w, Format(snapshot))
	return err
}

func (r *Writer) ReportCompletion(_ context.Context) error {
	_, err := io.WriteString(r.w, completedLine)
	return err
}

// Format renders one snapshot as its interrupt block.
func Format(snapshot *sim.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interrupt %d:\n", snapshot.Step)
	for _, status := range snapshot.Processes {
		fmt.Fprintf(&b, "PID %d: %s, at pc %d\n", status.PID, status.State, status.PC)
	}
	return b.String()
}

// FormatTrace renders a full run trace including the completion line.
func FormatTrace(snapshots []*sim.Snapshot) string {
	var b strings.Builder
	for _, snapshot := range snapshots {
		b.WriteString(Format(snapshot))
	}
	b.WriteString(completedLine)
	return b.String()
}

// Recorder captures the emitted snapshots in order, for archival and tests.
type Recorder struct {
	snapshots []*sim.Snapshot
	completed bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ReportStep(_ context.Context, snapshot *sim.Snapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *Recorder) ReportCompletion(_ context.Context) error {
	r.completed = true
	return nil
}

// Trace returns the captured snapshots in emission order.
func (r *Recorder) Trace() []*sim.Snapshot {
	return r.snapshots
}

// Completed reports whether the completion notice was observed.
func (r *Recorder) Completed() bool {
	return r.completed
}

// Multi fans every notification out to each reporter in order; the first
// error stops the fan-out.
type Multi []Reporter

func (m Multi) ReportStep(ctx context.Context, snapshot *sim.Snapshot) error {
	for _, reporter := range m {
		if err := reporter.ReportStep(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) ReportCompletion(ctx context.Context) error {
	for _, reporter := range m {
		if err := reporter.ReportCompletion(ctx); err != nil {
			return err
		}
	}
	return nil
}
