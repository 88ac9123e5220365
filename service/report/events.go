package report

import (
	"context"

	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/event"
)

// Events publishes every snapshot (and the completion notice) as events so
// external observers can follow a run without touching the synchronous
// trace path.
type Events struct {
	publisher *event.Publisher[sim.Snapshot]
	runID     string
	workload  string
}

// NewEvents creates an event-publishing reporter for the given run.
func NewEvents(publisher *event.Publisher[sim.Snapshot], runID, workload string) *Events {
	return &Events{publisher: publisher, runID: runID, workload: workload}
}

func (r *Events) ReportStep(ctx context.Context, snapshot *sim.Snapshot) error {
	return r.publisher.Publish(ctx, event.NewEvent(&event.Context{
		RunID:     r.runID,
		Workload:  r.workload,
		EventType: event.TypeStep,
		Step:      snapshot.Step,
	}, *snapshot))
}

func (r *Events) ReportCompletion(ctx context.Context) error {
	return r.publisher.Publish(ctx, event.NewEvent(&event.Context{
		RunID:     r.runID,
		Workload:  r.workload,
		EventType: event.TypeCompleted,
	}, sim.Snapshot{}))
}
