package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/event"
	"github.com/kernsim/kernsim/service/messaging/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *sim.Snapshot {
	return &sim.Snapshot{
		Step: 1,
		Processes: []sim.ProcessStatus{
			{PID: 1, State: sim.StateRunning, PC: 2},
			{PID: 2, State: sim.StateReady, PC: 0},
		},
	}
}

func TestWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)
	ctx := context.Background()

	require.NoError(t, writer.ReportStep(ctx, sampleSnapshot()))
	require.NoError(t, writer.ReportCompletion(ctx))

	expected := "Interrupt 1:\n" +
		"PID 1: Running, at pc 2\n" +
		"PID 2: Ready, at pc 0\n" +
		"All processes completed.\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormat_EmptySnapshot(t *testing.T) {
	// Degenerate empty-queue steps still render a header.
	assert.Equal(t, "Interrupt 4:\n", Format(&sim.Snapshot{Step: 4}))
}

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	ctx := context.Background()

	require.NoError(t, recorder.ReportStep(ctx, sampleSnapshot()))
	assert.False(t, recorder.Completed())
	require.NoError(t, recorder.ReportCompletion(ctx))
	assert.True(t, recorder.Completed())
	assert.Len(t, recorder.Trace(), 1)
}

func TestMulti_FansOut(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewRecorder()
	multi := Multi{NewWriter(&buf), recorder}
	ctx := context.Background()

	require.NoError(t, multi.ReportStep(ctx, sampleSnapshot()))
	require.NoError(t, multi.ReportCompletion(ctx))

	assert.Contains(t, buf.String(), "Interrupt 1:")
	assert.True(t, recorder.Completed())
}

func TestEvents_PublishesSteps(t *testing.T) {
	queue := memory.NewQueue[event.Event[sim.Snapshot]](memory.DefaultConfig())
	publisher := event.NewPublisher(queue)
	events := NewEvents(publisher, "run-1", "basic")
	ctx := context.Background()

	require.NoError(t, events.ReportStep(ctx, sampleSnapshot()))
	require.NoError(t, events.ReportCompletion(ctx))

	stepEvent, err := publisher.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, event.TypeStep, stepEvent.Context.EventType)
	assert.Equal(t, 1, stepEvent.Context.Step)
	assert.Equal(t, sim.StateRunning, stepEvent.Data.Processes[0].State)

	completedEvent, err := publisher.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, event.TypeCompleted, completedEvent.Context.EventType)
}

func TestFormatTrace(t *testing.T) {
	trace := FormatTrace([]*sim.Snapshot{sampleSnapshot()})
	assert.Equal(t, Format(sampleSnapshot())+"All processes completed.\n", trace)
}
