package kernsim

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/kernsim/kernsim/internal/tracediff"
	"github.com/kernsim/kernsim/model"
	"github.com/kernsim/kernsim/progress"
	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_SimulateSingleProcess(t *testing.T) {
	var out bytes.Buffer
	srv := New(WithOutput(&out))

	workload, err := srv.Runtime().ParseWorkload([]byte("1\n1 3\n"))
	require.NoError(t, err)

	run, err := srv.Runtime().Simulate(context.Background(), workload)
	require.NoError(t, err)

	expected := "Interrupt 1:\n" +
		"PID 1: Running, at pc 2\n" +
		"Interrupt 2:\n" +
		"PID 1: Terminated, at pc 3\n" +
		"All processes completed.\n"
	if diff := tracediff.Unified(expected, out.String()); diff != "" {
		t.Errorf("trace mismatch:\n%s", diff)
	}
	assert.Equal(t, 2, run.Steps)
	require.NotNil(t, run.Final)
	assert.Equal(t, 1, run.Final.Terminated())
}

func TestRuntime_SimulateTwoProcesses(t *testing.T) {
	var out bytes.Buffer
	srv := New(WithOutput(&out))

	workload, err := srv.Runtime().ParseWorkload([]byte("2\n1 4\n2 2\n"))
	require.NoError(t, err)

	run, err := srv.Runtime().Simulate(context.Background(), workload)
	require.NoError(t, err)

	expected := "Interrupt 1:\n" +
		"PID 1: Running, at pc 2\n" +
		"PID 2: Ready, at pc 0\n" +
		"Interrupt 2:\n" +
		"PID 1: Ready, at pc 2\n" +
		"PID 2: Terminated, at pc 2\n" +
		"Interrupt 3:\n" +
		"PID 1: Terminated, at pc 4\n" +
		"PID 2: Terminated, at pc 2\n" +
		"All processes completed.\n"
	if diff := tracediff.Unified(expected, out.String()); diff != "" {
		t.Errorf("trace mismatch:\n%s", diff)
	}
	assert.Equal(t, 3, run.Steps)
	assert.Len(t, run.Trace, 3)
}

func TestRuntime_SimulateArchivesRun(t *testing.T) {
	srv := New(WithOutput(nil))
	ctx := context.Background()

	workload, err := srv.Runtime().ParseWorkload([]byte("1\n7 2\n"))
	require.NoError(t, err)

	run, err := srv.Runtime().Simulate(ctx, workload)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.NotNil(t, run.FinishedAt)

	archived, err := srv.Runtime().Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Steps, archived.Steps)

	runs, err := srv.Runtime().Runs(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRuntime_WorkloadQuantumOverridesDefault(t *testing.T) {
	srv := New(WithOutput(nil), WithQuantum(3))

	workload := model.NewWorkload("override").AddProcess(1, 2)
	workload.Quantum = 1

	run, err := srv.Runtime().Simulate(context.Background(), workload)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Quantum)
	assert.Equal(t, 2, run.Steps)
}

func TestRuntime_InvalidWorkloadProducesNoOutput(t *testing.T) {
	var out bytes.Buffer
	srv := New(WithOutput(&out))

	workload := model.NewWorkload("invalid").
		AddProcess(5, 3).
		AddProcess(5, 1)

	_, err := srv.Runtime().Simulate(context.Background(), workload)
	assert.ErrorIs(t, err, model.ErrDuplicatePID)
	assert.Empty(t, out.String(), "a rejected workload must not emit any trace")
}

func TestService_OnSnapshot(t *testing.T) {
	srv := New(WithOutput(nil))

	events := make(chan *event.Event[sim.Snapshot], 16)
	listener := srv.OnSnapshot(func(e *event.Event[sim.Snapshot]) {
		events <- e
	})
	defer listener.Stop()

	workload, err := srv.Runtime().ParseWorkload([]byte("2\n1 4\n2 2\n"))
	require.NoError(t, err)
	_, err = srv.Runtime().Simulate(context.Background(), workload)
	require.NoError(t, err)

	var steps, completed int
	for steps+completed < 4 {
		select {
		case e := <-events:
			switch e.Context.EventType {
			case event.TypeStep:
				steps++
			case event.TypeCompleted:
				completed++
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for events, got %d step and %d completed", steps, completed)
		}
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, completed)
}

func TestService_ProgressHandler(t *testing.T) {
	var last progress.Progress
	srv := New(WithOutput(nil), WithProgressHandler(func(p progress.Progress) {
		last = p
	}))

	workload, err := srv.Runtime().ParseWorkload([]byte("2\n1 4\n2 2\n"))
	require.NoError(t, err)
	_, err = srv.Runtime().Simulate(context.Background(), workload)
	require.NoError(t, err)

	assert.Equal(t, 3, last.Steps)
	assert.Equal(t, 6, last.WorkDone)
	assert.Equal(t, 2, last.Terminated)
	assert.True(t, last.Done())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, (&Config{}).Validate())
}
