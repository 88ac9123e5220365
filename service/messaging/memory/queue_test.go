package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Step int
}

func TestQueue_PublishConsume(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, queue.Publish(ctx, &payload{Step: i}))
	}
	assert.Equal(t, 3, queue.Size())

	// FIFO order is preserved.
	for i := 1; i <= 3; i++ {
		msg, err := queue.Consume(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, msg.T().Step)
		require.NoError(t, msg.Ack())
		assert.Error(t, msg.Ack(), "double ack must fail")
	}
}

func TestQueue_NackRequeues(t *testing.T) {
	queue := NewQueue[payload](Config{MaxRetries: 1, QueueBuffer: 4})
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &payload{Step: 7}))

	msg, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, msg.Nack(fmt.Errorf("transient")))
	assert.Equal(t, 1, queue.Size())

	// Second failure exceeds MaxRetries and parks the message.
	msg, err = queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, msg.Nack(fmt.Errorf("again")))
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueue_ConsumeHonoursContext(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
