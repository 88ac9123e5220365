package event

import (
	"context"
	"errors"
	"log"
)

// Listener consumes events from a publisher in the background and forwards
// them to a handler. It observes the simulation; it never feeds back into
// the synchronous scheduler loop.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	ctx       context.Context
	cancelFn  context.CancelFunc
}

// NewListener creates a stopped listener; call Start to begin consuming.
func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancelFn:  cancel,
	}
}

// Stop cancels the background consumer.
func (l *Listener[T]) Stop() {
	l.cancelFn()
}

// Start launches the background consumer goroutine.
func (l *Listener[T]) Start() {
	go func() {
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("event listener: failed to consume: %v", err)
				continue
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}
