package event

import "time"

// Event types published by the simulator.
const (
	TypeStep      = "step"
	TypeCompleted = "completed"
)

// Context identifies where an event originated.
type Context struct {
	RunID     string `json:"runID"`
	Workload  string `json:"workload,omitempty"`
	EventType string `json:"eventType"`
	Step      int    `json:"step,omitempty"`
}

// Event carries a typed payload together with its origin and metadata.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

// NewEvent creates an event for the given context and payload.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
