package kernsim

import (
	"io"
	"os"

	"github.com/kernsim/kernsim/runtime/scheduler"
	"github.com/kernsim/kernsim/runtime/sim"
	rmemory "github.com/kernsim/kernsim/service/dao/run/memory"
	"github.com/kernsim/kernsim/service/event"
	"github.com/kernsim/kernsim/service/loader"
	"github.com/kernsim/kernsim/service/messaging"
	mmemory "github.com/kernsim/kernsim/service/messaging/memory"
)

// Service wires the workload loader, the scheduler and the run archive
// behind a single entry point. Snapshot events are published only when an
// event queue is configured or a snapshot listener is registered.
type Service struct {
	runtime    *Runtime
	config     *Config
	output     io.Writer
	outputSet  bool
	eventQueue messaging.Queue[event.Event[sim.Snapshot]]
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.runtime.quantum = s.config.Scheduler.Quantum
	s.runtime.output = s.output
	if s.eventQueue != nil {
		s.runtime.publisher = event.NewPublisher(s.eventQueue)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.config.Scheduler.Quantum == 0 {
		s.config.Scheduler.Quantum = scheduler.DefaultQuantum
	}
	if !s.outputSet {
		s.output = os.Stdout
	}
	if s.runtime.loader == nil {
		s.runtime.loader = loader.New()
	}
	if s.runtime.runDAO == nil {
		s.runtime.runDAO = rmemory.New()
	}
}

// Runtime returns the simulation runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// OnSnapshot registers a handler invoked for every step event and the final
// completion event, consuming from the configured event queue in the
// background. Call Stop on the returned listener to detach it.
func (s *Service) OnSnapshot(handler func(*event.Event[sim.Snapshot])) *event.Listener[sim.Snapshot] {
	if s.eventQueue == nil {
		s.eventQueue = mmemory.NewQueue[event.Event[sim.Snapshot]](mmemory.DefaultConfig())
		s.runtime.publisher = event.NewPublisher(s.eventQueue)
	}
	listener := event.NewListener(s.runtime.publisher, handler)
	listener.Start()
	return listener
}

// New creates a simulator service with the supplied options.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}, config: DefaultConfig()}
	ret.init(options)
	return ret
}
