package kernsim

import (
	"io"

	"github.com/kernsim/kernsim/progress"
	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/dao"
	"github.com/kernsim/kernsim/service/event"
	"github.com/kernsim/kernsim/service/loader"
	"github.com/kernsim/kernsim/service/messaging"
	"github.com/kernsim/kernsim/service/report"
	"github.com/kernsim/kernsim/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the simulator service.
type Option func(s *Service)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithQuantum sets the default scheduling quantum. A workload-level quantum
// still takes precedence.
func WithQuantum(quantum int) Option {
	return func(s *Service) {
		s.config.Scheduler.Quantum = quantum
	}
}

// WithOutput sets the writer receiving the rendered trace. Passing nil
// silences the trace output (the recorder still captures snapshots).
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
		s.outputSet = true
	}
}

// WithRunDAO sets the run archive.
func WithRunDAO(dao dao.Service[string, sim.Run]) Option {
	return func(s *Service) {
		s.runtime.runDAO = dao
	}
}

// WithEventQueue sets the queue carrying snapshot events.
func WithEventQueue(queue messaging.Queue[event.Event[sim.Snapshot]]) Option {
	return func(s *Service) {
		s.eventQueue = queue
	}
}

// WithLoader sets the workload loader.
func WithLoader(service *loader.Service) Option {
	return func(s *Service) {
		s.runtime.loader = service
	}
}

// WithReporter attaches an additional reporter to every simulated run, on
// top of the trace writer and the run recorder.
func WithReporter(reporter report.Reporter) Option {
	return func(s *Service) {
		s.runtime.reporters = append(s.runtime.reporters, reporter)
	}
}

// WithProgressHandler registers a callback invoked after every scheduling
// step with the updated run counters.
func WithProgressHandler(handler func(progress.Progress)) Option {
	return func(s *Service) {
		s.runtime.onChange = handler
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times - the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter. The function is
// safe to call multiple times - the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
