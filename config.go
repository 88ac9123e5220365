package kernsim

import "fmt"

// Config is a serialisable representation of the simulator configuration. It
// can be populated from JSON, YAML, environment variables, etc. The
// zero-value is useful - all nested fields inherit their package defaults.

type Config struct {
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
}

type SchedulerConfig struct {
	// Quantum is the number of work units a process may execute before
	// mandatory preemption. A workload-level quantum takes precedence.
	Quantum int `json:"quantum" yaml:"quantum"`
}

// DefaultConfig returns a Config populated with the package defaults. Callers
// may modify the returned struct before passing it to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			Quantum: 2,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Scheduler.Quantum <= 0 {
		return fmt.Errorf("scheduler.quantum must be > 0")
	}
	return nil
}
