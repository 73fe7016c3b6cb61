// Package examples runs worked unit computations: average speeds, a
// filling box, a discharging capacitor and a tour of unit display.
package examples

import (
	"fmt"
	"io"
	"sort"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/pkg/core/config"
)

// Runner executes examples against a writer
type Runner struct {
	p      *Printer
	cfg    config.ExamplesConfig
	logger *mdwlog.Logger
}

// NewRunner creates a runner printing to w. A nil logger discards logs.
func NewRunner(w io.Writer, cfg *config.Config, logger *mdwlog.Logger) *Runner {
	if logger == nil {
		logger = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Output: io.Discard})
	}
	return &Runner{
		p:      NewPrinter(w, cfg.Output),
		cfg:    cfg.Examples,
		logger: logger.WithName("examples"),
	}
}

var examples = map[string]func(*Runner) error{
	"hello":     (*Runner).Hello,
	"box":       (*Runner).Box,
	"capacitor": (*Runner).Capacitor,
	"response":  (*Runner).Response,
}

// Names returns the example names in sorted order
func Names() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named example
func (r *Runner) Run(name string) error {
	fn, ok := examples[name]
	if !ok {
		return mdwerror.Newf("unknown example %q", name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("examples.Run").
			WithDetail("available", Names())
	}

	timer := r.logger.StartTimer(name).WithLevel(mdwlog.LevelDebug)
	if err := fn(r); err != nil {
		timer.StopWithError(err)
		return fmt.Errorf("example %s: %w", name, err)
	}
	timer.Stop()
	return nil
}
