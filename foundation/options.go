package foundation

import (
	"log/slog"

	"github.com/katalvlaran/tightbinding/linsolve"
)

// Option customizes Foundation construction.
// Option constructors panic on nil arguments; builders never panic.
type Option func(*config)

type config struct {
	solver       linsolve.Solver
	logger       *slog.Logger
	onInvalidate func(Site)
}

func defaultConfig() config {
	return config{
		solver:       linsolve.QR{},
		logger:       slog.Default(),
		onInvalidate: func(Site) {},
	}
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSolver replaces the linear solver used by FindBounds (default linsolve.QR).
func WithSolver(s linsolve.Solver) Option {
	if s == nil {
		panic("foundation: WithSolver(nil)")
	}
	return func(c *config) { c.solver = s }
}

// WithLogger sets the logger for construction and trimming records.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("foundation: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithOnInvalidate registers a hook called every time trimming flips a
// site to invalid, in flip order. The hook must not mutate the Foundation.
func WithOnInvalidate(fn func(Site)) Option {
	if fn == nil {
		panic("foundation: WithOnInvalidate(nil)")
	}
	return func(c *config) { c.onInvalidate = fn }
}
