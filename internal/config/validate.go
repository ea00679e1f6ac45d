package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/tightbinding/repository"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

var (
	kinds     = []string{KindPrimitive, KindCircle, KindRectangle, KindPolygon, KindLine}
	solvers   = []string{SolverQR, SolverHouseholder}
	outputs   = []string{OutputTable, OutputMarkdown, OutputCSV}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// oneOf reports key=value as invalid unless value is in allowed.
func oneOf(key, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%s %q, want one of %v: %w", key, value, allowed, ErrInvalid)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := oneOf("lattice.preset", c.Lattice.Preset, repository.Presets); err != nil {
		return err
	}
	if c.Lattice.Constant < 0 {
		return fmt.Errorf("lattice.constant %g must be >= 0: %w", c.Lattice.Constant, ErrInvalid)
	}
	if c.Lattice.MinNeighbours < -1 {
		return fmt.Errorf("lattice.min_neighbours %d must be >= -1: %w", c.Lattice.MinNeighbours, ErrInvalid)
	}
	if err := oneOf("solver", c.Solver, solvers); err != nil {
		return err
	}
	if err := oneOf("log_level", c.LogLevel, logLevels); err != nil {
		return err
	}
	if err := oneOf("output", c.Output, outputs); err != nil {
		return err
	}
	if err := oneOf("region.kind", c.Region.Kind, kinds); err != nil {
		return err
	}
	return c.Region.validate()
}

// validate checks the fields the region kind reads.
func (r *RegionConfig) validate() error {
	if len(r.Offset) > 3 {
		return fmt.Errorf("region.offset has %d components, want at most 3: %w", len(r.Offset), ErrInvalid)
	}

	switch r.Kind {
	case KindPrimitive:
		if len(r.Size) == 0 || len(r.Size) > 3 {
			return fmt.Errorf("region.size has %d components, want 1 to 3: %w", len(r.Size), ErrInvalid)
		}
		for i, n := range r.Size {
			if n < 1 {
				return fmt.Errorf("region.size[%d] = %d must be >= 1: %w", i, n, ErrInvalid)
			}
		}
	case KindCircle:
		if r.Radius <= 0 {
			return fmt.Errorf("region.radius %g must be > 0: %w", r.Radius, ErrInvalid)
		}
	case KindRectangle:
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("region.width %g and region.height %g must be > 0: %w", r.Width, r.Height, ErrInvalid)
		}
	case KindLine:
		if r.Length <= 0 {
			return fmt.Errorf("region.length %g must be > 0: %w", r.Length, ErrInvalid)
		}
	case KindPolygon:
		if len(r.Vertices) < 3 {
			return fmt.Errorf("region.vertices has %d points, want at least 3: %w", len(r.Vertices), ErrInvalid)
		}
		for i, v := range r.Vertices {
			if len(v) < 2 || len(v) > 3 {
				return fmt.Errorf("region.vertices[%d] has %d components, want 2 or 3: %w", i, len(v), ErrInvalid)
			}
		}
	}
	return nil
}
