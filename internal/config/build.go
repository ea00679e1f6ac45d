package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/katalvlaran/tightbinding/linsolve"
	"github.com/katalvlaran/tightbinding/repository"
	"github.com/katalvlaran/tightbinding/shape"
)

// NewLattice builds the configured preset and applies the threshold override.
func (c *Config) NewLattice() (*lattice.Lattice, error) {
	l, err := repository.ByName(c.Lattice.Preset, c.Lattice.Constant)
	if err != nil {
		return nil, err
	}
	if c.Lattice.MinNeighbours >= 0 {
		if err := l.SetMinNeighbours(c.Lattice.MinNeighbours); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewSolver returns the configured bounds solver.
func (c *Config) NewSolver() linsolve.Solver {
	if c.Solver == SolverHouseholder {
		return linsolve.Householder{}
	}
	return linsolve.QR{}
}

// SlogLevel maps log_level onto a slog level; unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsPrimitive reports whether the region is a periodic block rather than a shape.
func (r *RegionConfig) IsPrimitive() bool { return r.Kind == KindPrimitive }

// Primitive returns the configured periodic block.
func (r *RegionConfig) Primitive() foundation.Primitive {
	return foundation.NewPrimitive(r.Size...)
}

// NewShape builds the configured shape. It returns an error for the
// primitive kind, which has no shape.
func (r *RegionConfig) NewShape() (shape.Shape, error) {
	var offset lattice.Cartesian
	copy(offset[:], r.Offset)
	opt := shape.WithOffset(offset)

	switch r.Kind {
	case KindCircle:
		return shape.NewCircle(r.Radius, opt)
	case KindRectangle:
		return shape.NewRectangle(r.Width, r.Height, opt)
	case KindLine:
		return shape.NewLine(lattice.Cartesian{-r.Length / 2}, lattice.Cartesian{r.Length / 2}, opt)
	case KindPolygon:
		vertices := make([]lattice.Cartesian, len(r.Vertices))
		for i, v := range r.Vertices {
			copy(vertices[i][:], v)
		}
		return shape.NewPolygon(vertices, opt)
	default:
		return nil, fmt.Errorf("region.kind %q has no shape: %w", r.Kind, ErrInvalid)
	}
}
