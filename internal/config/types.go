// Package config provides configuration management for the tightbinding CLI.
//
// A Config describes one foundation build: which preset lattice to use,
// which region to cut it with, which linear solver sizes the box, and how
// to log and render the result. Values are layered by Load from defaults,
// a YAML file, TIGHTBINDING_ environment variables and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Lattice  LatticeConfig `koanf:"lattice"`
	Region   RegionConfig  `koanf:"region"`
	Solver   string        `koanf:"solver"`
	LogLevel string        `koanf:"log_level"`
	Output   string        `koanf:"output"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// LatticeConfig selects a preset lattice.
type LatticeConfig struct {
	Preset string `koanf:"preset"`
	// Constant overrides the lattice constant of chain, square and cubic.
	// 0 keeps the preset default.
	Constant float64 `koanf:"constant"`
	// MinNeighbours overrides the trimming threshold; -1 keeps the preset's.
	MinNeighbours int `koanf:"min_neighbours"`
}

// RegionConfig describes the region a foundation is built from. Which
// fields are read depends on Kind.
type RegionConfig struct {
	Kind     string      `koanf:"kind"`
	Size     []int       `koanf:"size"`     // primitive
	Radius   float64     `koanf:"radius"`   // circle
	Width    float64     `koanf:"width"`    // rectangle
	Height   float64     `koanf:"height"`   // rectangle
	Length   float64     `koanf:"length"`   // line, centred on the origin along x
	Vertices [][]float64 `koanf:"vertices"` // polygon
	Offset   []float64   `koanf:"offset"`   // every kind but primitive
}
