package config

// Default values for configuration.
const (
	DefaultConfigFile    = "tightbinding.yaml"
	DefaultPreset        = "graphene"
	DefaultMinNeighbours = -1
	DefaultRegionKind    = KindCircle
	DefaultRadius        = 1.0
	DefaultSolver        = SolverQR
	DefaultLogLevel      = "info"
	DefaultOutput        = OutputTable
	EnvPrefix            = "TIGHTBINDING_"
)

// Region kinds.
const (
	KindPrimitive = "primitive"
	KindCircle    = "circle"
	KindRectangle = "rectangle"
	KindPolygon   = "polygon"
	KindLine      = "line"
)

// Solvers.
const (
	SolverQR          = "qr"
	SolverHouseholder = "householder"
)

// Output formats.
const (
	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputCSV      = "csv"
)

// defaults is the lowest configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"lattice.preset":         DefaultPreset,
		"lattice.constant":       0.0,
		"lattice.min_neighbours": DefaultMinNeighbours,
		"region.kind":            DefaultRegionKind,
		"region.size":            []int{1, 1, 1},
		"region.radius":          DefaultRadius,
		"solver":                 DefaultSolver,
		"log_level":              DefaultLogLevel,
		"output":                 DefaultOutput,
	}
}
