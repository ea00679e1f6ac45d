package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"preset":         "lattice.preset",
	"constant":       "lattice.constant",
	"min-neighbours": "lattice.min_neighbours",
	"region":         "region.kind",
	"size":           "region.size",
	"radius":         "region.radius",
	"width":          "region.width",
	"height":         "region.height",
	"length":         "region.length",
	"offset":         "region.offset",
	"solver":         "solver",
	"log-level":      "log_level",
	"output":         "output",
}

// BindFlags registers the configuration flags on fs. Flag defaults are
// zero values: only flags that were explicitly set override other layers.
// List flags are string slices; decoding converts their elements.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("preset", "", "lattice preset (chain|square|cubic|graphene)")
	fs.Float64("constant", 0, "lattice constant of chain/square/cubic (0 = preset default)")
	fs.Int("min-neighbours", DefaultMinNeighbours, "trimming threshold (-1 = preset default)")
	fs.String("region", "", "region kind (primitive|circle|rectangle|polygon|line)")
	fs.StringSlice("size", nil, "primitive size in unit cells, e.g. 5,5")
	fs.Float64("radius", 0, "circle radius")
	fs.Float64("width", 0, "rectangle width")
	fs.Float64("height", 0, "rectangle height")
	fs.Float64("length", 0, "line length")
	fs.StringSlice("offset", nil, "region offset, e.g. 0.5,0")
	fs.String("solver", "", "bounds solver (qr|householder)")
	fs.String("log-level", "", "log level (debug|info|warn|error)")
	fs.StringP("output", "o", "", "output format (table|markdown|csv)")
}

// findConfigFile finds the config file to use.
// Priority: explicit path > ./tightbinding.yaml > none.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// envKey transforms TIGHTBINDING_REGION__RADIUS into region.radius.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Load loads configuration from defaults, file, environment variables and
// flags, then validates it.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Load environment variables (TIGHTBINDING_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
