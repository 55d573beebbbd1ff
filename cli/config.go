package cli

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

// configFile is the optional config file searched in the working directory.
const configFile = "veitch.yaml"

// envPrefix namespaces environment overrides, e.g. VEITCH_MARKER=?.
const envPrefix = "VEITCH_"

// Config holds the presentation settings the commands honor.
type Config struct {
	// Marker is the on-screen don't-care marker.
	Marker string `koanf:"marker"`
	// NoColor disables all terminal color.
	NoColor bool `koanf:"no_color"`
}

// defaults is the lowest-priority configuration layer.
var defaults = map[string]interface{}{
	"marker":   "X",
	"no_color": false,
}

// loadConfig merges defaults, veitch.yaml (when present), VEITCH_*
// environment variables and the command's flags, in that order.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("cli: load defaults: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("cli: load %s: %w", configFile, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("cli: load environment: %w", err)
	}

	if flags != nil {
		// Flag names use dashes ("no-color"); config keys use underscores.
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, fmt.Errorf("cli: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("cli: unmarshal config: %w", err)
	}

	return &cfg, nil
}
