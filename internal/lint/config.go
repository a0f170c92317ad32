package lint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a fieldlint run. Zero values fall back to defaults, so a
// partial .fieldset.yaml stays valid.
type Config struct {
	// Markers lists the call names whose sites get validated, written as
	// package.Func ("fieldset.Checked"). Each marked call takes the type
	// reference first and the field-set literal second.
	Markers []string `yaml:"markers"`
	// Packages are go/packages load patterns for type information.
	Packages []string `yaml:"packages"`
	// Parallel caps concurrent call-site checks; 0 means GOMAXPROCS.
	Parallel int `yaml:"parallel"`
}

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Markers:  []string{"fieldset.Checked", "fieldset.CheckedList"},
		Packages: []string{"./..."},
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("lint: read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("lint: parse config %s: %w", path, err)
	}
	if len(file.Markers) > 0 {
		cfg.Markers = file.Markers
	}
	if len(file.Packages) > 0 {
		cfg.Packages = file.Packages
	}
	if file.Parallel > 0 {
		cfg.Parallel = file.Parallel
	}
	return cfg, nil
}
