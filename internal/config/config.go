package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/qmigen/internal/version"
)

// DefaultRuntimeImport is the runtime package generated code imports.
const DefaultRuntimeImport = "github.com/danmuck/qmigen/pkg/qmi"

var ErrInvalid = errors.New("config: invalid")

// Config is the generator configuration. Relative paths are resolved against
// the directory of the config file.
type Config struct {
	OutputDir       string
	RuntimeImport   string
	Common          string
	APIVersion      version.Version
	CompatFloor     version.Version
	MetricsTextfile string
	Services        []ServiceConfig
}

// ServiceConfig selects one definition document and where its code goes.
type ServiceConfig struct {
	Definition string   `toml:"definition"`
	Package    string   `toml:"package"`
	Output     string   `toml:"output"`
	Messages   []string `toml:"messages"`
}

// qmigen.toml key mapping.
type fileConfig struct {
	OutputDir       string          `toml:"output_dir"`
	RuntimeImport   string          `toml:"runtime_import"`
	Common          string          `toml:"common"`
	APIVersion      string          `toml:"api_version"`
	CompatFloor     string          `toml:"compat_floor"`
	MetricsTextfile string          `toml:"metrics_textfile"`
	Services        []ServiceConfig `toml:"services"`
}

func Default() Config {
	return Config{
		OutputDir:     ".",
		RuntimeImport: DefaultRuntimeImport,
		CompatFloor:   version.DefaultCompatFloor,
	}
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	if meta.IsDefined("output_dir") {
		cfg.OutputDir = strings.TrimSpace(raw.OutputDir)
	}
	if meta.IsDefined("runtime_import") {
		cfg.RuntimeImport = strings.TrimSpace(raw.RuntimeImport)
	}
	if meta.IsDefined("common") {
		cfg.Common = strings.TrimSpace(raw.Common)
	}
	if meta.IsDefined("api_version") && strings.TrimSpace(raw.APIVersion) != "" {
		v, err := version.Parse(raw.APIVersion)
		if err != nil {
			return Config{}, fmt.Errorf("load config: api_version: %w", err)
		}
		cfg.APIVersion = v
	}
	if meta.IsDefined("compat_floor") {
		v, err := version.Parse(raw.CompatFloor)
		if err != nil {
			return Config{}, fmt.Errorf("load config: compat_floor: %w", err)
		}
		cfg.CompatFloor = v
	}
	if meta.IsDefined("metrics_textfile") {
		cfg.MetricsTextfile = strings.TrimSpace(raw.MetricsTextfile)
	}
	cfg.Services = raw.Services

	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	c.OutputDir = resolve(base, c.OutputDir)
	c.Common = resolve(base, c.Common)
	c.MetricsTextfile = resolve(base, c.MetricsTextfile)
	for i := range c.Services {
		s := &c.Services[i]
		s.Definition = resolve(base, strings.TrimSpace(s.Definition))
		s.Package = strings.TrimSpace(s.Package)
		out := strings.TrimSpace(s.Output)
		if out == "" && s.Package != "" {
			out = filepath.Join(s.Package, s.Package+".go")
		}
		s.Output = resolve(c.OutputDir, out)
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks the loaded configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RuntimeImport) == "" {
		return fmt.Errorf("%w: runtime_import is empty", ErrInvalid)
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: no [[services]] entries", ErrInvalid)
	}
	outputs := make(map[string]int)
	for i, s := range c.Services {
		if err := ValidateService(s); err != nil {
			return fmt.Errorf("%w: services[%d]: %v", ErrInvalid, i, err)
		}
		if prev, ok := outputs[s.Output]; ok {
			return fmt.Errorf("%w: services[%d] and services[%d] both write %s", ErrInvalid, prev, i, s.Output)
		}
		outputs[s.Output] = i
	}
	return nil
}

func ValidateService(s ServiceConfig) error {
	if s.Definition == "" {
		return fmt.Errorf("definition is required")
	}
	if !token.IsIdentifier(s.Package) {
		return fmt.Errorf("package %q is not a Go identifier", s.Package)
	}
	for _, m := range s.Messages {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("empty message name in filter")
		}
	}
	return nil
}

// Gate returns the versioning gate of the configuration.
func (c Config) Gate() version.Gate {
	return version.Gate{Limit: c.APIVersion, CompatFloor: c.CompatFloor}
}
