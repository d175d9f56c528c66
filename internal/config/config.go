package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/crucible/crucible"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// NamedProfile is a move profile with the label it is reported under.
type NamedProfile struct {
	Name    string
	Profile crucible.Profile
}

// Config holds everything the app needs for one run.
type Config struct {
	GridPath  string // "-" reads the grid from stdin
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	Parallel  bool   // solve profiles concurrently
	ShowPath  bool   // print the optimal route after each answer
	Profiles  []NamedProfile
}

// Default returns the built-in configuration: info-level text logs, both
// puzzle profiles solved concurrently.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Parallel:  true,
		Profiles: []NamedProfile{
			{Name: "part1", Profile: crucible.ProfileA},
			{Name: "part2", Profile: crucible.ProfileB},
		},
	}
}

// hclConfigFile is the decoding target for a configuration file. Pointer
// attributes distinguish "absent" from the zero value.
type hclConfigFile struct {
	LogLevel  *string       `hcl:"log_level,optional"`
	LogFormat *string       `hcl:"log_format,optional"`
	Parallel  *bool         `hcl:"parallel,optional"`
	ShowPath  *bool         `hcl:"show_path,optional"`
	Profiles  []*hclProfile `hcl:"profile,block"`
}

type hclProfile struct {
	Name   string `hcl:"name,label"`
	MinRun int    `hcl:"min_run"`
	MaxRun int    `hcl:"max_run"`
}

// Load reads the HCL file at path and applies it on top of base.
func Load(path string, base Config) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(src, path, base)
}

// Parse decodes HCL source and applies it on top of base. Profile blocks,
// when present, replace base's profiles entirely. The result is validated.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := base
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
	}
	if parsed.LogFormat != nil {
		cfg.LogFormat = *parsed.LogFormat
	}
	if parsed.Parallel != nil {
		cfg.Parallel = *parsed.Parallel
	}
	if parsed.ShowPath != nil {
		cfg.ShowPath = *parsed.ShowPath
	}
	if len(parsed.Profiles) > 0 {
		cfg.Profiles = make([]NamedProfile, 0, len(parsed.Profiles))
		for _, p := range parsed.Profiles {
			cfg.Profiles = append(cfg.Profiles, NamedProfile{
				Name:    p.Name,
				Profile: crucible.Profile{MinRun: p.MinRun, MaxRun: p.MaxRun},
			})
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

// Validate checks log settings, profile bounds and profile name uniqueness.
// GridPath is not checked here; the CLI owns that requirement.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: at least one profile is required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Profiles))
	for _, p := range c.Profiles {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate profile %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = struct{}{}
		if err := p.Profile.Validate(); err != nil {
			return fmt.Errorf("%w: profile %q: %w", ErrInvalidConfig, p.Name, err)
		}
	}

	return nil
}

// CrucibleProfiles returns the bare profiles in configuration order.
func (c Config) CrucibleProfiles() []crucible.Profile {
	out := make([]crucible.Profile, len(c.Profiles))
	for i, p := range c.Profiles {
		out[i] = p.Profile
	}

	return out
}
