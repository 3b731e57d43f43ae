// Package config provides reading and writing of interactions configuration.
// Supports both global (~/.interactions/config.yaml) and local
// (.interactions/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.interactions/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .interactions/config.yaml
	ScopeLocal
)

// Author identifies who runs commands, recorded in the audit log.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Extensions locates the interaction assets.
type Extensions struct {
	// Root is a filesystem directory holding the extension directories.
	// Empty means the assets embedded in the binary.
	Root string `yaml:"root,omitempty"`
}

// Allowed names an interaction and the extension directory, relative to
// the extensions root, in which its assets live.
type Allowed struct {
	ID  string `yaml:"id"`
	Dir string `yaml:"dir"`
}

// DefaultAllowed is the reference set of interactions. Exactly one of them,
// EndExploration, is terminal.
var DefaultAllowed = []Allowed{
	{ID: "Continue", Dir: "interactions/Continue"},
	{ID: "EndExploration", Dir: "interactions/EndExploration"},
	{ID: "MultipleChoiceInput", Dir: "interactions/MultipleChoiceInput"},
	{ID: "NumericInput", Dir: "interactions/NumericInput"},
	{ID: "TextInput", Dir: "interactions/TextInput"},
	{ID: "SetInput", Dir: "interactions/SetInput"},
	{ID: "CodeRepl", Dir: "interactions/CodeRepl"},
	{ID: "LogicProof", Dir: "interactions/LogicProof"},
	{ID: "GraphInput", Dir: "interactions/GraphInput"},
	{ID: "ImageClickInput", Dir: "interactions/ImageClickInput"},
	{ID: "InteractiveMap", Dir: "interactions/InteractiveMap"},
	{ID: "MusicNotesInput", Dir: "interactions/MusicNotesInput"},
}

// Config contains configuration for interactions.
type Config struct {
	Author       Author     `yaml:"author,omitempty"`
	Extensions   Extensions `yaml:"extensions,omitempty"`
	Interactions []Allowed  `yaml:"interactions,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks the allowed-interactions list. Returns nil when the list
// is unset (defaults will be used).
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Interactions))
	for i, a := range c.Interactions {
		if a.ID == "" {
			return fmt.Errorf("%w: interactions[%d] has no id", ErrInvalidValue, i)
		}
		if a.Dir == "" {
			return fmt.Errorf("%w: interaction %s has no dir", ErrInvalidValue, a.ID)
		}
		if !fs.ValidPath(path.Clean(filepath.ToSlash(a.Dir))) {
			return fmt.Errorf("%w: interaction %s dir %q must be relative to the extensions root",
				ErrInvalidValue, a.ID, a.Dir)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: interaction %s listed twice", ErrInvalidValue, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// AllowedInteractions returns the configured interactions, or DefaultAllowed
// when none are configured. The result is a copy.
func (c *Config) AllowedInteractions() []Allowed {
	if len(c.Interactions) == 0 {
		return slices.Clone(DefaultAllowed)
	}
	return slices.Clone(c.Interactions)
}

// Dirs returns the extension directories of the allowed interactions in
// order.
func (c *Config) Dirs() []string {
	allowed := c.AllowedInteractions()
	dirs := make([]string, 0, len(allowed))
	for _, a := range allowed {
		dirs = append(dirs, a.Dir)
	}
	return dirs
}

// ExtensionsRoot returns extensions.root. A relative root is resolved
// against the directory holding the config's .interactions directory: the
// project for local config, the home directory for global config.
func (c *Config) ExtensionsRoot() string {
	root := c.Extensions.Root
	if root == "" || filepath.IsAbs(root) || c.path == "" {
		return root
	}
	return filepath.Join(filepath.Dir(filepath.Dir(c.path)), root)
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".interactions", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.interactions/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".interactions", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	p := pathForScope(scope)
	if p == "" {
		return &Config{scope: scope}, nil
	}
	return loadFile(p, scope)
}

func loadFile(p string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: p, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", p, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", p, err)
	}
	cfg.path = p
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", p, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path, creating
// parent directories as needed.
func (c *Config) saveToPath(p string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
