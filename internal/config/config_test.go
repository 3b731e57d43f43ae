package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config

	allowed := c.AllowedInteractions()
	assert.Len(t, allowed, len(DefaultAllowed))
	assert.Equal(t, "interactions/CodeRepl", allowed[6].Dir)

	// Callers get a copy
	allowed[0].ID = "Mutated"
	assert.Equal(t, "Continue", DefaultAllowed[0].ID)

	assert.Len(t, c.Dirs(), len(DefaultAllowed))
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		allowed []Allowed
		wantErr bool
	}{
		{"valid", []Allowed{{ID: "A", Dir: "a"}, {ID: "B", Dir: "x/b"}}, false},
		{"dot prefix cleaned", []Allowed{{ID: "A", Dir: "./a"}}, false},
		{"missing id", []Allowed{{Dir: "a"}}, true},
		{"missing dir", []Allowed{{ID: "A"}}, true},
		{"absolute dir", []Allowed{{ID: "A", Dir: "/etc/a"}}, true},
		{"escapes root", []Allowed{{ID: "A", Dir: "../a"}}, true},
		{"duplicate id", []Allowed{{ID: "A", Dir: "a"}, {ID: "A", Dir: "b"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Interactions: tt.allowed}
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	var c Config

	require.NoError(t, c.Set("author.name", "Ada"))
	require.NoError(t, c.Set("extensions.root", " /srv/ext "))

	v, err := c.Get("author.name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	v, err = c.Get("extensions.root")
	require.NoError(t, err)
	assert.Equal(t, "/srv/ext", v)

	v, err = c.Get("interactions")
	require.NoError(t, err)
	assert.Contains(t, v, "EndExploration")

	assert.ErrorIs(t, c.Set("interactions", "A"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("nope", "x"), ErrUnknownKey)
	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)

	assert.True(t, c.IsSet("author.name"))
	assert.False(t, c.IsSet("interactions"))
	assert.Len(t, c.All(), len(ValidKeys()))
	for _, k := range ValidKeys() {
		assert.True(t, IsValidKey(k))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")

	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := loadFile(filepath.Join(dir, "absent.yaml"), ScopeGlobal)
		require.NoError(t, err)
		assert.Empty(t, cfg.Interactions)
		assert.Equal(t, ScopeGlobal, cfg.Scope())
	})

	t.Run("allowed list", func(t *testing.T) {
		data := `
author:
  name: Ada
extensions:
  root: /srv/ext
interactions:
  - id: CodeRepl
    dir: coding/CodeRepl
  - id: EndExploration
    dir: basic/EndExploration
`
		require.NoError(t, os.WriteFile(p, []byte(data), 0644))

		cfg, err := loadFile(p, ScopeLocal)
		require.NoError(t, err)
		assert.Equal(t, "Ada", cfg.Author.Name)
		assert.Equal(t, "/srv/ext", cfg.Extensions.Root)
		assert.Equal(t, []string{"coding/CodeRepl", "basic/EndExploration"}, cfg.Dirs())
		assert.Equal(t, ScopeLocal, cfg.Scope())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(p, []byte("interactions: [\n"), 0644))
		_, err := loadFile(p, ScopeLocal)
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("invalid list", func(t *testing.T) {
		data := "interactions:\n  - id: A\n"
		require.NoError(t, os.WriteFile(p, []byte(data), 0644))
		_, err := loadFile(p, ScopeLocal)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestSaveLocal(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("extensions.root", "ext"))
	require.NoError(t, cfg.Save())

	assert.FileExists(t, LocalPath())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.Equal(t, "ext", loaded.Extensions.Root)
}

func TestExtensionsRoot(t *testing.T) {
	home := t.TempDir()
	p := filepath.Join(home, ".interactions", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))

	t.Run("relative to config base", func(t *testing.T) {
		require.NoError(t, os.WriteFile(p, []byte("extensions:\n  root: ext\n"), 0644))
		cfg, err := loadFile(p, ScopeGlobal)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "ext"), cfg.ExtensionsRoot())
	})

	t.Run("absolute kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "ext")
		cfg := &Config{Extensions: Extensions{Root: abs}, path: p}
		assert.Equal(t, abs, cfg.ExtensionsRoot())
	})

	t.Run("local config resolves to project", func(t *testing.T) {
		cfg := &Config{Extensions: Extensions{Root: "ext"}, path: LocalPath()}
		assert.Equal(t, "ext", cfg.ExtensionsRoot())
	})

	t.Run("unset", func(t *testing.T) {
		var cfg Config
		assert.Empty(t, cfg.ExtensionsRoot())
	})
}
