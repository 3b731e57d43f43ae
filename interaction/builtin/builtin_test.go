package builtin_test

import (
	"io/fs"
	"path"
	"testing"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/interaction/builtin"
	"github.com/jpl-au/interactions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *interaction.Registry {
	var cfg config.Config
	return interaction.NewRegistry(builtin.FS, cfg.Dirs())
}

func TestDeduplicationOfDependencyIDs(t *testing.T) {
	reg := newRegistry()

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"single", []string{"CodeRepl"}, []string{"jsrepl", "codemirror"}},
		{"repeated", []string{"CodeRepl", "CodeRepl", "CodeRepl"}, []string{"jsrepl", "codemirror"}},
		{"overlapping", []string{"CodeRepl", "LogicProof"}, []string{"jsrepl", "codemirror", "logic_proof"}},
		{"no dependencies", []string{"Continue", "TextInput"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.DependencyIDs(tt.ids)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestAllowedInteractionsAndCounts(t *testing.T) {
	reg := newRegistry()

	all, err := reg.All()
	require.NoError(t, err)
	assert.Len(t, all, len(config.DefaultAllowed))

	for _, a := range config.DefaultAllowed {
		entries, err := fs.ReadDir(builtin.FS, a.Dir)
		require.NoError(t, err, a.Dir)

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Contains(t, names, a.ID+".html")
		assert.True(t, interaction.IsRegistered(a.ID), a.ID)
	}
}

func TestGetAllConfigs(t *testing.T) {
	const expectedTerminalInteractions = 1

	reg := newRegistry()
	configs, err := reg.Configs()
	require.NoError(t, err)
	assert.Len(t, configs, len(config.DefaultAllowed))

	terminal := 0
	for id, c := range configs {
		assert.Contains(t, interaction.AllowedDisplayModes, c.DisplayMode, id)
		if c.IsTerminal {
			terminal++
		}
	}
	assert.Equal(t, expectedTerminalInteractions, terminal)
	assert.True(t, configs["EndExploration"].IsTerminal)
}

func TestInteractionsAreBound(t *testing.T) {
	reg := newRegistry()
	all, err := reg.All()
	require.NoError(t, err)

	for _, i := range all {
		t.Run(i.ID(), func(t *testing.T) {
			assert.NotEmpty(t, i.Name())
			assert.NotEmpty(t, i.Category())
			assert.NotEmpty(t, i.Description())
			assert.True(t, i.DisplayMode().Valid())
			assert.Equal(t, path.Join("interactions", i.ID()), i.Dir())
			assert.Contains(t, i.HTMLBody(), `id="interaction/`+i.ID()+`"`)
		})
	}
}

func TestHTMLPreservesOrder(t *testing.T) {
	reg := newRegistry()

	html, err := reg.HTML([]string{"TextInput", "Continue"})
	require.NoError(t, err)

	text, err := reg.Get("TextInput")
	require.NoError(t, err)
	cont, err := reg.Get("Continue")
	require.NoError(t, err)

	assert.Equal(t, text.HTMLBody()+interaction.HTMLSeparator+cont.HTMLBody(), html)
}
