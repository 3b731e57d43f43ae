package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# interactions")
		env.contains(out, "## Commands")
	})

	t.Run("topic", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "mcp")
		env.contains(out, "interactions_dependencies")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		assert.Error(t, err)
		env.contains(out, "Available:")
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Interactions: 12")

	var info struct {
		Interactions int `json:"interactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.run("-o", "json", "version")), &info))
	assert.Equal(t, 12, info.Interactions)
}

func TestLog(t *testing.T) {
	env := newTestEnv(t)
	env.run("show", "CodeRepl")
	_, _ = env.runErr("show", "Nope")

	out := env.run("log", "-n", "50")
	env.contains(out, "cli:show")
	env.contains(out, "registry:refresh")
	env.contains(out, "interaction not found")

	var entries []struct {
		Source  string `json:"source"`
		Target  string `json:"target"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.run("-o", "json", "log", "-n", "1")), &entries))
	require.Len(t, entries, 1)

	_, err := env.runErr("log", "-n", "0")
	assert.Error(t, err)
}

func TestLog_Refresh(t *testing.T) {
	env := newTestEnv(t)
	env.run("--author", "Ada", "refresh")

	var entries []struct {
		Source string `json:"source"`
		Author string `json:"author"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.run("-o", "json", "log", "-n", "1")), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "cli:refresh", entries[0].Source)
	assert.Equal(t, "Ada", entries[0].Author)
}

func TestRootCmd_InProcess(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("INTERACTIONS_ROOT", "")
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	SetOut(&buf)
	t.Cleanup(func() { SetOut(os.Stdout) })

	rc := RootCmd()
	t.Cleanup(func() { rc.SetArgs(nil) })

	rc.SetArgs([]string{"version"})
	require.NoError(t, rc.Execute())
	assert.Contains(t, buf.String(), "Interactions: 12")

	buf.Reset()
	rc.SetArgs([]string{"deps", "CodeRepl", "LogicProof"})
	require.NoError(t, rc.Execute())
	assert.ElementsMatch(t, []string{"codemirror", "jsrepl", "logic_proof"}, lines(buf.String()))
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("-o", "yaml", "ls")
	assert.Error(t, err)
	env.contains(out, "invalid output format")
}
