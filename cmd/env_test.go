// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> registry -> embedded or on-disk assets. Each
// test gets its own working directory and HOME so config files and the
// audit log never leak between tests.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the interactions binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "interactions-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "interactions"
		if os.PathSeparator == '\\' {
			binaryName = "interactions.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string // extra environment, applied last
}

// newTestEnv creates an empty working directory and HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: buildBinary(t)}
}

// run executes interactions with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("interactions %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes interactions and returns its output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home, "INTERACTIONS_ROOT=")
	cmd.Env = append(cmd.Env, e.env...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// writeFile creates a file under the working directory.
func (e *testEnv) writeFile(rel, content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, filepath.FromSlash(rel))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

// extensionsRoot copies the built-in assets into ext/ under the working
// directory and returns its path.
func (e *testEnv) extensionsRoot() string {
	e.t.Helper()
	src := filepath.Join(filepath.Dir(mustGetwd()), "interaction", "builtin", "interactions")
	entries, err := os.ReadDir(src)
	require.NoError(e.t, err)
	for _, d := range entries {
		name := d.Name()
		data, err := os.ReadFile(filepath.Join(src, name, name+".html"))
		require.NoError(e.t, err)
		e.writeFile("ext/interactions/"+name+"/"+name+".html", string(data))
	}
	return filepath.Join(e.dir, "ext")
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// lines splits trimmed output into lines.
func lines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// builtinIDs is the reference set in sorted order.
var builtinIDs = []string{
	"CodeRepl",
	"Continue",
	"EndExploration",
	"GraphInput",
	"ImageClickInput",
	"InteractiveMap",
	"LogicProof",
	"MultipleChoiceInput",
	"MusicNotesInput",
	"NumericInput",
	"SetInput",
	"TextInput",
}
