package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under t.TempDir().
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/srv/extensions")

		Log(Entry{
			Source:  "cli:show",
			Author:  "test-user",
			Action:  "read",
			Target:  "CodeRepl",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, target, project string
		var success int
		err = db.QueryRow("SELECT source, action, target, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &target, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:show", source)
		assert.Equal(t, "read", action)
		assert.Equal(t, "CodeRepl", target)
		assert.Equal(t, hash("/srv/extensions"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		Close()
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "registry:get",
			Action:  "lookup",
			Target:  "Missing",
			Success: false,
			Error:   "interaction not found: Missing",
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "interaction not found: Missing", errMsg)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		Log(Entry{Source: "test:cmd", Action: "test", Success: true})

		entries, err := Recent(10)
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/srv/extensions")
	h2 := hash("/srv/extensions")
	h3 := hash("/srv/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(home, ".interactions", "log", "interactions-log.db"), DBPath())
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success", func(t *testing.T) {
		Close()
		require.NoError(t, Open())
		defer Close()

		Event("cli:deps", "read").
			Author("test-user").
			Target("CodeRepl,LogicProof").
			Write(nil)

		entries, err := Recent(1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "cli:deps", e.Source)
		assert.Equal(t, "test-user", e.Author)
		assert.Equal(t, "read", e.Action)
		assert.Equal(t, "CodeRepl,LogicProof", e.Target)
		assert.True(t, e.Success)
		assert.Empty(t, e.Error)
	})

	t.Run("with error", func(t *testing.T) {
		Close()
		require.NoError(t, Open())
		defer Close()

		Event("registry:refresh", "refresh").Write(errors.New("scanning x: no such dir"))

		entries, err := Recent(1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Success)
		assert.Equal(t, "scanning x: no such dir", entries[0].Error)
	})

	t.Run("with detail", func(t *testing.T) {
		Close()
		require.NoError(t, Open())
		defer Close()

		Event("registry:refresh", "refresh").
			Detail("count", 12).
			Detail("skipped", 0).
			Write(nil)

		entries, err := Recent(1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		// JSON numbers decode as float64
		assert.Equal(t, float64(12), entries[0].Detail["count"])
		assert.Equal(t, float64(0), entries[0].Detail["skipped"])
	})
}

func TestRecent_Order(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	for _, src := range []string{"a:1", "b:2", "c:3"} {
		Event(src, "test").Write(nil)
	}

	entries, err := Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c:3", entries[0].Source)
	assert.Equal(t, "b:2", entries[1].Source)
}
