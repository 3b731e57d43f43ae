// Package log provides audit logging for interaction registry operations.
// Entries are stored in ~/.interactions/log/interactions-log.db and record
// registry refreshes, failed lookups, CLI commands and MCP tool calls.
//
// # Fluent API
//
// Build an entry with [Event], chain setters, then call [Builder.Write]:
//
//	log.Event("cli:show", "read").
//		Author(cmd.Author()).
//		Target(id).
//		Write(err)
//
//	log.Event("registry:refresh", "refresh").
//		Detail("count", len(ids)).
//		Write(nil)
//
// The source follows "{area}:{operation}": "registry:refresh", "cli:deps",
// "mcp:html".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string `json:"source"` // e.g. "registry:refresh", "mcp:get"
	Author string `json:"author"` // who performed the action
	Action string `json:"action"` // verb: refresh, lookup, read, list, check
	Target string `json:"target"` // interaction id(s) the operation concerned

	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// Builder constructs a log entry using a fluent API.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. MCP tools use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Target sets the interaction id the operation concerned. For batch
// operations pass the ids joined with commas.
func (b *Builder) Target(target string) *Builder {
	b.entry.Target = target
	return b
}

// Detail adds a key-value pair to the entry's detail map.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries. The dir
// should be the extensions root in use, or the working directory when the
// embedded assets are served.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. No-op if the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first. Returns nil if the
// logger is not open.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
