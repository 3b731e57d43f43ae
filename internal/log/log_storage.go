// log_storage.go persists audit entries to SQLite.
//
// Errors during logging are reported on stderr and otherwise ignored: a
// registry query must succeed even if it cannot be recorded. The project
// column holds a hash of the extensions root so entries from different
// installations can be told apart without storing paths.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, target,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Target), success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "interactions: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT start, end, source, author, action, target, success, error, detail
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var author, target, msg, detail sql.NullString
		var success int
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &author, &e.Action,
			&target, &success, &msg, &detail); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		e.Author = author.String
		e.Target = target.String
		e.Error = msg.String
		e.Success = success == 1
		if detail.Valid {
			if err := json.Unmarshal([]byte(detail.String), &e.Detail); err != nil {
				return nil, fmt.Errorf("decoding log detail: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc returns the database path. Tests override it.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".interactions", "log", "interactions-log.db")
	}
	return filepath.Join(home, ".interactions", "log", "interactions-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a short project identifier from a directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			author  TEXT,
			action  TEXT NOT NULL,
			target  TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
