package recorder

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists build history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the HTTP handlers read history while refreshes write.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chart_builds (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			kind        TEXT NOT NULL,
			source      TEXT,
			records     INTEGER,
			windows     TEXT,
			duration_ms INTEGER,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_ts ON chart_builds(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordBuild inserts evt, assigning an ID when it has none.
func (r *SQLiteRecorder) RecordBuild(evt *BuildEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`INSERT INTO chart_builds
		(id, timestamp, kind, source, records, windows, duration_ms, error)
		VALUES (?,?,?,?,?,?,?,?)`,
		evt.ID, time.Now().Unix(), evt.Kind, evt.Source, evt.Records,
		joinWindows(evt.Windows), evt.Duration.Milliseconds(), evt.Err,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (r *SQLiteRecorder) Recent(limit int) ([]BuildEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, kind, source, records, windows, duration_ms, error
		FROM chart_builds ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	var out []BuildEvent
	for rows.Next() {
		var (
			evt     BuildEvent
			windows string
			ms      int64
		)
		if err := rows.Scan(&evt.ID, &evt.Kind, &evt.Source, &evt.Records, &windows, &ms, &evt.Err); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		evt.Windows = splitWindows(windows)
		evt.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, evt)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}

func joinWindows(ws []int) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}

func splitWindows(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, p := range strings.Split(s, ",") {
		if w, err := strconv.Atoi(p); err == nil {
			out = append(out, w)
		}
	}
	return out
}
