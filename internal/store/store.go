// Package store keeps a history of solved boards in SQLite.
//
// Each solve is one row in runs, keyed by a UUIDv7 so rows sort by creation
// time. Boards are identified by board.Fingerprint, which lets Lookup reuse
// an earlier answer for an identical board.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout keeps created_at fixed-width so text order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned by Lookup when no run matches.
var ErrNotFound = errors.New("store: run not found")

// Run is one recorded solve.
type Run struct {
	ID          string
	Fingerprint string
	Ladders     int
	Snakes      int
	// Rolls is meaningful only when Reachable.
	Rolls     int
	Reachable bool
	// Path is the optimal route, empty when unreachable.
	Path      []int
	CreatedAt time.Time
}

// Store wraps a SQLite database handle. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the parent directory and the schema if needed.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts r, filling ID and CreatedAt when empty, and returns the stored run.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = newID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.CreatedAt = r.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, fingerprint, ladders, snakes, rolls, reachable, path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Fingerprint, r.Ladders, r.Snakes, r.Rolls, r.Reachable,
		encodePath(r.Path), r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("store: insert run: %w", err)
	}
	return r, nil
}

// Lookup returns the most recent run for fingerprint.
func (s *Store) Lookup(ctx context.Context, fingerprint string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fingerprint, ladders, snakes, rolls, reachable, path, created_at
		 FROM runs WHERE fingerprint = ? ORDER BY created_at DESC, id DESC LIMIT 1`, fingerprint)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, fingerprint)
	}
	return r, err
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fingerprint, ladders, snakes, rolls, reachable, path, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		path    string
		created string
	)
	if err := sc.Scan(&r.ID, &r.Fingerprint, &r.Ladders, &r.Snakes, &r.Rolls, &r.Reachable, &path, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("store: scan run: %w", err)
	}
	var err error
	if r.Path, err = decodePath(path); err != nil {
		return Run{}, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("store: run %s created_at: %w", r.ID, err)
	}
	return r, nil
}

// newID generates a UUIDv7, falling back to v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func encodePath(path []int) string {
	parts := make([]string, len(path))
	for i, sq := range path {
		parts[i] = strconv.Itoa(sq)
	}
	return strings.Join(parts, " ")
}

func decodePath(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("store: bad path %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
