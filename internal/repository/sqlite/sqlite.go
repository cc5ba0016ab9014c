package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"secretsdir/internal/domain"

	_ "modernc.org/sqlite"
)

// Journal implements repository.Journal using SQLite
type Journal struct {
	db *sql.DB
}

// Open creates the database file and its parent directory if needed and
// migrates the schema. ":memory:" opens a private in-memory journal.
func Open(dbPath string) (*Journal, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set %q: %w", pragma, err)
		}
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		machine_name TEXT NOT NULL,
		list_file TEXT NOT NULL DEFAULT '',
		list_path TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL,
		development INTEGER NOT NULL,
		digest TEXT NOT NULL DEFAULT '',
		decided_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_machine ON decisions(machine_name);
	CREATE INDEX IF NOT EXISTS idx_decisions_decided_at ON decisions(decided_at);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record appends a decision. A zero DecidedAt is stamped with the current time.
func (j *Journal) Record(ctx context.Context, d domain.Decision) (int64, error) {
	decidedAt := d.DecidedAt
	if decidedAt.IsZero() {
		decidedAt = time.Now()
	}

	res, err := j.db.ExecContext(ctx, `
		INSERT INTO decisions (machine_name, list_file, list_path, source, development, digest, decided_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, d.MachineName, d.ListFile, d.ListPath, string(d.Source), d.Development, d.Digest, decidedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert decision: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read decision id: %w", err)
	}
	return id, nil
}

// List returns up to limit decisions, newest first. limit <= 0 returns all.
func (j *Journal) List(ctx context.Context, limit int) ([]domain.Decision, error) {
	query := `
		SELECT id, machine_name, list_file, list_path, source, development, digest, decided_at
		FROM decisions
		ORDER BY decided_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	decisions := []domain.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decisions: %w", err)
	}

	return decisions, nil
}

// Latest returns the newest decision for machineName, or nil if none exist
func (j *Journal) Latest(ctx context.Context, machineName string) (*domain.Decision, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, machine_name, list_file, list_path, source, development, digest, decided_at
		FROM decisions
		WHERE machine_name = ?
		ORDER BY decided_at DESC, id DESC
		LIMIT 1
	`, machineName)

	d, err := scanDecision(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Close releases the database handle
func (j *Journal) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(s scanner) (*domain.Decision, error) {
	var (
		d         domain.Decision
		source    string
		decidedAt time.Time
	)

	err := s.Scan(&d.ID, &d.MachineName, &d.ListFile, &d.ListPath, &source, &d.Development, &d.Digest, &decidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan decision: %w", err)
	}

	d.Source = domain.DecisionSource(source)
	d.DecidedAt = decidedAt
	return &d, nil
}
