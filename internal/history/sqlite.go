package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alienxp03/splitdecision/internal/core"
)

// SQLiteStore implements Store using SQLite. It serves deployments without
// a Redis instance.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) a SQLite store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &SQLiteStore{db: db, path: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS comparisons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		category TEXT NOT NULL,
		theme TEXT NOT NULL,
		winner TEXT NOT NULL,
		confidence INTEGER NOT NULL,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_comparisons_timestamp ON comparisons(timestamp DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save inserts the record and deletes anything beyond the newest MaxRecords.
func (s *SQLiteStore) Save(ctx context.Context, rec core.ComparisonRecord) error {
	query := `
	INSERT INTO comparisons (option_a, option_b, category, theme, winner, confidence, timestamp)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.OptionA,
		rec.OptionB,
		rec.Category,
		string(rec.Theme),
		rec.Winner,
		rec.Confidence,
		rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	trim := `
	DELETE FROM comparisons
	WHERE id NOT IN (SELECT id FROM comparisons ORDER BY timestamp DESC, id DESC LIMIT ?)
	`
	if _, err := s.db.ExecContext(ctx, trim, MaxRecords); err != nil {
		return fmt.Errorf("failed to trim records: %w", err)
	}

	return nil
}

// Recent returns up to limit stored records newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]core.ComparisonRecord, error) {
	query := `
	SELECT option_a, option_b, category, theme, winner, confidence, timestamp
	FROM comparisons
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	defer rows.Close()

	var records []core.ComparisonRecord
	for rows.Next() {
		var rec core.ComparisonRecord
		var theme string
		err := rows.Scan(
			&rec.OptionA,
			&rec.OptionB,
			&rec.Category,
			&theme,
			&rec.Winner,
			&rec.Confidence,
			&rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Theme = core.ThemeKey(theme)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DefaultDBPath returns the default database location.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "splitdecision.db"
	}
	return filepath.Join(home, ".splitdecision", "history.db")
}
