package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record captures one successful Makefile generation.
type Record struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"project"`
	BinaryName  string    `json:"binary"`
	Sources     []string  `json:"sources"`
	Tests       []string  `json:"tests,omitempty"`
	BuildDir    string    `json:"build_dir"`
	OutputPath  string    `json:"output"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryStore persists generation records in a SQLite database.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore opens/creates the database at dbPath.
func OpenHistoryStore(dbPath string) (*HistoryStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	store := &HistoryStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *HistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_name TEXT NOT NULL,
		binary_name TEXT NOT NULL,
		sources TEXT,
		tests TEXT,
		build_dir TEXT,
		output_path TEXT,
		created_at TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *HistoryStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append stores one record, stamping CreatedAt when unset.
func (s *HistoryStore) Append(rec *Record) error {
	if rec == nil {
		return errors.New("record required")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	sourcesJSON, _ := json.Marshal(rec.Sources)
	testsJSON, _ := json.Marshal(rec.Tests)
	res, err := s.db.Exec(`INSERT INTO generations (
		project_name, binary_name, sources, tests, build_dir, output_path, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ProjectName,
		rec.BinaryName,
		string(sourcesJSON),
		string(testsJSON),
		rec.BuildDir,
		rec.OutputPath,
		rec.CreatedAt,
	)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *HistoryStore) Recent(limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT id, project_name, binary_name, sources, tests,
		build_dir, output_path, created_at
		FROM generations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Clear removes every stored record.
func (s *HistoryStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM generations`)
	return err
}

// Count reports the number of stored records.
func (s *HistoryStore) Count() (int, error) {
	var total int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM generations`).Scan(&total)
	return total, err
}

func scanRecords(rows *sql.Rows) ([]*Record, error) {
	results := make([]*Record, 0)
	for rows.Next() {
		rec := &Record{}
		var sourcesJSON, testsJSON string
		err := rows.Scan(
			&rec.ID,
			&rec.ProjectName,
			&rec.BinaryName,
			&sourcesJSON,
			&testsJSON,
			&rec.BuildDir,
			&rec.OutputPath,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if sourcesJSON != "" {
			json.Unmarshal([]byte(sourcesJSON), &rec.Sources)
		}
		if testsJSON != "" {
			json.Unmarshal([]byte(testsJSON), &rec.Tests)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}
