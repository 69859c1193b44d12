// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package airports maintains a local SQLite index of airports and resolves
// free-text city names to IATA codes.
package airports

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/tobrien/trip-engine/pkg/types"
)

const (
	seedDir  = "seed"
	indexDir = "index"
	dbFile   = "airports.db"
)

// Store manages the airport index SQLite database.
type Store struct {
	db            *sql.DB
	dataDir       string
	maxCandidates int
}

// NewStore opens or creates the airport index at dataDir/index/airports.db.
// It creates the schema if it does not exist.
func NewStore(cfg types.AirportsConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxCandidates := cfg.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = 20
	}

	s := &Store{
		db:            db,
		dataDir:       cfg.DataDir,
		maxCandidates: maxCandidates,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS airports (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			iata TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			city TEXT,
			country TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_airports_city ON airports(city)`,
		`CREATE TABLE IF NOT EXISTS seed_status (
			file TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='airports_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE airports_fts USING fts5(name, city, content=airports, content_rowid=rowid)`,
			`CREATE TRIGGER airports_ai AFTER INSERT ON airports BEGIN
				INSERT INTO airports_fts(rowid, name, city) VALUES (new.rowid, new.name, new.city);
			END`,
			`CREATE TRIGGER airports_ad AFTER DELETE ON airports BEGIN
				INSERT INTO airports_fts(airports_fts, rowid, name, city) VALUES('delete', old.rowid, old.name, old.city);
			END`,
			`CREATE TRIGGER airports_au AFTER UPDATE ON airports BEGIN
				INSERT INTO airports_fts(airports_fts, rowid, name, city) VALUES('delete', old.rowid, old.name, old.city);
				INSERT INTO airports_fts(rowid, name, city) VALUES (new.rowid, new.name, new.city);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a seed ingestion run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of seed files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads airport seed YAML files from dataDir/seed/ and populates
// the index. Unchanged files are skipped on subsequent runs using their
// modification time.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	dir := filepath.Join(s.dataDir, seedDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading seed directory %s: %w", dir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := entry.Name()
		path := filepath.Join(dir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM seed_status WHERE file = ?`, name,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		var airports []types.Airport
		if err := yaml.Unmarshal(data, &airports); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := s.ingestFile(ctx, name, airports, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d airports)\n", name, len(airports))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d airports)\n", name, len(airports))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestFile(ctx context.Context, file string, airports []types.Airport, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertAirports(ctx, tx, airports); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO seed_status (file, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(file) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		file, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating seed status: %w", err)
	}

	return tx.Commit()
}

// Add upserts curated airports directly into the index, outside any seed
// file. Used to patch gaps in the upstream dataset.
func (s *Store) Add(ctx context.Context, airports []types.Airport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertAirports(ctx, tx, airports); err != nil {
		return err
	}

	return tx.Commit()
}

func upsertAirports(ctx context.Context, tx *sql.Tx, airports []types.Airport) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO airports (iata, name, city, country) VALUES (?, ?, ?, ?)
		 ON CONFLICT(iata) DO UPDATE SET
			name=excluded.name, city=excluded.city, country=excluded.country`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports {
		code := strings.ToUpper(strings.TrimSpace(a.IATA))
		if code == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, code, a.Name, a.City, a.Country); err != nil {
			return fmt.Errorf("inserting airport %s: %w", code, err)
		}
	}

	return nil
}

// Count returns the number of airports in the index.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM airports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting airports: %w", err)
	}
	return n, nil
}
