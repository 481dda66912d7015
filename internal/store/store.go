/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package store keeps named brand colours and their generated ladders in an
// embedded SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// schemaVersion tracks the SQLite schema. Bump it together with a migration step.
const schemaVersion = 2

// ErrNotFound is returned when no palette has the requested name.
var ErrNotFound = errors.New("palette not found")

// Entry is one saved palette.
type Entry struct {
	Name      string
	Seed      palette.Color
	Palette   palette.Palette
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Match is a ladder position holding a looked-up colour.
type Match struct {
	Name  string
	Index int
}

// Store is a handle on the palette database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open creates or opens the database at path, enables WAL and brings the
// schema up to date.
func Open(path string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("store"), "open").With(slog.String("path", path))
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON;"); err != nil {
		l.Warn("enable foreign_keys failed", slog.Any("err", err))
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		l.Error("run migrations failed", slog.Any("err", err))
		return nil, err
	}
	l.Debug("store ready")
	return &Store{db: db, path: path, log: applog.WithComponent("store")}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS palettes (
			name       TEXT PRIMARY KEY,
			seed       TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tones (
			name TEXT NOT NULL REFERENCES palettes(name) ON DELETE CASCADE,
			idx  INTEGER NOT NULL CHECK(idx BETWEEN 1 AND 10),
			hex  TEXT NOT NULL,
			PRIMARY KEY(name, idx)
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var cur int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&cur)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// a fresh database starts at 1 and migrates forward like an old one
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, 1, ?, ?, ?)`, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

// runMigrations applies incremental schema steps up to schemaVersion.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var cur int
	if err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&cur); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for cur < schemaVersion {
		next := cur + 1
		var stmts []string
		switch next {
		case 2:
			stmts = []string{`CREATE INDEX IF NOT EXISTS idx_tones_hex ON tones(hex);`}
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", next, err)
		}
		for _, q := range stmts {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d stmt failed: %w", next, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `UPDATE version SET schema=?, updated_at=? WHERE id=1`, next, time.Now().UTC().Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d update version: %w", next, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d commit: %w", next, err)
		}
		cur = next
	}
	return nil
}

// SchemaVersion reports the schema version recorded in the database.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

func normName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("palette name is required")
	}
	return n, nil
}

// Save generates the ladder for seed and stores it under name, replacing any
// previous palette of that name.
func (s *Store) Save(ctx context.Context, name string, seed palette.Color) (Entry, error) {
	n, err := normName(name)
	if err != nil {
		return Entry{}, err
	}
	pal := palette.Generate(seed)
	now := time.Now().UTC().Truncate(time.Second)
	ts := now.Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO palettes(name, seed, created_at, updated_at) VALUES(?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET seed=excluded.seed, updated_at=excluded.updated_at`, n, seed.Hex(), ts, ts); err != nil {
		return Entry{}, fmt.Errorf("upsert palette: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tones WHERE name=?`, n); err != nil {
		return Entry{}, fmt.Errorf("clear tones: %w", err)
	}
	for i, c := range pal {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tones(name, idx, hex) VALUES(?, ?, ?)`, n, i+1, c.Hex()); err != nil {
			return Entry{}, fmt.Errorf("insert tone %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("commit save: %w", err)
	}
	s.log.Info("palette saved", slog.String("name", n), slog.String("seed", seed.Hex()))
	return s.Get(ctx, n)
}

// Get loads a saved palette.
func (s *Store) Get(ctx context.Context, name string) (Entry, error) {
	n, err := normName(name)
	if err != nil {
		return Entry{}, err
	}
	var seed, created, updated string
	err = s.db.QueryRowContext(ctx, `SELECT seed, created_at, updated_at FROM palettes WHERE name=?`, n).Scan(&seed, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, n)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("read palette: %w", err)
	}
	e := Entry{Name: n}
	if e.Seed, err = palette.ParseHex(seed); err != nil {
		return Entry{}, fmt.Errorf("palette %s: %w", n, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, created)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updated)

	rows, err := s.db.QueryContext(ctx, `SELECT idx, hex FROM tones WHERE name=? ORDER BY idx`, n)
	if err != nil {
		return Entry{}, fmt.Errorf("read tones: %w", err)
	}
	defer func() { _ = rows.Close() }()
	count := 0
	for rows.Next() {
		var idx int
		var hex string
		if err := rows.Scan(&idx, &hex); err != nil {
			return Entry{}, fmt.Errorf("scan tone: %w", err)
		}
		c, err := palette.ParseHex(hex)
		if err != nil {
			return Entry{}, fmt.Errorf("tone %d: %w", idx, err)
		}
		e.Palette[idx-1] = c
		count++
	}
	if err := rows.Err(); err != nil {
		return Entry{}, fmt.Errorf("read tones: %w", err)
	}
	if count != palette.Size {
		// tones missing: rebuild from the seed
		e.Palette = palette.Generate(e.Seed)
	}
	return e, nil
}

// List returns every saved palette ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM palettes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	_ = rows.Close()

	out := make([]Entry, 0, len(names))
	for _, n := range names {
		e, err := s.Get(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Delete removes a saved palette and its tones.
func (s *Store) Delete(ctx context.Context, name string) error {
	n, err := normName(name)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM palettes WHERE name=?`, n)
	if err != nil {
		return fmt.Errorf("delete palette: %w", err)
	}
	if k, _ := res.RowsAffected(); k == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, n)
	}
	s.log.Info("palette deleted", slog.String("name", n))
	return nil
}

// Lookup finds every saved ladder position holding exactly c.
func (s *Store) Lookup(ctx context.Context, c palette.Color) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, idx FROM tones WHERE hex=? ORDER BY name, idx`, c.Hex())
	if err != nil {
		return nil, fmt.Errorf("lookup tone: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Name, &m.Index); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SetMeta stores a free-form key/value pair.
func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO meta(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value); err != nil {
		return fmt.Errorf("set meta: %w", err)
	}
	return nil
}

// Meta reads a key stored with SetMeta; ok is false when it is absent.
func (s *Store) Meta(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read meta: %w", err)
	}
	return value, true, nil
}
