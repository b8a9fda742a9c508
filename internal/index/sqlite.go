// Package index provides a SQLite index over parsed bibliography entries,
// so large bibliographies can be queried by key, author, or DOI without
// reparsing the source file.
package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/bibkit/bibsort/internal/bib"
)

// DB wraps a SQLite index database.
type DB struct {
	db *sql.DB
}

// Row is one indexed entry.
type Row struct {
	Key         string `json:"key"`
	Type        string `json:"type"`
	FirstAuthor string `json:"first_author,omitempty"`
	DOI         string `json:"doi,omitempty"`
	Raw         string `json:"raw"`
}

// Open opens or creates the index database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT NOT NULL,
			type TEXT NOT NULL,
			first_author TEXT,
			doi TEXT,
			raw TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_entries_key ON entries(key);
		CREATE INDEX IF NOT EXISTS idx_entries_doi ON entries(doi)
			WHERE doi IS NOT NULL AND doi != '';
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild replaces the index contents with the given entries. The first
// author is stored with TeX escapes intact; an unparseable doi field is
// indexed as empty rather than rejected.
func (d *DB) Rebuild(entries []bib.Entry) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (key, type, first_author, doi, raw) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range entries {
		e := &entries[i]
		doi, _, _ := e.DOI()
		if _, err := stmt.Exec(e.Key, e.Type, bib.FirstAuthorText(e.Raw), doi, e.Raw); err != nil {
			return fmt.Errorf("indexing entry %s: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of indexed entries.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// ByKey returns entries with the exact citation key.
func (d *DB) ByKey(key string) ([]Row, error) {
	return d.query(`SELECT key, type, first_author, doi, raw FROM entries WHERE key = ? ORDER BY key`, key)
}

// ByAuthor returns entries whose first author starts with prefix,
// matched case-insensitively.
func (d *DB) ByAuthor(prefix string) ([]Row, error) {
	return d.query(`SELECT key, type, first_author, doi, raw FROM entries
		WHERE first_author LIKE ? COLLATE NOCASE ORDER BY first_author, key`, prefix+"%")
}

// ByDOI returns entries with the exact DOI token.
func (d *DB) ByDOI(doi string) ([]Row, error) {
	return d.query(`SELECT key, type, first_author, doi, raw FROM entries WHERE doi = ? ORDER BY key`, doi)
}

func (d *DB) query(q string, args ...any) ([]Row, error) {
	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var author, doi sql.NullString
		if err := rows.Scan(&r.Key, &r.Type, &author, &doi, &r.Raw); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.FirstAuthor = author.String
		r.DOI = doi.String
		out = append(out, r)
	}
	return out, rows.Err()
}
