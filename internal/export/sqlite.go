// Package export writes lookup results to SQLite files.
package export

import (
	"database/sql"
	"fmt"

	"github.com/f3rmion/unilookup/internal/uni"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS characters (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	query TEXT    NOT NULL,
	char  TEXT    NOT NULL,
	cp    INTEGER NOT NULL,
	hex   TEXT    NOT NULL,
	name  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS characters_cp ON characters (cp);
`

// WriteSQLite appends records to the characters table of the database at
// path, creating the file and table when needed. All rows are written in
// one transaction.
func WriteSQLite(path string, records []uni.Record) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO characters (query, char, cp, hex, name) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Query, r.Char, int64(r.CP), r.Hex, r.Name); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Hex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// ReadSQLite returns the records stored at path in insertion order.
func ReadSQLite(path string) ([]uni.Record, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT query, char, cp, hex, name FROM characters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	var records []uni.Record
	for rows.Next() {
		var r uni.Record
		var cp int64
		if err := rows.Scan(&r.Query, &r.Char, &cp, &r.Hex, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.CP = rune(cp)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return records, nil
}
