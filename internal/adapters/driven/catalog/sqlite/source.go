// Package sqlite reads a catalog from a SQLite dump database.
//
// The expected schema is a single table of raw aspect lines:
//
//	CREATE TABLE catalog (
//	    id     INTEGER PRIMARY KEY AUTOINCREMENT,
//	    item   TEXT NOT NULL,
//	    aspect TEXT NOT NULL
//	);
//
// Rows are read in id order and grouped by item name, so the normalised
// catalog follows the order items first appear in the dump. The database
// is opened read-only: it is an input format, not application storage.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source is a SQLite catalog source.
type Source struct {
	path string
}

// New creates a source reading from the given database file.
func New(path string) *Source {
	return &Source{path: path}
}

// Load reads every catalog row and reassembles the raw records.
func (s *Source) Load(ctx context.Context) ([]domain.RawRecord, error) {
	db, err := sql.Open("sqlite", s.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT item, aspect FROM catalog ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.path, err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	index := make(map[string]int)

	for rows.Next() {
		var item, aspect string
		if err := rows.Scan(&item, &aspect); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}

		idx, seen := index[item]
		if !seen {
			idx = len(records)
			index[item] = idx
			records = append(records, domain.RawRecord{Name: item})
		}
		records[idx].Aspects = append(records[idx].Aspects, aspect)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	return records, nil
}

// Describe returns a short description of the source.
func (s *Source) Describe() string {
	return fmt.Sprintf("sqlite catalog %s", s.path)
}
