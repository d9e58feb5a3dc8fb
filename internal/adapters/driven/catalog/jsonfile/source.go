// Package jsonfile reads a catalog from a JSON dump file.
//
// The expected shape is a single object mapping raw item names to arrays
// of raw aspect lines:
//
//	{
//	  "Water --- bucket": ["2 aqua"],
//	  "Torch": ["1 ignis", "2 lux"]
//	}
//
// Object keys are decoded with the token API rather than into a map:
// the catalog's normalised order follows the order records appear in
// the file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source is a JSON file catalog source.
type Source struct {
	path string
}

// New creates a source reading from the given file path.
func New(path string) *Source {
	return &Source{path: path}
}

// Load reads and decodes the whole file.
// Decoding failures here concern the outer JSON structure only; the
// per-record aspect lines are handed to the normaliser untouched.
func (s *Source) Load(_ context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return records, nil
}

// Describe returns a short description of the source.
func (s *Source) Describe() string {
	return fmt.Sprintf("json file %s", s.path)
}

func parse(r io.Reader) ([]domain.RawRecord, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top-level value must be an object: %w", domain.ErrInvalidInput)
	}

	var records []domain.RawRecord
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		// Inside an object the next token is always a key.
		name := tok.(string)

		var lines []string
		if err := dec.Decode(&lines); err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}

		records = append(records, domain.RawRecord{Name: name, Aspects: lines})
	}

	// Consume the closing brace so trailing garbage surfaces via err.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return records, nil
}
