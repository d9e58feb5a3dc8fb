package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/logger"
)

// Normaliser converts raw catalog records into canonical items, merging
// records that repeat the same name with an identical aspect map.
type Normaliser struct{}

// NewNormaliser creates a new normaliser.
func NewNormaliser() *Normaliser {
	return &Normaliser{}
}

// Normalise parses and deduplicates the raw records.
//
// Records are processed in input order. Within a name group an incoming
// record merges into the first accepted item whose aspect map is fully
// equal; otherwise it starts a new item under that name. The returned
// slice preserves group first-seen order, then intra-group creation order.
//
// Any record that fails to parse aborts the whole load with a
// *domain.FormatError: a malformed catalog must not serve partial data.
func (n *Normaliser) Normalise(records []domain.RawRecord) ([]*domain.Item, error) {
	groups := make(map[string][]*domain.Item, len(records))
	var order []string

	for _, record := range records {
		item, err := n.parseRecord(record)
		if err != nil {
			return nil, err
		}

		accepted, seen := groups[item.Name]
		if !seen {
			groups[item.Name] = []*domain.Item{item}
			order = append(order, item.Name)
			continue
		}

		merged := false
		for _, candidate := range accepted {
			if candidate.SameAspects(item) {
				candidate.AbsorbVariants(item)
				merged = true
				break
			}
		}
		if !merged {
			groups[item.Name] = append(accepted, item)
		}
	}

	items := make([]*domain.Item, 0, len(records))
	for _, name := range order {
		items = append(items, groups[name]...)
	}

	logger.Debug("Normalised %d raw records into %d items", len(records), len(items))

	return items, nil
}

// parseRecord parses one raw record into a fresh item.
func (n *Normaliser) parseRecord(record domain.RawRecord) (*domain.Item, error) {
	name, variant, hasVariant := strings.Cut(record.Name, domain.VariantSeparator)

	item := &domain.Item{
		ID:      uuid.New().String(),
		Name:    name,
		Aspects: make(map[string]int, len(record.Aspects)),
	}

	// An empty suffix after the separator counts as no variant at all.
	if hasVariant && variant != "" {
		item.Variants = []string{variant}
	}

	for _, line := range record.Aspects {
		weight, aspect, ok := strings.Cut(line, " ")
		if !ok {
			return nil, &domain.FormatError{
				Record: record.Name,
				Line:   line,
				Err:    fmt.Errorf("missing weight separator: %w", domain.ErrInvalidInput),
			}
		}

		value, err := strconv.Atoi(weight)
		if err != nil {
			return nil, &domain.FormatError{Record: record.Name, Line: line, Err: err}
		}

		item.Aspects[aspect] = value
	}

	return item, nil
}
