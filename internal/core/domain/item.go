package domain

import "maps"

// VariantPlaceholder stands in for a raw record that carried no variant of
// its own. It keeps len(Variants) aligned with the number of raw records
// that merged into an Item.
const VariantPlaceholder = "None"

// Item is a canonical catalog entry after normalisation.
// The same Name may appear on several Items as long as their aspect
// maps differ; Name plus Aspects identifies one Item.
type Item struct {
	// ID is the unique identifier assigned at normalisation time.
	ID string

	// Name is the catalog name. Not unique on its own.
	Name string

	// Variants lists the textual variants under which this exact aspect
	// map was observed, in order of first appearance. Nil when the single
	// contributing record carried no variant.
	Variants []string

	// Aspects maps aspect name to integer weight.
	// Key order is irrelevant for matching.
	Aspects map[string]int
}

// HasAspect reports whether the item carries the named aspect.
func (i *Item) HasAspect(name string) bool {
	_, ok := i.Aspects[name]
	return ok
}

// HasAllAspects reports whether the item carries every named aspect.
// An empty list is trivially satisfied.
func (i *Item) HasAllAspects(names []string) bool {
	for _, name := range names {
		if !i.HasAspect(name) {
			return false
		}
	}
	return true
}

// SameAspects reports whether both items expose exactly the same aspect
// map - same names and same weights. Subset or superset is not equality.
func (i *Item) SameAspects(other *Item) bool {
	return maps.Equal(i.Aspects, other.Aspects)
}

// AbsorbVariants merges another record's variants into this item.
// It is called during normalisation when an incoming record duplicates
// an already-accepted item. A side with no variant contributes the
// placeholder so contribution counts stay consistent.
func (i *Item) AbsorbVariants(other *Item) {
	if i.Variants == nil {
		i.Variants = []string{VariantPlaceholder}
	}
	if other.Variants == nil {
		i.Variants = append(i.Variants, VariantPlaceholder)
		return
	}
	i.Variants = append(i.Variants, other.Variants...)
}
