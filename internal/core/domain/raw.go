package domain

// VariantSeparator splits a raw record name from its variant suffix.
// Only the first occurrence is significant.
const VariantSeparator = " --- "

// RawRecord is one undecoded catalog record as supplied by a catalog
// source, before normalisation.
type RawRecord struct {
	// Name is the raw name, possibly carrying a variant suffix after
	// VariantSeparator.
	Name string

	// Aspects are the raw aspect lines, each "<weight> <aspect name>".
	// Aspect names may themselves contain spaces.
	Aspects []string
}
