package domain

const unknownDescription = "Unknown"

// QueryMode defines how the requested aspects combine.
type QueryMode string

// Available query modes.
const (
	// MatchAll requires an item to carry every requested aspect.
	MatchAll QueryMode = "all"

	// MatchAny requires an item to carry at least one requested aspect.
	MatchAny QueryMode = "any"
)

// IsValid returns true if the query mode is recognised.
func (m QueryMode) IsValid() bool {
	switch m {
	case MatchAll, MatchAny:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m QueryMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m QueryMode) Description() string {
	switch m {
	case MatchAll:
		return "All (items carrying every requested aspect)"
	case MatchAny:
		return "Any (items carrying one or more requested aspects)"
	default:
		return unknownDescription
	}
}

// Query describes one search over the normalised catalog.
type Query struct {
	// Aspects are the requested aspect names, in declaration order.
	Aspects []string

	// Mode selects conjunctive or disjunctive matching.
	// The zero value is treated as MatchAll.
	Mode QueryMode

	// Exact additionally requires an item's aspect set to contain no
	// members beyond the group being evaluated.
	Exact bool
}

// EffectiveMode resolves the zero value to MatchAll.
func (q Query) EffectiveMode() QueryMode {
	if q.Mode == "" {
		return MatchAll
	}
	return q.Mode
}

// Groups returns the aspect groups evaluated against the catalog:
// the whole requested list as a single group under MatchAll, one
// singleton group per requested aspect under MatchAny. Group order
// determines result order across groups.
func (q Query) Groups() [][]string {
	if q.EffectiveMode() == MatchAny {
		groups := make([][]string, 0, len(q.Aspects))
		for _, aspect := range q.Aspects {
			groups = append(groups, []string{aspect})
		}
		return groups
	}
	return [][]string{q.Aspects}
}
