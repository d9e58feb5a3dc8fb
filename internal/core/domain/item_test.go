package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_HasAspect(t *testing.T) {
	item := &Item{
		Name:    "Water",
		Aspects: map[string]int{"aqua": 2},
	}

	assert.True(t, item.HasAspect("aqua"))
	assert.False(t, item.HasAspect("ignis"))
}

func TestItem_HasAllAspects(t *testing.T) {
	item := &Item{
		Name:    "Obsidian",
		Aspects: map[string]int{"terra": 2, "ignis": 1},
	}

	assert.True(t, item.HasAllAspects([]string{"terra"}))
	assert.True(t, item.HasAllAspects([]string{"terra", "ignis"}))
	assert.False(t, item.HasAllAspects([]string{"terra", "aqua"}))
}

func TestItem_HasAllAspects_EmptyList(t *testing.T) {
	item := &Item{Name: "Stone", Aspects: map[string]int{"terra": 1}}

	// An empty requirement is trivially satisfied.
	assert.True(t, item.HasAllAspects(nil))
}

func TestItem_SameAspects(t *testing.T) {
	a := &Item{Aspects: map[string]int{"aqua": 2, "ignis": 1}}
	b := &Item{Aspects: map[string]int{"ignis": 1, "aqua": 2}}

	assert.True(t, a.SameAspects(b))
}

func TestItem_SameAspects_DifferentWeights(t *testing.T) {
	a := &Item{Aspects: map[string]int{"aqua": 2}}
	b := &Item{Aspects: map[string]int{"aqua": 3}}

	assert.False(t, a.SameAspects(b))
}

func TestItem_SameAspects_SubsetIsNotEqual(t *testing.T) {
	a := &Item{Aspects: map[string]int{"aqua": 2}}
	b := &Item{Aspects: map[string]int{"aqua": 2, "ignis": 1}}

	assert.False(t, a.SameAspects(b))
	assert.False(t, b.SameAspects(a))
}

func TestItem_AbsorbVariants(t *testing.T) {
	a := &Item{Name: "Water", Variants: []string{"bucket"}}
	b := &Item{Name: "Water", Variants: []string{"bottle"}}

	a.AbsorbVariants(b)

	assert.Equal(t, []string{"bucket", "bottle"}, a.Variants)
}

func TestItem_AbsorbVariants_PlaceholderForMissing(t *testing.T) {
	a := &Item{Name: "Water"}
	b := &Item{Name: "Water", Variants: []string{"bucket"}}

	a.AbsorbVariants(b)

	assert.Equal(t, []string{VariantPlaceholder, "bucket"}, a.Variants)
}

func TestItem_AbsorbVariants_BothMissing(t *testing.T) {
	a := &Item{Name: "Water"}
	b := &Item{Name: "Water"}

	a.AbsorbVariants(b)

	assert.Equal(t, []string{VariantPlaceholder, VariantPlaceholder}, a.Variants)
}
