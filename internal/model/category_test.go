package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Catalog(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 11)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.NotEmpty(t, c.Value)
		assert.NotEmpty(t, c.Label)
		assert.NotEmpty(t, c.Color)
		assert.NotEmpty(t, c.Icon)
		assert.False(t, seen[c.Value], "duplicate category value %q", c.Value)
		seen[c.Value] = true
	}
}

func TestCategoryByValue(t *testing.T) {
	cat, ok := CategoryByValue("food")
	require.True(t, ok)
	assert.Equal(t, "food", cat.Value)
	assert.Equal(t, "Food", cat.Name())

	_, ok = CategoryByValue("yachts")
	assert.False(t, ok)
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"food", true},
		{"transport", true},
		{"other", true},
		{"", false},
		{"Food", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCategory(tt.value))
		})
	}
}
