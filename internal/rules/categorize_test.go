package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		statement string
		want      Category
	}{
		{"Use Hungarian notation for member variables", CategoryNaming},
		{"Every function identifier follows camelCase", CategoryNaming},
		{"Indent nested blocks by four spaces", CategoryStructure},
		{"Declaration blocks go at the top of the file", CategoryStructure},
		{"Never store security credentials in source", CategorySecurity},
		{"Validate memory address ranges before writes", CategorySecurity},
		{"Optimize polling loops for energy efficiency", CategoryEnergy},
		{"Prefer clarity over cleverness", CategoryGeneral},
		{"", CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.statement, func(t *testing.T) {
			assert.Equal(t, tt.want, Bucket(tt.statement))
		})
	}
}

// A statement matching several keyword sets lands in the first bucket in
// priority order: naming wins over security here.
func TestBucketPriorityOrder(t *testing.T) {
	got := Bucket("Security tokens must use a descriptive name")
	assert.Equal(t, CategoryNaming, got)
}

func TestBuckets(t *testing.T) {
	all := []Rule{
		{ID: "R001", Statement: "Use descriptive names"},
		{ID: "R002", Statement: "Indent with four spaces"},
		{ID: "R003", Statement: "No hardcoded security keys"},
		{ID: "R004", Statement: "Be consistent"},
		{ID: "R005", Statement: "Pick a clear name for each module"},
	}
	m := Buckets(all)

	require.Len(t, m, 5)
	assert.Len(t, m[CategoryNaming], 2)
	assert.Len(t, m[CategoryStructure], 1)
	assert.Len(t, m[CategorySecurity], 1)
	assert.Empty(t, m[CategoryEnergy])
	assert.Len(t, m[CategoryGeneral], 1)

	// Store order preserved within a bucket.
	assert.Equal(t, "R001", m[CategoryNaming][0].ID)
	assert.Equal(t, "R005", m[CategoryNaming][1].ID)
}
