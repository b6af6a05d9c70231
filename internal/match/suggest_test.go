package match

import (
	"testing"
)

func TestNearest(t *testing.T) {
	catalog := []string{"Shipment", "Inventory", "Container`1", "Pair`2", "Status", "Person"}

	tests := []struct {
		name       string
		query      string
		candidates []string
		max        int
		expected   []string
	}{
		{
			name:       "single typo",
			query:      "Shipmnt",
			candidates: catalog,
			max:        3,
			expected:   []string{"Shipment"},
		},
		{
			name:       "case and separators ignored",
			query:      "in_ventory",
			candidates: catalog,
			max:        3,
			expected:   []string{"Inventory"},
		},
		{
			name:       "arity suffix ignored",
			query:      "Container",
			candidates: catalog,
			max:        3,
			expected:   []string{"Container`1"},
		},
		{
			name:       "exact beats partial",
			query:      "Pair",
			candidates: []string{"Pairs", "Pair`2"},
			max:        3,
			expected:   []string{"Pair`2", "Pairs"},
		},
		{
			name:       "max truncates ranking",
			query:      "stat",
			candidates: []string{"Stat", "State", "Stats"},
			max:        2,
			expected:   []string{"Stat", "State"},
		},
		{
			name:       "nothing close enough",
			query:      "Zebra",
			candidates: catalog,
			max:        3,
			expected:   []string{},
		},
		{
			name:       "empty candidates",
			query:      "Shipment",
			candidates: nil,
			max:        3,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Nearest(tt.query, tt.candidates, tt.max)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("Nearest(%q, %v, %d) = %v, want %v",
					tt.query, tt.candidates, tt.max, result, tt.expected)
			}
		})
	}
}

func TestNearestDeterministicTieBreak(t *testing.T) {
	// Both candidates normalize to an exact match; ties break alphabetically.
	result := Nearest("order", []string{"Order", "ORDER"}, 2)

	expected := []string{"ORDER", "Order"}
	if !stringSliceEqual(result, expected) {
		t.Errorf("Nearest tie-break = %v, want %v", result, expected)
	}
}
