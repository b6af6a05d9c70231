package goload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-introspector/typemeta"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected []tagPair
	}{
		{
			name:     "empty",
			tag:      "",
			expected: nil,
		},
		{
			name:     "single pair",
			tag:      `json:"id"`,
			expected: []tagPair{{key: "json", value: "id"}},
		},
		{
			name: "pairs keep declaration order",
			tag:  `json:"id" db:"id" validate:"required"`,
			expected: []tagPair{
				{key: "json", value: "id"},
				{key: "db", value: "id"},
				{key: "validate", value: "required"},
			},
		},
		{
			name:     "options stay in the value",
			tag:      `json:"nickname,omitempty"`,
			expected: []tagPair{{key: "json", value: "nickname,omitempty"}},
		},
		{
			name:     "dash value",
			tag:      `json:"-"`,
			expected: []tagPair{{key: "json", value: "-"}},
		},
		{
			name: "extra spaces between pairs",
			tag:  `gorm:"primaryKey"  json:"id"`,
			expected: []tagPair{
				{key: "gorm", value: "primaryKey"},
				{key: "json", value: "id"},
			},
		},
		{
			name:     "malformed tail dropped",
			tag:      `json:"id" notatag`,
			expected: []tagPair{{key: "json", value: "id"}},
		},
		{
			name:     "bare word is not a pair",
			tag:      `notatag`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTag(tt.tag))
		})
	}
}

func TestTagAnnotations(t *testing.T) {
	u := typemeta.NewUniverse()

	anns := tagAnnotations(u, `json:"id" db:"id"`)
	require.Len(t, anns, 2)

	assert.Equal(t, "tag.json", anns[0].Type.FullName())
	assert.Equal(t, map[string]any{"value": "id"}, anns[0].Data)
	assert.Equal(t, "tag.db", anns[1].Type.FullName())

	// Repeat keys define the annotation type once; identity is shared.
	again := tagAnnotations(u, `json:"other"`)
	require.Len(t, again, 1)
	assert.Same(t, anns[0].Type, again[0].Type)
	assert.Equal(t, "other", again[0].Data["value"])

	assert.Nil(t, tagAnnotations(u, ""))
}
