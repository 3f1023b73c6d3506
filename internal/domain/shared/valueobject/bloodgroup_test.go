package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBloodGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "A positive", input: "A+", expected: "A+"},
		{name: "A negative", input: "A-", expected: "A-"},
		{name: "B positive", input: "B+", expected: "B+"},
		{name: "B negative", input: "B-", expected: "B-"},
		{name: "O positive", input: "O+", expected: "O+"},
		{name: "O negative", input: "O-", expected: "O-"},
		{name: "AB positive", input: "AB+", expected: "AB+"},
		{name: "AB negative", input: "AB-", expected: "AB-"},
		{name: "lowercase normalized", input: "ab+", expected: "AB+"},
		{name: "whitespace trimmed", input: "  O-  ", expected: "O-"},
		{name: "empty string", input: "", wantErr: true},
		{name: "missing rh sign", input: "AB", wantErr: true},
		{name: "unknown group", input: "C+", wantErr: true},
		{name: "universal donor alias rejected", input: "universal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, err := ParseBloodGroup(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bg.String())
			assert.True(t, bg.IsValid())
		})
	}
}

func TestMustParseBloodGroup(t *testing.T) {
	bg := MustParseBloodGroup("O-")
	assert.Equal(t, "O-", bg.String())

	assert.Panics(t, func() {
		MustParseBloodGroup("X+")
	})
}

func TestAllBloodGroups(t *testing.T) {
	groups := AllBloodGroups()
	require.Len(t, groups, 8)
	seen := make(map[string]bool)
	for _, g := range groups {
		assert.True(t, g.IsValid())
		assert.False(t, seen[g.String()], "duplicate group %s", g)
		seen[g.String()] = true
	}
}

func TestBloodGroup_Equals(t *testing.T) {
	a := MustParseBloodGroup("A+")
	b := MustParseBloodGroup("a+")
	c := MustParseBloodGroup("A-")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c), "Rh factor must match exactly")
}

func TestBloodGroup_IsZero(t *testing.T) {
	var zero BloodGroup
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsValid())

	bg := MustParseBloodGroup("B+")
	assert.False(t, bg.IsZero())
}

func TestBloodGroup_JSON(t *testing.T) {
	original := MustParseBloodGroup("AB-")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"AB-"`, string(data))

	var restored BloodGroup
	err = json.Unmarshal(data, &restored)
	require.NoError(t, err)
	assert.True(t, original.Equals(restored))

	err = json.Unmarshal([]byte(`"Z+"`), &restored)
	require.Error(t, err)
}

func TestBloodGroup_DatabaseOperations(t *testing.T) {
	original := MustParseBloodGroup("O+")

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, "O+", value)

	var restored BloodGroup
	err = restored.Scan("o+")
	require.NoError(t, err)
	assert.Equal(t, "O+", restored.String())

	err = restored.Scan([]byte("AB+"))
	require.NoError(t, err)
	assert.Equal(t, "AB+", restored.String())

	err = restored.Scan(nil)
	require.NoError(t, err)
	assert.True(t, restored.IsZero())

	err = restored.Scan(42)
	require.Error(t, err)
}
