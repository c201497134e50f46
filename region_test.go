package spritefont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_Default(t *testing.T) {
	chars := Flatten(nil)

	assert.Len(t, chars, 95)
	assert.Equal(t, ' ', chars[0])
	assert.Equal(t, '~', chars[len(chars)-1])
}

func TestFlatten_KeepsOrderAndDropsDuplicates(t *testing.T) {
	chars := Flatten([]CharacterRegion{
		{Start: 'x', End: 'z'},
		{Start: 'a', End: 'c'},
		{Start: 'y', End: 'y'},
		{Start: 'b', End: 'd'},
	})
	assert.Equal(t, []rune("xyzabcd"), chars)
}

func TestFlatten_ReversedRegionIsEmpty(t *testing.T) {
	chars := Flatten([]CharacterRegion{{Start: 'z', End: 'a'}})
	assert.Empty(t, chars)
}

func TestParseRegions(t *testing.T) {
	testCases := []struct {
		input    string
		expected []CharacterRegion
	}{
		{"", nil},
		{"A", []CharacterRegion{{'A', 'A'}}},
		{"A-Z", []CharacterRegion{{'A', 'Z'}}},
		{"0x41-0x5A, a-z", []CharacterRegion{{'A', 'Z'}, {'a', 'z'}}},
		{"48-57", []CharacterRegion{{'0', '9'}}},
		{"0-9", []CharacterRegion{{'0', '9'}}},
		{"--/", []CharacterRegion{{'-', '/'}}},
		{"-", []CharacterRegion{{'-', '-'}}},
		{"А-Я", []CharacterRegion{{'А', 'Я'}}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			regions, err := ParseRegions(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, regions)
		})
	}
}

func TestParseRegions_Invalid(t *testing.T) {
	for _, input := range []string{"Z-A", "A-", "AB", "0xZZ", "A,,B", "0x110000"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRegions(input)
			assert.Error(t, err)
		})
	}
}

func TestCharacterRegion_String(t *testing.T) {
	assert.Equal(t, "A-Z", CharacterRegion{'A', 'Z'}.String())
	assert.Equal(t, "0x20-~", DefaultRegion.String())
	assert.Equal(t, "0x2d", CharacterRegion{'-', '-'}.String())

	regions, err := ParseRegions(DefaultRegion.String())
	require.NoError(t, err)
	assert.Equal(t, []CharacterRegion{DefaultRegion}, regions)
}
