package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetNotation(t *testing.T) {
	parsed, err := ParseSetNotation("80x8")
	require.NoError(t, err)
	assert.Equal(t, 80.0, parsed.Weight)
	assert.Equal(t, 8, parsed.Reps)

	parsed, err = ParseSetNotation("102.5x5")
	require.NoError(t, err)
	assert.Equal(t, 102.5, parsed.Weight)
	assert.Equal(t, 5, parsed.Reps)
}

func TestParseSetNotationCommaDecimal(t *testing.T) {
	parsed, err := ParseSetNotation("7,5x12")
	require.NoError(t, err)
	assert.Equal(t, 7.5, parsed.Weight)
	assert.Equal(t, 12, parsed.Reps)
}

func TestParseSetNotationSpacingAndCase(t *testing.T) {
	parsed, err := ParseSetNotation("  80 X 8  ")
	require.NoError(t, err)
	assert.Equal(t, 80.0, parsed.Weight)
	assert.Equal(t, 8, parsed.Reps)
}

func TestParseSetNotationRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"80",
		"x8",
		"80x",
		"80x8x2",
		"-80x8",
		"80x0",
		"0x8",
		"bench",
		"80x1001",
	} {
		_, err := ParseSetNotation(input)
		assert.Error(t, err, "input %q", input)
	}
}
