package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Transition", "A ε B\n", "A ε B"},
		{"Tabs Separate Fields", "A\tB\tC\r\n", "A B C"},
		{"Arrow Keys", "q0 \x1b[Aq1\x1b[D", "q0 q1"},
		{"Colour Codes", "\x1b[31mdone\x1b[0m", "done"},
		{"Alt Key", "\x1bxA", "A"},
		{"Other Controls", "A\x00 B\x07", "A B"},
		{"Trailing Escape", "A\x1b", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanLine(tt.raw, DefaultMaxLineLength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanLine_Limit(t *testing.T) {
	_, err := cleanLine("A B C", 5)
	assert.NoError(t, err)

	// Counted in characters, after trimming.
	_, err = cleanLine("  ε ε ε  \n", 5)
	assert.NoError(t, err)

	_, err = cleanLine("A B C D", 5)
	assert.ErrorIs(t, err, ErrLineTooLong)

	_, err = cleanLine(strings.Repeat("q", DefaultMaxLineLength+1), DefaultMaxLineLength)
	assert.ErrorIs(t, err, ErrLineTooLong)
}

func TestCleanLine_InvalidUTF8(t *testing.T) {
	_, err := cleanLine("A \xbd\xb2 B", DefaultMaxLineLength)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
