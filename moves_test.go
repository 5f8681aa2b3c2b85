package cbess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"numbered", "1. e4 e5 2. Nf3 Nc6", "e4 e5 Nf3 Nc6"},
		{"no space after number", "1.e4 e5 2.Nf3", "e4 e5 Nf3"},
		{"black ellipsis", "12... Qxd5 13. Bc4", "Qxd5 Bc4"},
		{"attached ellipsis", "3...Nf6", "Nf6"},
		{"already plain", "e4 e5 Nf3", "e4 e5 Nf3"},
		{"extra whitespace", "  1. e4\t\te5\n2. Nf3  ", "e4 e5 Nf3"},
		{"castling and promotion", "20. O-O-O e1=Q+", "O-O-O e1=Q+"},
		{"result kept", "1. e4 e5 1-0", "e4 e5 1-0"},
		{"empty", "", ""},
		{"only numbers", "1. 2. 3...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMoves(tt.in))
		})
	}
}

func TestNormalizeMoves_Idempotent(t *testing.T) {
	t.Parallel()

	in := "1. d4 Nf6 2. c4 g6 3. Nc3 Bg7"
	once := NormalizeMoves(in)
	assert.Equal(t, once, NormalizeMoves(once))
}

func TestSplitMoves(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"e4", "e5", "Nf3"}, SplitMoves("1. e4 e5 2. Nf3"))
	assert.Empty(t, SplitMoves("   "))
}

func TestFormatMoves(t *testing.T) {
	t.Parallel()

	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}

	tests := []struct {
		name     string
		maxPlies int
		want     string
	}{
		{"all", 0, "1. e4 e5\n2. Nf3 Nc6\n3. Bb5"},
		{"negative means all", -1, "1. e4 e5\n2. Nf3 Nc6\n3. Bb5"},
		{"odd cut completes the move", 3, "1. e4 e5\n2. Nf3 Nc6"},
		{"even cut", 2, "1. e4 e5"},
		{"one ply completes the move", 1, "1. e4 e5"},
		{"last move has no reply", 5, "1. e4 e5\n2. Nf3 Nc6\n3. Bb5"},
		{"beyond length", 99, "1. e4 e5\n2. Nf3 Nc6\n3. Bb5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoves(moves, tt.maxPlies))
		})
	}

	assert.Equal(t, "", FormatMoves(nil, 0))
	assert.Equal(t, "1. e4", FormatMoves([]string{"e4"}, 1))
}
