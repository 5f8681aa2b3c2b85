package cbess

import (
	"fmt"
	"strings"
)

// NormalizeMoves strips move numbers ("12." and "12...") from a move list and
// collapses whitespace, so "1. e4 e5 2. Nf3" becomes "e4 e5 Nf3". Move
// legality is not checked.
func NormalizeMoves(s string) string {
	return strings.Join(SplitMoves(s), " ")
}

// SplitMoves returns the move tokens of s with move numbers removed.
func SplitMoves(s string) []string {
	fields := strings.Fields(s)
	moves := fields[:0]
	for _, f := range fields {
		if m := stripMoveNumber(f); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}

// stripMoveNumber removes a leading "<digits>." or "<digits>..." from tok.
// Tokens without a dot after the digits are moves and are returned as is.
func stripMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 || i == len(tok) || tok[i] != '.' {
		return tok
	}
	return strings.TrimLeft(tok[i:], ".")
}

// FormatMoves renders moves as a numbered list, one full move per line:
//
//	1. e4 e5
//	2. Nf3
//
// Listing stops once maxPlies half-moves are shown, but a started move is
// always completed, so an odd maxPlies shows Black's reply too. maxPlies <= 0
// means all of them.
func FormatMoves(moves []string, maxPlies int) string {
	if maxPlies <= 0 || maxPlies > len(moves) {
		maxPlies = len(moves)
	}

	var sb strings.Builder
	for i := 0; i < maxPlies; i += 2 {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i+1 < len(moves) {
			fmt.Fprintf(&sb, "%d. %s %s", i/2+1, moves[i], moves[i+1])
		} else {
			fmt.Fprintf(&sb, "%d. %s", i/2+1, moves[i])
		}
	}
	return sb.String()
}
