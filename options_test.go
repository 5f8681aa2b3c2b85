package cbess

import "testing"

func TestPairConfig_Default(t *testing.T) {
	cfg := newPairConfig(nil)
	if cfg.rawMoves {
		t.Error("rawMoves should default to false")
	}
	if cfg.halfMoveKey {
		t.Error("halfMoveKey should default to false")
	}
}

func TestWithRawMoves(t *testing.T) {
	cfg := newPairConfig([]Option{WithRawMoves()})
	if !cfg.rawMoves {
		t.Error("rawMoves = false, want true")
	}
}

func TestWithHalfMoveKey(t *testing.T) {
	cfg := newPairConfig([]Option{WithHalfMoveKey()})
	if !cfg.halfMoveKey {
		t.Error("halfMoveKey = false, want true")
	}
}

func TestPairConfig_KeySource(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		moves string
		want  string
	}{
		{"full moves verbatim", nil, "1. e4 e5", "1. e4 e5"},
		{"half of six", []Option{WithHalfMoveKey()}, "e4 e5 Nf3 Nc6 Bb5 a6", "e4 e5 Nf3"},
		{"half of seven", []Option{WithHalfMoveKey()}, "e4 e5 Nf3 Nc6 Bb5 a6 Ba4", "e4 e5 Nf3"},
		{"half skips numbers", []Option{WithHalfMoveKey()}, "1. e4 e5 2. Nf3 Nc6", "e4 e5"},
		{"half counts numbers when raw", []Option{WithHalfMoveKey(), WithRawMoves()}, "1. e4 e5 2. Nf3 Nc6", "1. e4 e5"},
		{"half of one", []Option{WithHalfMoveKey()}, "e4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newPairConfig(tt.opts).keySource(tt.moves); got != tt.want {
				t.Errorf("keySource(%q) = %q, want %q", tt.moves, got, tt.want)
			}
		})
	}
}
