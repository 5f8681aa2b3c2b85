package cbess

import "strings"

// pairConfig holds configuration shared by Seal and Open.
type pairConfig struct {
	rawMoves    bool
	halfMoveKey bool
}

// Option configures Seal and Open. A pair must be opened with the same
// options it was sealed with, or the key will not match.
type Option func(*pairConfig)

func newPairConfig(opts []Option) *pairConfig {
	cfg := &pairConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRawMoves uses the move source exactly as given. By default Seal
// normalises it with NormalizeMoves first, so "1. e4 e5" and "e4  e5" give
// the same key. Under WithHalfMoveKey it also makes Open split the
// extracted moves on whitespace alone, keeping move numbers as tokens.
func WithRawMoves() Option {
	return func(c *pairConfig) {
		c.rawMoves = true
	}
}

// WithHalfMoveKey derives the key from the first half of the move tokens,
// rounded down, while the key image still carries all of them.
func WithHalfMoveKey() Option {
	return func(c *pairConfig) {
		c.halfMoveKey = true
	}
}

// keySource returns the text the key is derived from, given the move source
// as it is stored in the key image.
func (c *pairConfig) keySource(moves string) string {
	if !c.halfMoveKey {
		return moves
	}

	var tokens []string
	if c.rawMoves {
		tokens = strings.Fields(moves)
	} else {
		tokens = SplitMoves(moves)
	}
	return strings.Join(tokens[:len(tokens)/2], " ")
}

// KeyMoves returns the text Seal would derive the key from for moves under
// opts. DeriveKey(KeyMoves(m, opts...)) is the sealing key.
func KeyMoves(moves string, opts ...Option) string {
	cfg := newPairConfig(opts)
	if !cfg.rawMoves {
		moves = NormalizeMoves(moves)
	}
	return cfg.keySource(moves)
}
