package testutil

import "fmt"

// FixedGenerator hands out predetermined action tokens in order, then keeps
// counting with a stable "action-N" pattern once the fixed list runs out.
// Golden traces stay byte-identical across runs this way.
type FixedGenerator struct {
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator that returns the given tokens first.
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Generate returns the next token.
func (g *FixedGenerator) Generate() string {
	g.idx++
	if g.idx <= len(g.tokens) {
		return g.tokens[g.idx-1]
	}
	return fmt.Sprintf("action-%d", g.idx)
}

// Reset rewinds the generator so a scenario can be re-run with identical
// tokens.
func (g *FixedGenerator) Reset() {
	g.idx = 0
}
