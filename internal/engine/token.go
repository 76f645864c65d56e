package engine

import "github.com/google/uuid"

// TokenGenerator produces unique identifiers for recorded actions.
// Implemented by UUIDv7Generator (production) and testutil.FixedGenerator
// (deterministic tests and golden traces).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 action tokens.
//
// The embedded timestamp makes tokens sort by creation order, which keeps
// trace output readable. Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
