// Package idgen hands out playback handles.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// withPrefix joins prefix and id as "prefix_id", or returns id alone.
func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// SequentialGenerator yields prefix_1, prefix_2, ... and is safe for
// concurrent use. Tests use it for predictable handles.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in the sequence
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// UUIDGenerator yields time-ordered (version 7) UUIDs, so handles for
// playbacks started later sort after earlier ones.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new UUID-based ID. It falls back to a random v4 UUID if
// the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return withPrefix(g.prefix, id.String())
}
