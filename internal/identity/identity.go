// Package identity generates the local identities attached to display items.
package identity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"usergrip/internal/domain"
)

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

// NewAppID returns a fresh random identity
func (UUIDGenerator) NewAppID() domain.AppID {
	return domain.AppID(uuid.NewString())
}

// SequenceGenerator issues prefix-1, prefix-2, ... and is safe for concurrent use.
// Deterministic, so tests can assert on exact identities.
type SequenceGenerator struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceGenerator creates a monotonic generator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewAppID returns the next identity in the sequence
func (g *SequenceGenerator) NewAppID() domain.AppID {
	return domain.AppID(fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1)))
}
