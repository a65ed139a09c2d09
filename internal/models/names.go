package models

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// NamePool hands out unique player names drawn at random.
// It is owned by whoever creates players and is not safe for concurrent use.
type NamePool struct {
	names []string
	rng   *rand.Rand
}

// NewNamePool creates a pool from a list of names. The same seed always
// yields the same sequence of names.
func NewNamePool(names []string, seed uint64) *NamePool {
	pool := make([]string, len(names))
	copy(pool, names)
	return &NamePool{
		names: pool,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Take removes and returns a random unused name
func (p *NamePool) Take() (string, error) {
	if len(p.names) == 0 {
		return "", ErrNamePoolEmpty
	}
	i := p.rng.IntN(len(p.names))
	name := p.names[i]
	p.names = append(p.names[:i], p.names[i+1:]...)
	return name, nil
}

// Remaining returns the number of unused names
func (p *NamePool) Remaining() int {
	return len(p.names)
}

// GenerateName returns a fallback player name with a short random suffix
func GenerateName() string {
	return "brewery-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
