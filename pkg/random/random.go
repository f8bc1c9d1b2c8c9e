// Package random provides the random source used for lucky draws.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source picks an index in [0, n)
type Source interface {
	Intn(n int) int
}

// Safe is a Source that can be shared between goroutines
type Safe struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a Source with a reproducible sequence
func NewSeeded(seed int64) *Safe {
	return &Safe{rnd: rand.New(rand.NewSource(seed))}
}

// New returns a Source seeded once from the current time
func New() *Safe {
	return NewSeeded(time.Now().UnixNano())
}

// FromSeed seeds from the clock when seed is zero
func FromSeed(seed int64) *Safe {
	if seed == 0 {
		return New()
	}
	return NewSeeded(seed)
}

// Intn returns a pseudo-random number in [0, n). It panics if n <= 0.
func (s *Safe) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
