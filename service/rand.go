package service

import (
	"math/rand"
	"sync"
)

// Rand supplies uniform random draws. Injected so probabilistic outcomes
// can be scripted in tests.
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int

	// Int63n returns a uniform int64 in [0, n)
	Int63n(n int64) int64

	// Float64 returns a uniform float64 in [0.0, 1.0)
	Float64() float64
}

type systemRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *systemRand) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *systemRand) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int63n(n)
}

func (s *systemRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// SystemRand returns a Rand backed by math/rand with its own seeded source
func SystemRand(seed int64) Rand {
	return &systemRand{r: rand.New(rand.NewSource(seed))}
}

// randRange returns a uniform int64 in [min, max]
func randRange(rng Rand, min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + rng.Int63n(max-min+1)
}
