package logic

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRNG guards a math/rand source so concurrent prediction requests can
// share it. rand.Rand itself is not safe for concurrent use.
type lockedRNG struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRNG returns the production random source. A non-zero seed makes every
// prediction run reproducible, which is how deterministic deployments and
// the test suite get stable outputs; seed 0 seeds from the clock.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRNG{src: rand.New(rand.NewSource(seed))}
}

func (r *lockedRNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *lockedRNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}
