package usecase

import (
	"math/rand"
	"sync"
	"time"

	"companion-srv/internal/response"
	"companion-srv/pkg/gemini"
	"companion-srv/pkg/log"
)

type implUseCase struct {
	gemini gemini.IGemini
	l      log.Logger

	// rng guards phrase selection. Injectable so tests can fix the
	// seed and assert exact output.
	mu  sync.Mutex
	rng *rand.Rand
}

// New - Factory function. Pass a nil rng to seed from the clock.
func New(gemini gemini.IGemini, l log.Logger, rng *rand.Rand) response.UseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &implUseCase{
		gemini: gemini,
		l:      l,
		rng:    rng,
	}
}

// pick selects one phrase from a pool.
func (uc *implUseCase) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return pool[uc.rng.Intn(len(pool))]
}

// sample selects up to n distinct phrases from a pool.
func (uc *implUseCase) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return []string{}
	}

	uc.mu.Lock()
	perm := uc.rng.Perm(len(pool))
	uc.mu.Unlock()

	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}
