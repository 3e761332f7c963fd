package usecase

import (
	"math/rand"
	"sync"
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
	"companion-srv/pkg/gemini"
	"companion-srv/pkg/log"
)

type implUseCase struct {
	emotionUC  emotion.UseCase
	safetyUC   safety.UseCase
	responseUC response.UseCase
	gemini     gemini.IGemini

	health         *orchestrator.HealthTracker
	defaultBackend string

	l log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New - Factory function. The health tracker is injected so its state
// can be shared with the stats endpoint and asserted on in tests. Pass
// a nil rng to seed from the clock.
func New(
	emotionUC emotion.UseCase,
	safetyUC safety.UseCase,
	responseUC response.UseCase,
	gemini gemini.IGemini,
	health *orchestrator.HealthTracker,
	defaultBackend string,
	l log.Logger,
	rng *rand.Rand,
) orchestrator.UseCase {
	if health == nil {
		health = orchestrator.NewHealthTracker()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &implUseCase{
		emotionUC:      emotionUC,
		safetyUC:       safetyUC,
		responseUC:     responseUC,
		gemini:         gemini,
		health:         health,
		defaultBackend: defaultBackend,
		l:              l,
		rng:            rng,
	}
}

func (uc *implUseCase) pick(pool []string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return pool[uc.rng.Intn(len(pool))]
}
