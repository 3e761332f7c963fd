package usecase

import (
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
)

// fallbackChains maps a failed backend to its ordered fallback
// candidates. rule_based falling back to hybrid covers the case where
// the template path itself errors but the generator is still up.
var fallbackChains = map[string][]string{
	model.BackendExternalLLM: {model.BackendHybrid, model.BackendRuleBased},
	model.BackendHybrid:      {model.BackendRuleBased, model.BackendExternalLLM},
	model.BackendML:          {model.BackendRuleBased, model.BackendHybrid},
	model.BackendRuleBased:   {model.BackendHybrid},
}

// isHealthy reports whether a backend can serve requests right now.
func (uc *implUseCase) isHealthy(backend string) bool {
	if uc.health.BreakerOpen(backend) {
		return false
	}

	switch backend {
	case model.BackendExternalLLM:
		return uc.health.Status(backend) != orchestrator.StatusUnavailable && uc.gemini.IsAvailable()
	case model.BackendHybrid:
		return uc.health.Status(backend) != orchestrator.StatusUnavailable
	case model.BackendML:
		// Reserved, no implementation yet.
		return false
	case model.BackendRuleBased:
		return true
	default:
		return false
	}
}

// selectBackend picks the backend for a request: the caller's
// preference when healthy, then the configured default, then the
// fastest healthy backend, then rule_based as last resort.
func (uc *implUseCase) selectBackend(preferred string) string {
	if preferred != "" && uc.isHealthy(preferred) {
		return preferred
	}

	if uc.isHealthy(uc.defaultBackend) {
		return uc.defaultBackend
	}

	best := ""
	for _, backend := range model.Backends {
		if !uc.isHealthy(backend) {
			continue
		}
		if best == "" || uc.health.AvgResponseMs(backend) < uc.health.AvgResponseMs(best) {
			best = backend
		}
	}
	if best == "" {
		return model.BackendRuleBased
	}
	return best
}

// fallbackFor returns the first healthy fallback for a failed backend.
// rule_based is the unconditional last resort.
func (uc *implUseCase) fallbackFor(failed string) string {
	for _, candidate := range fallbackChains[failed] {
		if uc.isHealthy(candidate) {
			return candidate
		}
	}
	return model.BackendRuleBased
}
