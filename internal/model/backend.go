package model

// Processing backend identifiers. The set is closed; ml is reserved
// and not implemented.
const (
	BackendRuleBased   = "rule_based"
	BackendExternalLLM = "external_llm"
	BackendHybrid      = "hybrid"
	BackendML          = "ml"
)

// Backends lists every known backend identifier.
var Backends = []string{BackendRuleBased, BackendExternalLLM, BackendHybrid, BackendML}
