package sentiment

import "github.com/jonreiter/govader"

// IScorer defines the interface for sentiment scoring.
// Implementations are safe for concurrent use.
type IScorer interface {
	Score(text string) (Scores, error)
}

// NewScorer creates a new VADER-backed sentiment scorer.
func NewScorer() IScorer {
	return &vaderImpl{analyzer: govader.NewSentimentIntensityAnalyzer()}
}
