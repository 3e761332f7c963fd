package sentiment

import "github.com/jonreiter/govader"

// Scores is a lexicon-based polarity breakdown. Compound is in [-1, 1].
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// vaderImpl implements IScorer using the VADER sentiment lexicon.
type vaderImpl struct {
	analyzer *govader.SentimentIntensityAnalyzer
}
