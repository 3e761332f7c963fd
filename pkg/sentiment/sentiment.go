package sentiment

// Score computes VADER polarity scores for the given text.
func (s *vaderImpl) Score(text string) (Scores, error) {
	polarity := s.analyzer.PolarityScores(text)
	return Scores{
		Compound: polarity.Compound,
		Positive: polarity.Positive,
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
	}, nil
}
