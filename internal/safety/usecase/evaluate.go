package usecase

import (
	"companion-srv/internal/emotion"
	"companion-srv/internal/safety"
)

// highDistressEmotions gate the "high" level when paired with high or
// extreme intensity.
var highDistressEmotions = map[string]bool{
	emotion.EmotionSad:         true,
	emotion.EmotionOverwhelmed: true,
	"hopeless":                 true,
}

// Evaluate is a pure, deterministic assessment of one message. Rules
// run in priority order; the first match wins.
func (uc *implUseCase) Evaluate(text string, sig emotion.Signal) safety.Assessment {
	crisisFound, _ := emotion.ScanCrisis(text)

	highIntensity := sig.Intensity == emotion.IntensityHigh || sig.Intensity == emotion.IntensityExtreme
	distressCombo := highIntensity && highDistressEmotions[sig.PrimaryEmotion]
	veryNegative := sig.SentimentScore < safety.VeryNegativeSentiment

	level := safety.LevelNormal
	switch {
	case crisisFound:
		level = safety.LevelCrisis
	case distressCombo || veryNegative:
		level = safety.LevelHigh
	}

	return safety.Assessment{
		Level:             level,
		NeedsIntervention: level != safety.LevelNormal,
		TriggeringFactors: safety.TriggeringFactors{
			CrisisKeywordsFound:           crisisFound,
			HighDistressEmotionIntensity:  distressCombo,
			VeryNegativeSentimentDetected: veryNegative,
		},
	}
}
