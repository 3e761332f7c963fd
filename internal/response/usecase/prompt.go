package usecase

import (
	"fmt"
	"strings"

	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
)

const systemPrompt = `You are a warm, supportive companion in a mental wellbeing app. Guidelines:
- Respond with empathy; validate the user's feelings before anything else
- Never diagnose, prescribe, or present yourself as a therapist
- Keep the reply under 200 words
- If the user seems to be in danger, gently point them to crisis resources (call or text 988 in the US)
- Offer at most one concrete, gentle suggestion
- Avoid dismissive phrases like "just think positive" or "it could be worse"`

// emotionHints steer tone per detected emotion.
var emotionHints = map[string]string{
	emotion.EmotionStressed:    "The user is stressed. Acknowledge the load they carry and help them slow down.",
	emotion.EmotionAnxious:     "The user is anxious. Be calm and steady; help ground them in the present.",
	emotion.EmotionSad:         "The user is sad. Sit with the feeling; do not rush to fix it.",
	emotion.EmotionOverwhelmed: "The user is overwhelmed. Help them shrink the problem to one next step.",
	emotion.EmotionAngry:       "The user is angry. Validate without judgment; do not escalate or moralize.",
	emotion.EmotionExcited:     "The user is excited. Share their enthusiasm genuinely.",
	emotion.EmotionPositive:    "The user feels good. Reinforce what is working for them.",
	emotion.EmotionConfused:    "The user is confused. Help them untangle their thoughts without deciding for them.",
	emotion.EmotionGrateful:    "The user is grateful. Reflect their appreciation back warmly.",
}

// buildSystemPrompt combines the tone rules with an emotion hint.
func buildSystemPrompt(sig emotion.Signal) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	if hint, ok := emotionHints[sig.PrimaryEmotion]; ok {
		b.WriteString("\n\n")
		b.WriteString(hint)
	}
	return b.String()
}

// buildUserPrompt embeds the message and its classification so the
// generator does not re-guess the emotion.
func buildUserPrompt(input response.ComposeInput) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("The user wrote: %q\n\n", input.Text))
	b.WriteString(fmt.Sprintf("Detected emotion: %s (intensity: %s, sentiment: %.2f)\n",
		input.Signal.PrimaryEmotion, input.Signal.Intensity, input.Signal.SentimentScore))
	b.WriteString("Write a supportive reply to the user.")
	return b.String()
}
