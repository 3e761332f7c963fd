package coping

import (
	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
)

// Catalog is the ordered list of built-in coping tools. Order matters
// for stable list output; relevance sorting happens in the usecase.
var Catalog = []model.CopingTool{
	{
		ID:              "breathing_478",
		Name:            "4-7-8 Breathing",
		Type:            TypeBreathing,
		Description:     "A calming breathing technique to reduce anxiety and stress",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious},
		DurationMinutes: 5,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Find a comfortable seated position with your back straight",
			"Place the tip of your tongue against the tissue behind your upper front teeth",
			"Exhale completely through your mouth, making a whoosh sound",
			"Close your mouth and inhale through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale through your mouth for 8 counts, making a whoosh sound",
			"Repeat this cycle 3-4 times",
		},
		Benefits: []string{
			"Activates the body's relaxation response",
			"Reduces anxiety and stress",
			"Helps with falling asleep",
			"Lowers heart rate and blood pressure",
		},
		Requirements: []string{"Comfortable seating", "Quiet environment"},
		Interactive:  true,
		GuidedSteps: []model.GuidedStep{
			{Step: 1, Action: "prepare", DurationSeconds: 30, Instruction: "Get comfortable and prepare to begin"},
			{Step: 2, Action: "inhale", DurationSeconds: 4, Instruction: "Breathe in through your nose"},
			{Step: 3, Action: "hold", DurationSeconds: 7, Instruction: "Hold your breath"},
			{Step: 4, Action: "exhale", DurationSeconds: 8, Instruction: "Exhale slowly through your mouth"},
			{Step: 5, Action: "pause", DurationSeconds: 2, Instruction: "Rest before the next cycle"},
		},
	},
	{
		ID:              "breathing_box",
		Name:            "Box Breathing",
		Type:            TypeBreathing,
		Description:     "A structured breathing pattern that promotes calm and focus",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious, emotion.EmotionOverwhelmed},
		DurationMinutes: 5,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Sit comfortably with your feet flat on the floor",
			"Exhale completely to empty your lungs",
			"Inhale through your nose for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale through your mouth for 4 counts",
			"Hold empty for 4 counts",
			"Repeat for 5-10 cycles",
		},
		Benefits: []string{
			"Increases focus and concentration",
			"Reduces stress and anxiety",
			"Regulates the nervous system",
			"Can be done anywhere",
		},
		Requirements: []string{"No special requirements"},
		Interactive:  true,
		GuidedSteps: []model.GuidedStep{
			{Step: 1, Action: "inhale", DurationSeconds: 4, Instruction: "Breathe in slowly and deeply"},
			{Step: 2, Action: "hold", DurationSeconds: 4, Instruction: "Hold your breath gently"},
			{Step: 3, Action: "exhale", DurationSeconds: 4, Instruction: "Breathe out slowly and completely"},
			{Step: 4, Action: "hold", DurationSeconds: 4, Instruction: "Hold empty, don't force it"},
		},
	},
	{
		ID:              "breathing_belly",
		Name:            "Belly Breathing",
		Type:            TypeBreathing,
		Description:     "Deep diaphragmatic breathing to activate relaxation",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious, emotion.EmotionAngry},
		DurationMinutes: 7,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Lie down or sit comfortably with one hand on your chest, one on your belly",
			"Breathe normally and notice which hand moves more",
			"Now breathe in slowly through your nose, letting your belly rise",
			"Your chest should stay relatively still",
			"Exhale slowly through your mouth, letting your belly fall",
			"Continue for 5-10 minutes, focusing on deep belly breaths",
		},
		Benefits: []string{
			"Activates the parasympathetic nervous system",
			"Reduces physical tension",
			"Improves oxygen flow",
			"Calms racing thoughts",
		},
		Requirements: []string{"Comfortable position", "Quiet space"},
		Interactive:  true,
	},
	{
		ID:              "grounding_54321",
		Name:            "5-4-3-2-1 Grounding",
		Type:            TypeGrounding,
		Description:     "Use your senses to ground yourself in the present moment",
		TargetEmotions:  []string{emotion.EmotionAnxious, emotion.EmotionOverwhelmed, emotion.EmotionStressed},
		DurationMinutes: 5,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Take a deep breath and look around you",
			"Name 5 things you can see (look for details, colors, textures)",
			"Name 4 things you can touch (feel textures, temperatures)",
			"Name 3 things you can hear (near and far sounds)",
			"Name 2 things you can smell (or remember favorite scents)",
			"Name 1 thing you can taste (or think of a favorite flavor)",
			"Take another deep breath and notice how you feel now",
		},
		Benefits: []string{
			"Brings awareness to the present moment",
			"Interrupts anxious thoughts",
			"Uses all five senses",
			"Can be done anywhere",
		},
		Requirements: []string{"No special requirements"},
		Interactive:  true,
	},
	{
		ID:              "grounding_body_scan",
		Name:            "Body Scan Grounding",
		Type:            TypeGrounding,
		Description:     "Systematically focus on different parts of your body",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious, emotion.EmotionOverwhelmed},
		DurationMinutes: 10,
		Difficulty:      model.DifficultyMedium,
		Instructions: []string{
			"Sit or lie down comfortably",
			"Close your eyes or soften your gaze",
			"Start by noticing your breathing",
			"Focus on the top of your head - notice any sensations",
			"Slowly move your attention down: forehead, eyes, jaw",
			"Continue down your neck, shoulders, arms, hands",
			"Move to your chest, back, stomach",
			"Focus on your hips, thighs, knees, calves, feet",
			"Notice your whole body as one connected unit",
			"Take a few deep breaths before opening your eyes",
		},
		Benefits: []string{
			"Increases body awareness",
			"Releases physical tension",
			"Promotes relaxation",
			"Grounds you in your physical self",
		},
		Requirements: []string{"Comfortable position", "10 minutes of quiet time"},
		Interactive:  true,
	},
	{
		ID:              "mindfulness_observation",
		Name:            "Mindful Observation",
		Type:            TypeMindfulness,
		Description:     "Focus completely on observing one object or element",
		TargetEmotions:  []string{emotion.EmotionAnxious, emotion.EmotionStressed, emotion.EmotionOverwhelmed},
		DurationMinutes: 5,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Choose an object near you (plant, pen, cup, etc.)",
			"Look at it as if you've never seen it before",
			"Notice its color, shape, texture, size",
			"Observe shadows, reflections, imperfections",
			"If your mind wanders, gently return to the object",
			"Spend 3-5 minutes in complete observation",
			"Notice how this focused attention affects your mental state",
		},
		Benefits: []string{
			"Improves focus and concentration",
			"Breaks rumination cycles",
			"Cultivates present-moment awareness",
			"Reduces mental chatter",
		},
		Requirements: []string{"Any small object", "Quiet environment"},
	},
	{
		ID:              "mindfulness_walking",
		Name:            "Mindful Walking",
		Type:            TypeMindfulness,
		Description:     "Walk slowly with complete awareness of each step",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious, emotion.EmotionSad},
		DurationMinutes: 10,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Find a quiet space where you can walk 10-20 steps",
			"Begin walking very slowly, much slower than normal",
			"Feel your feet lifting, moving, and touching the ground",
			"Notice the shifting of weight from foot to foot",
			"Pay attention to the movement of your legs and arms",
			"When you reach the end, pause and turn around mindfully",
			"Continue for 5-10 minutes, staying present with each step",
		},
		Benefits: []string{
			"Combines gentle exercise with mindfulness",
			"Grounds you through physical sensation",
			"Can be calming and meditative",
			"Accessible to most people",
		},
		Requirements: []string{"Small walking space", "Comfortable shoes"},
	},
	{
		ID:              "journaling_emotions",
		Name:            "Emotion Check-In Journal",
		Type:            TypeJournaling,
		Description:     "Write about your current emotions to process and understand them",
		TargetEmotions:  []string{emotion.EmotionSad, emotion.EmotionConfused, emotion.EmotionAngry, EmotionGeneral},
		DurationMinutes: 10,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Get a piece of paper or open a document",
			"Write today's date at the top",
			"Complete this sentence: 'Right now I am feeling...'",
			"Describe the emotion in detail - where do you feel it in your body?",
			"Write about what might have triggered this emotion",
			"Ask yourself: 'What does this emotion need from me?'",
			"Write about one small thing you can do to care for yourself",
			"End with: 'I acknowledge my feelings and treat myself with compassion'",
		},
		Benefits: []string{
			"Increases emotional awareness",
			"Helps process difficult feelings",
			"Provides emotional release",
			"Creates a record of your emotional journey",
		},
		Requirements: []string{"Paper and pen or digital device", "Private space"},
	},
	{
		ID:              "journaling_gratitude",
		Name:            "Gratitude Practice",
		Type:            TypeJournaling,
		Description:     "Focus on positive aspects of your life through gratitude",
		TargetEmotions:  []string{emotion.EmotionSad, emotion.EmotionStressed, EmotionGeneral},
		DurationMinutes: 5,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Write down 3 things you're grateful for today",
			"For each item, explain why you're grateful for it",
			"Include at least one small, simple thing (like a warm cup of coffee)",
			"Include one thing about yourself that you appreciate",
			"Write about a person you're thankful for and why",
			"Describe how focusing on gratitude affects your mood",
		},
		Benefits: []string{
			"Shifts focus to positive aspects of life",
			"Improves mood and outlook",
			"Increases life satisfaction",
			"Builds resilience over time",
		},
		Requirements: []string{"Paper and pen or digital device"},
	},
	{
		ID:              "physical_progressive_relaxation",
		Name:            "Progressive Muscle Relaxation",
		Type:            TypePhysical,
		Description:     "Systematically tense and relax muscle groups to release physical stress",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionAnxious, emotion.EmotionAngry},
		DurationMinutes: 15,
		Difficulty:      model.DifficultyMedium,
		Instructions: []string{
			"Lie down or sit comfortably",
			"Start with your toes - curl them tightly for 5 seconds, then relax",
			"Move to your calves - tense for 5 seconds, then release",
			"Continue with thighs, buttocks, stomach, hands, arms, shoulders",
			"Tense your facial muscles, then relax",
			"Finally, tense your whole body for 5 seconds, then completely relax",
			"Notice the contrast between tension and relaxation",
			"Rest in the relaxed state for a few minutes",
		},
		Benefits: []string{
			"Reduces physical tension and stress",
			"Teaches the difference between tense and relaxed states",
			"Promotes overall relaxation",
			"Can help with sleep",
		},
		Requirements: []string{"Comfortable position", "Quiet space", "15 minutes"},
		Interactive:  true,
	},
	{
		ID:              "physical_stretching",
		Name:            "Gentle Stretching",
		Type:            TypePhysical,
		Description:     "Simple stretches to release tension and connect with your body",
		TargetEmotions:  []string{emotion.EmotionStressed, emotion.EmotionOverwhelmed, emotion.EmotionSad},
		DurationMinutes: 7,
		Difficulty:      model.DifficultyEasy,
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Slowly roll your shoulders back 5 times, then forward 5 times",
			"Gently turn your head left, hold for 10 seconds, then right",
			"Reach your arms overhead and stretch toward the ceiling",
			"Slowly bend to touch your toes (go as far as comfortable)",
			"Place hands on your hips and gently arch your back",
			"End by taking 3 deep breaths with your arms at your sides",
		},
		Benefits: []string{
			"Releases physical tension",
			"Improves circulation",
			"Connects mind and body",
			"Can be energizing or calming",
		},
		Requirements: []string{"Comfortable clothing", "Small space to move"},
	},
	{
		ID:              "cognitive_thought_challenging",
		Name:            "Thought Challenging",
		Type:            TypeCognitive,
		Description:     "Examine and challenge negative or unhelpful thoughts",
		TargetEmotions:  []string{emotion.EmotionAnxious, emotion.EmotionStressed, emotion.EmotionSad},
		DurationMinutes: 10,
		Difficulty:      model.DifficultyMedium,
		Instructions: []string{
			"Identify the specific thought that's bothering you",
			"Write it down exactly as it appears in your mind",
			"Ask: 'Is this thought completely true?'",
			"Ask: 'What evidence supports this thought?'",
			"Ask: 'What evidence contradicts this thought?'",
			"Ask: 'How would I respond if a friend had this thought?'",
			"Rewrite the thought in a more balanced, realistic way",
			"Notice how this affects your emotional state",
		},
		Benefits: []string{
			"Reduces impact of negative thinking",
			"Increases rational perspective",
			"Builds cognitive flexibility",
			"Reduces anxiety and depression symptoms",
		},
		Requirements: []string{"Paper and pen", "Quiet time for reflection"},
	},
	{
		ID:              "cognitive_worry_time",
		Name:            "Designated Worry Time",
		Type:            TypeCognitive,
		Description:     "Set aside specific time for worries to prevent all-day rumination",
		TargetEmotions:  []string{emotion.EmotionAnxious, emotion.EmotionOverwhelmed, emotion.EmotionStressed},
		DurationMinutes: 15,
		Difficulty:      model.DifficultyMedium,
		Instructions: []string{
			"Choose a specific 15-minute time slot each day for worrying",
			"When worries come up throughout the day, tell yourself 'I'll think about this during worry time'",
			"During your designated worry time, write down all your concerns",
			"For each worry, ask: 'Can I do something about this?'",
			"If yes, write down one action step you can take",
			"If no, practice accepting uncertainty with phrases like 'I don't know what will happen, and that's okay'",
			"When worry time is over, return to your daily activities",
			"If worries intrude, remind yourself: 'Not now, I have designated time for this'",
		},
		Benefits: []string{
			"Reduces constant rumination",
			"Creates boundaries around worry",
			"Helps distinguish between productive and unproductive concern",
			"Increases present-moment awareness",
		},
		Requirements: []string{"Paper and pen", "Consistent daily schedule"},
	},
}
