package response

import "companion-srv/internal/emotion"

// Static content catalog: phrase pools, suggestion pools, resource
// directories and follow-up question banks, keyed by emotion. Loaded
// once, immutable.

// ValidationPhrases acknowledge the user's feeling.
var ValidationPhrases = map[string][]string{
	emotion.EmotionStressed: {
		"It sounds like you're carrying a lot right now.",
		"Feeling stressed is completely understandable given what you're going through.",
		"I can hear that you're feeling overwhelmed, and that's valid.",
		"It's natural to feel stressed when you have so much on your mind.",
		"Your feelings of stress are completely legitimate.",
	},
	emotion.EmotionAnxious: {
		"Anxiety can feel really overwhelming, and I want you to know that's okay.",
		"It's understandable that you're feeling anxious about this.",
		"Feeling anxious is your mind's way of trying to protect you.",
		"I hear that you're feeling worried, and those feelings are valid.",
		"Anxiety is difficult to deal with, and you're not alone in feeling this way.",
	},
	emotion.EmotionSad: {
		"I'm sorry you're feeling this way right now.",
		"It's okay to feel sad - these emotions are part of being human.",
		"Your sadness is valid, and it's important to acknowledge these feelings.",
		"I can hear the pain in what you're sharing, and that takes courage.",
		"Feeling sad is a natural response to difficult situations.",
	},
	emotion.EmotionOverwhelmed: {
		"It sounds like you have a lot on your plate right now.",
		"Feeling overwhelmed is a sign that you're dealing with a lot.",
		"It's completely normal to feel this way when facing so much at once.",
		"I can understand why you'd feel overwhelmed - that's a lot to handle.",
		"When everything feels like too much, those feelings are completely valid.",
	},
	emotion.EmotionAngry: {
		"It sounds like something has really upset you, and that's understandable.",
		"Your anger is telling you that something important to you has been affected.",
		"Feeling angry can be really intense, and it's okay to feel this way.",
		"It makes sense that you'd feel frustrated about this situation.",
		"Your feelings of anger are valid and deserve to be acknowledged.",
	},
	emotion.EmotionExcited: {
		"I can feel your excitement, and that's wonderful!",
		"It's great to hear such positive energy in your message.",
		"Your excitement is contagious - thank you for sharing this joy!",
		"It sounds like something really good is happening for you.",
		"I love hearing when things are going well for you!",
	},
	emotion.EmotionPositive: {
		"I'm so glad to hear you're feeling good.",
		"It's wonderful that you're in a positive headspace.",
		"Thank you for sharing these good feelings with me.",
		"It sounds like things are going well for you right now.",
		"Your positive energy is really uplifting.",
	},
	emotion.EmotionNeutral: {
		"Thank you for sharing how you're feeling right now.",
		"I appreciate you taking the time to check in.",
		"It's perfectly okay to feel neutral sometimes.",
		"Thanks for letting me know where you're at today.",
		"I'm here to listen to whatever you're experiencing.",
	},
	emotion.EmotionConfused: {
		"It's okay to feel uncertain - confusion is a natural part of processing things.",
		"Not knowing how to feel or what to think is completely normal.",
		"It sounds like you're working through some complex feelings.",
		"Confusion often means we're in a period of growth and change.",
		"It's alright to not have everything figured out right now.",
	},
	emotion.EmotionGrateful: {
		"It's beautiful to hear you expressing gratitude.",
		"Gratitude is such a powerful and positive emotion.",
		"I'm glad you're able to recognize the good things in your life.",
		"Thank you for sharing your appreciation - it's inspiring.",
		"Your gratitude is a lovely reminder of life's positive moments.",
	},
}

// SupportPhrases continue the reply with encouragement.
var SupportPhrases = map[string][]string{
	emotion.EmotionStressed: {
		"You're stronger than you know, even when stress feels overwhelming.",
		"Remember, it's okay to take things one step at a time.",
		"You don't have to handle everything perfectly - just doing your best is enough.",
		"Stress is temporary, even when it doesn't feel like it.",
		"You've handled difficult situations before, and you can get through this too.",
	},
	emotion.EmotionAnxious: {
		"You're not alone in feeling this way - anxiety affects many people.",
		"Remember that anxious thoughts are just thoughts, not facts.",
		"You have the strength to get through this anxious moment.",
		"Anxiety is uncomfortable, but it won't last forever.",
		"Taking things moment by moment can help when anxiety feels overwhelming.",
	},
	emotion.EmotionSad: {
		"It's okay to sit with these feelings for a while - they're part of healing.",
		"Even in sadness, you're showing strength by reaching out.",
		"This difficult time will pass, even though it's hard to see right now.",
		"Your feelings matter, and so do you.",
		"Healing isn't linear - be patient and gentle with yourself.",
	},
	emotion.EmotionOverwhelmed: {
		"Remember, you don't have to solve everything at once.",
		"Breaking things down into smaller steps can make them more manageable.",
		"It's okay to ask for help when you're feeling overwhelmed.",
		"You're doing the best you can with what you have right now.",
		"Taking a step back and breathing can help clear your perspective.",
	},
	emotion.EmotionAngry: {
		"Your anger is valid, and it's important to process these feelings safely.",
		"Sometimes anger is trying to tell us something important about our boundaries.",
		"It's okay to feel angry - the key is finding healthy ways to express it.",
		"Your feelings are legitimate, even if the situation is complicated.",
		"Taking time to cool down can help you think more clearly.",
	},
	emotion.EmotionExcited: {
		"Your excitement is wonderful to witness!",
		"It's great to see you feeling so positive about something.",
		"Enjoy this feeling - you deserve to feel excited and happy.",
		"Your enthusiasm is inspiring and contagious.",
		"These positive moments are so important to celebrate.",
	},
	emotion.EmotionPositive: {
		"I'm so happy to hear you're feeling good.",
		"These positive feelings are worth celebrating and holding onto.",
		"It's wonderful when life feels good and balanced.",
		"You deserve to feel this way - soak it in!",
		"Positive moments like these can carry us through tougher times.",
	},
	emotion.EmotionNeutral: {
		"Sometimes neutral is exactly where we need to be.",
		"There's peace in feeling balanced and steady.",
		"Neutral feelings can be a sign of stability and grounding.",
		"It's okay to just be where you are right now.",
		"Not every day needs to be intense - calm is valuable too.",
	},
	emotion.EmotionConfused: {
		"Confusion often precedes clarity - you're in a process of figuring things out.",
		"It's okay to sit with uncertainty while you process your thoughts.",
		"Sometimes the best thing to do is give yourself time to think.",
		"Your confusion shows that you're thoughtfully considering your situation.",
		"Not having all the answers right now is perfectly human.",
	},
	emotion.EmotionGrateful: {
		"Gratitude has such a positive impact on our overall wellbeing.",
		"It's wonderful that you can see the good even during challenging times.",
		"Your appreciation for life's moments is truly special.",
		"Gratitude can be a powerful tool for maintaining perspective.",
		"Thank you for sharing your positive outlook - it's uplifting.",
	},
}

// CopingSuggestions are concrete next steps, keyed by emotion.
var CopingSuggestions = map[string][]string{
	emotion.EmotionStressed: {
		"Try the 4-7-8 breathing technique: breathe in for 4, hold for 7, exhale for 8.",
		"Take a 5-minute walk, even if it's just around your room or outside.",
		"Write down your top 3 priorities and focus on just one at a time.",
		"Practice progressive muscle relaxation starting from your toes up to your head.",
		"Listen to calming music or nature sounds for a few minutes.",
	},
	emotion.EmotionAnxious: {
		"Use the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste.",
		"Practice box breathing: breathe in for 4, hold for 4, out for 4, hold for 4.",
		"Try a brief mindfulness meditation focusing on your breath.",
		"Remind yourself: 'This feeling will pass, I am safe right now.'",
		"Engage in gentle movement like stretching or walking.",
	},
	emotion.EmotionSad: {
		"Write in a journal about what you're feeling - let it all out on paper.",
		"Reach out to a trusted friend or family member for connection.",
		"Do one small thing that usually brings you comfort, like making tea or listening to favorite music.",
		"Practice self-compassion - speak to yourself like you would a good friend.",
		"Consider watching something uplifting or looking at photos that make you smile.",
	},
	emotion.EmotionOverwhelmed: {
		"Make a list of everything on your mind, then identify what's most urgent.",
		"Use the 'two-minute rule': if something takes less than two minutes, do it now.",
		"Break larger tasks into smaller, more manageable steps.",
		"Take 10 deep breaths and focus only on your breathing.",
		"Ask yourself: 'What's one thing I can let go of or delegate?'",
	},
	emotion.EmotionAngry: {
		"Take 10 deep breaths before responding to whatever triggered your anger.",
		"Try physical exercise like jumping jacks or a quick walk to release tension.",
		"Write down your feelings without censoring yourself - then decide if you want to keep it.",
		"Count to 10 (or 100) before saying anything you might regret.",
		"Consider what boundary might need to be set or what you need to communicate.",
	},
	emotion.EmotionExcited: {
		"Channel your excitement into planning your next steps toward your goal.",
		"Share your excitement with someone who will celebrate with you.",
		"Write down what's making you excited so you can remember this feeling later.",
		"Use this positive energy to tackle something you've been putting off.",
		"Take a moment to really savor and appreciate this wonderful feeling.",
	},
	emotion.EmotionPositive: {
		"Take a moment to practice gratitude for what's going well.",
		"Consider how you can maintain this positive momentum.",
		"Share your good feelings with someone you care about.",
		"Use this positive energy to do something kind for yourself or others.",
		"Write down what's contributing to your positive mood.",
	},
	emotion.EmotionNeutral: {
		"Check in with yourself: are there any needs that aren't being met?",
		"Consider doing a small activity that usually brings you joy.",
		"Practice mindfulness by noticing your surroundings without judgment.",
		"Take this calm moment to do some gentle self-reflection.",
		"Use this stable feeling to plan something you're looking forward to.",
	},
	emotion.EmotionConfused: {
		"Write down your thoughts to help organize and clarify them.",
		"Talk through your confusion with someone you trust.",
		"Make a pros and cons list if you're trying to make a decision.",
		"Take some time away from the confusing situation to get perspective.",
		"Remember that it's okay not to have all the answers right now.",
	},
	emotion.EmotionGrateful: {
		"Write down three specific things you're grateful for today.",
		"Consider expressing your gratitude to someone who has helped you.",
		"Use this grateful feeling to do something kind for someone else.",
		"Take a moment to really appreciate and savor what you're thankful for.",
		"Reflect on how gratitude affects your overall mood and perspective.",
	},
}

// CrisisMessages open every crisis reply.
var CrisisMessages = []string{
	"I'm really concerned about what you've shared. Your life has value, and there are people who want to help you through this difficult time.",
	"It sounds like you're going through something really difficult right now. Please know that you don't have to face this alone.",
	"I can hear that you're in a lot of pain. These feelings are temporary, even when they don't feel like it. Please reach out for support.",
	"What you're feeling right now is intense and overwhelming, but there are people trained to help you through this.",
	"I'm worried about you based on what you've shared. Your feelings are valid, and there are resources available to help you right now.",
}

// Professional help encouragement categories
const (
	HelpHighDistress = "high_distress"
	HelpPersistent   = "persistent_issues"
	HelpGeneral      = "general"
)

// ProfessionalHelpPhrases encourage seeking professional support.
var ProfessionalHelpPhrases = map[string][]string{
	HelpHighDistress: {
		"While I'm here to support you, it might be really helpful to talk to a counselor or therapist who can provide more personalized guidance.",
		"Consider reaching out to a mental health professional who can work with you on strategies tailored to your specific situation.",
		"A trained counselor might be able to offer additional tools and perspectives that could be really beneficial for you.",
		"You deserve professional support that can provide more comprehensive help than I can offer.",
	},
	HelpPersistent: {
		"If you've been feeling this way for a while, talking to a professional could provide valuable insights and coping strategies.",
		"Sometimes it helps to have a neutral professional perspective when we're working through ongoing challenges.",
		"A therapist can offer personalized strategies and support that might be really helpful for your specific situation.",
	},
	HelpGeneral: {
		"Remember that seeking professional help is a sign of strength, not weakness.",
		"Mental health professionals are trained to help with exactly what you're experiencing.",
		"There's no shame in getting additional support from someone who specializes in mental health.",
	},
}

// Resource categories
const (
	ResourceCrisis     = "crisis"
	ResourceAnxiety    = "anxiety"
	ResourceDepression = "depression"
	ResourceStress     = "stress"
	ResourceGeneral    = "general"
)

// Resources is the support directory, keyed by category.
var Resources = map[string][]Resource{
	ResourceCrisis: {
		{Name: "National Suicide Prevention Lifeline", Contact: "988", Description: "24/7 crisis support"},
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Description: "24/7 crisis support via text"},
		{Name: "SAMHSA National Helpline", Contact: "1-800-662-4357", Description: "Treatment referral service"},
	},
	ResourceAnxiety: {
		{Name: "Anxiety and Depression Association of America", Contact: "adaa.org", Description: "Resources and support for anxiety"},
		{Name: "Calm App", Contact: "calm.com", Description: "Meditation and relaxation exercises"},
		{Name: "Headspace", Contact: "headspace.com", Description: "Mindfulness and meditation"},
	},
	ResourceDepression: {
		{Name: "National Alliance on Mental Illness", Contact: "nami.org", Description: "Mental health resources and support"},
		{Name: "Depression and Bipolar Support Alliance", Contact: "dbsalliance.org", Description: "Peer support and resources"},
		{Name: "Mental Health America", Contact: "mhanational.org", Description: "Mental health screening and resources"},
	},
	ResourceStress: {
		{Name: "American Psychological Association", Contact: "apa.org/topics/stress", Description: "Stress management resources"},
		{Name: "Mindfulness-Based Stress Reduction", Contact: "palousemindfulness.com", Description: "Free MBSR course"},
		{Name: "StressStop App", Contact: "stressstop.com", Description: "Quick stress relief techniques"},
	},
	ResourceGeneral: {
		{Name: "Psychology Today", Contact: "psychologytoday.com", Description: "Find therapists and mental health professionals"},
		{Name: "BetterHelp", Contact: "betterhelp.com", Description: "Online counseling services"},
		{Name: "NAMI Support Groups", Contact: "nami.org/Support-Education", Description: "Local support groups"},
	},
}

// resourceCategories maps emotions to resource categories. Crisis
// level always overrides this mapping.
var resourceCategories = map[string]string{
	emotion.EmotionAnxious:     ResourceAnxiety,
	emotion.EmotionStressed:    ResourceStress,
	emotion.EmotionSad:         ResourceDepression,
	emotion.EmotionOverwhelmed: ResourceStress,
}

// ResourcesFor returns the resource set for an emotion, defaulting to
// the general directory.
func ResourcesFor(emotionName string) []Resource {
	category, ok := resourceCategories[emotionName]
	if !ok {
		category = ResourceGeneral
	}
	return Resources[category]
}

// FollowUpQuestions keeps the conversation going, keyed by emotion.
var FollowUpQuestions = map[string][]string{
	emotion.EmotionStressed: {
		"What's the main source of your stress right now?",
		"Have you been able to take any breaks today?",
		"What usually helps you feel less stressed?",
	},
	emotion.EmotionAnxious: {
		"What thoughts are going through your mind?",
		"Is there something specific you're worried about?",
		"What has helped with your anxiety before?",
	},
	emotion.EmotionSad: {
		"What's been weighing on your heart?",
		"Is there someone you can talk to about this?",
		"What small thing might bring you a bit of comfort?",
	},
	emotion.EmotionOverwhelmed: {
		"What feels like the most urgent thing on your plate?",
		"What's one task you could potentially let go of or ask for help with?",
		"How have you been taking care of yourself lately?",
	},
	emotion.EmotionAngry: {
		"What triggered these feelings for you?",
		"How do you usually handle anger in healthy ways?",
		"What boundary might need to be set here?",
	},
	emotion.EmotionExcited: {
		"What's got you feeling so excited?",
		"How do you want to celebrate or channel this energy?",
		"What are you looking forward to most?",
	},
	emotion.EmotionPositive: {
		"What's contributing to your positive mood today?",
		"How can you maintain this good feeling?",
		"What are you most grateful for right now?",
	},
}

// DefaultFollowUpQuestions cover emotions without a bank entry.
var DefaultFollowUpQuestions = []string{
	"How are you taking care of yourself today?",
	"What's one thing that might help you feel better?",
	"Is there anything specific you'd like to talk about?",
}

// CrisisFollowUpQuestions are the safety check-ins for crisis replies.
var CrisisFollowUpQuestions = []string{
	"Is there someone you can call right now?",
	"Are you in a safe place?",
	"Would you like me to help you find local crisis resources?",
}

// CrisisCopingSuggestions are the fixed crisis next steps.
var CrisisCopingSuggestions = []string{
	"reach_out_immediately",
	"call_crisis_line",
	"go_to_emergency_room",
}

// DismissivePhrases reject external replies that minimize the user's
// feelings.
var DismissivePhrases = []string{
	"just think positive",
	"get over it",
	"it could be worse",
	"just relax",
	"stop being dramatic",
	"snap out of it",
}
