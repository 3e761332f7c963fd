package emotion

import "regexp"

// LexiconEntry holds the scoring rules for one emotion category.
type LexiconEntry struct {
	Emotion      string
	Keywords     []string
	Phrases      []*regexp.Regexp
	Intensifiers []string
	Weight       float64
}

// Lexicon is the fixed scoring table, loaded once and treated as
// immutable. Its order is the tie-break order for primary selection.
var Lexicon = []LexiconEntry{
	{
		Emotion: EmotionStressed,
		Keywords: []string{
			"stressed", "pressure", "overwhelmed", "burden", "deadline",
			"anxiety", "panic", "worried", "tense", "exhausted",
			"can't handle", "too much", "breaking point", "falling behind",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+stressed`),
			regexp.MustCompile(`under\s+pressure`),
			regexp.MustCompile(`so\s+much\s+work`),
			regexp.MustCompile(`can't\s+cope`),
			regexp.MustCompile(`burning\s+out`),
			regexp.MustCompile(`at\s+my\s+limit`),
		},
		Intensifiers: []string{"extremely", "really", "so", "very", "incredibly"},
		Weight:       1.0,
	},
	{
		Emotion: EmotionAnxious,
		Keywords: []string{
			"anxious", "nervous", "worry", "fear", "scared", "afraid",
			"panic", "restless", "uneasy", "apprehensive", "jittery",
			"what if", "catastrophic", "worst case", "can't stop thinking",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+anxious`),
			regexp.MustCompile(`can't\s+stop\s+worrying`),
			regexp.MustCompile(`panic\s+attack`),
			regexp.MustCompile(`racing\s+thoughts`),
			regexp.MustCompile(`heart\s+racing`),
			regexp.MustCompile(`sweaty\s+palms`),
		},
		Intensifiers: []string{"extremely", "really", "so", "very", "incredibly"},
		Weight:       1.0,
	},
	{
		Emotion: EmotionSad,
		Keywords: []string{
			"sad", "depressed", "down", "blue", "melancholy", "gloomy",
			"unhappy", "miserable", "heartbroken", "disappointed",
			"crying", "tears", "empty", "lonely", "hopeless",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+sad`),
			regexp.MustCompile(`feeling\s+down`),
			regexp.MustCompile(`can't\s+stop\s+crying`),
			regexp.MustCompile(`feel\s+empty`),
			regexp.MustCompile(`so\s+alone`),
			regexp.MustCompile(`lost\s+hope`),
		},
		Intensifiers: []string{"extremely", "really", "so", "very", "deeply"},
		Weight:       1.0,
	},
	{
		Emotion: EmotionOverwhelmed,
		Keywords: []string{
			"overwhelmed", "too much", "can't handle", "drowning",
			"swamped", "buried", "crushed", "suffocated", "flooded",
			"overloaded", "breaking point", "at capacity",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+overwhelmed`),
			regexp.MustCompile(`too\s+much\s+to\s+handle`),
			regexp.MustCompile(`drowning\s+in`),
			regexp.MustCompile(`can't\s+keep\s+up`),
			regexp.MustCompile(`falling\s+behind`),
		},
		Intensifiers: []string{"completely", "totally", "absolutely", "utterly"},
		Weight:       1.0,
	},
	{
		Emotion: EmotionAngry,
		Keywords: []string{
			"angry", "mad", "furious", "rage", "irritated", "annoyed",
			"frustrated", "pissed", "livid", "outraged", "fed up",
			"hate", "disgusted", "resentful",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`so\s+angry`),
			regexp.MustCompile(`fed\s+up`),
			regexp.MustCompile(`can't\s+stand`),
			regexp.MustCompile(`makes\s+me\s+mad`),
			regexp.MustCompile(`losing\s+my\s+temper`),
			regexp.MustCompile(`want\s+to\s+scream`),
		},
		Intensifiers: []string{"extremely", "really", "so", "very", "incredibly"},
		Weight:       0.9,
	},
	{
		Emotion: EmotionExcited,
		Keywords: []string{
			"excited", "thrilled", "ecstatic", "elated", "overjoyed",
			"amazing", "awesome", "fantastic", "wonderful", "great",
			"love", "happy", "joy", "delighted", "pumped",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`so\s+excited`),
			regexp.MustCompile(`can't\s+wait`),
			regexp.MustCompile(`over\s+the\s+moon`),
			regexp.MustCompile(`feel\s+amazing`),
			regexp.MustCompile(`best\s+day\s+ever`),
		},
		Intensifiers: []string{"extremely", "really", "so", "very", "incredibly"},
		Weight:       0.8,
	},
	{
		Emotion: EmotionPositive,
		Keywords: []string{
			"good", "fine", "okay", "alright", "decent", "content",
			"satisfied", "peaceful", "calm", "grateful", "thankful",
			"blessed", "optimistic", "hopeful",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+good`),
			regexp.MustCompile(`doing\s+well`),
			regexp.MustCompile(`things\s+are\s+okay`),
			regexp.MustCompile(`feeling\s+better`),
			regexp.MustCompile(`grateful\s+for`),
		},
		Intensifiers: []string{"really", "pretty", "quite", "fairly"},
		Weight:       0.7,
	},
	{
		Emotion: EmotionNeutral,
		Keywords: []string{
			"neutral", "normal", "average", "routine", "typical",
			"nothing special", "same as usual", "meh", "whatever",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`nothing\s+special`),
			regexp.MustCompile(`same\s+as\s+usual`),
			regexp.MustCompile(`pretty\s+normal`),
			regexp.MustCompile(`just\s+okay`),
			regexp.MustCompile(`not\s+much\s+happening`),
		},
		Intensifiers: []string{},
		Weight:       0.5,
	},
	{
		Emotion: EmotionConfused,
		Keywords: []string{
			"confused", "lost", "uncertain", "unclear", "puzzled",
			"bewildered", "mixed up", "don't understand", "not sure",
			"complicated", "conflicted",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`don't\s+understand`),
			regexp.MustCompile(`not\s+sure\s+what`),
			regexp.MustCompile(`feel\s+lost`),
			regexp.MustCompile(`mixed\s+feelings`),
			regexp.MustCompile(`don't\s+know\s+what`),
		},
		Intensifiers: []string{"really", "completely", "totally", "so"},
		Weight:       0.6,
	},
	{
		Emotion: EmotionGrateful,
		Keywords: []string{
			"grateful", "thankful", "blessed", "appreciate", "lucky",
			"fortunate", "thank you", "thanks", "bless",
		},
		Phrases: []*regexp.Regexp{
			regexp.MustCompile(`feel\s+grateful`),
			regexp.MustCompile(`so\s+grateful`),
			regexp.MustCompile(`so\s+thankful`),
			regexp.MustCompile(`feel\s+blessed`),
			regexp.MustCompile(`appreciate\s+that`),
			regexp.MustCompile(`lucky\s+to\s+have`),
		},
		Intensifiers: []string{"really", "so", "very", "deeply"},
		Weight:       0.8,
	},
}

// CrisisKeywords take priority over everything else. Any match flags
// the message regardless of emotion scoring.
var CrisisKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"hurt myself",
	"self harm",
	"cutting",
	"overdose",
	"die",
	"death wish",
	"worthless",
	"hopeless",
	"can't go on",
	"no point in living",
	"want to disappear",
	"better off dead",
	"end it all",
	"can't take it anymore",
}

// IntensityBucket maps one intensity level to its marker words.
type IntensityBucket struct {
	Level string
	Words []string
}

// intensityModifiers lists each level's marker words. The level with
// the most hits wins; ties resolve in this order.
var intensityModifiers = []IntensityBucket{
	{IntensityLow, []string{"barely", "hardly", "just", "only", "merely"}},
	{IntensityMedium, []string{"somewhat", "kind of", "sort of", "a bit", "slightly"}},
	{IntensityHigh, []string{"very", "really", "so", "quite", "pretty"}},
	{IntensityExtreme, []string{"extremely", "incredibly", "utterly", "completely", "totally"}},
}

// IntensityModifiers returns the intensity marker table.
func IntensityModifiers() []IntensityBucket {
	return intensityModifiers
}

// Sentiment reweighting categories
var (
	negativeEmotions = []string{EmotionSad, EmotionAnxious, EmotionStressed, EmotionOverwhelmed, EmotionAngry}
	positiveEmotions = []string{EmotionExcited, EmotionPositive, EmotionGrateful}
)

// IsNegative reports whether the emotion belongs to the negative
// sentiment-reweighting category.
func IsNegative(name string) bool {
	for _, e := range negativeEmotions {
		if e == name {
			return true
		}
	}
	return false
}

// IsPositive reports whether the emotion belongs to the positive
// sentiment-reweighting category.
func IsPositive(name string) bool {
	for _, e := range positiveEmotions {
		if e == name {
			return true
		}
	}
	return false
}
