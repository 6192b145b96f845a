package domain

type Icon string

const (
	IconCoffee Icon = "Coffee"
	IconMoon   Icon = "Moon"
	IconSun    Icon = "Sun"
	IconZap    Icon = "Zap"
	IconBook   Icon = "Book"
	IconMusic  Icon = "Music"
)

type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	Color       Color  `json:"color"`
}

var onboardingRecommendation = Recommendation{
	ID:          "rec-1",
	Title:       "Start Your Journey",
	Description: "Log your first mood to receive personalized wellness recommendations.",
	Icon:        IconSun,
	Color:       ColorBlue,
}

var bucketRecommendations = map[MoodBucket][2]Recommendation{
	MoodBucketLow: {
		{
			ID:          "rec-low-1",
			Title:       "Mindful Breathing",
			Description: "Your recent trend shows some heavy days. Take 5 minutes for deep breathing.",
			Icon:        IconCoffee,
			Color:       ColorBlue,
		},
		{
			ID:          "rec-low-2",
			Title:       "Digital Detox",
			Description: "A break from screens might help lift the fog. Try a 15-minute walk.",
			Icon:        IconZap,
			Color:       ColorOrange,
		},
	},
	MoodBucketMid: {
		{
			ID:          "rec-mid-1",
			Title:       "Gratitude Journaling",
			Description: "You have been feeling okay. Try writing down three things you are grateful for.",
			Icon:        IconBook,
			Color:       ColorGreen,
		},
		{
			ID:          "rec-mid-2",
			Title:       "Mood-Boosting Music",
			Description: "A little rhythm can shift your energy. Listen to your favorite upbeat track.",
			Icon:        IconMusic,
			Color:       ColorPurple,
		},
	},
	MoodBucketHigh: {
		{
			ID:          "rec-high-1",
			Title:       "Share the Light",
			Description: "You are trending great! Consider reaching out to a friend to spread the positivity.",
			Icon:        IconSun,
			Color:       ColorOrange,
		},
		{
			ID:          "rec-high-2",
			Title:       "Reflection Session",
			Description: "Capture what is working well today while your energy is high.",
			Icon:        IconBook,
			Color:       ColorPurple,
		},
	},
}

func OnboardingRecommendations() []Recommendation {
	return []Recommendation{onboardingRecommendation}
}

// RecommendationsFor returns the fixed pair for a bucket, always in the same order.
func RecommendationsFor(bucket MoodBucket) []Recommendation {
	pair, ok := bucketRecommendations[bucket]
	if !ok {
		pair = bucketRecommendations[MoodBucketHigh]
	}
	return []Recommendation{pair[0], pair[1]}
}
