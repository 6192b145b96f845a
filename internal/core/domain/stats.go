package domain

import "time"

type WeeklyStats struct {
	AverageMood    float64 `json:"average_mood"`
	TotalEntries   int     `json:"total_entries"`
	Streak         int     `json:"streak"`
	DominantMood   Mood    `json:"dominant_mood"`
	StabilityScore int     `json:"stability_score"`
}

type MoodCount struct {
	Mood  Mood `json:"mood"`
	Score int  `json:"score"`
	Count int  `json:"count"`
}

type TrendPoint struct {
	EntryID string    `json:"entry_id"`
	Date    time.Time `json:"date"`
	Weekday string    `json:"weekday"`
	Mood    Mood      `json:"mood"`
	Score   int       `json:"score"`
}
