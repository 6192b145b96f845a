package analytics

import (
	"time"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

const (
	// WeeklyWindow is the number of most recent entries averaged by Weekly.
	WeeklyWindow = 7
	// RecommendationWindow is the number of most recent entries Recommend looks at.
	RecommendationWindow = 5
	// PlaceholderStability is reported for any non-empty history. It is not
	// computed from the data.
	PlaceholderStability = 85
)

func recent(entries []*domain.MoodEntry, n int) []*domain.MoodEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// AverageMood is the mean score of the last WeeklyWindow entries, 0 for an empty ledger.
func AverageMood(entries []*domain.MoodEntry) float64 {
	window := recent(entries, WeeklyWindow)
	if len(window) == 0 {
		return 0
	}

	sum := 0
	for _, e := range window {
		sum += e.Mood.Score()
	}
	return float64(sum) / float64(len(window))
}

// LatestMood is the mood of the most recent entry, not a statistical mode.
func LatestMood(entries []*domain.MoodEntry) domain.Mood {
	if len(entries) == 0 {
		return domain.DefaultMood
	}
	return entries[0].Mood
}

// PrevailingMood is the most frequent mood among the last RecommendationWindow
// entries. On a tie the mood seen first (the most recent one) wins.
func PrevailingMood(entries []*domain.MoodEntry) (domain.Mood, bool) {
	window := recent(entries, RecommendationWindow)
	if len(window) == 0 {
		return "", false
	}

	counts := make(map[domain.Mood]int, len(window))
	var order []domain.Mood
	for _, e := range window {
		if counts[e.Mood] == 0 {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	best := order[0]
	for _, m := range order[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best, true
}

func StabilityScore(entries []*domain.MoodEntry) int {
	if len(entries) == 0 {
		return 0
	}
	return PlaceholderStability
}

func Weekly(entries []*domain.MoodEntry, now time.Time, loc *time.Location) domain.WeeklyStats {
	return domain.WeeklyStats{
		AverageMood:    AverageMood(entries),
		TotalEntries:   len(entries),
		Streak:         CurrentStreak(entries, now, loc),
		DominantMood:   LatestMood(entries),
		StabilityScore: StabilityScore(entries),
	}
}

func Recommend(entries []*domain.MoodEntry) []domain.Recommendation {
	mood, ok := PrevailingMood(entries)
	if !ok {
		return domain.OnboardingRecommendations()
	}
	return domain.RecommendationsFor(mood.Bucket())
}

// Distribution counts every mood across the whole ledger, best mood first.
// Moods that never occur are reported with a zero count.
func Distribution(entries []*domain.MoodEntry) []domain.MoodCount {
	counts := make(map[domain.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}

	out := make([]domain.MoodCount, 0, 5)
	for _, m := range domain.AllMoods() {
		out = append(out, domain.MoodCount{Mood: m, Score: m.Score(), Count: counts[m]})
	}
	return out
}

// Trend returns the entries recorded during the last `days` calendar days
// (today included) in chronological order.
func Trend(entries []*domain.MoodEntry, now time.Time, loc *time.Location, days int) []domain.TrendPoint {
	if days < 1 {
		return []domain.TrendPoint{}
	}

	today := Day(now, loc)
	var window []*domain.MoodEntry
	for _, e := range entries {
		gap := DaysBetween(today, Day(e.RecordedAt, loc))
		if gap < 0 {
			continue
		}
		if gap >= days {
			break
		}
		window = append(window, e)
	}
	return chronological(window, loc)
}

// RecentSeries is the score series of the last n entries, oldest first. Unlike
// Trend it ignores the calendar: skipped days and same-day check-ins do not
// change how many points come back.
func RecentSeries(entries []*domain.MoodEntry, loc *time.Location, n int) []domain.TrendPoint {
	if n < 1 {
		return []domain.TrendPoint{}
	}
	return chronological(recent(entries, n), loc)
}

// chronological reverses a newest-first slice into points.
func chronological(entries []*domain.MoodEntry, loc *time.Location) []domain.TrendPoint {
	out := make([]domain.TrendPoint, len(entries))
	for i, e := range entries {
		day := Day(e.RecordedAt, loc)
		out[len(entries)-1-i] = domain.TrendPoint{
			EntryID: e.ID,
			Date:    e.RecordedAt.In(day.Location()),
			Weekday: day.Weekday().String()[:3],
			Mood:    e.Mood,
			Score:   e.Mood.Score(),
		}
	}
	return out
}
