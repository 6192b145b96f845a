package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEntry = errors.New("invalid mood entry data")
)

// MoodEntry is a single check-in. Entries are never updated once stored.
type MoodEntry struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Mood       Mood      `json:"mood" db:"mood"`
	Note       string    `json:"note" db:"note"`
	Tags       []string  `json:"tags" db:"tags"`
	RecordedAt time.Time `json:"timestamp" db:"recorded_at"`
}

// NewMoodEntry stamps the entry in UTC at microsecond precision, the finest
// every store keeps.
func NewMoodEntry(userID string, mood Mood, note string, tags []string, at time.Time) (*MoodEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidEntry
	}
	if !mood.Valid() {
		return nil, ErrInvalidMood
	}
	if at.IsZero() {
		return nil, ErrInvalidEntry
	}

	return &MoodEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Mood:       mood,
		Note:       note,
		Tags:       copyTags(tags),
		RecordedAt: at.UTC().Truncate(time.Microsecond),
	}, nil
}

// Clone returns a deep copy so callers cannot mutate stored entries.
func (e *MoodEntry) Clone() *MoodEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.Tags = copyTags(e.Tags)
	return &c
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
