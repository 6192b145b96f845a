package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMood = errors.New("invalid mood (must be TERRIBLE, BAD, OKAY, GOOD or GREAT)")
)

type Mood string

const (
	MoodTerrible Mood = "TERRIBLE"
	MoodBad      Mood = "BAD"
	MoodOkay     Mood = "OKAY"
	MoodGood     Mood = "GOOD"
	MoodGreat    Mood = "GREAT"

	// DefaultMood is reported when a user has no history yet.
	DefaultMood = MoodOkay
)

type MoodBucket string

const (
	MoodBucketLow  MoodBucket = "low"
	MoodBucketMid  MoodBucket = "mid"
	MoodBucketHigh MoodBucket = "high"
)

var moodScores = map[Mood]int{
	MoodTerrible: 1,
	MoodBad:      2,
	MoodOkay:     3,
	MoodGood:     4,
	MoodGreat:    5,
}

// AllMoods returns the five levels, best first.
func AllMoods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodBad, MoodTerrible}
}

func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToUpper(strings.TrimSpace(raw)))
	if !m.Valid() {
		return "", ErrInvalidMood
	}
	return m, nil
}

func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// Score maps TERRIBLE..GREAT onto 1..5. Unknown moods score 0.
func (m Mood) Score() int {
	return moodScores[m]
}

func (m Mood) Bucket() MoodBucket {
	switch m {
	case MoodTerrible, MoodBad:
		return MoodBucketLow
	case MoodOkay:
		return MoodBucketMid
	default:
		return MoodBucketHigh
	}
}

func (m Mood) String() string {
	return string(m)
}
