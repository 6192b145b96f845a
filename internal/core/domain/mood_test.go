package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr error
	}{
		{name: "Exact level", input: "GREAT", want: MoodGreat},
		{name: "Lower case is accepted", input: "bad", want: MoodBad},
		{name: "Surrounding spaces are trimmed", input: "  okay ", want: MoodOkay},
		{name: "Unknown level", input: "ECSTATIC", wantErr: ErrInvalidMood},
		{name: "Empty", input: "", wantErr: ErrInvalidMood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoodScoresAreOrdered(t *testing.T) {
	assert.Equal(t, 1, MoodTerrible.Score())
	assert.Equal(t, 2, MoodBad.Score())
	assert.Equal(t, 3, MoodOkay.Score())
	assert.Equal(t, 4, MoodGood.Score())
	assert.Equal(t, 5, MoodGreat.Score())
	assert.Equal(t, 0, Mood("MEH").Score())

	all := AllMoods()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].Score(), all[i].Score())
	}
}

func TestMoodBucket(t *testing.T) {
	assert.Equal(t, MoodBucketLow, MoodTerrible.Bucket())
	assert.Equal(t, MoodBucketLow, MoodBad.Bucket())
	assert.Equal(t, MoodBucketMid, MoodOkay.Bucket())
	assert.Equal(t, MoodBucketHigh, MoodGood.Bucket())
	assert.Equal(t, MoodBucketHigh, MoodGreat.Bucket())
}

func TestNewMoodEntry(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, loc)

	t.Run("Success: copies tags and stores UTC", func(t *testing.T) {
		tags := []string{"work", "work"}
		entry, err := NewMoodEntry("user-1", MoodGood, "ok", tags, at)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, at.UTC(), entry.RecordedAt)
		assert.Equal(t, time.UTC, entry.RecordedAt.Location())
		assert.Equal(t, []string{"work", "work"}, entry.Tags, "duplicates are kept as given")

		tags[0] = "mutated"
		assert.Equal(t, "work", entry.Tags[0], "entry must not alias the caller's slice")
	})

	t.Run("Success: nil tags become empty", func(t *testing.T) {
		entry, err := NewMoodEntry("user-1", MoodOkay, "", nil, at)
		require.NoError(t, err)
		assert.NotNil(t, entry.Tags)
		assert.Empty(t, entry.Tags)
	})

	t.Run("Success: sub-microsecond digits are dropped", func(t *testing.T) {
		precise := time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC)
		entry, err := NewMoodEntry("user-1", MoodGood, "", nil, precise)
		require.NoError(t, err)

		assert.Equal(t, 123456000, entry.RecordedAt.Nanosecond())
		assert.Equal(t, entry.RecordedAt, entry.RecordedAt.Truncate(time.Microsecond))
	})

	t.Run("Fail: invalid mood", func(t *testing.T) {
		_, err := NewMoodEntry("user-1", Mood("SO-SO"), "", nil, at)
		assert.ErrorIs(t, err, ErrInvalidMood)
	})

	t.Run("Fail: missing user", func(t *testing.T) {
		_, err := NewMoodEntry(" ", MoodOkay, "", nil, at)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("Clone is deep", func(t *testing.T) {
		entry, _ := NewMoodEntry("user-1", MoodOkay, "", []string{"a"}, at)
		c := entry.Clone()
		c.Tags[0] = "b"
		assert.Equal(t, "a", entry.Tags[0])
	})
}

func TestRecommendationsFor(t *testing.T) {
	low := RecommendationsFor(MoodBucketLow)
	require.Len(t, low, 2)
	assert.Equal(t, "rec-low-1", low[0].ID)
	assert.Equal(t, "rec-low-2", low[1].ID)

	mid := RecommendationsFor(MoodBucketMid)
	assert.Equal(t, []string{"rec-mid-1", "rec-mid-2"}, []string{mid[0].ID, mid[1].ID})

	high := RecommendationsFor(MoodBucketHigh)
	assert.Equal(t, IconSun, high[0].Icon)
	assert.Equal(t, ColorPurple, high[1].Color)

	low[0].Title = "changed"
	assert.Equal(t, "Mindful Breathing", RecommendationsFor(MoodBucketLow)[0].Title, "catalog must not be shared")

	onboarding := OnboardingRecommendations()
	require.Len(t, onboarding, 1)
	assert.Equal(t, "rec-1", onboarding[0].ID)
}
