package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

func newEntry(t *testing.T, userID string, mood domain.Mood, at time.Time) *domain.MoodEntry {
	t.Helper()
	entry, err := domain.NewMoodEntry(userID, mood, "", []string{"tag"}, at)
	require.NoError(t, err)
	return entry
}

func TestInMemoryMoodEntryRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	t.Run("Newest first, ties keep the latest insertion on top", func(t *testing.T) {
		repo := NewInMemoryMoodEntryRepository()

		old := newEntry(t, "u1", domain.MoodBad, base.Add(-48*time.Hour))
		tieA := newEntry(t, "u1", domain.MoodOkay, base)
		tieB := newEntry(t, "u1", domain.MoodGood, base)
		// Inserted last but backdated.
		late := newEntry(t, "u1", domain.MoodGreat, base.Add(-24*time.Hour))

		for _, e := range []*domain.MoodEntry{old, tieA, tieB, late} {
			require.NoError(t, repo.Create(ctx, e))
		}

		got, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, []string{tieB.ID, tieA.ID, late.ID, old.ID},
			[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("Unknown user yields an empty list", func(t *testing.T) {
		repo := NewInMemoryMoodEntryRepository()

		got, err := repo.ListByUserID(ctx, "ghost")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Stored entries cannot be mutated through returned values", func(t *testing.T) {
		repo := NewInMemoryMoodEntryRepository()
		entry := newEntry(t, "u1", domain.MoodGood, base)
		require.NoError(t, repo.Create(ctx, entry))

		entry.Tags[0] = "changed-after-create"
		got, _ := repo.ListByUserID(ctx, "u1")
		got[0].Mood = domain.MoodTerrible
		got[0].Tags[0] = "changed-after-read"

		again, _ := repo.ListByUserID(ctx, "u1")
		assert.Equal(t, domain.MoodGood, again[0].Mood)
		assert.Equal(t, []string{"tag"}, again[0].Tags)
	})

	t.Run("Reset clears every ledger", func(t *testing.T) {
		repo := NewInMemoryMoodEntryRepository()
		require.NoError(t, repo.Create(ctx, newEntry(t, "u1", domain.MoodGood, base)))

		repo.Reset()

		got, _ := repo.ListByUserID(ctx, "u1")
		assert.Empty(t, got)
	})

	t.Run("Rejects entries without an owner", func(t *testing.T) {
		repo := NewInMemoryMoodEntryRepository()
		err := repo.Create(ctx, &domain.MoodEntry{ID: "x", Mood: domain.MoodGood, RecordedAt: base})
		assert.ErrorIs(t, err, domain.ErrInvalidEntry)
	})
}

func TestInMemoryMoodEntryRepository_ConcurrentCreate(t *testing.T) {
	repo := NewInMemoryMoodEntryRepository()
	ctx := context.Background()
	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, _ := domain.NewMoodEntry(fmt.Sprintf("u%d", i%5), domain.MoodOkay, "", nil, at)
			_ = repo.Create(ctx, entry)
		}(i)
	}
	wg.Wait()

	for u := 0; u < 5; u++ {
		got, err := repo.ListByUserID(ctx, fmt.Sprintf("u%d", u))
		require.NoError(t, err)
		assert.Len(t, got, 10)
	}
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user, err := domain.NewUser("id-1", "Grace", "grace@mindmate.app")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("Lookup by id and email", func(t *testing.T) {
		byID, err := repo.GetByID(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "Grace", byID.Name)

		byEmail, err := repo.GetByEmail(ctx, " GRACE@mindmate.app")
		require.NoError(t, err)
		assert.Equal(t, "id-1", byEmail.ID)
	})

	t.Run("Duplicate email is rejected, not overwritten", func(t *testing.T) {
		dup, _ := domain.NewUser("id-2", "Other", "grace@mindmate.app")

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

		kept, _ := repo.GetByEmail(ctx, "grace@mindmate.app")
		assert.Equal(t, "id-1", kept.ID)
	})

	t.Run("Missing users", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, "nope@mindmate.app")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
