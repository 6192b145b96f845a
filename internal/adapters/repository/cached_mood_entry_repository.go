package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

var _ domain.MoodEntryRepository = (*CachedMoodEntryRepository)(nil)

const moodCacheTTL = 30 * time.Minute

type CachedMoodEntryRepository struct {
	next  domain.MoodEntryRepository
	cache *redis.Client
}

func NewCachedMoodEntryRepository(next domain.MoodEntryRepository, cache *redis.Client) *CachedMoodEntryRepository {
	return &CachedMoodEntryRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedMoodEntryRepository) versionKey(userID string) string {
	return fmt.Sprintf("moods:%s:version", userID)
}

func (r *CachedMoodEntryRepository) cacheKey(userID string, version int64) string {
	return fmt.Sprintf("moods:%s:v%d", userID, version)
}

// version reads the ledger generation. A missing key is generation 0.
func (r *CachedMoodEntryRepository) version(ctx context.Context, userID string) (int64, error) {
	v, err := r.cache.Get(ctx, r.versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Create bumps the generation after the write. A reader that loaded the old
// ledger stores it under the previous generation, which is never read again.
func (r *CachedMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if err := r.next.Create(ctx, entry); err != nil {
		return err
	}
	if err := r.cache.Incr(ctx, r.versionKey(entry.UserID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", entry.UserID, err)
	}
	return nil
}

func (r *CachedMoodEntryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	version, err := r.version(ctx, userID)
	if err != nil {
		log.Printf("[CACHE] Redis read error: %v", err)
		return r.next.ListByUserID(ctx, userID)
	}
	key := r.cacheKey(userID, version)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var entries []*domain.MoodEntry
		if err := json.Unmarshal([]byte(val), &entries); err == nil {
			return entries, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	entries, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if setErr := r.cache.Set(ctx, key, data, moodCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return entries, nil
}
