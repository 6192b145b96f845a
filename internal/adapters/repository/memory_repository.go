package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

var (
	_ domain.UserRepository      = (*InMemoryUserRepository)(nil)
	_ domain.MoodEntryRepository = (*InMemoryMoodEntryRepository)(nil)
)

type InMemoryUserRepository struct {
	byID    map[string]*domain.User
	byEmail map[string]string

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, taken := r.byEmail[email]; taken {
		return domain.ErrEmailAlreadyExists
	}

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *r.byID[id]
	return &found, nil
}

// InMemoryMoodEntryRepository keeps one ledger per user with the newest
// insertion at the front.
type InMemoryMoodEntryRepository struct {
	ledgers map[string][]*domain.MoodEntry

	mu sync.RWMutex
}

func NewInMemoryMoodEntryRepository() *InMemoryMoodEntryRepository {
	return &InMemoryMoodEntryRepository{
		ledgers: make(map[string][]*domain.MoodEntry),
	}
}

func (r *InMemoryMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if entry == nil || entry.UserID == "" {
		return domain.ErrInvalidEntry
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger := r.ledgers[entry.UserID]
	next := make([]*domain.MoodEntry, 0, len(ledger)+1)
	next = append(next, entry.Clone())
	next = append(next, ledger...)
	r.ledgers[entry.UserID] = next
	return nil
}

func (r *InMemoryMoodEntryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.ledgers[userID]
	entries := make([]*domain.MoodEntry, 0, len(ledger))
	for _, e := range ledger {
		entries = append(entries, e.Clone())
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RecordedAt.After(entries[j].RecordedAt)
	})

	return entries, nil
}

// Reset drops every stored entry.
func (r *InMemoryMoodEntryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers = make(map[string][]*domain.MoodEntry)
}
