package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/analytics"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

type MoodService struct {
	repo     domain.MoodEntryRepository
	settings LedgerSettings
}

func NewMoodService(repo domain.MoodEntryRepository, settings LedgerSettings) *MoodService {
	return &MoodService{
		repo:     repo,
		settings: settings,
	}
}

type CheckInInput struct {
	UserID string
	Mood   domain.Mood
	Note   string
	Tags   []string
}

// CheckIn records a new entry stamped with the current time. Several check-ins
// on the same day are all kept.
func (s *MoodService) CheckIn(ctx context.Context, input CheckInInput) (*domain.MoodEntry, error) {
	if err := s.settings.pause(ctx); err != nil {
		return nil, err
	}

	entry, err := domain.NewMoodEntry(input.UserID, input.Mood, input.Note, input.Tags, s.settings.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("mood service: failed to record check-in: %w", err)
	}

	return entry, nil
}

// GetTodayEntry returns nil when the user has not checked in today. With
// duplicates, the first entry in ledger order (the latest one) is returned.
func (s *MoodService) GetTodayEntry(ctx context.Context, userID string) (*domain.MoodEntry, error) {
	if err := s.settings.pause(ctx); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := s.settings.location()
	today := analytics.Day(s.settings.now(), loc)
	for _, e := range entries {
		if analytics.Day(e.RecordedAt, loc).Equal(today) {
			return e, nil
		}
	}
	return nil, nil
}

func (s *MoodService) GetHistory(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	if err := s.settings.pause(ctx); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.MoodEntry{}
	}
	return entries, nil
}

// Search filters the history on a case-insensitive match against the note or any tag.
func (s *MoodService) Search(ctx context.Context, userID, query string) ([]*domain.MoodEntry, error) {
	entries, err := s.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return entries, nil
	}

	matches := make([]*domain.MoodEntry, 0)
	for _, e := range entries {
		if entryMatches(e, needle) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func entryMatches(e *domain.MoodEntry, needle string) bool {
	if strings.Contains(strings.ToLower(e.Note), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
