package services

import (
	"context"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/analytics"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

const (
	DefaultTrendDays = 30
	MaxTrendDays     = 366

	DefaultSeriesLength = 7
	MaxSeriesLength     = 366
)

type StatsService struct {
	entryRepo domain.MoodEntryRepository
	settings  LedgerSettings
}

func NewStatsService(entryRepo domain.MoodEntryRepository, settings LedgerSettings) *StatsService {
	return &StatsService{
		entryRepo: entryRepo,
		settings:  settings,
	}
}

func (s *StatsService) ledger(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	if err := s.settings.pause(ctx); err != nil {
		return nil, err
	}
	return s.entryRepo.ListByUserID(ctx, userID)
}

func (s *StatsService) GetWeeklyStats(ctx context.Context, userID string) (*domain.WeeklyStats, error) {
	entries, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := analytics.Weekly(entries, s.settings.now(), s.settings.location())
	return &stats, nil
}

func (s *StatsService) GetRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	entries, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Recommend(entries), nil
}

func (s *StatsService) GetDistribution(ctx context.Context, userID string) ([]domain.MoodCount, error) {
	entries, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Distribution(entries), nil
}

// GetTrend clamps days to [1, MaxTrendDays]; 0 selects DefaultTrendDays.
func (s *StatsService) GetTrend(ctx context.Context, userID string, days int) ([]domain.TrendPoint, error) {
	switch {
	case days == 0:
		days = DefaultTrendDays
	case days < 1:
		days = 1
	case days > MaxTrendDays:
		days = MaxTrendDays
	}

	entries, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Trend(entries, s.settings.now(), s.settings.location(), days), nil
}

// GetRecentSeries returns the last limit entries as points, oldest first.
// limit is clamped like GetTrend; 0 selects DefaultSeriesLength.
func (s *StatsService) GetRecentSeries(ctx context.Context, userID string, limit int) ([]domain.TrendPoint, error) {
	switch {
	case limit == 0:
		limit = DefaultSeriesLength
	case limit < 1:
		limit = 1
	case limit > MaxSeriesLength:
		limit = MaxSeriesLength
	}

	entries, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.RecentSeries(entries, s.settings.location(), limit), nil
}
