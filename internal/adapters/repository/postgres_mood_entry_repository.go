package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

var _ domain.MoodEntryRepository = (*PostgresMoodEntryRepository)(nil)

type PostgresMoodEntryRepository struct {
	db *sqlx.DB
}

func NewPostgresMoodEntryRepository(db *sqlx.DB) *PostgresMoodEntryRepository {
	return &PostgresMoodEntryRepository{db: db}
}

type moodEntryRow struct {
	ID         string         `db:"id"`
	UserID     string         `db:"user_id"`
	Mood       string         `db:"mood"`
	Note       string         `db:"note"`
	Tags       pq.StringArray `db:"tags"`
	RecordedAt time.Time      `db:"recorded_at"`
}

func toMoodEntryRow(e *domain.MoodEntry) moodEntryRow {
	tags := pq.StringArray(e.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}
	return moodEntryRow{
		ID:         e.ID,
		UserID:     e.UserID,
		Mood:       string(e.Mood),
		Note:       e.Note,
		Tags:       tags,
		RecordedAt: e.RecordedAt.UTC(),
	}
}

func (row moodEntryRow) toDomain() *domain.MoodEntry {
	tags := []string(row.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &domain.MoodEntry{
		ID:         row.ID,
		UserID:     row.UserID,
		Mood:       domain.Mood(row.Mood),
		Note:       row.Note,
		Tags:       tags,
		RecordedAt: row.RecordedAt.UTC(),
	}
}

func (r *PostgresMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, mood, note, tags, recorded_at)
		VALUES (:id, :user_id, :mood, :note, :tags, :recorded_at)`

	if _, err := r.db.NamedExecContext(ctx, query, toMoodEntryRow(entry)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repository: duplicate mood entry id %s: %w", entry.ID, domain.ErrInvalidEntry)
		}
		return fmt.Errorf("repository: create mood entry failed: %w", err)
	}
	return nil
}

func (r *PostgresMoodEntryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	rows := []moodEntryRow{}

	query := `
		SELECT id, user_id, mood, note, tags, recorded_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY recorded_at DESC, seq DESC`

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list mood entries failed: %w", err)
	}

	entries := make([]*domain.MoodEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}
