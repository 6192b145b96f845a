package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

var (
	_ domain.UserRepository      = (*SQLiteUserRepository)(nil)
	_ domain.MoodEntryRepository = (*SQLiteMoodEntryRepository)(nil)
)

type sqliteUser struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	Role         string `gorm:"not null;default:USER"`
	AvatarURL    string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (sqliteUser) TableName() string { return "users" }

// Seq preserves insertion order for entries that share a timestamp.
type sqliteMoodEntry struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         string    `gorm:"not null;uniqueIndex"`
	UserID     string    `gorm:"not null;index:idx_mood_entries_user_recorded,priority:1"`
	Mood       string    `gorm:"not null"`
	Note       string    `gorm:"not null;default:''"`
	Tags       []string  `gorm:"serializer:json"`
	RecordedAt time.Time `gorm:"not null;index:idx_mood_entries_user_recorded,priority:2"`
}

func (sqliteMoodEntry) TableName() string { return "mood_entries" }

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&sqliteUser{}, &sqliteMoodEntry{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return database, nil
}

type SQLiteUserRepository struct {
	database *gorm.DB
}

func NewSQLiteUserRepository(database *gorm.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{database: database}
}

func (r *SQLiteUserRepository) Create(ctx context.Context, user *domain.User) error {
	row := sqliteUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        domain.NormalizeEmail(user.Email),
		Role:         string(user.Role),
		AvatarURL:    user.AvatarURL,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}

	if err := r.database.WithContext(ctx).Create(&row).Error; err != nil {
		if isSQLiteConstraint(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *SQLiteUserRepository) first(ctx context.Context, cond string, arg string) (*domain.User, error) {
	var row sqliteUser
	if err := r.database.WithContext(ctx).Where(cond, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user failed: %w", err)
	}

	return &domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         domain.Role(row.Role),
		AvatarURL:    row.AvatarURL,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}, nil
}

type SQLiteMoodEntryRepository struct {
	database *gorm.DB
}

func NewSQLiteMoodEntryRepository(database *gorm.DB) *SQLiteMoodEntryRepository {
	return &SQLiteMoodEntryRepository{database: database}
}

func (r *SQLiteMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}

	row := sqliteMoodEntry{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Mood:       string(entry.Mood),
		Note:       entry.Note,
		Tags:       tags,
		RecordedAt: entry.RecordedAt.UTC(),
	}

	if err := r.database.WithContext(ctx).Create(&row).Error; err != nil {
		if isSQLiteConstraint(err) {
			return fmt.Errorf("repository: duplicate mood entry id %s: %w", entry.ID, domain.ErrInvalidEntry)
		}
		return fmt.Errorf("repository: create mood entry failed: %w", err)
	}
	return nil
}

func (r *SQLiteMoodEntryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.MoodEntry, error) {
	var rows []sqliteMoodEntry
	err := r.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Order("seq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("repository: list mood entries failed: %w", err)
	}

	entries := make([]*domain.MoodEntry, 0, len(rows))
	for _, row := range rows {
		tags := row.Tags
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, &domain.MoodEntry{
			ID:         row.ID,
			UserID:     row.UserID,
			Mood:       domain.Mood(row.Mood),
			Note:       row.Note,
			Tags:       tags,
			RecordedAt: row.RecordedAt.UTC(),
		})
	}
	return entries, nil
}

func isSQLiteConstraint(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
