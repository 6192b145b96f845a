package domain

import (
	"context"
)

type UserRepository interface {
	// Create persists a new account. Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail looks the account up by its normalized email.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type MoodEntryRepository interface {
	// Create appends an entry to the owner's ledger.
	Create(ctx context.Context, entry *MoodEntry) error

	// ListByUserID returns the whole ledger of a user, newest first.
	// Entries sharing a timestamp come back most recently inserted first.
	ListByUserID(ctx context.Context, userID string) ([]*MoodEntry, error)
}
