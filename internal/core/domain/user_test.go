package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("Should create user with normalized email and default role", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("123", "  Ada Lovelace ", "  Ada.Lovelace@Gmail.COM  ")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if user.Email != "ada.lovelace@gmail.com" {
			t.Errorf("Expected normalized email, got %s", user.Email)
		}
		if user.Name != "Ada Lovelace" {
			t.Errorf("Expected trimmed name, got %q", user.Name)
		}
		if user.Role != RoleUser {
			t.Errorf("Expected role USER, got %s", user.Role)
		}
		if !strings.HasPrefix(user.AvatarURL, avatarBaseURL) || !strings.HasSuffix(user.AvatarURL, "Ada+Lovelace") {
			t.Errorf("Unexpected avatar url %s", user.AvatarURL)
		}
		if user.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("Should fail with invalid email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", "Ada", "invalid-email-format")

		if err != ErrInvalidEmail {
			t.Errorf("Expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("Should reject display-name addresses", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", "Ada", "Ada <ada@example.com>")

		if err != ErrInvalidEmail {
			t.Errorf("Expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("Should fail with a one-letter name", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", " A ", "a@example.com")

		if err != ErrNameTooShort {
			t.Errorf("Expected ErrNameTooShort, got %v", err)
		}
	})
}

func TestUserPassword(t *testing.T) {
	t.Parallel()

	t.Run("Should hash password correctly and update timestamp", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "Tester", "test@test.com")
		plainPass := "superSecret123"

		oldUpdatedAt := user.UpdatedAt

		time.Sleep(1 * time.Millisecond)

		if err := user.SetPassword(plainPass); err != nil {
			t.Fatalf("Expected no error setting password, got %v", err)
		}

		if user.PasswordHash == plainPass || user.PasswordHash == "" {
			t.Error("Password should be hashed, not plain text")
		}

		if !user.UpdatedAt.After(oldUpdatedAt) {
			t.Error("UpdatedAt should be updated after setting password")
		}
	})

	t.Run("Should validate password length", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "Tester", "test@test.com")

		if err := user.SetPassword("short"); err != ErrPasswordTooShort {
			t.Errorf("Expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("CheckPassword should map mismatches to ErrInvalidCredentials", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "Tester", "test@test.com")
		pass := "correctPassword"
		_ = user.SetPassword(pass)

		if err := user.CheckPassword(pass); err != nil {
			t.Errorf("Expected password to match, got error: %v", err)
		}

		if err := user.CheckPassword("wrongPassword"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}
