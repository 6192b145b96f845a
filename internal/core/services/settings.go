package services

import (
	"context"
	"time"
)

// LedgerSettings carries the reference clock shared by the mood and stats services.
type LedgerSettings struct {
	// Location decides which calendar day an entry belongs to. Defaults to UTC.
	Location *time.Location
	// Latency is an artificial delay applied before each operation, 0 disables it.
	Latency time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s LedgerSettings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s LedgerSettings) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s LedgerSettings) pause(ctx context.Context) error {
	if s.Latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.Latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
