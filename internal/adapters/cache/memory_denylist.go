package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryTokenDenylist is used when Redis is disabled. Entries are dropped
// lazily once their token would have expired.
type MemoryTokenDenylist struct {
	revoked map[string]time.Time
	now     func() time.Time

	mu sync.Mutex
}

func NewMemoryTokenDenylist() *MemoryTokenDenylist {
	return &MemoryTokenDenylist{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (d *MemoryTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.sweep()
	d.revoked[tokenID] = d.now().Add(ttl)
	return nil
}

func (d *MemoryTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	until, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !d.now().Before(until) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *MemoryTokenDenylist) sweep() {
	now := d.now()
	for id, until := range d.revoked {
		if !now.Before(until) {
			delete(d.revoked, id)
		}
	}
}
