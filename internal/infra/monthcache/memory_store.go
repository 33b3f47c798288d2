package monthcache

import (
	"context"
	"sync"
	"time"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

type monthRecord struct {
	payload   auspice.Month
	expiresAt time.Time
}

// MemoryStore is an in-memory month cache for tests/dev and the
// fallback when Valkey is disabled.
type MemoryStore struct {
	mu     sync.RWMutex
	months map[[2]int]monthRecord
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{months: make(map[[2]int]monthRecord)}
}

// Get implements auspice.Store.
func (s *MemoryStore) Get(_ context.Context, year, month int) (auspice.Month, bool, error) {
	key := [2]int{year, month}
	s.mu.RLock()
	record, ok := s.months[key]
	s.mu.RUnlock()
	if !ok {
		return auspice.Month{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.months, key)
		s.mu.Unlock()
		return auspice.Month{}, false, nil
	}
	return record.payload, true, nil
}

// Set caches the month with optional TTL.
func (s *MemoryStore) Set(_ context.Context, month auspice.Month, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.months[[2]int{month.Year, month.Month}] = monthRecord{
		payload:   month,
		expiresAt: exp,
	}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ auspice.Store = (*MemoryStore)(nil)
