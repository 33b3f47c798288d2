package monthrepo

import (
	"context"
	"sync"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

// MemoryRepository is an in-memory MonthRepository used for tests/dev
// and as the fallback when no database is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	months map[[2]int]auspice.Month
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{months: make(map[[2]int]auspice.Month)}
}

// Save implements auspice.MonthRepository.
func (r *MemoryRepository) Save(_ context.Context, month auspice.Month) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.months[[2]int{month.Year, month.Month}] = month
	return nil
}

// Find implements auspice.MonthRepository.
func (r *MemoryRepository) Find(_ context.Context, year, month int) (auspice.Month, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.months[[2]int{year, month}]
	return record, ok, nil
}

var _ auspice.MonthRepository = (*MemoryRepository)(nil)
