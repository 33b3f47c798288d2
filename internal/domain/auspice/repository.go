package auspice

import (
	"context"
	"time"
)

// MonthRepository persists generated month documents.
type MonthRepository interface {
	Save(ctx context.Context, month Month) error
	Find(ctx context.Context, year, month int) (Month, bool, error)
}

// Store caches month documents close to the read path.
type Store interface {
	Get(ctx context.Context, year, month int) (Month, bool, error)
	Set(ctx context.Context, month Month, ttl time.Duration) error
}

// Publisher writes a month document to its public location,
// one object per (year, month).
type Publisher interface {
	Publish(ctx context.Context, month Month) error
}
