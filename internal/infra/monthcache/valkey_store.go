package monthcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

// ValkeyStore caches month documents in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "almanac"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements auspice.Store.
func (s *ValkeyStore) Get(ctx context.Context, year, month int) (auspice.Month, bool, error) {
	cmd := s.client.B().Get().Key(s.monthKey(year, month)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return auspice.Month{}, false, nil
		}
		return auspice.Month{}, false, err
	}
	var record auspice.Month
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return auspice.Month{}, false, err
	}
	return record, true, nil
}

// Set implements auspice.Store.
func (s *ValkeyStore) Set(ctx context.Context, month auspice.Month, ttl time.Duration) error {
	payload, err := json.Marshal(month)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.monthKey(month.Year, month.Month)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) monthKey(year, month int) string {
	return fmt.Sprintf("%s:%d:%02d", s.prefix, year, month)
}

var _ auspice.Store = (*ValkeyStore)(nil)
