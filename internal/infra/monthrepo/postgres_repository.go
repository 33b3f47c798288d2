package monthrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

// PostgresRepository implements auspice.MonthRepository using pgx. The
// month document is stored whole as jsonb; (year, month) is the key
// and regeneration overwrites in place.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Save upserts the month document.
func (r *PostgresRepository) Save(ctx context.Context, month auspice.Month) error {
	payload, err := json.Marshal(month)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO months (year, month, generated_at, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, month)
		DO UPDATE SET generated_at = EXCLUDED.generated_at, payload = EXCLUDED.payload
	`, month.Year, month.Month, month.GeneratedAt, payload)
	return err
}

// Find fetches one month document.
func (r *PostgresRepository) Find(ctx context.Context, year, month int) (auspice.Month, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM months
		WHERE year = $1 AND month = $2
		LIMIT 1
	`, year, month)
	if err != nil {
		return auspice.Month{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return auspice.Month{}, false, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return auspice.Month{}, false, err
	}
	var record auspice.Month
	if err := json.Unmarshal(payload, &record); err != nil {
		return auspice.Month{}, false, err
	}
	return record, true, rows.Err()
}

var _ auspice.MonthRepository = (*PostgresRepository)(nil)
