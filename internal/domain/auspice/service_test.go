package auspice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/starbook-app/starbook/internal/domain/astro"
	apperrors "github.com/starbook-app/starbook/pkg/errors"
)

type stubEphemeris struct {
	longitudes map[astro.Body]float64
	phaseAngle float64
	err        error
}

func (s *stubEphemeris) EclipticLongitude(t time.Time, body astro.Body) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	lon, ok := s.longitudes[body]
	if !ok {
		return 0, fmt.Errorf("no longitude for %s", body)
	}
	return lon, nil
}

func (s *stubEphemeris) MoonPhaseAngle(t time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.phaseAngle, nil
}

func fullEphemeris() *stubEphemeris {
	return &stubEphemeris{
		longitudes: map[astro.Body]float64{
			astro.Sun:     10,
			astro.Moon:    45,
			astro.Mercury: 12,
			astro.Venus:   70,
			astro.Mars:    130,
			astro.Jupiter: 200,
			astro.Saturn:  280,
		},
		phaseAngle: 180,
	}
}

type stubRepo struct {
	mu      sync.Mutex
	months  map[[2]int]Month
	saveErr error
	findErr error
	finds   int
}

func newStubRepo() *stubRepo {
	return &stubRepo{months: map[[2]int]Month{}}
}

func (r *stubRepo) Save(ctx context.Context, month Month) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.months[[2]int{month.Year, month.Month}] = month
	return nil
}

func (r *stubRepo) Find(ctx context.Context, year, month int) (Month, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return Month{}, false, r.findErr
	}
	m, ok := r.months[[2]int{year, month}]
	return m, ok, nil
}

type stubStore struct {
	mu     sync.Mutex
	months map[[2]int]Month
	sets   int
	getErr error
	setErr error
}

func newStubStore() *stubStore {
	return &stubStore{months: map[[2]int]Month{}}
}

func (s *stubStore) Get(ctx context.Context, year, month int) (Month, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return Month{}, false, s.getErr
	}
	m, ok := s.months[[2]int{year, month}]
	return m, ok, nil
}

func (s *stubStore) Set(ctx context.Context, month Month, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.months[[2]int{month.Year, month.Month}] = month
	return nil
}

type stubPublisher struct {
	mu        sync.Mutex
	published []Month
	err       error
}

func (p *stubPublisher) Publish(ctx context.Context, month Month) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, month)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(eph astro.Ephemeris, repo *stubRepo, store *stubStore, pub *stubPublisher) *service {
	svc := NewService(Config{Workers: 2, CacheTTL: time.Minute}, eph, repo, store, pub, testLogger()).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, time.February, 1, 8, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestGenerateDay(t *testing.T) {
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), &stubPublisher{})

	day, err := svc.GenerateDay(context.Background(), 2026, time.February, 10)
	require.NoError(t, err)

	require.Equal(t, "2026-02-10", day.Date)
	require.Equal(t, "Full Moon", day.MoonPhase.Name)
	require.True(t, day.MoonPhase.IsExactQuarter)
	require.Equal(t, "Taurus", day.MoonSign)
	require.Equal(t, "Aries", day.SunSign)
	require.False(t, day.VoidOfCourseMoon.IsVoid)
	require.Empty(t, day.Retrograde)
	require.NotNil(t, day.Retrograde)
	require.NotEmpty(t, day.Chinese.DayOfficer)
	require.NotEmpty(t, day.Chinese.StemBranchDay)
	require.GreaterOrEqual(t, day.Score, 1)
	require.LessOrEqual(t, day.Score, 5)
	require.Equal(t, scoreLabels[day.Score-1], day.ScoreLabel)
	require.True(t, strings.HasSuffix(day.Summary, "."))
}

func TestGenerateDayInvalidDate(t *testing.T) {
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), &stubPublisher{})

	_, err := svc.GenerateDay(context.Background(), 2026, time.February, 30)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_date"))
}

func TestGenerateDayEphemerisError(t *testing.T) {
	svc := newTestService(&stubEphemeris{err: errors.New("kernel unavailable")}, newStubRepo(), newStubStore(), &stubPublisher{})

	_, err := svc.GenerateDay(context.Background(), 2026, time.February, 10)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "ephemeris_error"))
}

func TestGenerateMonth(t *testing.T) {
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), &stubPublisher{})

	month, err := svc.GenerateMonth(context.Background(), 2026, time.February)
	require.NoError(t, err)

	require.Equal(t, 2026, month.Year)
	require.Equal(t, 2, month.Month)
	require.Equal(t, "2026-02-01T08:30:00Z", month.GeneratedAt)
	require.Len(t, month.Days, 28) // 2026 is not a leap year

	for i, day := range month.Days {
		require.Equal(t, fmt.Sprintf("2026-02-%02d", i+1), day.Date)
	}
}

func TestGenerateMonthAbortsOnDayError(t *testing.T) {
	svc := newTestService(&stubEphemeris{err: errors.New("kernel unavailable")}, newStubRepo(), newStubStore(), &stubPublisher{})

	_, err := svc.GenerateMonth(context.Background(), 2026, time.February)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "ephemeris_error"))
}

func TestRefreshMonth(t *testing.T) {
	repo := newStubRepo()
	store := newStubStore()
	pub := &stubPublisher{}
	svc := newTestService(fullEphemeris(), repo, store, pub)

	month, err := svc.RefreshMonth(context.Background(), 2026, time.March)
	require.NoError(t, err)
	require.Len(t, month.Days, 31)

	saved, ok, err := repo.Find(context.Background(), 2026, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, month, saved)

	require.Len(t, pub.published, 1)

	cached, ok, err := store.Get(context.Background(), 2026, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, month, cached)
}

func TestRefreshMonthPublishFailure(t *testing.T) {
	pub := &stubPublisher{err: errors.New("bucket gone")}
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), pub)

	_, err := svc.RefreshMonth(context.Background(), 2026, time.March)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "generation_failed"))
}

func TestRefreshMonthCacheFailureIsBestEffort(t *testing.T) {
	store := newStubStore()
	store.setErr = errors.New("cache down")
	svc := newTestService(fullEphemeris(), newStubRepo(), store, &stubPublisher{})

	_, err := svc.RefreshMonth(context.Background(), 2026, time.March)
	require.NoError(t, err)
}

func TestMonthReadPath(t *testing.T) {
	repo := newStubRepo()
	store := newStubStore()
	svc := newTestService(fullEphemeris(), repo, store, &stubPublisher{})

	seeded := Month{Year: 2026, Month: 4, GeneratedAt: "2026-03-31T00:00:00Z", Days: []Day{{Date: "2026-04-01"}}}
	require.NoError(t, repo.Save(context.Background(), seeded))

	// Cache miss falls through to the repository and backfills the cache.
	got, err := svc.Month(context.Background(), 2026, 4)
	require.NoError(t, err)
	require.Equal(t, seeded, got)
	require.Equal(t, 1, repo.finds)
	require.Equal(t, 1, store.sets)

	// Second read is served from the cache.
	got, err = svc.Month(context.Background(), 2026, 4)
	require.NoError(t, err)
	require.Equal(t, seeded, got)
	require.Equal(t, 1, repo.finds)
}

func TestMonthNoData(t *testing.T) {
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), &stubPublisher{})

	_, err := svc.Month(context.Background(), 2026, 4)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "no_data"))
}

func TestMonthOutOfRange(t *testing.T) {
	svc := newTestService(fullEphemeris(), newStubRepo(), newStubStore(), &stubPublisher{})

	_, err := svc.Month(context.Background(), 2026, 13)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_date"))
}

func TestDayLookup(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(fullEphemeris(), repo, newStubStore(), &stubPublisher{})

	seeded := Month{Year: 2026, Month: 4, Days: []Day{
		{Date: "2026-04-01", Score: 3},
		{Date: "2026-04-02", Score: 4},
	}}
	require.NoError(t, repo.Save(context.Background(), seeded))

	day, err := svc.Day(context.Background(), "2026-04-02")
	require.NoError(t, err)
	require.Equal(t, 4, day.Score)

	_, err = svc.Day(context.Background(), "April 2nd")
	require.True(t, apperrors.IsCode(err, "invalid_date"))

	_, err = svc.Day(context.Background(), "2026-05-02")
	require.True(t, apperrors.IsCode(err, "no_data"))
}
