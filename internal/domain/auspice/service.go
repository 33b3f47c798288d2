package auspice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/starbook-app/starbook/internal/domain/almanac"
	"github.com/starbook-app/starbook/internal/domain/astro"
	apperrors "github.com/starbook-app/starbook/pkg/errors"
	"github.com/starbook-app/starbook/pkg/util"
)

// Service generates and serves auspicious day data.
type Service interface {
	// GenerateDay runs the full per-day pipeline for one date.
	GenerateDay(ctx context.Context, year int, month time.Month, day int) (Day, error)
	// GenerateMonth builds the record for every calendar day of the
	// month. Any day error aborts the whole month.
	GenerateMonth(ctx context.Context, year int, month time.Month) (Month, error)
	// RefreshMonth generates a month and pushes it through the
	// repository, publisher and cache.
	RefreshMonth(ctx context.Context, year int, month time.Month) (Month, error)
	// Month serves a previously generated month, cache first.
	Month(ctx context.Context, year, month int) (Month, error)
	// Day serves a single day record by ISO date string.
	Day(ctx context.Context, date string) (Day, error)
}

// Config carries the generation knobs.
type Config struct {
	// Workers bounds the per-month day-generation pool. Day records
	// are independent, so any positive value is safe.
	Workers int
	// CacheTTL applies to month documents written to the Store.
	CacheTTL time.Duration
}

type service struct {
	cfg       Config
	ephemeris astro.Ephemeris
	repo      MonthRepository
	store     Store
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the auspicious-day domain.
func NewService(cfg Config, ephemeris astro.Ephemeris, repo MonthRepository, store Store, publisher Publisher, logger *slog.Logger) Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &service{
		cfg:       cfg,
		ephemeris: ephemeris,
		repo:      repo,
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "auspice.service"),
		now:       time.Now,
	}
}

func (s *service) GenerateDay(ctx context.Context, year int, month time.Month, day int) (Day, error) {
	if err := almanac.ValidateDate(year, month, day); err != nil {
		return Day{}, err
	}

	// All derivations fix the instant at UTC noon for reproducibility.
	instant := util.UTCNoon(year, month, day)

	phaseAngle, err := s.ephemeris.MoonPhaseAngle(instant)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "moon phase lookup failed", err)
	}
	moonLon, err := s.ephemeris.EclipticLongitude(instant, astro.Moon)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "moon position lookup failed", err)
	}
	sunLon, err := s.ephemeris.EclipticLongitude(instant, astro.Sun)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "sun position lookup failed", err)
	}
	voc, err := astro.DetectVoidOfCourse(s.ephemeris, instant)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "void-of-course detection failed", err)
	}
	aspects, err := astro.DetectAspects(s.ephemeris, instant)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "aspect detection failed", err)
	}
	retro, err := astro.Retrogrades(s.ephemeris, instant)
	if err != nil {
		return Day{}, apperrors.Wrap("ephemeris_error", "retrograde detection failed", err)
	}

	chinese, err := almanac.ForDate(year, month, day, phaseAngle)
	if err != nil {
		return Day{}, err
	}

	record := Day{
		Date:             util.DateString(instant),
		MoonPhase:        astro.ClassifyMoonPhase(phaseAngle),
		MoonSign:         astro.SignFor(moonLon),
		SunSign:          astro.SignFor(sunLon),
		VoidOfCourseMoon: voc,
		PlanetaryAspects: aspects,
		Retrograde:       retro,
		Chinese:          chinese,
	}
	record.Score, record.ScoreLabel = computeScore(record)
	record.Summary = buildSummary(record)
	return record, nil
}

func (s *service) GenerateMonth(ctx context.Context, year int, month time.Month) (Month, error) {
	if err := almanac.ValidateDate(year, month, 1); err != nil {
		return Month{}, err
	}

	total := util.DaysInMonth(year, month)
	days := make([]Day, total)
	errs := make([]error, total)

	// Day records are independent; fan out across a bounded pool and
	// collect by index so the month stays ordered.
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				days[i], errs[i] = s.GenerateDay(ctx, year, month, i+1)
			}
		}()
	}
	for i := 0; i < total; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Month{}, fmt.Errorf("day %d-%02d-%02d: %w", year, month, i+1, err)
		}
	}

	return Month{
		Year:        year,
		Month:       int(month),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Days:        days,
	}, nil
}

func (s *service) RefreshMonth(ctx context.Context, year int, month time.Month) (Month, error) {
	generated, err := s.GenerateMonth(ctx, year, month)
	if err != nil {
		return Month{}, err
	}
	if err := s.repo.Save(ctx, generated); err != nil {
		return Month{}, apperrors.Wrap("generation_failed", "persist month", err)
	}
	if err := s.publisher.Publish(ctx, generated); err != nil {
		return Month{}, apperrors.Wrap("generation_failed", "publish month", err)
	}
	if err := s.store.Set(ctx, generated, s.cfg.CacheTTL); err != nil {
		// Cache is best effort; the repository already holds the data.
		s.logger.Warn("month cache set failed", "year", year, "month", int(month), "error", err)
	}
	s.logger.Info("month generated",
		"year", year,
		"month", int(month),
		"days", len(generated.Days),
		"firstPillar", almanac.DayPillar(year, month, 1).Romanized(),
	)
	return generated, nil
}

func (s *service) Month(ctx context.Context, year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, apperrors.Wrap("invalid_date", fmt.Sprintf("month %d out of range", month), nil)
	}

	if cached, ok, err := s.store.Get(ctx, year, month); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("month cache get failed", "year", year, "month", month, "error", err)
	}

	stored, ok, err := s.repo.Find(ctx, year, month)
	if err != nil {
		return Month{}, apperrors.Wrap("calendar_error", "load month", err)
	}
	if !ok {
		return Month{}, apperrors.Wrap("no_data", fmt.Sprintf("no data for %d-%02d", year, month), nil)
	}
	if err := s.store.Set(ctx, stored, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("month cache set failed", "year", year, "month", month, "error", err)
	}
	return stored, nil
}

func (s *service) Day(ctx context.Context, date string) (Day, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Day{}, apperrors.Wrap("invalid_date", "date must be formatted as YYYY-MM-DD", err)
	}
	monthData, err := s.Month(ctx, parsed.Year(), int(parsed.Month()))
	if err != nil {
		return Day{}, err
	}
	for _, d := range monthData.Days {
		if d.Date == date {
			return d, nil
		}
	}
	return Day{}, apperrors.Wrap("no_data", fmt.Sprintf("no data for %s", date), nil)
}
