// Command generate builds the published month files for whole years,
// the batch analogue of the admin generation endpoint. It writes
// {outputDir}/{year}/{MM}.json for every requested month and keeps
// going past failed months, reporting them at the end.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/starbook-app/starbook/internal/domain/auspice"
	"github.com/starbook-app/starbook/internal/infra/config"
	"github.com/starbook-app/starbook/internal/infra/ephemeris"
	"github.com/starbook-app/starbook/internal/infra/monthcache"
	"github.com/starbook-app/starbook/internal/infra/monthobj"
	"github.com/starbook-app/starbook/internal/infra/monthrepo"
	"github.com/starbook-app/starbook/pkg/logger"
	"github.com/starbook-app/starbook/pkg/metrics"
)

func main() {
	var (
		yearsFlag = flag.String("years", "", "comma separated years to generate (default: config)")
		outputDir = flag.String("output", "", "output directory (default: config)")
	)
	flag.Parse()

	log := logger.New().With("component", "generate")

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	years := cfg.Generator.Years
	if *yearsFlag != "" {
		years = parseYears(*yearsFlag)
	}
	if len(years) == 0 {
		log.Error("no years to generate")
		os.Exit(1)
	}
	dir := cfg.Storage.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}

	svc := auspice.NewService(
		auspice.Config{Workers: cfg.Generator.Workers, CacheTTL: cfg.Generator.CacheTTL},
		ephemeris.New(),
		monthrepo.NewMemoryRepository(),
		monthcache.NewMemoryStore(),
		monthobj.NewFilesystemPublisher(dir),
		log,
	)

	ctx := context.Background()
	start := time.Now()
	var stats metrics.RunStats
	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			generated, err := svc.RefreshMonth(ctx, year, month)
			if err != nil {
				log.Error("month generation failed", "year", year, "month", int(month), "error", err)
				stats.Add(0, err)
				continue
			}
			stats.Add(len(generated.Days), nil)
		}
	}

	log.Info("generation run complete",
		"years", len(years),
		"monthsGenerated", stats.MonthsGenerated,
		"daysGenerated", stats.DaysGenerated,
		"failures", stats.Failures,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	if stats.Failures > 0 {
		os.Exit(1)
	}
}

func parseYears(raw string) []int {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if year, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, year)
		}
	}
	return out
}
