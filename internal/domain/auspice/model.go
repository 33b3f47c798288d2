package auspice

import (
	"github.com/starbook-app/starbook/internal/domain/almanac"
	"github.com/starbook-app/starbook/internal/domain/astro"
)

// Day is the aggregate auspiciousness record for one calendar date.
// It is self-contained and immutable once produced: the fields above
// Score are computed first, then Score/ScoreLabel/Summary are derived
// from them.
type Day struct {
	Date             string             `json:"date"`
	MoonPhase        astro.MoonPhase    `json:"moonPhase"`
	MoonSign         string             `json:"moonSign"`
	SunSign          string             `json:"sunSign"`
	VoidOfCourseMoon astro.VoidOfCourse `json:"voidOfCourseMoon"`
	PlanetaryAspects []astro.Aspect     `json:"planetaryAspects"`
	Retrograde       []string           `json:"retrograde"`
	Chinese          almanac.Almanac    `json:"chinese"`
	Score            int                `json:"score"`
	ScoreLabel       string             `json:"scoreLabel"`
	Summary          string             `json:"summary"`
}

// Month is the unit of distribution: one document per calendar month,
// days in ascending date order with no gaps or duplicates. Never
// mutated after generation.
type Month struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	GeneratedAt string `json:"generatedAt"`
	Days        []Day  `json:"days"`
}
