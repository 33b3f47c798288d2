package auspice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starbook-app/starbook/internal/domain/almanac"
	"github.com/starbook-app/starbook/internal/domain/astro"
)

func TestBuildSummaryFragments(t *testing.T) {
	day := Day{
		MoonPhase:        astro.MoonPhase{Name: "Full Moon", IsExactQuarter: true},
		MoonSign:         "Leo",
		VoidOfCourseMoon: astro.VoidOfCourse{IsVoid: true, StartTime: strPtr("10:00"), EndTime: strPtr("12:00")},
		Retrograde:       []string{"Mercury", "Venus"},
		Chinese:          almanac.Almanac{DayOfficer: "Success"},
	}
	got := buildSummary(day)
	require.Equal(t, "Full Moon in Leo. Moon void-of-course. Mercury, Venus retrograde. Success day.", got)
}

func TestBuildSummaryAspectBalance(t *testing.T) {
	favorable := Day{PlanetaryAspects: harmoniousAspects(2), Chinese: almanac.Almanac{DayOfficer: "Balance"}}
	require.Equal(t, "Favorable planetary energy.", buildSummary(favorable))

	challenging := Day{PlanetaryAspects: challengingAspects(3), Chinese: almanac.Almanac{DayOfficer: "Balance"}}
	require.Equal(t, "Challenging aspects present.", buildSummary(challenging))

	// One of each is neither favorable nor challenging.
	mixed := Day{
		PlanetaryAspects: append(harmoniousAspects(1), challengingAspects(1)...),
		Chinese:          almanac.Almanac{DayOfficer: "Balance"},
		Score:            3,
	}
	require.Equal(t, "A balanced day.", buildSummary(mixed))
}

func TestBuildSummaryOfficerCaution(t *testing.T) {
	day := Day{Chinese: almanac.Almanac{DayOfficer: "Break"}}
	require.Equal(t, "Break day — caution advised.", buildSummary(day))
}

func TestBuildSummaryScoreFallback(t *testing.T) {
	base := Day{Chinese: almanac.Almanac{DayOfficer: "Balance"}}

	high := base
	high.Score = 4
	require.Equal(t, "Generally favorable energy.", buildSummary(high))

	low := base
	low.Score = 2
	require.Equal(t, "Exercise caution today.", buildSummary(low))

	neutral := base
	neutral.Score = 3
	require.Equal(t, "A balanced day.", buildSummary(neutral))
}
