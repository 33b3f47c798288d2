// Package almanac derives the Chinese day-almanac for a Gregorian
// date: the sexagenary day pillar, the Day Officer with its activity
// lists, elemental and animal attributions, and an approximate lunar
// date. Everything here is closed-form arithmetic over fixed tables;
// the package never touches an ephemeris.
package almanac

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/starbook-app/starbook/pkg/errors"
	"github.com/starbook-app/starbook/pkg/util"
)

// referenceJD is the Julian Day of 2019-02-05 00:00 UT, a 甲子 day:
// stem index 0, branch index 0. All pillar arithmetic counts days from
// here.
const referenceJD = 2458519.5

// Almanac is the day-almanac record serialized into day data.
type Almanac struct {
	LunarDate              string   `json:"lunarDate"`
	HeavenlyStem           string   `json:"heavenlyStem"`
	EarthlyBranch          string   `json:"earthlyBranch"`
	StemBranchDay          string   `json:"stemBranchDay"`
	DayOfficer             string   `json:"dayOfficer"`
	DayOfficerChinese      string   `json:"dayOfficerChinese"`
	AuspiciousActivities   []string `json:"auspiciousActivities"`
	InauspiciousActivities []string `json:"inauspiciousActivities"`
	Element                string   `json:"element"`
	AnimalDay              string   `json:"animalDay"`
	ClashAnimal            string   `json:"clashAnimal"`
}

// Pillar is the sexagenary day pillar with its cycle indices.
type Pillar struct {
	StemIndex   int
	BranchIndex int
}

// Stem returns the heavenly stem glyph.
func (p Pillar) Stem() string { return heavenlyStems[p.StemIndex] }

// Branch returns the earthly branch glyph.
func (p Pillar) Branch() string { return earthlyBranches[p.BranchIndex] }

// String renders the pillar as its two glyphs, e.g. 甲子.
func (p Pillar) String() string { return p.Stem() + p.Branch() }

// Romanized renders the pillar in pinyin, e.g. Jia-Zi. Useful for
// logs and terminals without CJK fonts.
func (p Pillar) Romanized() string {
	return heavenlyStemsRomanized[p.StemIndex] + "-" + earthlyBranchesRomanized[p.BranchIndex]
}

// ValidateDate rejects out-of-range calendar dates before any almanac
// arithmetic runs.
func ValidateDate(year int, month time.Month, day int) error {
	if month < time.January || month > time.December {
		return apperrors.Wrap("invalid_date", fmt.Sprintf("month %d out of range", month), nil)
	}
	if day < 1 || day > util.DaysInMonth(year, month) {
		return apperrors.Wrap("invalid_date", fmt.Sprintf("day %d out of range for %d-%02d", day, year, month), nil)
	}
	return nil
}

// julianDay returns the Julian Day at 0h UT for a proleptic-Gregorian
// date (standard noon-referenced JDN formula shifted back half a day).
func julianDay(year, month, day int) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) - 0.5
}

// DayPillar computes the sexagenary pillar for a date. The stem cycles
// every 10 days and the branch every 12, so the full pillar repeats on
// a 60-day cycle anchored at the reference date.
func DayPillar(year int, month time.Month, day int) Pillar {
	daysDiff := int(math.Round(julianDay(year, int(month), day) - referenceJD))
	return Pillar{
		StemIndex:   ((daysDiff % 10) + 10) % 10,
		BranchIndex: ((daysDiff % 12) + 12) % 12,
	}
}

// ForDate derives the full almanac record. phaseAngle is the Moon
// phase angle in degrees, used only by the approximate lunar date; the
// caller supplies it so this package stays free of ephemeris calls.
func ForDate(year int, month time.Month, day int, phaseAngle float64) (Almanac, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return Almanac{}, err
	}

	pillar := DayPillar(year, month, day)

	monthBranch := monthBranchByMonth[int(month)-1]
	officerIndex := (pillar.BranchIndex - monthBranch + 12) % 12
	activities := activitiesByOfficer[officerIndex]

	return Almanac{
		LunarDate:              approximateLunarDate(month, day, phaseAngle),
		HeavenlyStem:           pillar.Stem(),
		EarthlyBranch:          pillar.Branch(),
		StemBranchDay:          pillar.String(),
		DayOfficer:             dayOfficers[officerIndex],
		DayOfficerChinese:      dayOfficersChinese[officerIndex],
		AuspiciousActivities:   activities.good,
		InauspiciousActivities: activities.bad,
		Element:                elements[pillar.StemIndex],
		AnimalDay:              animals[pillar.BranchIndex],
		ClashAnimal:            clashAnimals[pillar.BranchIndex],
	}, nil
}

// approximateLunarDate estimates the lunar month and day. The day
// number comes from the phase angle (new moon = day 1, full moon =
// day 15); the month comes from a coarse Gregorian offset. This is an
// acknowledged approximation, not a lunisolar conversion.
func approximateLunarDate(month time.Month, day int, phaseAngle float64) string {
	lunarDay := int(math.Round(phaseAngle/360*29.5)) + 1
	if lunarDay < 1 {
		lunarDay = 1
	}
	if lunarDay > 30 {
		lunarDay = 30
	}

	var lunarMonth int
	switch {
	case month == time.January && day < 20:
		lunarMonth = 12 // previous year's 12th month
	case month == time.January:
		lunarMonth = 1
	default:
		lunarMonth = int(month) - 1
		if day >= 15 {
			lunarMonth++
		}
		if lunarMonth > 12 {
			lunarMonth = 12
		}
		if lunarMonth < 1 {
			lunarMonth = 1
		}
	}

	dayName, ok := lunarDayNames[lunarDay]
	if !ok {
		dayName = lunarDayNames[1]
	}
	return lunarMonthNames[lunarMonth] + dayName
}
