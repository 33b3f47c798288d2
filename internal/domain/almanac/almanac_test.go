package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/starbook-app/starbook/pkg/errors"
)

func TestDayPillarReferenceDate(t *testing.T) {
	pillar := DayPillar(2019, time.February, 5)
	require.Equal(t, 0, pillar.StemIndex)
	require.Equal(t, 0, pillar.BranchIndex)
	require.Equal(t, "甲", pillar.Stem())
	require.Equal(t, "子", pillar.Branch())
	require.Equal(t, "甲子", pillar.String())
	require.Equal(t, "Jia-Zi", pillar.Romanized())
}

func TestDayPillarPeriodicity(t *testing.T) {
	base := time.Date(2019, time.February, 5, 0, 0, 0, 0, time.UTC)
	basePillar := DayPillar(2019, time.February, 5)

	tenDays := base.AddDate(0, 0, 10)
	require.Equal(t, basePillar.StemIndex, DayPillar(tenDays.Year(), tenDays.Month(), tenDays.Day()).StemIndex)

	twelveDays := base.AddDate(0, 0, 12)
	require.Equal(t, basePillar.BranchIndex, DayPillar(twelveDays.Year(), twelveDays.Month(), twelveDays.Day()).BranchIndex)

	// The full pillar repeats on the 60-day cycle, in both directions.
	for _, offset := range []int{60, 120, -60, 600} {
		d := base.AddDate(0, 0, offset)
		p := DayPillar(d.Year(), d.Month(), d.Day())
		require.Equal(t, basePillar, p, "offset %d", offset)
	}
}

func TestDayPillarConsecutive(t *testing.T) {
	// Indices advance by exactly one per calendar day.
	prev := DayPillar(2025, time.December, 31)
	next := DayPillar(2026, time.January, 1)
	require.Equal(t, (prev.StemIndex+1)%10, next.StemIndex)
	require.Equal(t, (prev.BranchIndex+1)%12, next.BranchIndex)
}

func TestForDateReference(t *testing.T) {
	a, err := ForDate(2019, time.February, 5, 0)
	require.NoError(t, err)
	require.Equal(t, "甲", a.HeavenlyStem)
	require.Equal(t, "子", a.EarthlyBranch)
	require.Equal(t, "甲子", a.StemBranchDay)
	// Branch 子 against February's month branch 寅 yields the Open officer.
	require.Equal(t, "Open", a.DayOfficer)
	require.Equal(t, "开", a.DayOfficerChinese)
	require.Equal(t, "Wood", a.Element)
	require.Equal(t, "Rat", a.AnimalDay)
	require.Equal(t, "Horse", a.ClashAnimal)
	require.Len(t, a.AuspiciousActivities, 6)
	require.Equal(t, []string{"Funerals"}, a.InauspiciousActivities)
}

func TestForDateOfficerCycle(t *testing.T) {
	// Within one Gregorian month the officer index tracks the branch,
	// so consecutive days walk the twelve officers in order.
	first, err := ForDate(2025, time.March, 3, 0)
	require.NoError(t, err)
	firstIdx := indexOf(t, dayOfficers, first.DayOfficer)
	for i := 1; i < 12; i++ {
		a, err := ForDate(2025, time.March, 3+i, 0)
		require.NoError(t, err)
		require.Equal(t, dayOfficers[(firstIdx+i)%12], a.DayOfficer, "day offset %d", i)
	}
}

func TestForDateInvalid(t *testing.T) {
	_, err := ForDate(2025, time.February, 30, 0)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_date"))

	_, err = ForDate(2025, time.Month(13), 1, 0)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_date"))

	_, err = ForDate(2024, time.February, 29, 0)
	require.NoError(t, err, "leap day is valid")
}

func TestApproximateLunarDate(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		phase float64
		want  string
	}{
		{time.March, 10, 0, "二月初一"},
		{time.March, 20, 0, "三月初一"},
		{time.January, 10, 0, "腊月初一"},
		{time.January, 25, 0, "正月初一"},
		{time.December, 20, 0, "腊月初一"},
		{time.June, 1, 180, "五月十六"},
		{time.June, 1, 355, "五月三十"},
	}
	for _, tc := range cases {
		got := approximateLunarDate(tc.month, tc.day, tc.phase)
		require.Equal(t, tc.want, got, "%v %d phase %v", tc.month, tc.day, tc.phase)
	}
}

func indexOf(t *testing.T, list []string, value string) int {
	t.Helper()
	for i, v := range list {
		if v == value {
			return i
		}
	}
	t.Fatalf("%q not found", value)
	return -1
}
