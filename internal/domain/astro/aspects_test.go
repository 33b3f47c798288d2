package astro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetectAspectsConjunction(t *testing.T) {
	eph := &stubEphemeris{longitudes: map[Body]float64{
		Sun:     100,
		Moon:    100,
		Mercury: 10,
		Venus:   205,
		Mars:    290,
		Jupiter: 33,
		Saturn:  250,
	}}

	aspects, err := DetectAspects(eph, time.Now())
	require.NoError(t, err)

	var sunMoon *Aspect
	for i := range aspects {
		if aspects[i].Planet1 == "Sun" && aspects[i].Planet2 == "Moon" {
			sunMoon = &aspects[i]
		}
	}
	require.NotNil(t, sunMoon)
	require.Equal(t, "conjunction", sunMoon.Aspect)
	require.True(t, sunMoon.IsHarmonious)
}

func TestDetectAspectsOnePerPair(t *testing.T) {
	// Cluster everything so many pairs hit the conjunction orb.
	eph := &stubEphemeris{longitudes: map[Body]float64{
		Sun: 0, Moon: 2, Mercury: 4, Venus: 6, Mars: 1, Jupiter: 3, Saturn: 5,
	}}

	aspects, err := DetectAspects(eph, time.Now())
	require.NoError(t, err)
	require.LessOrEqual(t, len(aspects), 21)

	seen := make(map[string]int)
	for _, a := range aspects {
		seen[a.Planet1+"/"+a.Planet2]++
		require.Equal(t, "conjunction", a.Aspect)
	}
	for pair, count := range seen {
		require.Equal(t, 1, count, "pair %s", pair)
	}
}

func TestDetectAspectsSymmetric(t *testing.T) {
	// The sextile between Mercury and Venus must not depend on which
	// longitude is larger.
	a := &stubEphemeris{longitudes: map[Body]float64{
		Sun: 200, Moon: 95, Mercury: 10, Venus: 70, Mars: 300, Jupiter: 152, Saturn: 250,
	}}
	b := &stubEphemeris{longitudes: map[Body]float64{
		Sun: 200, Moon: 95, Mercury: 70, Venus: 10, Mars: 300, Jupiter: 152, Saturn: 250,
	}}

	find := func(eph Ephemeris) *Aspect {
		aspects, err := DetectAspects(eph, time.Now())
		require.NoError(t, err)
		for i := range aspects {
			if aspects[i].Planet1 == "Mercury" && aspects[i].Planet2 == "Venus" {
				return &aspects[i]
			}
		}
		return nil
	}

	first, second := find(a), find(b)
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.Equal(t, "sextile", first.Aspect)
	require.Equal(t, first.Aspect, second.Aspect)
	require.Equal(t, first.IsHarmonious, second.IsHarmonious)
}

func TestDetectAspectsWraparound(t *testing.T) {
	// 358 and 2 are 4 degrees apart across the wrap, inside the
	// conjunction orb.
	eph := &stubEphemeris{longitudes: map[Body]float64{
		Sun: 358, Moon: 2, Mercury: 100, Venus: 170, Mars: 220, Jupiter: 45, Saturn: 310,
	}}
	aspects, err := DetectAspects(eph, time.Now())
	require.NoError(t, err)
	require.Equal(t, "conjunction", aspects[0].Aspect)
	require.Equal(t, "Sun", aspects[0].Planet1)
	require.Equal(t, "Moon", aspects[0].Planet2)
}

func TestDetectAspectsPropagatesError(t *testing.T) {
	eph := &stubEphemeris{err: errors.New("ephemeris offline")}
	_, err := DetectAspects(eph, time.Now())
	require.Error(t, err)
}
