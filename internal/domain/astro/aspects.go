package astro

import (
	"math"
	"time"
)

type aspectDefinition struct {
	name       string
	angle      float64
	orb        float64
	harmonious bool
}

// Tested in priority order; the first match wins for a pair.
var aspectDefinitions = []aspectDefinition{
	{name: "conjunction", angle: 0, orb: 8, harmonious: true},
	{name: "sextile", angle: 60, orb: 4, harmonious: true},
	{name: "square", angle: 90, orb: 6, harmonious: false},
	{name: "trine", angle: 120, orb: 6, harmonious: true},
	{name: "opposition", angle: 180, orb: 8, harmonious: false},
}

// DetectAspects checks every unordered pair of tracked bodies and
// records at most one aspect per pair.
func DetectAspects(eph Ephemeris, t time.Time) ([]Aspect, error) {
	longitudes := make(map[Body]float64, len(Bodies))
	for _, body := range Bodies {
		lon, err := eph.EclipticLongitude(t, body)
		if err != nil {
			return nil, err
		}
		longitudes[body] = lon
	}

	aspects := make([]Aspect, 0)
	for i := 0; i < len(Bodies); i++ {
		for j := i + 1; j < len(Bodies); j++ {
			diff := Separation(longitudes[Bodies[i]], longitudes[Bodies[j]])
			for _, def := range aspectDefinitions {
				if math.Abs(diff-def.angle) <= def.orb {
					aspects = append(aspects, Aspect{
						Aspect:       def.name,
						Planet1:      string(Bodies[i]),
						Planet2:      string(Bodies[j]),
						IsHarmonious: def.harmonious,
					})
					break
				}
			}
		}
	}
	return aspects, nil
}
