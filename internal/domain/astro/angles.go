package astro

import "math"

var zodiacSigns = []string{
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
	"Pisces",
}

// Normalize maps any angle into [0,360).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// SignFor returns the zodiac sign containing the ecliptic longitude.
// The ecliptic is partitioned into twelve fixed 30 degree arcs
// starting at Aries.
func SignFor(longitude float64) string {
	return zodiacSigns[signIndex(longitude)]
}

func signIndex(longitude float64) int {
	return int(Normalize(longitude)/30) % 12
}

// Separation returns the minimal angular distance between two
// longitudes, always in [0,180].
func Separation(a, b float64) float64 {
	diff := Normalize(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
