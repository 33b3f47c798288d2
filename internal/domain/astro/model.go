package astro

import "time"

// Body identifies one of the tracked ecliptic bodies.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
)

// Bodies lists the seven tracked bodies in canonical order. Aspect
// pairs are always reported with the earlier body first.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// RetrogradeBodies are the planets checked for apparent backward motion.
var RetrogradeBodies = []Body{Mercury, Venus, Mars, Jupiter, Saturn}

// Ephemeris yields ecliptic positions for an instant. Implementations
// must be deterministic and continuous apart from 0/360 wraparound.
type Ephemeris interface {
	// EclipticLongitude returns the geocentric ecliptic longitude of
	// body in degrees [0,360).
	EclipticLongitude(t time.Time, body Body) (float64, error)
	// MoonPhaseAngle returns the phase angle in degrees [0,360),
	// 0 = new moon, 180 = full moon.
	MoonPhaseAngle(t time.Time) (float64, error)
}

// MoonPhase describes the lunar phase at an instant. Name,
// Illumination and IsExactQuarter are pure functions of the angle.
type MoonPhase struct {
	Angle          float64 `json:"angle"`
	Name           string  `json:"name"`
	Illumination   float64 `json:"illumination"`
	IsExactQuarter bool    `json:"isExactQuarter"`
}

// VoidOfCourse reports the approximate window during which the Moon
// transitions between zodiac signs. Non-void days carry null times.
type VoidOfCourse struct {
	IsVoid    bool    `json:"isVoid"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// Aspect is a named angular relationship between two bodies.
type Aspect struct {
	Aspect       string `json:"aspect"`
	Planet1      string `json:"planet1"`
	Planet2      string `json:"planet2"`
	IsHarmonious bool   `json:"isHarmonious"`
}
