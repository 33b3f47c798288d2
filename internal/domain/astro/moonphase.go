package astro

import "math"

// ClassifyMoonPhase maps a phase angle onto the eight-way phase wheel.
// Quarters get a tight +/-5 degree band; crescent and gibbous arcs
// fill the rest.
func ClassifyMoonPhase(angle float64) MoonPhase {
	var name string
	switch {
	case angle < 5 || angle > 355:
		name = "New Moon"
	case angle < 85:
		name = "Waxing Crescent"
	case angle < 95:
		name = "First Quarter"
	case angle < 175:
		name = "Waxing Gibbous"
	case angle < 185:
		name = "Full Moon"
	case angle < 265:
		name = "Waning Gibbous"
	case angle < 275:
		name = "Third Quarter"
	default:
		name = "Waning Crescent"
	}

	isExactQuarter := angle < 5 || angle > 355 ||
		(angle > 85 && angle < 95) ||
		(angle > 175 && angle < 185) ||
		(angle > 265 && angle < 275)

	illumination := (1 - math.Cos(angle*math.Pi/180)) / 2

	return MoonPhase{
		Angle:          math.Round(angle*10) / 10,
		Name:           name,
		Illumination:   math.Round(illumination*100) / 100,
		IsExactQuarter: isExactQuarter,
	}
}
