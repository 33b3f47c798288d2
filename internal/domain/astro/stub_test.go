package astro

import "time"

// stubEphemeris serves fixed longitudes, with an optional override for
// time-dependent Moon motion.
type stubEphemeris struct {
	longitudes map[Body]float64
	phaseAngle float64
	moonAt     func(t time.Time) float64
	err        error
}

func (s *stubEphemeris) EclipticLongitude(t time.Time, body Body) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if body == Moon && s.moonAt != nil {
		return s.moonAt(t), nil
	}
	return s.longitudes[body], nil
}

func (s *stubEphemeris) MoonPhaseAngle(t time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.phaseAngle, nil
}
