package astro

import "time"

// Retrogrades lists the planets whose ecliptic longitude moved
// backwards over the 24 hours before t.
func Retrogrades(eph Ephemeris, t time.Time) ([]string, error) {
	dayBefore := t.Add(-24 * time.Hour)

	retro := make([]string, 0, len(RetrogradeBodies))
	for _, body := range RetrogradeBodies {
		lonNow, err := eph.EclipticLongitude(t, body)
		if err != nil {
			return nil, err
		}
		lonPrev, err := eph.EclipticLongitude(dayBefore, body)
		if err != nil {
			return nil, err
		}

		diff := lonNow - lonPrev
		if diff > 180 {
			diff -= 360
		}
		if diff < -180 {
			diff += 360
		}
		if diff < 0 {
			retro = append(retro, string(body))
		}
	}
	return retro, nil
}
