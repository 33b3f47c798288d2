// Package ephemeris provides a self-contained analytic ephemeris good
// to about a degree for the seven classical bodies. It trades
// precision for zero external data: truncated lunar series and the JPL
// approximate Keplerian mean elements (valid 1800-2050) are compiled
// in, so the generator never loads a kernel file. That tolerance is
// well inside the smallest aspect orb the scoring engine uses.
package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/starbook-app/starbook/internal/domain/astro"
)

const (
	j2000        = 2451545.0
	unixEpochJD  = 2440587.5
	secondsInDay = 86400.0
	degToRad     = math.Pi / 180
	radToDeg     = 180 / math.Pi
)

// Ephemeris computes geocentric ecliptic longitudes. The zero value is
// ready to use; it has no state.
type Ephemeris struct{}

// New returns the analytic ephemeris.
func New() *Ephemeris {
	return &Ephemeris{}
}

// keplerElements holds JPL approximate mean orbital elements and their
// per-century rates, J2000 ecliptic frame, angles in degrees.
type keplerElements struct {
	a, aDot         float64 // semi-major axis, au
	e, eDot         float64 // eccentricity
	i, iDot         float64 // inclination
	l, lDot         float64 // mean longitude
	peri, periDot   float64 // longitude of perihelion
	node, nodeDot   float64 // longitude of ascending node
}

var planetElements = map[astro.Body]keplerElements{
	astro.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	astro.Venus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	astro.Mars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	astro.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	astro.Saturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

// earthMoonBary stands in for Earth; the barycentric offset is far
// below this model's tolerance.
var earthMoonBary = keplerElements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

// EclipticLongitude returns the geocentric ecliptic longitude of a
// body in [0,360). Unknown bodies are the only error path.
func (e *Ephemeris) EclipticLongitude(t time.Time, body astro.Body) (float64, error) {
	jd := julianDay(t)
	switch body {
	case astro.Sun:
		x, y := heliocentric(earthMoonBary, jd)
		// The Sun sits opposite Earth on the ecliptic.
		return astro.Normalize(math.Atan2(-y, -x) * radToDeg), nil
	case astro.Moon:
		return moonLongitude(jd), nil
	}
	el, ok := planetElements[body]
	if !ok {
		return 0, fmt.Errorf("ephemeris: unknown body %q", body)
	}
	px, py := heliocentric(el, jd)
	ex, ey := heliocentric(earthMoonBary, jd)
	return astro.Normalize(math.Atan2(py-ey, px-ex) * radToDeg), nil
}

// MoonPhaseAngle returns the Moon-Sun elongation in [0,360):
// 0 = new moon, 180 = full moon.
func (e *Ephemeris) MoonPhaseAngle(t time.Time) (float64, error) {
	moon, err := e.EclipticLongitude(t, astro.Moon)
	if err != nil {
		return 0, err
	}
	sun, err := e.EclipticLongitude(t, astro.Sun)
	if err != nil {
		return 0, err
	}
	return astro.Normalize(moon - sun), nil
}

func julianDay(t time.Time) float64 {
	return float64(t.UnixNano())/1e9/secondsInDay + unixEpochJD
}

// heliocentric evaluates the mean elements at jd and solves Kepler's
// equation, returning in-ecliptic rectangular coordinates in au. The
// out-of-plane component never enters a longitude, so it is dropped.
func heliocentric(el keplerElements, jd float64) (x, y float64) {
	cy := (jd - j2000) / 36525

	a := el.a + el.aDot*cy
	ecc := el.e + el.eDot*cy
	inc := (el.i + el.iDot*cy) * degToRad
	meanLon := el.l + el.lDot*cy
	periLon := el.peri + el.periDot*cy
	nodeLon := el.node + el.nodeDot*cy

	meanAnom := astro.Normalize(meanLon-periLon) * degToRad
	ea := solveKepler(meanAnom, ecc)

	// Position in the orbital plane.
	xp := a * (math.Cos(ea) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * math.Sin(ea)

	argPeri := (periLon - nodeLon) * degToRad
	node := nodeLon * degToRad

	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(node), math.Sin(node)
	cosI := math.Cos(inc)

	x = (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp
	y = (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp
	return x, y
}

// solveKepler iterates Newton's method on E - e*sinE = M. The orbits
// here are near-circular, so a handful of iterations converges far
// past this model's precision.
func solveKepler(meanAnom, ecc float64) float64 {
	ea := meanAnom
	if ecc > 0.8 {
		ea = math.Pi
	}
	for iter := 0; iter < 10; iter++ {
		delta := (ea - ecc*math.Sin(ea) - meanAnom) / (1 - ecc*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < 1e-9 {
			break
		}
	}
	return ea
}

// moonLongitude is the standard truncated lunar theory: mean longitude
// plus the largest periodic terms (evection, variation, annual
// equation and friends), good to roughly a quarter degree.
func moonLongitude(jd float64) float64 {
	cy := (jd - j2000) / 36525

	lp := 218.3164477 + 481267.88123421*cy // mean longitude
	d := 297.8501921 + 445267.1114034*cy   // mean elongation
	m := 357.5291092 + 35999.0502909*cy    // sun mean anomaly
	mp := 134.9633964 + 477198.8675055*cy  // moon mean anomaly
	f := 93.2720950 + 483202.0175233*cy    // argument of latitude

	dr := d * degToRad
	mr := m * degToRad
	mpr := mp * degToRad
	fr := f * degToRad

	lon := lp +
		6.288774*math.Sin(mpr) +
		1.274027*math.Sin(2*dr-mpr) +
		0.658314*math.Sin(2*dr) +
		0.213618*math.Sin(2*mpr) -
		0.185116*math.Sin(mr) -
		0.114332*math.Sin(2*fr) +
		0.058793*math.Sin(2*dr-2*mpr) +
		0.057066*math.Sin(2*dr-mr-mpr) +
		0.053322*math.Sin(2*dr+mpr) +
		0.045758*math.Sin(2*dr-mr)

	return astro.Normalize(lon)
}
