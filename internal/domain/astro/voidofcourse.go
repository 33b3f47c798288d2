package astro

import "time"

const vocSearchIterations = 20

// vocLeadTime approximates the gap between the Moon's last major
// aspect and its sign change. A true void-of-course start would need
// the actual aspect time; the window end (the sign change) is exact to
// the binary search's resolution.
const vocLeadTime = 3 * time.Hour

// DetectVoidOfCourse reports whether the Moon changes sign during the
// UTC day containing t, with the approximate void window leading up to
// the change. Times are zero-padded "HH:MM" UTC clock strings.
func DetectVoidOfCourse(eph Ephemeris, t time.Time) (VoidOfCourse, error) {
	year, month, day := t.UTC().Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)

	signStart, err := moonSignIndex(eph, startOfDay)
	if err != nil {
		return VoidOfCourse{}, err
	}
	signEnd, err := moonSignIndex(eph, endOfDay)
	if err != nil {
		return VoidOfCourse{}, err
	}
	if signStart == signEnd {
		return VoidOfCourse{IsVoid: false}, nil
	}

	// Binary search the sign-change instant to sub-minute precision.
	lo, hi := startOfDay, endOfDay
	for i := 0; i < vocSearchIterations; i++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		midSign, err := moonSignIndex(eph, mid)
		if err != nil {
			return VoidOfCourse{}, err
		}
		if midSign == signStart {
			lo = mid
		} else {
			hi = mid
		}
	}
	change := lo.Add(hi.Sub(lo) / 2)

	start := clockString(change.Add(-vocLeadTime))
	end := clockString(change)
	return VoidOfCourse{IsVoid: true, StartTime: &start, EndTime: &end}, nil
}

func moonSignIndex(eph Ephemeris, t time.Time) (int, error) {
	lon, err := eph.EclipticLongitude(t, Moon)
	if err != nil {
		return 0, err
	}
	return signIndex(lon), nil
}

func clockString(t time.Time) string {
	return t.UTC().Format("15:04")
}
