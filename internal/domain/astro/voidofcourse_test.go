package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetectVoidOfCourseNoSignChange(t *testing.T) {
	eph := &stubEphemeris{longitudes: map[Body]float64{Moon: 45}}
	voc, err := DetectVoidOfCourse(eph, time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.False(t, voc.IsVoid)
	require.Nil(t, voc.StartTime)
	require.Nil(t, voc.EndTime)
}

func TestDetectVoidOfCourseSignChange(t *testing.T) {
	day := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	// Moon crosses from Taurus (sign 1) into Gemini (sign 2) around
	// 18:00:33, comfortably inside the 18:00 display minute.
	eph := &stubEphemeris{moonAt: func(t time.Time) float64 {
		hours := t.Sub(day).Hours()
		return 50.095 + hours*0.55 // ~13.2 deg/day lunar motion
	}}

	voc, err := DetectVoidOfCourse(eph, day.Add(12*time.Hour))
	require.NoError(t, err)
	require.True(t, voc.IsVoid)
	require.NotNil(t, voc.StartTime)
	require.NotNil(t, voc.EndTime)
	require.Equal(t, "18:00", *voc.EndTime)
	require.Equal(t, "15:00", *voc.StartTime)
}

func TestDetectVoidOfCourseDeterministic(t *testing.T) {
	day := time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC)
	eph := &stubEphemeris{moonAt: func(t time.Time) float64 {
		hours := t.Sub(day.Add(-12 * time.Hour)).Hours()
		return 88 + hours*0.5
	}}

	first, err := DetectVoidOfCourse(eph, day)
	require.NoError(t, err)
	second, err := DetectVoidOfCourse(eph, day)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
