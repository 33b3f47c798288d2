package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignForPartition(t *testing.T) {
	cases := []struct {
		longitude float64
		sign      string
	}{
		{0, "Aries"},
		{29.99, "Aries"},
		{30, "Taurus"},
		{125, "Leo"},
		{180, "Libra"},
		{269.5, "Sagittarius"},
		{270, "Capricorn"},
		{359.9, "Pisces"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.sign, SignFor(tc.longitude), "longitude %v", tc.longitude)
	}
}

func TestSignForWraparound(t *testing.T) {
	for _, lon := range []float64{-350, 10, 370, 730, -710} {
		require.Equal(t, "Aries", SignFor(lon))
	}
	require.Equal(t, SignFor(123.4), SignFor(123.4+360))
	require.Equal(t, SignFor(-42), SignFor(Normalize(-42)))
}

func TestSeparation(t *testing.T) {
	require.Equal(t, 0.0, Separation(10, 10))
	require.Equal(t, 20.0, Separation(350, 10))
	require.Equal(t, 20.0, Separation(10, 350))
	require.Equal(t, 180.0, Separation(0, 180))
	require.Equal(t, 90.0, Separation(45, 315))
}
