package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	want := []string{
		"N", "NbE", "NNE", "NEbN", "NE", "NEbE", "ENE", "EbN",
		"E", "EbS", "ESE", "SEbE", "SE", "SEbS", "SSE", "SbE",
		"S", "SbW", "SSW", "SWbS", "SW", "SWbW", "WSW", "WbS",
		"W", "WbN", "WNW", "NWbW", "NW", "NWbN", "NNW", "NbW",
	}

	points := Points()
	require.Len(t, points, 32)
	for i, p := range points {
		assert.Equal(t, want[i], p.Abbreviation, "point %d", i)
		assert.InDelta(t, float64(i)*11.25, p.Azimuth, 1e-9, "point %d", i)
	}
}

func TestPoints_ReturnsCopy(t *testing.T) {
	points := Points()
	points[0].Abbreviation = "X"

	assert.Equal(t, "N", Points()[0].Abbreviation)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("NbW")
	require.True(t, ok)
	assert.Equal(t, 348.75, p.Azimuth)

	p, ok = Lookup("SE")
	require.True(t, ok)
	assert.Equal(t, 135.0, p.Azimuth)

	_, ok = Lookup("NNNE")
	assert.False(t, ok)
}
