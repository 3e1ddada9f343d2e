package centroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// length of one degree of arc on the haversine sphere
const degreeMeters = 111319.49079327357

func TestDistance(t *testing.T) {
	path := pointSet([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2})

	assert.InDelta(t, 2*degreeMeters, Distance(path, Meters), 1e-6)
	assert.InDelta(t, 2*degreeMeters/1000, Distance(path, Kilometers), 1e-9)
	assert.InDelta(t, 2*degreeMeters/1609.344, Distance(path, Miles), 1e-9)
	assert.InDelta(t, 2*degreeMeters/1852, Distance(path, NauticalMiles), 1e-9)
	assert.InDelta(t, 2*degreeMeters/0.3048, Distance(path, Feet), 1e-5)
}

func TestDistanceSinglePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(pointSet([2]float64{1, 2}), Meters))
}

func TestAlong(t *testing.T) {
	path := pointSet([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2})

	tests := []struct {
		name     string
		distance float64
		unit     Unit
		expected [2]float64
	}{
		{name: "start", distance: 0, unit: Meters, expected: [2]float64{0, 0}},
		{name: "negative clamps to start", distance: -10, unit: Meters, expected: [2]float64{0, 0}},
		{name: "vertex", distance: degreeMeters, unit: Meters, expected: [2]float64{0, 1}},
		{name: "inside first segment", distance: degreeMeters / 4, unit: Meters, expected: [2]float64{0, 0.25}},
		{name: "inside second segment", distance: 1.5 * degreeMeters / 1000, unit: Kilometers, expected: [2]float64{0, 1.5}},
		{name: "end", distance: 2 * degreeMeters, unit: Meters, expected: [2]float64{0, 2}},
		{name: "beyond clamps to end", distance: 1e9, unit: Meters, expected: [2]float64{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point := Along(path, tt.distance, tt.unit)
			assertPointInDelta(t, tt.expected, point, 1e-9)
		})
	}
}

func TestAlongReturnsCopy(t *testing.T) {
	path := pointSet([2]float64{0, 0}, [2]float64{0, 1})

	assert.NotSame(t, path.GetAt(0), Along(path, 0, Meters))
	assert.NotSame(t, path.GetAt(1), Along(path, 1e9, Meters))
}

func TestParseUnit(t *testing.T) {
	for _, u := range []Unit{Meters, Kilometers, Miles, NauticalMiles, Feet} {
		parsed, err := ParseUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}

	parsed, err := ParseUnit(" KM ")
	require.NoError(t, err)
	assert.Equal(t, Kilometers, parsed)

	_, err = ParseUnit("furlong")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Unit(200).String())
}
