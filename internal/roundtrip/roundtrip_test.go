package roundtrip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpectralDragon/Yams"
)

func TestFloatRoundTripsScientificStrategy(t *testing.T) {
	fz := FuzzFloats(1)
	for i := 0; i < 500; i++ {
		var v float64
		fz.Fuzz(&v)
		ok, rendered, err := FloatRoundTrips(v, yams.ScientificFloatFormat)
		require.NoError(t, err, "rendered %q did not parse back", rendered)
		assert.True(t, ok, "float %v rendered as %q did not round-trip bit-for-bit", v, rendered)
	}
}

func TestFloatRoundTripsDecimalStrategy(t *testing.T) {
	fz := FuzzFloats(2)
	for i := 0; i < 500; i++ {
		var v float64
		fz.Fuzz(&v)
		ok, rendered, err := FloatRoundTrips(v, yams.DecimalFloatFormat)
		require.NoError(t, err, "rendered %q did not parse back", rendered)
		assert.True(t, ok, "float %v rendered as %q did not round-trip bit-for-bit", v, rendered)
	}
}

func TestStringMasqueradeRoundTrips(t *testing.T) {
	fz := FuzzScalars(3)
	for i := 0; i < 200; i++ {
		var s string
		fz.Fuzz(&s)
		ok, out, diff, err := ValueRoundTrips(s, yams.Options{}, s)
		require.NoError(t, err)
		assert.True(t, ok, "string %q emitted as %q did not round-trip: %s", s, out, diff)
	}
}

func TestTimestampRoundTrips(t *testing.T) {
	fz := FuzzScalars(4)
	for i := 0; i < 100; i++ {
		var tm time.Time
		fz.Fuzz(&tm)
		node, err := yams.Represent(tm, yams.Options{})
		require.NoError(t, err)
		out, err := yams.SerializeOne(node, yams.Options{})
		require.NoError(t, err)
		assert.Equal(t, yams.FormatTimestamp(tm, yams.MillisecondPrecision)+"\n", out)
	}
}
