// Package roundtrip implements the bit-for-bit and structural
// round-trip properties a YAML emitter must satisfy, as reusable test
// helpers: fuzz-generate a host value, serialize it, decode the result
// back with an independent parser, and compare.
//
// gopkg.in/yaml.v3 plays the role of that independent parser; this
// package never feeds its own output back into its own code to check
// itself.
package roundtrip

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/google/go-cmp/cmp"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/SpectralDragon/Yams"
)

// FuzzFloats returns a fuzzer that generates float64 values covering
// the ranges exercised by the two FloatFormatStrategy implementations:
// ordinary magnitudes, values that force scientific notation, and the
// three special literals.
func FuzzFloats(seed int64) *fuzz.Fuzzer {
	r := rand.New(rand.NewSource(seed))
	specials := []float64{math.Inf(1), math.Inf(-1), math.NaN(), 0, -0.0}
	return fuzz.New().RandSource(r).NilChance(0).Funcs(func(f *float64, c fuzz.Continue) {
		switch c.Intn(8) {
		case 0:
			*f = specials[c.Intn(len(specials))]
		case 1:
			*f = c.Float64() * math.Pow(10, float64(c.Intn(600)-300))
		default:
			*f = c.Float64()*2 - 1
		}
	})
}

// FuzzScalars returns a fuzzer that generates a grab-bag of host
// values the Representer accepts directly: bools, ints, strings
// (including ones that would masquerade as bool/int/null), and
// timestamps.
func FuzzScalars(seed int64) *fuzz.Fuzzer {
	r := rand.New(rand.NewSource(seed))
	masqueradeStrings := []string{"true", "false", "null", "~", "123", "1.5", "2001-01-01", ""}
	return fuzz.New().RandSource(r).NilChance(0).Funcs(
		func(s *string, c fuzz.Continue) {
			if c.RandBool() {
				*s = masqueradeStrings[c.Intn(len(masqueradeStrings))]
			} else {
				*s = c.RandString()
			}
		},
		func(t *time.Time, c fuzz.Continue) {
			*t = time.Unix(c.Int63n(4000000000), c.Int63n(1e9)).UTC()
		},
	)
}

// FloatRoundTrips reports whether formatting v with strategy and
// parsing the result back with strconv yields the same bit pattern (or
// both are NaN; NaN never compares equal to itself but every NaN bit
// pattern this package produces is canonical).
func FloatRoundTrips(v float64, strategy yams.FloatFormatStrategy) (ok bool, rendered string, err error) {
	rendered = yams.FormatFloat64(v, strategy)
	if rendered == ".nan" {
		return math.IsNaN(v), rendered, nil
	}
	parsed, err := strconv.ParseFloat(literalToParseable(rendered), 64)
	if err != nil {
		return false, rendered, err
	}
	return math.Float64bits(v) == math.Float64bits(parsed), rendered, nil
}

func literalToParseable(s string) string {
	switch s {
	case ".inf":
		return "+Inf"
	case "-.inf":
		return "-Inf"
	default:
		return s
	}
}

// ValueRoundTrips serializes v with opts, decodes the output with
// yaml.v3, and reports whether the decoded value is structurally equal
// to want (usually v itself, reshaped into the map[string]interface{}/
// []interface{}/scalar form yaml.v3 decodes into). cmp.Diff is used
// rather than reflect.DeepEqual so two NaN floats compare equal instead
// of failing the built-in float equality check; other floats compare
// with ==.
func ValueRoundTrips(v interface{}, opts yams.Options, want interface{}) (ok bool, out string, diff string, err error) {
	out, err = yams.DumpOne(v, opts)
	if err != nil {
		return false, out, "", err
	}
	var decoded interface{}
	if err := yamlv3.Unmarshal([]byte(out), &decoded); err != nil {
		return false, out, "", fmt.Errorf("decoding emitted YAML: %w", err)
	}
	diff = cmp.Diff(want, decoded, cmp.Comparer(floatsEqual))
	return diff == "", out, diff, nil
}

func floatsEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
