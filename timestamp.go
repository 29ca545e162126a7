package yams

import (
	"fmt"
	"strings"
	"time"
)

// TimestampPrecision selects the fractional-second digit count
// FormatTimestamp rounds to before trimming trailing zeros.
type TimestampPrecision int

const (
	MillisecondPrecision TimestampPrecision = 3
	NanosecondPrecision  TimestampPrecision = 9
)

// FormatTimestamp renders t as an RFC-3339-style timestamp: the
// fractional seconds are rounded to the configured digit count, any
// carry renormalizes the whole instant, trailing zeros are trimmed, and
// an all-zero fraction is omitted entirely rather than printed as ".0".
func FormatTimestamp(t time.Time, precision TimestampPrecision) string {
	t = t.UTC()
	divisor := int64(1)
	for i := TimestampPrecision(0); i < TimestampPrecision(9)-precision; i++ {
		divisor *= 10
	}
	nanos := int64(t.Nanosecond())
	rounded := ((nanos + divisor/2) / divisor) * divisor
	if rounded >= int64(time.Second) {
		t = t.Add(time.Second)
		rounded = 0
	}
	base := t.Format("2006-01-02T15:04:05")

	if rounded == 0 {
		return base + "Z"
	}
	frac := fmt.Sprintf("%09d", rounded)[:int(precision)]
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return base + "Z"
	}
	return base + "." + frac + "Z"
}
