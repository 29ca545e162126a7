package yams

// LineBreak selects the line terminator the event backend writes.
type LineBreak int8

const (
	LN LineBreak = iota
	CR
	CRLN
)

// Version is a %YAML major.minor directive.
type Version struct {
	Major, Minor int8
}

// Options configures both the representer and the event emitter. The zero
// value is the documented default for every field.
type Options struct {
	Canonical    bool
	Indent       int // 0 means the backend default (2)
	Width        int // 0 means the backend default (80); -1 means unlimited
	AllowUnicode bool
	LineBreak    LineBreak

	ExplicitStart bool
	ExplicitEnd   bool
	Version       *Version

	SortKeys bool

	SequenceStyle      CollectionStyle
	MappingStyle       CollectionStyle
	NewLineScalarStyle ScalarStyle

	RedundancyAliasingStrategy AliasingStrategy
	FloatFormatStrategy        FloatFormatStrategy

	// TimestampPrecision selects fractional-second rounding for
	// time.Time values. Defaults to MillisecondPrecision when zero.
	TimestampPrecision TimestampPrecision

	// Compat11 enables YAML 1.1 boolean literal recognition
	// (yes/no/on/off) in the tag resolver used to decide whether a
	// string scalar needs quoting to avoid misresolution.
	Compat11 bool
}

func (o Options) effectiveTimestampPrecision() TimestampPrecision {
	if o.TimestampPrecision == 0 {
		return MillisecondPrecision
	}
	return o.TimestampPrecision
}
