package yams

// ScalarStyle is an advisory preference for a scalar's textual form. `Any`
// lets the emitter choose; the choice must be stable for identical inputs.
type ScalarStyle int8

const (
	AnyScalarStyle ScalarStyle = iota
	PlainScalarStyle
	SingleQuotedScalarStyle
	DoubleQuotedScalarStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

// CollectionStyle is an advisory preference for a sequence's or mapping's
// textual form.
type CollectionStyle int8

const (
	AnyCollectionStyle CollectionStyle = iota
	BlockCollectionStyle
	FlowCollectionStyle
)
