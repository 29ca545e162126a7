// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package event implements a libYAML-style event API: a small alphabet
// of stream/document/node events that a finite state machine (Emitter)
// accepts and turns into YAML text. Output is built up per-collection
// with ordinary string builders rather than a single shared ring
// buffer, since this package has no parser/scanner half to share a
// buffer with.
package event

// Type enumerates the events an Emitter accepts, matching libyaml's
// yaml_event_type_t.
type Type int8

const (
	StreamStart Type = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	Scalar
	SequenceStart
	SequenceEnd
	MappingStart
	MappingEnd
	Alias
)

func (t Type) String() string {
	switch t {
	case StreamStart:
		return "stream start"
	case StreamEnd:
		return "stream end"
	case DocumentStart:
		return "document start"
	case DocumentEnd:
		return "document end"
	case Scalar:
		return "scalar"
	case SequenceStart:
		return "sequence start"
	case SequenceEnd:
		return "sequence end"
	case MappingStart:
		return "mapping start"
	case MappingEnd:
		return "mapping end"
	case Alias:
		return "alias"
	default:
		return "unknown event"
	}
}

// ScalarStyle mirrors yams.ScalarStyle; kept as a distinct type so this
// package does not import its own consumer.
type ScalarStyle int8

const (
	AnyScalarStyle ScalarStyle = iota
	PlainScalarStyle
	SingleQuotedScalarStyle
	DoubleQuotedScalarStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

// CollectionStyle mirrors yams.CollectionStyle.
type CollectionStyle int8

const (
	AnyCollectionStyle CollectionStyle = iota
	BlockCollectionStyle
	FlowCollectionStyle
)

// LineBreak selects the emitted line terminator.
type LineBreak int8

const (
	LN LineBreak = iota
	CR
	CRLN
)

func (lb LineBreak) Text() string {
	switch lb {
	case CR:
		return "\r"
	case CRLN:
		return "\r\n"
	default:
		return "\n"
	}
}

// Version is a %YAML major.minor directive.
type Version struct {
	Major, Minor int8
}

// Event is the single event type Emit accepts. Only the fields relevant
// to Type are meaningful, exactly as in libyaml's tagged yaml_event_t.
type Event struct {
	Type Type

	// Scalar, SequenceStart, MappingStart, Alias.
	Anchor string
	// Scalar, SequenceStart, MappingStart. Empty means "no explicit tag".
	Tag string
	// Scalar only.
	Value string
	// Scalar: true when the plain (untagged) form round-trips to the
	// same resolved tag as the declared one, i.e. the tag may be
	// omitted. SequenceStart, MappingStart: true when the tag may be
	// omitted.
	PlainImplicit bool
	// Scalar only: true when a non-plain style also doesn't need an
	// explicit tag.
	QuotedImplicit bool

	ScalarStyle     ScalarStyle
	CollectionStyle CollectionStyle

	// DocumentStart only.
	Version       *Version
	ExplicitStart bool
	// DocumentEnd only.
	ExplicitEnd bool
}
