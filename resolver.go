package yams

import (
	"regexp"
	"strings"
)

// resolvedKind is the output alphabet of the tag resolver: the six core
// schema primitives a plain scalar's content can resolve to.
type resolvedKind int8

const (
	resolvedStr resolvedKind = iota
	resolvedNull
	resolvedBool
	resolvedInt
	resolvedFloat
	resolvedTimestamp
)

func (k resolvedKind) Tag() Tag {
	switch k {
	case resolvedNull:
		return NullTag
	case resolvedBool:
		return BoolTag
	case resolvedInt:
		return IntTag
	case resolvedFloat:
		return FloatTag
	case resolvedTimestamp:
		return TimestampTag
	default:
		return StrTag
	}
}

var (
	yes11Bools = map[string]bool{
		"yes": true, "Yes": true, "YES": true,
		"no": true, "No": true, "NO": true,
		"on": true, "On": true, "ON": true,
		"off": true, "Off": true, "OFF": true,
	}
	coreBools = map[string]bool{
		"true": true, "True": true, "TRUE": true,
		"false": true, "False": true, "FALSE": true,
	}
	nullWords = map[string]bool{
		"": true, "~": true, "null": true, "Null": true, "NULL": true,
	}

	intPattern   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*|0o[0-7]+|0x[0-9A-Fa-f]+|0b[01]+)$`)
	floatPattern = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)
	specialFloat = regexp.MustCompile(`^[-+]?\.(inf|Inf|INF)$|^\.(nan|NaN|NAN)$`)
	timestampRE  = regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]` +
		`([Tt]|[ \t]+)[0-9][0-9]?:[0-9][0-9]:[0-9][0-9](\.[0-9]*)?` +
		`([ \t]*(Z|[-+][0-9][0-9]?(:[0-9][0-9])?))?$`)
	dateOnlyRE = regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]$`)
)

// ResolveTag returns the implicit core-schema tag for a scalar's plain
// content, following first-match-wins ordering (null, bool, int, float,
// timestamp, else str).
func ResolveTag(s string) Tag {
	return resolveTagKind(s).Tag()
}

// ResolveTagCompat11 is ResolveTag with YAML 1.1 boolean compatibility
// (yes/no/on/off) additionally recognized.
func ResolveTagCompat11(s string) Tag {
	return resolveTagKindCompat(s, true).Tag()
}

func resolveTagKind(s string) resolvedKind {
	return resolveTagKindCompat(s, false)
}

func resolveTagKindCompat(s string, compat11 bool) resolvedKind {
	if nullWords[s] {
		return resolvedNull
	}
	if coreBools[s] {
		return resolvedBool
	}
	if compat11 && yes11Bools[s] {
		return resolvedBool
	}
	if intPattern.MatchString(s) {
		return resolvedInt
	}
	if specialFloat.MatchString(s) || floatPattern.MatchString(s) {
		// Bare digit-only strings already matched intPattern above; a
		// float must show a '.' or an exponent to be distinguished from
		// an int under the core schema.
		if strings.ContainsAny(s, ".eE") || specialFloat.MatchString(s) {
			return resolvedFloat
		}
	}
	if timestampRE.MatchString(s) || dateOnlyRE.MatchString(s) {
		return resolvedTimestamp
	}
	return resolvedStr
}
