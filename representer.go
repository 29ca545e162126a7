package yams

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// NodeRepresentable is implemented by host values that know how to turn
// themselves into a Node directly (collections, or scalars that need no
// Options-dependent formatting).
type NodeRepresentable interface {
	RepresentNode() (*Node, error)
}

// ScalarRepresentable is the scalar-only capability: implementations need
// Options (numeric formatting strategy, timestamp precision) to produce
// their Scalar node. ScalarRepresentable is a narrower case of
// NodeRepresentable, not a supertype of it.
type ScalarRepresentable interface {
	RepresentScalar(Options) (*Node, error)
}

// Represent converts a host value into a Node following a fixed type
// mapping (bools, integers, floats, strings, byte slices, timestamps).
// Anything else falls through the single bounded reflection fallback
// (slices, arrays, maps, pointers) and finally fails with
// RepresenterError.
func Represent(v interface{}, opts Options) (*Node, error) {
	if v == nil {
		return Scalar("null", NullTag, AnyScalarStyle, ""), nil
	}

	if sr, ok := v.(ScalarRepresentable); ok {
		return sr.RepresentScalar(opts)
	}
	if nr, ok := v.(NodeRepresentable); ok {
		return nr.RepresentNode()
	}

	switch x := v.(type) {
	case bool:
		return representBool(x), nil
	case int:
		return representInt(int64(x)), nil
	case int8:
		return representInt(int64(x)), nil
	case int16:
		return representInt(int64(x)), nil
	case int32:
		return representInt(int64(x)), nil
	case int64:
		return representInt(x), nil
	case uint:
		return representUint(uint64(x)), nil
	case uint8:
		return representUint(uint64(x)), nil
	case uint16:
		return representUint(uint64(x)), nil
	case uint32:
		return representUint(uint64(x)), nil
	case uint64:
		return representUint(x), nil
	case float32:
		return Scalar(FormatFloat32(x, opts.FloatFormatStrategy), FloatTag, AnyScalarStyle, ""), nil
	case float64:
		return Scalar(FormatFloat64(x, opts.FloatFormatStrategy), FloatTag, AnyScalarStyle, ""), nil
	case string:
		return representString(x, opts), nil
	case []byte:
		return Scalar(base64.StdEncoding.EncodeToString(x), BinaryTag, AnyScalarStyle, ""), nil
	case time.Time:
		return Scalar(FormatTimestamp(x, opts.effectiveTimestampPrecision()), TimestampTag, AnyScalarStyle, ""), nil
	case fmt.Stringer:
		return representString(x.String(), opts), nil
	}

	if n, err, handled := representViaReflection(v, opts); handled {
		return n, err
	}

	return nil, &RepresenterError{Value: v}
}

func representBool(b bool) *Node {
	if b {
		return Scalar("true", BoolTag, AnyScalarStyle, "")
	}
	return Scalar("false", BoolTag, AnyScalarStyle, "")
}

func representInt(i int64) *Node {
	return Scalar(strconv.FormatInt(i, 10), IntTag, AnyScalarStyle, "")
}

func representUint(i uint64) *Node {
	return Scalar(strconv.FormatUint(i, 10), IntTag, AnyScalarStyle, "")
}

// representString implements the "string masquerade" rule: a host
// string whose content would itself resolve to a non-str tag (e.g.
// "true", "null", "123") is emitted single-quoted with an explicit
// !!str tag so a decoder round-trips it back to a string rather than a
// bool, null, or number.
func representString(s string, opts Options) *Node {
	resolved := ResolveTag(s)
	if opts.Compat11 {
		resolved = ResolveTagCompat11(s)
	}
	if resolved != StrTag {
		return Scalar(s, StrTag, SingleQuotedScalarStyle, "")
	}
	return Scalar(s, StrTag, AnyScalarStyle, "")
}

// representViaReflection is the single, clearly bounded open-world
// fallback: it only ever fires for slices, arrays, maps, and pointers,
// recursing back into Represent for their elements. Everything else
// still fails with RepresenterError.
func representViaReflection(v interface{}, opts Options) (*Node, error, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return Scalar("null", NullTag, AnyScalarStyle, ""), nil, true
		}
		n, err := Represent(rv.Elem().Interface(), opts)
		return n, err, true

	case reflect.Slice, reflect.Array:
		items := make([]*Node, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := Represent(rv.Index(i).Interface(), opts)
			if err != nil {
				return nil, err, true
			}
			items[i] = n
		}
		return Sequence(items, SeqTag, opts.SequenceStyle, ""), nil, true

	case reflect.Map:
		keys := rv.MapKeys()
		pairs := make([]Pair, 0, len(keys))
		for _, k := range keys {
			kn, err := Represent(k.Interface(), opts)
			if err != nil {
				return nil, err, true
			}
			vn, err := Represent(rv.MapIndex(k).Interface(), opts)
			if err != nil {
				return nil, err, true
			}
			pairs = append(pairs, Pair{Key: kn, Value: vn})
		}
		// Go map iteration order is random; the representer produces a
		// deterministic order independent of the SortKeys emission
		// option by sorting on the already-computed key nodes.
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key.Less(pairs[j].Key) })
		m, err := Mapping(pairs, MapTag, opts.MappingStyle, "")
		return m, err, true

	default:
		return nil, nil, false
	}
}

// RepresentAll applies Represent to each element of vs, stopping at the
// first error.
func RepresentAll(vs []interface{}, opts Options) ([]*Node, error) {
	nodes := make([]*Node, len(vs))
	for i, v := range vs {
		n, err := Represent(v, opts)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}
