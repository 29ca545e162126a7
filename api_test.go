package yams

import (
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func assertYAMLEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff := difflib.PPDiff(strings.Split(want, "\n"), strings.Split(got, "\n"))
	t.Fatalf("YAML output mismatch; diff want...got:\n%s", diff)
}

func TestDumpKeySortScenario(t *testing.T) {
	m, err := Mapping([]Pair{
		{Key: Scalar("b", "", AnyScalarStyle, ""), Value: Scalar("2", "", AnyScalarStyle, "")},
		{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")},
	}, "", AnyCollectionStyle, "")
	require.NoError(t, err)

	out, err := SerializeOne(m, Options{SortKeys: true})
	require.NoError(t, err)
	assert.Contains(t, out, "a: 1\nb: 2\n")
}

func TestDumpStringMasqueradeRoundTrips(t *testing.T) {
	out, err := DumpOne("true", Options{})
	require.NoError(t, err)
	assertYAMLEqual(t, "'true'\n", out)

	var decoded interface{}
	require.NoError(t, yamlv3.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "true", decoded)
}

func TestDumpFloatDecimalStrategyScenario(t *testing.T) {
	out, err := DumpOne(1.5, Options{FloatFormatStrategy: DecimalFloatFormat})
	require.NoError(t, err)
	assertYAMLEqual(t, "1.5\n", out)
}

func TestDumpTimestampScenario(t *testing.T) {
	n := Scalar("2001-01-01T00:00:00Z", TimestampTag, AnyScalarStyle, "")
	out, err := SerializeOne(n, Options{})
	require.NoError(t, err)
	assertYAMLEqual(t, "2001-01-01T00:00:00Z\n", out)
}

func TestDumpAliasingScenarioRoundTrips(t *testing.T) {
	x, err := Mapping([]Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}}, "", AnyCollectionStyle, "")
	require.NoError(t, err)
	root := Sequence([]*Node{x, x}, "", AnyCollectionStyle, "")

	out, err := SerializeOne(root, Options{RedundancyAliasingStrategy: ValueAliasing})
	require.NoError(t, err)
	assert.Contains(t, out, "&a1")
	assert.Contains(t, out, "*a1")

	var decoded []map[string]int
	require.NoError(t, yamlv3.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, decoded[0], decoded[1])
}

func TestDumpMultipleObjectsRoundTripsAsTwoDocuments(t *testing.T) {
	out, err := Dump([]interface{}{
		map[string]interface{}{"a": 1},
		map[string]interface{}{"b": 2},
	}, Options{SortKeys: true})
	require.NoError(t, err)
	assertYAMLEqual(t, "a: 1\n---\nb: 2\n", out)

	dec := yamlv3.NewDecoder(strings.NewReader(out))
	var docs []map[string]interface{}
	for {
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)
	assert.Equal(t, 1, docs[0]["a"])
	assert.Equal(t, 2, docs[1]["b"])
}

func TestDumpEmptyCollections(t *testing.T) {
	out, err := SerializeOne(Sequence(nil, "", AnyCollectionStyle, ""), Options{})
	require.NoError(t, err)
	assertYAMLEqual(t, "[]\n", out)

	m, err := Mapping(nil, "", AnyCollectionStyle, "")
	require.NoError(t, err)
	out, err = SerializeOne(m, Options{})
	require.NoError(t, err)
	assertYAMLEqual(t, "{}\n", out)
}

func TestEmitterLifecycleErrors(t *testing.T) {
	e := NewEmitter(Options{})
	require.ErrorIs(t, e.Serialize(Scalar("x", "", AnyScalarStyle, "")), ErrNotOpened)

	require.NoError(t, e.Open())
	require.ErrorIs(t, e.Open(), ErrAlreadyOpened)

	require.NoError(t, e.Close())
	require.ErrorIs(t, e.Open(), ErrAlreadyClosed)
	require.ErrorIs(t, e.Serialize(Scalar("x", "", AnyScalarStyle, "")), ErrAlreadyClosed)
	require.NoError(t, e.Close(), "close on an already-closed emitter is a no-op")
}

func TestDumpBlockMappingRoundTripsThroughYAMLv3(t *testing.T) {
	doc := map[string]interface{}{
		"name":  "widget",
		"count": 3,
		"tags":  []interface{}{"a", "b"},
	}
	out, err := DumpOne(doc, Options{SortKeys: true})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yamlv3.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "widget", decoded["name"])
	assert.Equal(t, 3, decoded["count"])
}
