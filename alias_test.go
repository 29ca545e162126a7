package yams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMapping(t *testing.T, pairs []Pair) *Node {
	m, err := Mapping(pairs, "", AnyCollectionStyle, "")
	require.NoError(t, err)
	return m
}

func TestApplyAliasingValueStrategyDedupsDuplicateSubtrees(t *testing.T) {
	x := mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}})
	x2 := mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}})
	root := Sequence([]*Node{x, x2}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, ValueAliasing)

	require.Equal(t, SequenceKind, out.Kind)
	require.Len(t, out.Items, 2)
	assert.NotEmpty(t, out.Items[0].Anchor)
	assert.Equal(t, AliasKind, out.Items[1].Kind)
	assert.Equal(t, out.Items[0].Anchor, out.Items[1].AliasOf)
	assert.Empty(t, out.Anchor, "the enclosing root is never itself aliased and should carry no anchor")

	// The two input mappings are structurally equal, which is why the
	// second position became an alias of the first.
	assert.True(t, x.Equal(x2))
}

func TestApplyAliasingValueStrategyLeavesUniqueTreeAnchorless(t *testing.T) {
	root := Sequence([]*Node{
		mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}}),
		mustMapping(t, []Pair{{Key: Scalar("b", "", AnyScalarStyle, ""), Value: Scalar("2", "", AnyScalarStyle, "")}}),
	}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, ValueAliasing)

	assert.Empty(t, out.Anchor, "a duplicate-free tree gets no anchors at all")
	assert.Empty(t, out.Items[0].Anchor)
	assert.Empty(t, out.Items[1].Anchor)
}

func TestApplyAliasingIdentityStrategyLeavesUniqueTreeAnchorless(t *testing.T) {
	root := Sequence([]*Node{
		mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}}),
		mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}}),
	}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, IdentityAliasing)

	assert.Empty(t, out.Anchor, "a duplicate-free tree gets no anchors at all")
	assert.Empty(t, out.Items[0].Anchor, "distinct objects with equal value are not aliased, and are not anchored either, under identity strategy")
	assert.Empty(t, out.Items[1].Anchor)
}

func TestApplyAliasingIdentityStrategyRequiresSamePointer(t *testing.T) {
	x := mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}})
	x2 := mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}})
	root := Sequence([]*Node{x, x2}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, IdentityAliasing)

	assert.Equal(t, MappingKind, out.Items[0].Kind)
	assert.Equal(t, MappingKind, out.Items[1].Kind, "distinct objects with equal value are not aliased under identity strategy")
}

func TestApplyAliasingSharedPointerUnderIdentityStrategy(t *testing.T) {
	x := mustMapping(t, []Pair{{Key: Scalar("a", "", AnyScalarStyle, ""), Value: Scalar("1", "", AnyScalarStyle, "")}})
	root := Sequence([]*Node{x, x}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, IdentityAliasing)

	assert.Equal(t, MappingKind, out.Items[0].Kind)
	assert.Equal(t, AliasKind, out.Items[1].Kind)
	assert.Empty(t, out.Anchor, "the enclosing root is never itself aliased and should carry no anchor")
}

func TestApplyAliasingNeverAliasesUnanchoredScalars(t *testing.T) {
	root := Sequence([]*Node{
		Scalar("dup", "", AnyScalarStyle, ""),
		Scalar("dup", "", AnyScalarStyle, ""),
	}, "", AnyCollectionStyle, "")

	out := applyAliasing(root, ValueAliasing)

	assert.Equal(t, ScalarKind, out.Items[0].Kind)
	assert.Equal(t, ScalarKind, out.Items[1].Kind)
}
