package yams

import "fmt"

// Kind discriminates the four Node variants described by the data model:
// scalars, sequences, mappings, and aliases.
type Kind int8

const (
	ScalarKind Kind = iota
	SequenceKind
	MappingKind
	AliasKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	case AliasKind:
		return "alias"
	default:
		return "unknown"
	}
}

// Pair is a single (key, value) entry of a Mapping node. Order within the
// owning Mapping is insertion order unless sortKeys is requested at
// emission time.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is the recursive, immutable document tree the emission core
// operates on. Exactly one of the payload fields is meaningful, selected by
// Kind; see the table in the data model for which.
type Node struct {
	Kind Kind

	// Scalar payload.
	Value string

	// Sequence payload.
	Items []*Node

	// Mapping payload.
	Pairs []Pair

	// Alias payload: the anchor name this node refers to.
	AliasOf string

	Tag    Tag
	Style  ScalarStyle
	CStyle CollectionStyle
	Anchor string
}

// Scalar constructs a scalar node. If tag is empty, the tag is resolved
// from the content via ResolveTag.
func Scalar(value string, tag Tag, style ScalarStyle, anchor string) *Node {
	if tag == "" {
		tag = Tag(resolveTagKind(value).Tag())
	}
	return &Node{Kind: ScalarKind, Value: value, Tag: tag, Style: style, Anchor: anchor}
}

// Sequence constructs a sequence node over items, in order.
func Sequence(items []*Node, tag Tag, style CollectionStyle, anchor string) *Node {
	if tag == "" {
		tag = SeqTag
	}
	return &Node{Kind: SequenceKind, Items: items, Tag: tag, CStyle: style, Anchor: anchor}
}

// Mapping constructs a mapping node over pairs, in insertion order.
// Duplicate keys (by structural equality, see Node.Equal) are rejected.
func Mapping(pairs []Pair, tag Tag, style CollectionStyle, anchor string) (*Node, error) {
	if tag == "" {
		tag = MapTag
	}
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].Key.Equal(pairs[j].Key) {
				return nil, fmt.Errorf("yams: duplicate mapping key %q", pairs[i].Key.Value)
			}
		}
	}
	return &Node{Kind: MappingKind, Pairs: pairs, Tag: tag, CStyle: style, Anchor: anchor}, nil
}

// Alias constructs a node referencing a previously declared anchor.
func Alias(anchor string) *Node {
	return &Node{Kind: AliasKind, AliasOf: anchor}
}

// ResolvedTag returns the scalar's content-derived tag for scalars, or the
// declared tag for collections and aliases.
func (n *Node) ResolvedTag() Tag {
	if n.Kind == ScalarKind {
		return Tag(resolveTagKind(n.Value).Tag())
	}
	return n.Tag
}

// ImplicitTag reports whether n's declared tag equals the tag that would be
// inferred without it, meaning the tag can be omitted on output.
func (n *Node) ImplicitTag() bool {
	switch n.Kind {
	case SequenceKind:
		return n.Tag == SeqTag || n.Tag == ""
	case MappingKind:
		return n.Tag == MapTag || n.Tag == ""
	case ScalarKind:
		return n.Tag == n.ResolvedTag()
	default:
		return true
	}
}

// Get looks up a pair by key using structural equality. ok is false if no
// pair has that key.
func (n *Node) Get(key *Node) (*Node, bool) {
	for _, p := range n.Pairs {
		if p.Key.Equal(key) {
			return p.Value, true
		}
	}
	return nil, false
}

// Equal reports structural equality: same Kind and identical payload.
// Scalars compare by value and resolved tag; collections compare
// element-wise; aliases compare by anchor name.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case ScalarKind:
		return n.Value == other.Value && n.ResolvedTag() == other.ResolvedTag()
	case SequenceKind:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case MappingKind:
		if len(n.Pairs) != len(other.Pairs) {
			return false
		}
		for i := range n.Pairs {
			if !n.Pairs[i].Key.Equal(other.Pairs[i].Key) || !n.Pairs[i].Value.Equal(other.Pairs[i].Value) {
				return false
			}
		}
		return true
	case AliasKind:
		return n.AliasOf == other.AliasOf
	default:
		return false
	}
}

// rank orders the three sortable variants: scalars below sequences below
// mappings, per the ordering rule used when sortKeys is requested.
func (n *Node) rank() int {
	switch n.Kind {
	case ScalarKind:
		return 0
	case SequenceKind:
		return 1
	case MappingKind:
		return 2
	default:
		return 3
	}
}

// Less implements the mapping-key ordering used by sortKeys: scalars
// compare lexicographically by string; sequences and mappings compare
// element-wise; scalars order below sequences below mappings.
func (n *Node) Less(other *Node) bool {
	if n.rank() != other.rank() {
		return n.rank() < other.rank()
	}
	switch n.Kind {
	case ScalarKind:
		return n.Value < other.Value
	case SequenceKind:
		for i := 0; i < len(n.Items) && i < len(other.Items); i++ {
			if !n.Items[i].Equal(other.Items[i]) {
				return n.Items[i].Less(other.Items[i])
			}
		}
		return len(n.Items) < len(other.Items)
	case MappingKind:
		for i := 0; i < len(n.Pairs) && i < len(other.Pairs); i++ {
			if !n.Pairs[i].Key.Equal(other.Pairs[i].Key) {
				return n.Pairs[i].Key.Less(other.Pairs[i].Key)
			}
			if !n.Pairs[i].Value.Equal(other.Pairs[i].Value) {
				return n.Pairs[i].Value.Less(other.Pairs[i].Value)
			}
		}
		return len(n.Pairs) < len(other.Pairs)
	default:
		return false
	}
}
