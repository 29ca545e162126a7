package yams

import "fmt"

// AliasingStrategy selects how the alias/redundancy engine rewrites
// repeated subtrees into anchor/alias pairs before emission.
type AliasingStrategy int8

const (
	// NoAliasing never introduces anchors or aliases. The default.
	NoAliasing AliasingStrategy = iota
	// IdentityAliasing aliases a subtree only when the very same *Node is
	// reachable from more than one position in the tree.
	IdentityAliasing
	// ValueAliasing aliases any sequence or mapping whose structural
	// equality matches a previously emitted subtree.
	ValueAliasing
)

// applyAliasing walks root and, per strategy, rewrites repeated
// sequence/mapping subtrees into Alias nodes referencing a freshly
// generated anchor on their first occurrence. Scalars are never aliased
// unless they already carry a user-supplied anchor, since aliasing a
// trivial value costs more bytes than it saves. A collection that is
// only ever reached from one position in the tree is left anchorless:
// a fresh anchor is only worth generating for a node that something
// will actually alias to. Anchor names are generated depth-first
// pre-order (a1, a2, ...) so that identical input trees always receive
// identical anchor names.
func applyAliasing(root *Node, strategy AliasingStrategy) *Node {
	if strategy == NoAliasing || root == nil {
		return root
	}
	w := &aliasWalker{
		strategy: strategy,
		refCount: map[*Node]int{},
		repr:     map[*Node]*Node{},
		byValue:  map[string][]*Node{},
		visited:  map[*Node]bool{},
		seen:     map[*Node]string{},
		used:     map[string]bool{},
	}
	for _, n := range collectAnchors(root) {
		w.used[n] = true
	}
	w.countWalk(root)
	return w.walk(root)
}

type aliasWalker struct {
	strategy AliasingStrategy
	refCount map[*Node]int      // canonical node -> total number of positions referencing it
	repr     map[*Node]*Node    // any node -> its canonical representative
	byValue  map[string][]*Node // value-fingerprint bucket -> canonical candidates, for ValueAliasing
	visited  map[*Node]bool     // canonical node -> children already counted during the prepass
	seen     map[*Node]string   // canonical node -> anchor assigned to its first occurrence
	used     map[string]bool
	counter  int
}

func collectAnchors(n *Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if n.Anchor != "" {
		out = append(out, n.Anchor)
	}
	switch n.Kind {
	case SequenceKind:
		for _, it := range n.Items {
			out = append(out, collectAnchors(it)...)
		}
	case MappingKind:
		for _, p := range n.Pairs {
			out = append(out, collectAnchors(p.Key)...)
			out = append(out, collectAnchors(p.Value)...)
		}
	}
	return out
}

func (w *aliasWalker) nextAnchor() string {
	for {
		w.counter++
		name := fmt.Sprintf("a%d", w.counter)
		if !w.used[name] {
			w.used[name] = true
			return name
		}
	}
}

// canonicalFor returns the node that represents n's identity (under
// IdentityAliasing) or value-equality class (under ValueAliasing): n
// itself the first time a given identity/value is seen, or whichever
// earlier node it matches thereafter. The result is memoized in repr so
// both the counting pass and the rewrite pass agree on it.
func (w *aliasWalker) canonicalFor(n *Node) *Node {
	if canonical, ok := w.repr[n]; ok {
		return canonical
	}
	if w.strategy == ValueAliasing {
		key := valueKey(n)
		for _, cand := range w.byValue[key] {
			if cand.Equal(n) {
				w.repr[n] = cand
				return cand
			}
		}
		w.byValue[key] = append(w.byValue[key], n)
	}
	w.repr[n] = n
	return n
}

// countWalk is the counting pre-pass: it visits every node reachable
// from root and tallies how many positions reference each canonical
// node. A canonical node's children are only descended into the first
// time it's seen, since later occurrences contribute no new reachable
// nodes of their own (they're the same subtree again).
func (w *aliasWalker) countWalk(n *Node) {
	if n == nil || n.Kind == AliasKind {
		return
	}
	if n.Kind == ScalarKind {
		if n.Anchor == "" {
			return
		}
		w.refCount[w.canonicalFor(n)]++
		return
	}

	canonical := w.canonicalFor(n)
	w.refCount[canonical]++
	if w.visited[canonical] {
		return
	}
	w.visited[canonical] = true
	switch n.Kind {
	case SequenceKind:
		for _, it := range n.Items {
			w.countWalk(it)
		}
	case MappingKind:
		for _, p := range n.Pairs {
			w.countWalk(p.Key)
			w.countWalk(p.Value)
		}
	}
}

func (w *aliasWalker) walk(n *Node) *Node {
	if n == nil || n.Kind == AliasKind {
		return n
	}

	if n.Kind == ScalarKind {
		if n.Anchor == "" {
			return n
		}
		canonical := w.repr[n]
		if anchor, ok := w.seen[canonical]; ok {
			return Alias(anchor)
		}
		w.seen[canonical] = n.Anchor
		w.used[n.Anchor] = true
		return n
	}

	canonical := w.repr[n]
	if anchor, ok := w.seen[canonical]; ok {
		return Alias(anchor)
	}

	// The anchor is settled before the children are walked, so anchors
	// are numbered in depth-first pre-order.
	switch n.Kind {
	case SequenceKind:
		out := &Node{Kind: SequenceKind, Tag: n.Tag, CStyle: n.CStyle, Anchor: n.Anchor}
		w.finish(canonical, out)
		out.Items = make([]*Node, len(n.Items))
		for i, it := range n.Items {
			out.Items[i] = w.walk(it)
		}
		return out
	case MappingKind:
		out := &Node{Kind: MappingKind, Tag: n.Tag, CStyle: n.CStyle, Anchor: n.Anchor}
		w.finish(canonical, out)
		out.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			out.Pairs[i] = Pair{Key: w.walk(p.Key), Value: w.walk(p.Value)}
		}
		return out
	default:
		return n
	}
}

// finish records out's anchor for canonical so later occurrences of the
// same canonical node alias to it. A pre-existing (user-supplied) anchor
// is always kept; otherwise a fresh one is only generated when
// canonical's prepass refcount shows it's actually referenced from more
// than one position. A uniquely-occurring collection is left anchorless.
func (w *aliasWalker) finish(canonical *Node, out *Node) {
	switch {
	case out.Anchor != "":
		w.used[out.Anchor] = true
		w.seen[canonical] = out.Anchor
	case w.refCount[canonical] > 1:
		out.Anchor = w.nextAnchor()
		w.seen[canonical] = out.Anchor
	}
}

// valueKey is a cheap, non-cryptographic structural fingerprint used only
// to bucket candidates before the authoritative Node.Equal check; it need
// not be collision-free.
func valueKey(n *Node) string {
	switch n.Kind {
	case ScalarKind:
		return "s:" + string(n.ResolvedTag()) + ":" + n.Value
	case SequenceKind:
		return fmt.Sprintf("q:%d", len(n.Items))
	case MappingKind:
		return fmt.Sprintf("m:%d", len(n.Pairs))
	default:
		return "?"
	}
}
