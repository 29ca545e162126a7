package yams

import (
	"sort"

	"github.com/SpectralDragon/Yams/internal/event"
)

// Emitter is the public façade over the internal event backend: open,
// serialize a node, close, read back the accumulated data. It is a
// non-reentrant state machine and must not be shared across goroutines
// without external synchronization.
type Emitter struct {
	opts    Options
	backend *event.Emitter
	opened  bool
	closed  bool
	docs    int
}

// NewEmitter constructs an Emitter. The backend handle is acquired here
// and released deterministically on every exit path of Close, including
// a mid-emission failure.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts, backend: event.NewEmitter(toBackendOptions(opts))}
}

// SetOptions updates the Emitter's Options; the new settings are pushed
// to the backend before the next event is emitted.
func (e *Emitter) SetOptions(opts Options) {
	e.opts = opts
	e.backend.SetOptions(toBackendOptions(opts))
}

func toBackendOptions(o Options) event.Options {
	return event.Options{
		Canonical:    o.Canonical,
		Indent:       o.Indent,
		Width:        o.Width,
		AllowUnicode: o.AllowUnicode,
		LineBreak:    event.LineBreak(o.LineBreak),
	}
}

// Open transitions the Emitter from initialized to opened, emitting
// stream-start.
func (e *Emitter) Open() error {
	if e.opened && !e.closed {
		return ErrAlreadyOpened
	}
	if e.closed {
		return ErrAlreadyClosed
	}
	if err := e.backend.Open(); err != nil {
		return &EmitterError{Message: err.Error()}
	}
	if err := e.backend.Emit(event.Event{Type: event.StreamStart}); err != nil {
		return &EmitterError{Message: err.Error()}
	}
	e.opened = true
	return nil
}

// Close transitions opened to closed, emitting stream-end. Close on an
// already-closed Emitter is a no-op; Close before Open fails.
func (e *Emitter) Close() error {
	if !e.opened {
		return ErrNotOpened
	}
	if e.closed {
		return nil
	}
	defer func() { e.closed = true }()
	if err := e.backend.Emit(event.Event{Type: event.StreamEnd}); err != nil {
		_ = e.backend.Close()
		return &EmitterError{Message: err.Error()}
	}
	if err := e.backend.Close(); err != nil {
		return &EmitterError{Message: err.Error()}
	}
	return nil
}

// Data returns the accumulated UTF-8 output produced so far.
func (e *Emitter) Data() []byte { return e.backend.Data() }

// Serialize emits document-start, recursively emits node depth-first, and
// emits document-end. The alias/redundancy pass is applied here before
// walking; the SortKeys option is applied to each mapping as it is walked.
func (e *Emitter) Serialize(node *Node) error {
	if !e.opened {
		return ErrNotOpened
	}
	if e.closed {
		return ErrAlreadyClosed
	}

	node = applyAliasing(node, e.opts.RedundancyAliasingStrategy)

	startEv := event.Event{Type: event.DocumentStart, ExplicitStart: e.opts.ExplicitStart}
	if e.opts.Version != nil {
		startEv.Version = &event.Version{Major: e.opts.Version.Major, Minor: e.opts.Version.Minor}
	}
	if err := e.backend.Emit(startEv); err != nil {
		return &EmitterError{Message: err.Error()}
	}
	e.docs++

	if err := e.emitNode(node); err != nil {
		return err
	}

	if err := e.backend.Emit(event.Event{Type: event.DocumentEnd, ExplicitEnd: e.opts.ExplicitEnd}); err != nil {
		return &EmitterError{Message: err.Error()}
	}
	return nil
}

func (e *Emitter) emitNode(n *Node) error {
	switch n.Kind {
	case ScalarKind:
		resolved := n.ResolvedTag()
		plainImplicit := n.Tag == resolved
		// A quoted scalar is never subject to content-based tag
		// resolution by a decoder, so quoting alone already pins it to
		// !!str; the tag can be omitted whenever that's the tag this
		// node actually wants.
		quotedImplicit := n.Tag == StrTag
		ev := event.Event{
			Type:           event.Scalar,
			Anchor:         n.Anchor,
			Tag:            string(n.Tag),
			Value:          n.Value,
			PlainImplicit:  plainImplicit,
			QuotedImplicit: quotedImplicit,
			ScalarStyle:    e.resolveScalarStyle(n),
		}
		if err := e.backend.Emit(ev); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		return nil

	case SequenceKind:
		style := n.CStyle
		if e.opts.SequenceStyle != AnyCollectionStyle && style == AnyCollectionStyle {
			style = e.opts.SequenceStyle
		}
		ev := event.Event{
			Type:            event.SequenceStart,
			Anchor:          n.Anchor,
			Tag:             string(n.Tag),
			PlainImplicit:   n.ImplicitTag(),
			CollectionStyle: event.CollectionStyle(style),
		}
		if err := e.backend.Emit(ev); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		for _, item := range n.Items {
			if err := e.emitNode(item); err != nil {
				return err
			}
		}
		if err := e.backend.Emit(event.Event{Type: event.SequenceEnd}); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		return nil

	case MappingKind:
		style := n.CStyle
		if e.opts.MappingStyle != AnyCollectionStyle && style == AnyCollectionStyle {
			style = e.opts.MappingStyle
		}
		ev := event.Event{
			Type:            event.MappingStart,
			Anchor:          n.Anchor,
			Tag:             string(n.Tag),
			PlainImplicit:   n.ImplicitTag(),
			CollectionStyle: event.CollectionStyle(style),
		}
		if err := e.backend.Emit(ev); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		pairs := n.Pairs
		if e.opts.SortKeys {
			pairs = append([]Pair(nil), pairs...)
			sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Key.Less(pairs[j].Key) })
		}
		for _, p := range pairs {
			if err := e.emitNode(p.Key); err != nil {
				return err
			}
			if err := e.emitNode(p.Value); err != nil {
				return err
			}
		}
		if err := e.backend.Emit(event.Event{Type: event.MappingEnd}); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		return nil

	case AliasKind:
		if err := e.backend.Emit(event.Event{Type: event.Alias, Anchor: n.AliasOf}); err != nil {
			return &EmitterError{Message: err.Error()}
		}
		return nil

	default:
		return &EmitterError{Message: "unknown node kind"}
	}
}

func (e *Emitter) resolveScalarStyle(n *Node) event.ScalarStyle {
	style := n.Style
	if style == AnyScalarStyle && containsNewline(n.Value) && e.opts.NewLineScalarStyle != AnyScalarStyle {
		style = e.opts.NewLineScalarStyle
	}
	return event.ScalarStyle(style)
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
