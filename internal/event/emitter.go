// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// state is the Emitter's lifecycle: initialized -> opened -> closed.
type state int8

const (
	initialized state = iota
	opened
	closed
)

func (s state) String() string {
	switch s {
	case initialized:
		return "not opened"
	case opened:
		return "opened"
	default:
		return "closed"
	}
}

// Options configures the text the Emitter produces. It is copied in at
// construction and whenever SetOptions is called; a later SetOptions call
// affects only events emitted after it.
type Options struct {
	Canonical    bool
	Indent       int
	Width        int
	AllowUnicode bool
	LineBreak    LineBreak
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return 2
	}
	return o.Indent
}

// width returns the effective line-width budget used when deciding
// whether a flow collection should fall back to block style: 0 means
// the backend default of 80, a negative value means unlimited (the
// check never fires), and any positive value is used as-is.
func (o Options) width() int {
	switch {
	case o.Width < 0:
		return 1<<31 - 1
	case o.Width == 0:
		return 80
	default:
		return o.Width
	}
}

// StateError reports a call made from the wrong lifecycle state.
type StateError struct {
	Op    string
	State state
}

func (e *StateError) Error() string {
	return fmt.Sprintf("event: cannot %s: emitter is %s", e.Op, e.State)
}

// BackendError reports an event the text backend rejected, e.g. an
// anchor name containing YAML-illegal characters.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string { return "event: " + e.Message }

// frame tracks one open sequence/mapping collection. Its rendering is
// built up in its own buffer so that flow collections can be wrapped in
// brackets, and empty collections printed as "[]"/"{}", without the
// Emitter needing lookahead on event order.
type frame struct {
	mapping       bool
	flow          bool
	depth         int // nesting depth, used to compute block indentation
	count         int
	awaitingValue bool // mapping only: true after a key, before its value
	buf           strings.Builder
	// itemStarts records, for a flow frame only, the buf offset at which
	// each top-level item's content begins (right after the ", "
	// separator, or at 0 for the first item). It lets emitCollectionEnd
	// re-render the same content in block style, item by item, when the
	// flow rendering would exceed the configured width.
	itemStarts []int
}

// Emitter is the event-driven text backend. It is not safe for
// concurrent use; a single instance must be driven sequentially through
// Open/Emit/Close.
type Emitter struct {
	st    state
	opts  Options
	out   strings.Builder
	stack []*frame

	// wroteAnyDocument tracks whether a document separator is needed
	// before the next document-start.
	wroteAnyDocument bool
}

// NewEmitter constructs an Emitter in the initialized state.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// SetOptions replaces the Emitter's Options; it takes effect starting
// with the next event.
func (e *Emitter) SetOptions(opts Options) { e.opts = opts }

// Open transitions initialized -> opened. libyaml's stream-start event
// produces no text of its own (UTF-8 has no BOM requirement here), so
// this only validates state.
func (e *Emitter) Open() error {
	if e.st == opened {
		return &StateError{Op: "open", State: e.st}
	}
	if e.st == closed {
		return &StateError{Op: "open", State: e.st}
	}
	e.st = opened
	return nil
}

// Close transitions opened -> closed, emitting stream-end (again, no
// text). Closed -> Closed is a no-op.
func (e *Emitter) Close() error {
	switch e.st {
	case initialized:
		return &StateError{Op: "close", State: e.st}
	case closed:
		return nil
	default:
		e.st = closed
		return nil
	}
}

// Data returns the accumulated UTF-8 output.
func (e *Emitter) Data() []byte { return []byte(e.out.String()) }

// Emit feeds a single event to the backend.
func (e *Emitter) Emit(ev Event) error {
	if e.st == initialized {
		return &StateError{Op: "emit", State: e.st}
	}
	if e.st == closed {
		return &StateError{Op: "emit", State: e.st}
	}

	switch ev.Type {
	case DocumentStart:
		return e.emitDocumentStart(ev)
	case DocumentEnd:
		return e.emitDocumentEnd(ev)
	case Scalar:
		return e.emitScalar(ev)
	case SequenceStart:
		return e.emitCollectionStart(ev, false)
	case MappingStart:
		return e.emitCollectionStart(ev, true)
	case SequenceEnd, MappingEnd:
		return e.emitCollectionEnd()
	case Alias:
		return e.emitAlias(ev)
	case StreamStart, StreamEnd:
		return nil
	default:
		return &BackendError{Message: fmt.Sprintf("unknown event type %v", ev.Type)}
	}
}

func (e *Emitter) write(s string) {
	if len(e.stack) == 0 {
		e.out.WriteString(s)
		return
	}
	e.stack[len(e.stack)-1].buf.WriteString(s)
}

func (e *Emitter) depth() int { return len(e.stack) }

func (e *Emitter) indentString(depth int) string {
	return strings.Repeat(" ", depth*e.opts.indent())
}

func (e *Emitter) emitDocumentStart(ev Event) error {
	// A document after the first can never be left implicit: with no
	// "---" between them, two adjacent documents with no directives of
	// their own would re-parse as a single merged document.
	needsMarker := e.wroteAnyDocument
	e.wroteAnyDocument = true
	if ev.Version != nil {
		e.out.WriteString(fmt.Sprintf("%%YAML %d.%d", ev.Version.Major, ev.Version.Minor))
		e.out.WriteString(e.opts.LineBreak.Text())
	}
	if ev.ExplicitStart || ev.Version != nil || needsMarker {
		e.out.WriteString("---")
		e.out.WriteString(e.opts.LineBreak.Text())
	}
	return nil
}

func (e *Emitter) emitDocumentEnd(ev Event) error {
	if ev.ExplicitEnd {
		if e.out.Len() > 0 && !strings.HasSuffix(e.out.String(), e.opts.LineBreak.Text()) {
			e.out.WriteString(e.opts.LineBreak.Text())
		}
		e.out.WriteString("...")
	}
	e.out.WriteString(e.opts.LineBreak.Text())
	return nil
}

// prefix writes whatever separator/indicator precedes a node's content
// given the parent collection frame's current state: a ", " in flow
// context between siblings, a "- " for a block sequence item, ": " for
// a mapping value, etc. The node's content (anchor, tag, value/bracket)
// is always written inline right after what prefix wrote; when that
// content turns out to be a nested block collection, its own first
// child's leading "\n"+indent (also produced by prefix, one level
// deeper) is what actually moves it onto a new line, and
// emitCollectionEnd trims the trailing space prefix left dangling
// before it (e.g. "key: " before a block mapping becomes "key:").
func (e *Emitter) prefix() {
	if len(e.stack) == 0 {
		return
	}
	f := e.stack[len(e.stack)-1]
	if f.mapping && f.awaitingValue {
		f.awaitingValue = false
		f.buf.WriteString(": ")
		return
	}

	if f.flow {
		if f.count > 0 {
			f.buf.WriteString(", ")
		}
		f.itemStarts = append(f.itemStarts, f.buf.Len())
		f.count++
		if f.mapping {
			f.awaitingValue = true
		}
		return
	}

	// Block context: new line, indent, then either "- " (sequence) or
	// the key is about to be written (mapping, not awaiting value).
	f.buf.WriteString("\n")
	f.buf.WriteString(e.indentString(f.depth))
	f.count++
	if !f.mapping {
		f.buf.WriteString("- ")
		return
	}
	f.awaitingValue = true
}

// trimTrailingSpace drops one trailing space byte from whichever buffer
// prefix() last wrote into, used right before appending a rendered
// block-style nested collection so "key: " + "\nitem" doesn't leave a
// dangling space before the newline.
func (e *Emitter) trimTrailingSpace() {
	if len(e.stack) == 0 {
		s := e.out.String()
		if strings.HasSuffix(s, " ") {
			e.out.Reset()
			e.out.WriteString(s[:len(s)-1])
		}
		return
	}
	f := e.stack[len(e.stack)-1]
	s := f.buf.String()
	if strings.HasSuffix(s, " ") {
		f.buf.Reset()
		f.buf.WriteString(s[:len(s)-1])
	}
}

func (e *Emitter) emitAlias(ev Event) error {
	if ev.Anchor == "" {
		return &BackendError{Message: "alias event missing anchor"}
	}
	if !validAnchor(ev.Anchor) {
		return &BackendError{Message: fmt.Sprintf("malformed anchor name %q", ev.Anchor)}
	}
	e.prefix()
	e.write("*" + ev.Anchor)
	return nil
}

func (e *Emitter) emitScalar(ev Event) error {
	if ev.Anchor != "" && !validAnchor(ev.Anchor) {
		return &BackendError{Message: fmt.Sprintf("malformed anchor name %q", ev.Anchor)}
	}
	e.prefix()

	var b strings.Builder
	if ev.Anchor != "" {
		b.WriteString("&" + ev.Anchor + " ")
	}
	style := ev.ScalarStyle
	if e.opts.Canonical {
		style = DoubleQuotedScalarStyle
	} else {
		style = resolveScalarStyle(ev.Value, style)
	}
	tagImplicit := ev.PlainImplicit
	if style != PlainScalarStyle {
		tagImplicit = ev.QuotedImplicit
	}
	needsTag := e.opts.Canonical || !tagImplicit
	if needsTag && ev.Tag != "" {
		b.WriteString(tagText(ev.Tag) + " ")
	}
	b.WriteString(renderScalar(ev.Value, style, e.opts.AllowUnicode, e.indentString(e.depth())))
	e.write(b.String())
	return nil
}

func (e *Emitter) emitCollectionStart(ev Event, mapping bool) error {
	if ev.Anchor != "" && !validAnchor(ev.Anchor) {
		return &BackendError{Message: fmt.Sprintf("malformed anchor name %q", ev.Anchor)}
	}
	e.prefix()

	style := ev.CollectionStyle
	if e.opts.Canonical {
		style = FlowCollectionStyle
	}
	flow := style == FlowCollectionStyle

	// A frame's depth is the indent level of its own items: zero for the
	// top-level collection, one more than the depth of whichever frame
	// is currently on top of the stack for anything nested inside it.
	// e.depth() here (before this frame is pushed) is exactly that.
	depth := e.depth()

	var b strings.Builder
	if ev.Anchor != "" {
		b.WriteString("&" + ev.Anchor + " ")
	}
	needsTag := e.opts.Canonical || !ev.PlainImplicit
	if needsTag && ev.Tag != "" {
		b.WriteString(tagText(ev.Tag) + " ")
	}
	e.write(b.String())

	e.stack = append(e.stack, &frame{mapping: mapping, flow: flow, depth: depth})
	return nil
}

func (e *Emitter) emitCollectionEnd() error {
	if len(e.stack) == 0 {
		return &BackendError{Message: "unbalanced collection end event"}
	}
	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	var rendered string
	switch {
	case f.count == 0 && f.mapping:
		rendered = "{}"
	case f.count == 0:
		rendered = "[]"
	case f.flow && f.mapping:
		rendered = e.renderFlowOrFallBackToBlock(f, "{ "+f.buf.String()+" }")
	case f.flow:
		rendered = e.renderFlowOrFallBackToBlock(f, "["+f.buf.String()+"]")
	default:
		rendered = f.buf.String()
	}
	if strings.HasPrefix(rendered, "\n") {
		if len(e.stack) == 0 {
			// Root-level collection: there is no "key: "/"- " prefix
			// dangling in e.out to clean up, so the leading newline
			// would just be a stray blank line at the top of the
			// document.
			rendered = rendered[1:]
		} else {
			e.trimTrailingSpace()
		}
	}
	e.write(rendered)
	return nil
}

// renderFlowOrFallBackToBlock returns flowRendered as-is unless it's a
// non-canonical flow collection whose rendered width, at its own
// indentation, exceeds the configured width budget, in which case it
// re-renders the same items in block style instead.
func (e *Emitter) renderFlowOrFallBackToBlock(f *frame, flowRendered string) string {
	if e.opts.Canonical {
		return flowRendered
	}
	if len(e.indentString(f.depth))+len(flowRendered) <= e.opts.width() {
		return flowRendered
	}
	return e.renderBlockFromFlowItems(f)
}

// renderBlockFromFlowItems rebuilds f's content in block style from the
// item boundaries recorded in f.itemStarts while it was accumulated as
// flow. Item content itself (including "key: value" text for mapping
// entries) is identical between the two styles; only the separator
// between items, and the "- " sequence marker, differ.
func (e *Emitter) renderBlockFromFlowItems(f *frame) string {
	buf := f.buf.String()
	indent := e.indentString(f.depth)
	var b strings.Builder
	for i, start := range f.itemStarts {
		end := len(buf)
		if i+1 < len(f.itemStarts) {
			end = f.itemStarts[i+1] - len(", ")
		}
		b.WriteString("\n")
		b.WriteString(indent)
		if !f.mapping {
			b.WriteString("- ")
		}
		b.WriteString(buf[start:end])
	}
	return b.String()
}

func tagText(tag string) string {
	const prefix = "tag:yaml.org,2002:"
	if strings.HasPrefix(tag, prefix) {
		return "!!" + tag[len(prefix):]
	}
	return "!<" + tag + ">"
}

func validAnchor(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || strings.ContainsRune(",[]{}*&!|>'\"%@`", r) {
			return false
		}
	}
	return true
}

// resolveScalarStyle turns AnyScalarStyle into a concrete style based on
// value's content: plain when safe, single-quoted otherwise, or literal
// block style when value itself contains a newline. Any other style
// passes through unchanged.
func resolveScalarStyle(value string, style ScalarStyle) ScalarStyle {
	if style != AnyScalarStyle {
		return style
	}
	switch {
	case strings.Contains(value, "\n"):
		return LiteralScalarStyle
	case isPlainSafe(value):
		return PlainScalarStyle
	default:
		return SingleQuotedScalarStyle
	}
}

// renderScalar renders value in the already-resolved style (see
// resolveScalarStyle).
func renderScalar(value string, style ScalarStyle, allowUnicode bool, childIndent string) string {
	style = resolveScalarStyle(value, style)
	switch style {
	case PlainScalarStyle:
		return value
	case SingleQuotedScalarStyle:
		return "'" + strings.ReplaceAll(value, "'", "''") + "'"
	case DoubleQuotedScalarStyle:
		return renderDoubleQuoted(value, allowUnicode)
	case LiteralScalarStyle:
		return renderBlockScalar(value, '|', childIndent)
	case FoldedScalarStyle:
		return renderBlockScalar(value, '>', childIndent)
	default:
		return value
	}
}

func renderBlockScalar(value string, indicator byte, childIndent string) string {
	trimmed := strings.TrimRight(value, "\n")
	trailing := len(value) - len(trimmed)
	chomp := byte(0)
	switch {
	case trailing == 0:
		chomp = '-'
	case trailing > 1:
		chomp = '+'
	}
	var b strings.Builder
	b.WriteByte(indicator)
	if chomp != 0 {
		b.WriteByte(chomp)
	}
	lines := strings.Split(trimmed, "\n")
	for _, ln := range lines {
		b.WriteString("\n")
		if ln != "" {
			b.WriteString(childIndent)
			b.WriteString(ln)
		}
	}
	if chomp == '+' {
		for i := 0; i < trailing-1; i++ {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDoubleQuoted(value string, allowUnicode bool) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				b.WriteString(`\x` + strconv.FormatInt(int64(r), 16))
			case r > 0x7e && (!allowUnicode || !utf8.ValidRune(r)):
				if r > 0xffff {
					b.WriteString(fmt.Sprintf(`\U%08x`, r))
				} else {
					b.WriteString(fmt.Sprintf(`\u%04x`, r))
				}
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isPlainSafe reports whether value can be written unquoted without risk
// of being mis-scanned as a different token (a flow indicator, a mapping
// key/value separator, a comment, a document marker, or leading/trailing
// whitespace that a parser would strip).
func isPlainSafe(value string) bool {
	if value == "" {
		return false
	}
	if value == "~" {
		return false
	}
	if strings.TrimSpace(value) != value {
		return false
	}
	if strings.HasPrefix(value, "---") || strings.HasPrefix(value, "...") {
		return false
	}
	first := value[0]
	if strings.IndexByte("-?:,[]{}#&*!|>'\"%@` \t", first) >= 0 {
		// A leading '-' is fine as long as it isn't "- " (block entry
		// indicator) and isn't solely "-".
		if first == '-' && len(value) > 1 && value[1] != ' ' {
			// allowed, fall through to the general scan below
		} else {
			return false
		}
	}
	if strings.Contains(value, ": ") || strings.HasSuffix(value, ":") {
		return false
	}
	if strings.Contains(value, " #") {
		return false
	}
	for _, r := range value {
		if r == '\n' || r == '\t' {
			return false
		}
		if r < 0x20 {
			return false
		}
	}
	return true
}
