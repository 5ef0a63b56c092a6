package peejay

import (
	"errors"
	"io"
)

// backendOps is the non-generic method set a driver needs to dispatch
// events, independent of a Backend's Output type parameter. Any
// Backend[Output] value is structurally assignable to backendOps, since
// its method set is a strict superset (it additionally has Result());
// no adapter type is needed to bridge the generic Backend into the
// non-generic driver.
type backendOps interface {
	BeginArray() error
	EndArray() error
	BeginObject() error
	Key(key []byte) error
	EndObject() error
	StringValue(s []byte) error
	IntegerValue(v int64) error
	DoubleValue(v float64) error
	BooleanValue(v bool) error
	NullValue() error
}

// driver is the non-generic parsing engine: it owns the matcher stack, the
// UTF decoder, and the sticky error/position state described in spec §3
// and pumps code points per §4.13. It is embedded in the generic Parser so
// that only the Result() call needs the Output type parameter.
type driver struct {
	extensions ExtensionSet
	config     config

	utf   *utfDecoder
	stack *matcherStack

	nestDepth int // counts only array/object pushes, spec §8 scenario 6

	pos        Coord
	matcherPos Coord

	// suppressColumnAdvance lets a matcher that already repositioned p.pos
	// itself (the LF half of a CRLF pair, spec §4.4) tell processCodePoint
	// to skip its generic post-consume column bump for that code point.
	suppressColumnAdvance bool

	err error

	backend backendOps
}

func newDriver(backend backendOps, opts ...Option) *driver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &driver{
		extensions: cfg.extensions,
		config:     cfg,
		utf:        newUtfDecoder(),
		stack:      newMatcherStack(cfg.maxStackDepth + 64),
		pos:        NewCoord(),
		matcherPos: NewCoord(),
		backend:    backend,
	}
	// Invariant 2: eof matcher at the bottom, a trailing whitespace matcher
	// above it, the root matcher (the parse frontier) on top.
	d.stack.push(&eofMatcher{})
	d.stack.push(&whitespaceMatcher{})
	d.stack.push(newRootMatcher())
	return d
}

func (p *driver) hasError() bool { return p.err != nil }

func (p *driver) lastError() error { return p.err }

func (p *driver) setError(code ErrorCode) {
	if p.err != nil {
		return
	}
	p.err = &Error{Code: code, Pos: p.pos}
}

func (p *driver) setBackendError(cause error) {
	if p.err != nil {
		return
	}
	p.err = &backendError{cause: cause}
}

func (p *driver) advanceLine() {
	p.pos = p.pos.nextLine()
}

// isNesting reports whether m is a composite matcher whose push/pop is
// counted against maxStackDepth (spec §8 scenario 6: exactly
// maxStackDepth begin_array calls fire before nesting_too_deep, regardless
// of how many whitespace/root matchers are pushed and popped in between).
func isNesting(m matcher) bool {
	switch m.(type) {
	case *arrayMatcher, *objectMatcher:
		return true
	default:
		return false
	}
}

// push installs child on top of the stack, enforcing maxStackDepth against
// nesting matchers only.
func (p *driver) push(child matcher) {
	if isNesting(child) {
		if p.nestDepth >= p.config.maxStackDepth {
			p.setError(ErrNestingTooDeep)
			return
		}
		p.nestDepth++
	}
	p.matcherPos = p.pos
	if !p.stack.push(child) {
		p.setError(ErrNestingTooDeep)
	}
}

func (p *driver) pop() {
	if isNesting(p.stack.top()) {
		p.nestDepth--
	}
	p.stack.pop()
}

// fire* helpers route a backend callback's error return into the sticky
// backend-error state, per spec §4.13 "Backend callback errors are fatal".
func (p *driver) fire(err error) {
	if err != nil {
		p.setBackendError(err)
	}
}

func (p *driver) fireBeginArray()          { p.fire(p.backend.BeginArray()) }
func (p *driver) fireEndArray()            { p.fire(p.backend.EndArray()) }
func (p *driver) fireBeginObject()         { p.fire(p.backend.BeginObject()) }
func (p *driver) fireEndObject()           { p.fire(p.backend.EndObject()) }
func (p *driver) fireKey(b []byte)         { p.fire(p.backend.Key(b)) }
func (p *driver) fireStringValue(b []byte) { p.fire(p.backend.StringValue(b)) }
func (p *driver) fireInteger(v int64)      { p.fire(p.backend.IntegerValue(v)) }
func (p *driver) fireDouble(v float64)     { p.fire(p.backend.DoubleValue(v)) }
func (p *driver) fireBool(v bool)          { p.fire(p.backend.BooleanValue(v)) }
func (p *driver) fireNull()                { p.fire(p.backend.NullValue()) }

// processCodePoint implements the inner loop of spec §4.13 input() step
//2b: repeatedly offer cp to the top of the stack, pushing/popping as
// directed, until some matcher reports it consumed.
func (p *driver) processCodePoint(cp rune) {
	for {
		if p.hasError() {
			return
		}
		top := p.stack.top()
		if top == nil {
			p.setError(ErrUnexpectedExtraInput)
			return
		}
		posBefore := p.pos
		child, consumed := top.consume(p, cp)
		if p.hasError() {
			return
		}
		if top.done() {
			p.pop()
		}
		if child != nil {
			p.push(child)
			if p.hasError() {
				return
			}
		}
		if consumed {
			if p.suppressColumnAdvance {
				p.suppressColumnAdvance = false
			} else if p.pos.Equal(posBefore) {
				p.pos = p.pos.nextColumn()
			}
			return
		}
	}
}

// drainEOF implements spec §4.13 eof() step 2: feed the EOF sentinel to
// every remaining matcher until the stack empties. EOF never advances
// position.
func (p *driver) drainEOF() {
	for !p.stack.empty() {
		if p.hasError() {
			return
		}
		top := p.stack.top()
		child, _ := top.consume(p, eofRune)
		if p.hasError() {
			return
		}
		if top.done() {
			p.pop()
		}
		if child != nil {
			p.push(child)
			if p.hasError() {
				return
			}
		}
	}
}

// feedBytes decodes buf through the UTF pipeline and pumps every resulting
// code point through the matcher stack.
func (p *driver) feedBytes(buf []byte) {
	var pts [2]rune
	for _, b := range buf {
		if p.hasError() {
			return
		}
		out := p.utf.feed(b, pts[:0])
		for _, cp := range out {
			p.processCodePoint(cp)
			if p.hasError() {
				return
			}
		}
	}
}

func (p *driver) finish() {
	if p.hasError() {
		return
	}
	var pts [2]rune
	out := p.utf.end(pts[:0])
	for _, cp := range out {
		p.processCodePoint(cp)
		if p.hasError() {
			return
		}
	}
	p.drainEOF()
}

// Parser drives a Backend[Output] over a streaming byte input, per spec
// §1-§5. Construct with NewParser; feed input with Input (any number of
// times, across chunk boundaries); call Eof exactly once to flush and
// obtain the backend's result.
type Parser[Output any] struct {
	d       *driver
	backend Backend[Output]
}

// NewParser constructs a Parser bound to backend, configured by opts (spec
// §3 ExtensionSet / policies, via the functional-option pattern of
// With*Option constructors in extensions.go).
func NewParser[Output any](backend Backend[Output], opts ...Option) *Parser[Output] {
	return &Parser[Output]{
		d:       newDriver(backend, opts...),
		backend: backend,
	}
}

// Input feeds another chunk of the document. Successive calls concatenate
// (spec §6.3); once HasError is true, Input is a no-op.
func (p *Parser[Output]) Input(chunk []byte) {
	p.d.feedBytes(chunk)
}

// Eof flushes the UTF decoder, drains the matcher stack, and returns the
// backend's Result. Per spec §7, Result is returned even when an error
// occurred; callers should consult LastError first.
func (p *Parser[Output]) Eof() (Output, error) {
	p.d.finish()
	out, err := p.backend.Result()
	if p.d.hasError() {
		return out, p.d.lastError()
	}
	return out, err
}

// HasError reports whether the parser has a sticky error (spec §6.3).
func (p *Parser[Output]) HasError() bool { return p.d.hasError() }

// LastError returns the sticky error, or nil if none has occurred.
func (p *Parser[Output]) LastError() error { return p.d.lastError() }

// Err is a synonym for LastError, for familiarity with stdlib scanner
// types such as bufio.Scanner.
func (p *Parser[Output]) Err() error { return p.d.lastError() }

// ErrorCode returns the sticky error's ErrorCode, or ErrNone if no error
// has occurred (including when the sticky error is a backend error, which
// carries no ErrorCode of its own).
func (p *Parser[Output]) ErrorCode() ErrorCode {
	var perr *Error
	if errors.As(p.d.lastError(), &perr) {
		return perr.Code
	}
	return ErrNone
}

// Pos returns the (line, column) of the start of the most recently
// completed or pushed matcher (spec §6.3).
func (p *Parser[Output]) Pos() Coord { return p.d.matcherPos }

// InputPos returns the (line, column) of the next code point to be
// consumed (spec §6.3).
func (p *Parser[Output]) InputPos() Coord { return p.d.pos }

// ParseBytes parses a complete, already-buffered document in one shot.
func ParseBytes[Output any](data []byte, backend Backend[Output], opts ...Option) (Output, error) {
	p := NewParser[Output](backend, opts...)
	p.Input(data)
	return p.Eof()
}

// ParseString is the string convenience form of ParseBytes.
func ParseString[Output any](data string, backend Backend[Output], opts ...Option) (Output, error) {
	return ParseBytes[Output]([]byte(data), backend, opts...)
}

// ParseReader streams r through a Parser in fixed-size chunks, for callers
// that have an io.Reader rather than a fully buffered document.
func ParseReader[Output any](r io.Reader, backend Backend[Output], opts ...Option) (Output, error) {
	p := NewParser[Output](backend, opts...)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.Input(buf[:n])
			if p.HasError() {
				break
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			var zero Output
			return zero, err
		}
	}
	return p.Eof()
}
