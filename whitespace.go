package peejay

// whitespace state enum, spec §4.4.
type wsState int

const (
	wsBody wsState = iota
	wsCRLF
	wsSingleLineComment
	wsCommentStart
	wsMultiLineBody
	wsMultiLineEnding
	wsMultiLineCRLF
	wsDone
)

// whitespaceMatcher absorbs insignificant whitespace and, with the
// relevant extensions enabled, bash/single-line/multi-line comments (spec
// §4.4). It is non-nesting; every push allocates a fresh instance, as
// there is no pool of preallocated matchers.
type whitespaceMatcher struct {
	state wsState
}

func (m *whitespaceMatcher) reset() {
	m.state = wsBody
}

func (m *whitespaceMatcher) done() bool {
	return m.state == wsDone
}

// wantCodePoint reports whether cp should cause a whitespace matcher to be
// pushed: whitespace the matcher will absorb (SP, TAB, LF, CR always; VT,
// FF, NBSP and the other Unicode spaces only with extraWhitespace), or the
// lead-in character of an enabled comment extension (spec §4.4
// "want_code_point").
func wantCodePoint(ext ExtensionSet, cp rune) bool {
	if cp == eofRune {
		return false
	}
	if cp == ' ' || cp == '\t' || cp == '\n' || cp == '\r' {
		return true
	}
	if ext.Has(ExtraWhitespace) && isWhitespace(cp, true) {
		return true
	}
	if cp == '#' && ext.Has(BashComments) {
		return true
	}
	if cp == '/' && (ext.Has(SingleLineComments) || ext.Has(MultiLineComments)) {
		return true
	}
	return false
}

func (m *whitespaceMatcher) consume(p *driver, cp rune) (matcher, bool) {
	ext := p.extensions
	switch m.state {
	case wsBody:
		switch {
		case cp == eofRune:
			m.state = wsDone
			return nil, true
		case cp == ' ' || cp == '\t':
			return nil, true
		case cp == '\n':
			p.advanceLine()
			return nil, true
		case cp == '\r':
			p.advanceLine()
			m.state = wsCRLF
			return nil, true
		case cp == '#' && ext.Has(BashComments):
			m.state = wsSingleLineComment
			return nil, true
		case cp == '/' && (ext.Has(SingleLineComments) || ext.Has(MultiLineComments)):
			m.state = wsCommentStart
			return nil, true
		case ext.Has(ExtraWhitespace) && isWhitespace(cp, true):
			// VT, FF, NBSP, and other Unicode space separators are
			// classified as whitespace (§4.2) regardless of the
			// extension, but only consumed here when extraWhitespace
			// is enabled; otherwise this falls to default and the code
			// point is re-offered to the enclosing matcher.
			return nil, true
		default:
			m.state = wsDone
			return nil, false
		}
	case wsCRLF:
		if cp == '\n' {
			// The preceding '\r' already called p.advanceLine(), putting
			// p.pos at column 1 of the new line; absorbing the LF must
			// not bump the column a second time.
			p.suppressColumnAdvance = true
			m.state = wsBody
			return nil, true
		}
		m.state = wsBody
		return nil, false
	case wsSingleLineComment:
		if cp == eofRune {
			m.state = wsDone
			return nil, true
		}
		if cp == '\r' || cp == '\n' {
			m.state = wsBody
			return nil, false
		}
		return nil, true
	case wsCommentStart:
		switch {
		case cp == '/' && ext.Has(SingleLineComments):
			m.state = wsSingleLineComment
			return nil, true
		case cp == '*' && ext.Has(MultiLineComments):
			m.state = wsMultiLineBody
			return nil, true
		default:
			p.setError(ErrUnrecognizedToken)
			return nil, true
		}
	case wsMultiLineBody:
		switch {
		case cp == eofRune:
			p.setError(ErrUnterminatedMultilineComment)
			return nil, true
		case cp == '*':
			m.state = wsMultiLineEnding
			return nil, true
		case cp == '\r':
			p.advanceLine()
			m.state = wsMultiLineCRLF
			return nil, true
		case cp == '\n':
			p.advanceLine()
			return nil, true
		default:
			return nil, true
		}
	case wsMultiLineEnding:
		switch {
		case cp == eofRune:
			p.setError(ErrUnterminatedMultilineComment)
			return nil, true
		case cp == '/':
			m.state = wsBody
			return nil, true
		case cp == '*':
			return nil, true
		default:
			m.state = wsMultiLineBody
			return nil, true
		}
	case wsMultiLineCRLF:
		if cp == eofRune {
			p.setError(ErrUnterminatedMultilineComment)
			return nil, true
		}
		if cp == '\n' {
			// Same CRLF absorption rule as wsCRLF: the '\r' already reset
			// the column via p.advanceLine().
			p.suppressColumnAdvance = true
			m.state = wsMultiLineBody
			return nil, true
		}
		m.state = wsMultiLineBody
		return nil, false
	default:
		return nil, false
	}
}
