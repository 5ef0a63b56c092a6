package peejay

// eofMatcher lives permanently at the bottom of the matcher stack (spec
// §4.12, invariant 2). Any code point offered to it once the top-level
// value has been fully parsed is unexpected_extra_input; the EOF sentinel
// completes it.
type eofMatcher struct {
	state int
}

func (m *eofMatcher) done() bool { return m.state != 0 }

func (m *eofMatcher) consume(p *driver, cp rune) (matcher, bool) {
	if cp == eofRune {
		m.state = 1
		return nil, true
	}
	p.setError(ErrUnexpectedExtraInput)
	return nil, true
}
