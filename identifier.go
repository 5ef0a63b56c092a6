package peejay

import (
	"unicode/utf16"
	"unicode/utf8"
)

// idState enum, spec §4.7.
type idState int

const (
	idStart idState = iota
	idPart
	idHex
	idDone
)

// identifierMatcher recognizes an ECMAScript IdentifierName used as an
// object key, available only with the identifierObjectKey extension (spec
// §4.7). It reuses the string matcher's \uXXXX surrogate reconstruction.
type identifierMatcher struct {
	state idState
	buf   []byte

	hexAcc   uint32
	hexCount int
	highSurr rune
}

func newIdentifierMatcher() *identifierMatcher {
	return &identifierMatcher{state: idStart}
}

func (m *identifierMatcher) done() bool { return m.state == idDone }

func (m *identifierMatcher) appendRune(p *driver, r rune) bool {
	n := len(m.buf)
	var tmp [utf8.UTFMax]byte
	width := utf8.EncodeRune(tmp[:], r)
	if n+width > p.config.maxIdentifierLength {
		p.setError(ErrIdentifierTooLong)
		return false
	}
	m.buf = append(m.buf, tmp[:width]...)
	return true
}

func (m *identifierMatcher) consume(p *driver, cp rune) (matcher, bool) {
	switch m.state {
	case idStart:
		switch {
		case wantCodePoint(p.extensions, cp):
			return &whitespaceMatcher{}, false
		case cp == '\\':
			m.state = idHex
			m.hexAcc, m.hexCount = 0, 0
			return nil, true
		case cp != eofRune && isIdentifierStart(cp):
			m.appendRune(p, cp)
			m.state = idPart
			return nil, true
		default:
			p.setError(ErrBadIdentifier)
			return nil, true
		}
	case idPart:
		switch {
		case cp == '\\':
			m.state = idHex
			m.hexAcc, m.hexCount = 0, 0
			return nil, true
		case cp != eofRune && isIdentifierPart(cp):
			m.appendRune(p, cp)
			return nil, true
		default:
			p.fireKey(m.buf)
			m.state = idDone
			return nil, false
		}
	case idHex:
		if cp == eofRune {
			p.setError(ErrExpectedToken)
			return nil, true
		}
		if m.hexCount == 0 {
			if cp != 'u' {
				p.setError(ErrExpectedToken)
				return nil, true
			}
			m.hexCount = 1
			return nil, true
		}
		d, ok := hexDigit(cp)
		if !ok {
			p.setError(ErrInvalidHexChar)
			return nil, true
		}
		m.hexAcc = m.hexAcc*16 + d
		m.hexCount++
		if m.hexCount < 5 {
			return nil, true
		}
		cu := rune(m.hexAcc)
		switch {
		case isHighSurrogate(cu):
			if m.highSurr != 0 {
				p.setError(ErrBadUnicodeCodePoint)
				return nil, true
			}
			m.highSurr = cu
		case isLowSurrogate(cu):
			if m.highSurr == 0 {
				p.setError(ErrBadUnicodeCodePoint)
				return nil, true
			}
			m.appendRune(p, utf16.DecodeRune(m.highSurr, cu))
			m.highSurr = 0
		default:
			if m.highSurr != 0 {
				p.setError(ErrBadUnicodeCodePoint)
				return nil, true
			}
			m.appendRune(p, cu)
		}
		m.state = idPart
		return nil, true
	default:
		return nil, false
	}
}
