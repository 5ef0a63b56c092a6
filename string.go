package peejay

import (
	"unicode/utf16"
	"unicode/utf8"
)

// strState enum, spec §4.6. Grounded on the teacher's string-matcher state
// table in parser.go and, for the escape/surrogate reconstruction, on
// original_source/include/peejay/json.hpp's string_matcher.
type strState int

const (
	strStart strState = iota
	strNormal
	strEscape
	strHex
	strSkipLF
	strDone
)

type escapeKind int

const (
	escNone escapeKind = iota
	escUnicode                 // \uXXXX, 4 hex digits, UTF-16 code unit
	escByte                    // \xXX, 2 hex digits, raw byte (string_escapes)
)

// stringMatcher implements the JSON/ECMAScript string grammar of spec §4.6.
// The same matcher serves both plain string values and object keys,
// selected by isKey.
type stringMatcher struct {
	state     strState
	isKey     bool
	enclosing rune

	buf []byte

	escKind   escapeKind
	hexAcc    uint32
	hexCount  int
	hexNeeded int
	highSurr  rune
}

func newStringMatcher(isKey bool, enclosing rune) *stringMatcher {
	return &stringMatcher{state: strStart, isKey: isKey, enclosing: enclosing}
}

func (m *stringMatcher) done() bool { return m.state == strDone }

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func hexDigit(cp rune) (uint32, bool) {
	switch {
	case cp >= '0' && cp <= '9':
		return uint32(cp - '0'), true
	case cp >= 'a' && cp <= 'f':
		return uint32(cp-'a') + 10, true
	case cp >= 'A' && cp <= 'F':
		return uint32(cp-'A') + 10, true
	default:
		return 0, false
	}
}

func (m *stringMatcher) appendRune(p *driver, r rune) bool {
	n := len(m.buf)
	var tmp [utf8.UTFMax]byte
	width := utf8.EncodeRune(tmp[:], r)
	if n+width > p.config.maxStringLength {
		p.setError(ErrStringTooLong)
		return false
	}
	m.buf = append(m.buf, tmp[:width]...)
	return true
}

func (m *stringMatcher) appendRawByte(p *driver, b byte) bool {
	if len(m.buf)+1 > p.config.maxStringLength {
		p.setError(ErrStringTooLong)
		return false
	}
	m.buf = append(m.buf, b)
	return true
}

// consume implements the string grammar's states, spec §4.6. EOF in any
// state but done is always expected_close_quote, so it is handled before
// the per-state switch (mirrors the original's consume() wrapper).
func (m *stringMatcher) consume(p *driver, cp rune) (matcher, bool) {
	if cp == eofRune {
		p.setError(ErrExpectedCloseQuote)
		m.state = strDone
		return nil, true
	}
	ext := p.extensions
	switch m.state {
	case strStart:
		if cp != m.enclosing {
			p.setError(ErrExpectedToken)
			return nil, true
		}
		m.state = strNormal
		return nil, true
	case strNormal:
		switch {
		case cp == m.enclosing && m.highSurr == 0:
			if m.isKey {
				p.fireKey(m.buf)
			} else {
				p.fireStringValue(m.buf)
			}
			m.state = strDone
			return nil, true
		case cp == '\\':
			m.state = strEscape
			return nil, true
		case cp <= 0x1F:
			p.setError(ErrBadUnicodeCodePoint)
			return nil, true
		case m.highSurr != 0:
			p.setError(ErrBadUnicodeCodePoint)
			return nil, true
		default:
			m.appendRune(p, cp)
			return nil, true
		}
	case strEscape:
		switch cp {
		case '"', '\\', '/':
			m.appendRune(p, cp)
			m.state = strNormal
		case 'b':
			m.appendRune(p, '\b')
			m.state = strNormal
		case 'f':
			m.appendRune(p, '\f')
			m.state = strNormal
		case 'n':
			m.appendRune(p, '\n')
			m.state = strNormal
		case 'r':
			m.appendRune(p, '\r')
			m.state = strNormal
		case 't':
			m.appendRune(p, '\t')
			m.state = strNormal
		case 'u':
			m.escKind, m.hexAcc, m.hexCount, m.hexNeeded = escUnicode, 0, 0, 4
			m.state = strHex
		case 'x':
			if ext.Has(StringEscapes) {
				m.escKind, m.hexAcc, m.hexCount, m.hexNeeded = escByte, 0, 0, 2
				m.state = strHex
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case '\'':
			if ext.Has(StringEscapes) {
				m.appendRune(p, '\'')
				m.state = strNormal
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case '0':
			if ext.Has(StringEscapes) {
				m.appendRune(p, 0)
				m.state = strNormal
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case 'v':
			if ext.Has(StringEscapes) {
				m.appendRune(p, '\v')
				m.state = strNormal
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case '\n':
			if ext.Has(StringEscapes) {
				m.state = strNormal
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case '\r':
			if ext.Has(StringEscapes) {
				m.state = strSkipLF
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		case 0x2028, 0x2029:
			if ext.Has(StringEscapes) {
				m.state = strNormal
			} else {
				p.setError(ErrInvalidEscapeChar)
			}
		default:
			p.setError(ErrInvalidEscapeChar)
		}
		return nil, true
	case strSkipLF:
		if cp == '\n' {
			m.state = strNormal
			return nil, true
		}
		m.state = strNormal
		return nil, false
	case strHex:
		d, ok := hexDigit(cp)
		if !ok {
			p.setError(ErrInvalidHexChar)
			return nil, true
		}
		m.hexAcc = m.hexAcc*16 + d
		m.hexCount++
		if m.hexCount < m.hexNeeded {
			return nil, true
		}
		switch m.escKind {
		case escByte:
			// The byte is appended as is; the buffer is not checked for
			// well-formed UTF-8 afterwards.
			m.appendRawByte(p, byte(m.hexAcc))
			m.state = strNormal
		case escUnicode:
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
			m.state = strNormal
		}
		return nil, true
	default:
		return nil, false
	}
}
