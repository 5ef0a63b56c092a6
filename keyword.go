package peejay

// keywordState enum, spec §4.11.
type keywordState int

const (
	kwStart keywordState = iota
	kwLast
	kwDone
)

// keywordKind identifies which completion callback a keywordMatcher fires.
type keywordKind int

const (
	kwTrue keywordKind = iota
	kwFalse
	kwNull
	kwInfinity
	kwNaN
)

var keywordText = map[keywordKind]string{
	kwTrue:     "true",
	kwFalse:    "false",
	kwNull:     "null",
	kwInfinity: "Infinity",
	kwNaN:      "NaN",
}

// keywordMatcher recognizes one fixed literal token (spec §4.11): true,
// false, null, or — with the numbers extension — Infinity/NaN.
type keywordMatcher struct {
	kind  keywordKind
	text  string
	index int
	state keywordState
	neg   bool
}

func newKeywordMatcher(kind keywordKind, neg bool) *keywordMatcher {
	return &keywordMatcher{kind: kind, text: keywordText[kind], neg: neg}
}

func (m *keywordMatcher) done() bool {
	return m.state == kwDone
}

func (m *keywordMatcher) consume(p *driver, cp rune) (matcher, bool) {
	switch m.state {
	case kwStart:
		if cp == eofRune {
			p.setError(ErrUnrecognizedToken)
			return nil, true
		}
		want := rune(m.text[m.index])
		if cp != want {
			p.setError(ErrUnrecognizedToken)
			return nil, true
		}
		m.index++
		if m.index == len(m.text) {
			m.state = kwLast
		}
		return nil, true
	case kwLast:
		if cp != eofRune && isIdentifierPart(cp) {
			p.setError(ErrUnrecognizedToken)
			return nil, true
		}
		m.complete(p)
		m.state = kwDone
		return nil, false
	default:
		return nil, false
	}
}

func (m *keywordMatcher) complete(p *driver) {
	switch m.kind {
	case kwTrue:
		p.fireBool(true)
	case kwFalse:
		p.fireBool(false)
	case kwNull:
		p.fireNull()
	case kwInfinity:
		sign := 1.0
		if m.neg {
			sign = -1.0
		}
		p.fireDouble(sign * infinity())
	case kwNaN:
		p.fireDouble(quietNaN())
	}
}
