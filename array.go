package peejay

// arrayState enum, spec §4.8.
type arrayState int

const (
	arrStart arrayState = iota
	arrFirstObject
	arrObject
	arrComma
	arrDone
)

// arrayMatcher implements the JSON array grammar, with the
// arrayTrailingComma extension permitting a trailing comma before `]`.
type arrayMatcher struct {
	state arrayState
}

func newArrayMatcher() *arrayMatcher { return &arrayMatcher{state: arrStart} }

func (m *arrayMatcher) done() bool { return m.state == arrDone }

func (m *arrayMatcher) consume(p *driver, cp rune) (matcher, bool) {
	switch m.state {
	case arrStart:
		p.fireBeginArray()
		m.state = arrFirstObject
		return &whitespaceMatcher{}, true
	case arrFirstObject:
		if cp == ']' {
			p.fireEndArray()
			m.state = arrDone
			return nil, true
		}
		m.state = arrComma
		return newRootMatcher(), false
	case arrObject:
		m.state = arrComma
		return newRootMatcher(), false
	case arrComma:
		if wantCodePoint(p.extensions, cp) {
			return &whitespaceMatcher{}, false
		}
		switch cp {
		case ',':
			if p.extensions.Has(ArrayTrailingComma) {
				m.state = arrFirstObject
			} else {
				m.state = arrObject
			}
			return &whitespaceMatcher{}, true
		case ']':
			p.fireEndArray()
			m.state = arrDone
			return nil, true
		default:
			p.setError(ErrExpectedArrayMember)
			return nil, true
		}
	default:
		return nil, false
	}
}
