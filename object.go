package peejay

// objectState enum, spec §4.9.
type objectState int

const (
	objStart objectState = iota
	objFirstKey
	objKey
	objColon
	objValue
	objComma
	objDone
)

// objectMatcher implements the JSON object grammar, with the
// objectTrailingComma and identifierObjectKey extensions.
type objectMatcher struct {
	state objectState
}

func newObjectMatcher() *objectMatcher { return &objectMatcher{state: objStart} }

func (m *objectMatcher) done() bool { return m.state == objDone }

func (m *objectMatcher) consume(p *driver, cp rune) (matcher, bool) {
	switch m.state {
	case objStart:
		p.fireBeginObject()
		m.state = objFirstKey
		return &whitespaceMatcher{}, true
	case objFirstKey:
		if cp == '}' {
			p.fireEndObject()
			m.state = objDone
			return nil, true
		}
		return m.dispatchKey(p, cp)
	case objKey:
		return m.dispatchKey(p, cp)
	case objColon:
		if wantCodePoint(p.extensions, cp) {
			return &whitespaceMatcher{}, false
		}
		if cp == ':' {
			m.state = objValue
			return &whitespaceMatcher{}, true
		}
		p.setError(ErrExpectedColon)
		return nil, true
	case objValue:
		m.state = objComma
		return newRootMatcher(), false
	case objComma:
		if wantCodePoint(p.extensions, cp) {
			return &whitespaceMatcher{}, false
		}
		switch cp {
		case ',':
			if p.extensions.Has(ObjectTrailingComma) {
				m.state = objFirstKey
			} else {
				m.state = objKey
			}
			return &whitespaceMatcher{}, true
		case '}':
			p.fireEndObject()
			m.state = objDone
			return nil, true
		default:
			p.setError(ErrExpectedObjectMember)
			return nil, true
		}
	default:
		return nil, false
	}
}

func (m *objectMatcher) dispatchKey(p *driver, cp rune) (matcher, bool) {
	m.state = objColon
	switch {
	case cp == '"':
		return newStringMatcher(true, '"'), false
	case cp == '\'' && p.extensions.Has(SingleQuoteString):
		return newStringMatcher(true, '\''), false
	case p.extensions.Has(IdentifierObjectKey):
		return newIdentifierMatcher(), false
	default:
		p.setError(ErrExpectedObjectKey)
		return nil, true
	}
}
