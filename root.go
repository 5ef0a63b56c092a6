package peejay

// rootState enum, spec §4.10.
type rootState int

const (
	rootStart rootState = iota
	rootNewToken
	rootDone
)

// rootMatcher dispatches on the first non-whitespace code point of a JSON
// value to the matcher for that production (spec §4.10). It is pushed
// wherever the grammar expects a value: at the top level, as an array
// element, and as an object value.
type rootMatcher struct {
	state rootState
}

func newRootMatcher() *rootMatcher { return &rootMatcher{state: rootStart} }

func (m *rootMatcher) done() bool { return m.state == rootDone }

func (m *rootMatcher) consume(p *driver, cp rune) (matcher, bool) {
	switch m.state {
	case rootStart:
		m.state = rootNewToken
		return &whitespaceMatcher{}, false
	case rootNewToken:
		m.state = rootDone
		ext := p.extensions
		switch {
		case isDigit(cp), cp == '-', cp == '+' && ext.Has(LeadingPlus), cp == '.' && ext.Has(Numbers):
			return newNumberMatcher(), false
		case cp == '"':
			return newStringMatcher(false, '"'), false
		case cp == '\'' && ext.Has(SingleQuoteString):
			return newStringMatcher(false, '\''), false
		case cp == 'I' && ext.Has(Numbers):
			return newNumberMatcher(), false
		case cp == 'N' && ext.Has(Numbers):
			return newNumberMatcher(), false
		case cp == 't':
			return newKeywordMatcher(kwTrue, false), false
		case cp == 'f':
			return newKeywordMatcher(kwFalse, false), false
		case cp == 'n':
			return newKeywordMatcher(kwNull, false), false
		case cp == '[':
			return newArrayMatcher(), false
		case cp == '{':
			return newObjectMatcher(), false
		default:
			p.setError(ErrExpectedToken)
			return nil, true
		}
	default:
		return nil, false
	}
}
