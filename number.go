package peejay

import "math"

func infinity() float64 { return math.Inf(1) }
func quietNaN() float64 { return math.NaN() }

// numState enum, spec §4.5. Grounded on the teacher's mi/ze/in/fr/fs/e1-e3
// state vocabulary (parser.go) and, for the exact zero-handling
// transitions, on original_source/include/peejay/json.hpp's
// number_matcher state functions.
type numState int

const (
	numLeadingMinus numState = iota
	numIntegerInitialDigit
	numIntegerDigit
	numFrac
	numFracInitialDigit
	numFracDigit
	numExponentSign
	numExponentInitialDigit
	numExponentDigit
	numInitialHexDigit
	numHexDigits
	numInitialDot
	numDone
)

// numberMatcher implements the number grammar of spec §4.5, including the
// numbers/leadingPlus extensions (hex integers, leading/trailing '.',
// Infinity/NaN literals).
type numberMatcher struct {
	state numState

	isNeg       bool
	isFloat     bool
	intAcc      uint64
	intOverflow bool

	whole     float64
	fracPart  float64
	fracScale float64
	exp       int32
	expNeg    bool
}

func newNumberMatcher() *numberMatcher {
	return &numberMatcher{state: numLeadingMinus, fracScale: 1}
}

func (m *numberMatcher) done() bool { return m.state == numDone }

func isDigit(cp rune) bool { return cp >= '0' && cp <= '9' }

func isHexDigit(cp rune) bool {
	return isDigit(cp) || (cp >= 'a' && cp <= 'f') || (cp >= 'A' && cp <= 'F')
}

func hexValue(cp rune) uint64 {
	switch {
	case cp >= '0' && cp <= '9':
		return uint64(cp - '0')
	case cp >= 'a' && cp <= 'f':
		return uint64(cp-'a') + 10
	default:
		return uint64(cp-'A') + 10
	}
}

func (m *numberMatcher) addIntDigit(d uint64) {
	newAcc := m.intAcc*10 + d
	if newAcc < m.intAcc {
		m.intOverflow = true
	}
	m.intAcc = newAcc
}

func (m *numberMatcher) addHexDigit(d uint64) {
	newAcc := m.intAcc*16 + d
	if newAcc < m.intAcc {
		m.intOverflow = true
	}
	m.intAcc = newAcc
}

func (m *numberMatcher) promote() {
	if !m.isFloat {
		m.whole = float64(m.intAcc)
		m.isFloat = true
	}
}

func (m *numberMatcher) addFracDigit(d float64) {
	m.fracPart = m.fracPart*10 + d
	m.fracScale *= 10
}

func (m *numberMatcher) addExpDigit(d int32) {
	m.exp = m.exp*10 + d
}

// consume implements the number grammar's states, spec §4.5.
func (m *numberMatcher) consume(p *driver, cp rune) (matcher, bool) {
	ext := p.extensions
	switch m.state {
	case numLeadingMinus:
		switch {
		case cp == '-':
			m.isNeg = true
			m.state = numIntegerInitialDigit
			return nil, true
		case cp == '+' && ext.Has(LeadingPlus):
			m.state = numIntegerInitialDigit
			return nil, true
		case cp == '.' && ext.Has(Numbers):
			m.state = numInitialDot
			return nil, true
		case cp == 'I' && ext.Has(Numbers):
			m.state = numDone
			return newKeywordMatcher(kwInfinity, m.isNeg), false
		case cp == 'N' && ext.Has(Numbers):
			m.state = numDone
			return newKeywordMatcher(kwNaN, m.isNeg), false
		case isDigit(cp):
			m.state = numIntegerInitialDigit
			return nil, false
		default:
			p.setError(ErrExpectedDigits)
			return nil, true
		}
	case numIntegerInitialDigit:
		switch {
		case cp == '0':
			m.state = numFrac
			return nil, true
		case cp >= '1' && cp <= '9':
			m.addIntDigit(uint64(cp - '0'))
			m.state = numIntegerDigit
			return nil, true
		case cp == 'I' && ext.Has(Numbers):
			// Reached after a leading '-'/'+' consumed in numLeadingMinus;
			// m.isNeg already reflects the sign for -Infinity/+Infinity.
			m.state = numDone
			return newKeywordMatcher(kwInfinity, m.isNeg), false
		case cp == 'N' && ext.Has(Numbers):
			m.state = numDone
			return newKeywordMatcher(kwNaN, m.isNeg), false
		default:
			p.setError(ErrExpectedDigits)
			return nil, true
		}
	case numIntegerDigit:
		switch {
		case isDigit(cp):
			m.addIntDigit(uint64(cp - '0'))
			return nil, true
		case cp == '.':
			m.promote()
			m.state = numFracInitialDigit
			return nil, true
		case cp == 'e' || cp == 'E':
			m.promote()
			m.state = numExponentSign
			return nil, true
		default:
			m.emit(p)
			return nil, false
		}
	case numFrac:
		// Reached only immediately after a bare leading '0'.
		switch {
		case cp == '.':
			m.promote()
			m.state = numFracInitialDigit
			return nil, true
		case cp == 'e' || cp == 'E':
			m.promote()
			m.state = numExponentSign
			return nil, true
		case (cp == 'x' || cp == 'X') && ext.Has(Numbers):
			m.state = numInitialHexDigit
			return nil, true
		case isDigit(cp):
			// "01"-shaped literals: a further digit right after a bare
			// zero is rejected as out of range (spec §8 scenario 4),
			// matching the original's do_frac_state behaviour.
			p.setError(ErrNumberOutOfRange)
			return nil, true
		default:
			m.emit(p)
			return nil, false
		}
	case numFracInitialDigit:
		if isDigit(cp) {
			m.addFracDigit(float64(cp - '0'))
			m.state = numFracDigit
			return nil, true
		}
		if ext.Has(Numbers) {
			// Trailing '.' with no digits: "1." / "0." -> x.0.
			m.emit(p)
			return nil, false
		}
		p.setError(ErrExpectedDigits)
		return nil, true
	case numFracDigit:
		switch {
		case isDigit(cp):
			m.addFracDigit(float64(cp - '0'))
			return nil, true
		case cp == 'e' || cp == 'E':
			m.state = numExponentSign
			return nil, true
		default:
			m.emit(p)
			return nil, false
		}
	case numExponentSign:
		switch {
		case cp == '-':
			m.expNeg = true
			m.state = numExponentInitialDigit
			return nil, true
		case cp == '+':
			m.state = numExponentInitialDigit
			return nil, true
		case isDigit(cp):
			m.addExpDigit(int32(cp - '0'))
			m.state = numExponentDigit
			return nil, true
		default:
			p.setError(ErrExpectedDigits)
			return nil, true
		}
	case numExponentInitialDigit:
		if isDigit(cp) {
			m.addExpDigit(int32(cp - '0'))
			m.state = numExponentDigit
			return nil, true
		}
		p.setError(ErrExpectedDigits)
		return nil, true
	case numExponentDigit:
		if isDigit(cp) {
			m.addExpDigit(int32(cp - '0'))
			return nil, true
		}
		m.emit(p)
		return nil, false
	case numInitialHexDigit:
		if isHexDigit(cp) {
			m.addHexDigit(hexValue(cp))
			m.state = numHexDigits
			return nil, true
		}
		p.setError(ErrExpectedDigits)
		return nil, true
	case numHexDigits:
		if isHexDigit(cp) {
			m.addHexDigit(hexValue(cp))
			return nil, true
		}
		m.emit(p)
		return nil, false
	case numInitialDot:
		if isDigit(cp) {
			m.promote()
			m.addFracDigit(float64(cp - '0'))
			m.state = numFracDigit
			return nil, true
		}
		p.setError(ErrExpectedDigits)
		return nil, true
	default:
		return nil, false
	}
}

// emit finalizes the accumulated literal and fires the appropriate backend
// callback, then transitions to done. Matches the EOF-while-terminal rule
// of spec §4.5: termination on any non-numeric code point (including EOF)
// from a terminal accumulation state emits the value.
func (m *numberMatcher) emit(p *driver) {
	m.state = numDone
	if !m.isFloat {
		m.emitInteger(p, m.intAcc, m.intOverflow)
		return
	}
	// A literal with an all-zero fraction and a zero exponent ("1.0",
	// "-5.00") has exactly the value of its integer digits. When those fit
	// in an int64 they are emitted directly: going through float64 first
	// would round values near the limits (9223372036854775807 becomes 2^63).
	if m.fracPart == 0 && m.exp == 0 && !m.intOverflow &&
		(m.intAcc <= uint64(math.MaxInt64) || (m.isNeg && m.intAcc == maxUint63)) {
		m.emitInteger(p, m.intAcc, false)
		return
	}
	exp := float64(m.exp)
	if m.expNeg {
		exp = -exp
	}
	scale := math.Pow(10, exp)
	if math.IsInf(scale, 0) {
		p.setError(ErrNumberOutOfRange)
		return
	}
	x := (m.whole + m.fracPart/m.fracScale) * scale
	if m.isNeg {
		x = -x
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		p.setError(ErrNumberOutOfRange)
		return
	}
	// Open question (spec §9): "0e+1"-shaped literals resolve in favour
	// of integer emission whenever the computed value is an exact
	// integer in range. math.MaxInt64 converts to float64 as 2^63 (one
	// past the true maximum), so the upper bound must be a strict "<"
	// against 2^63, not "<=" against the rounded constant.
	if x == math.Trunc(x) && x >= -9223372036854775808.0 && x < 9223372036854775808.0 {
		p.fireInteger(int64(x))
		return
	}
	p.fireDouble(x)
}

const maxUint63 = uint64(math.MaxInt64) + 1 // |math.MinInt64|

func (m *numberMatcher) emitInteger(p *driver, acc uint64, overflow bool) {
	if overflow {
		p.setError(ErrNumberOutOfRange)
		return
	}
	if m.isNeg {
		if acc > maxUint63 {
			p.setError(ErrNumberOutOfRange)
			return
		}
		if acc == maxUint63 {
			p.fireInteger(math.MinInt64)
			return
		}
		p.fireInteger(-int64(acc))
		return
	}
	if acc > uint64(math.MaxInt64) {
		p.setError(ErrNumberOutOfRange)
		return
	}
	p.fireInteger(int64(acc))
}
