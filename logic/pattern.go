package logic

// Pattern is a definition-time bit literal. Each bit is '_' (zero),
// '@' (one), or the wildcard '?', which matches either value.
type Pattern struct {
	Width int
	care  uint32 // 1 where the bit is constrained
	bits  uint32 // value of the constrained bits
}

// ParsePattern parses an MSB-first literal in the '_', '@', '?' alphabet.
func ParsePattern(text string) (p Pattern, err error) {
	for _, c := range text {
		switch c {
		case '_':
			p.care = p.care<<1 | 1
			p.bits <<= 1
		case '@':
			p.care = p.care<<1 | 1
			p.bits = p.bits<<1 | 1
		case '?':
			p.care <<= 1
			p.bits <<= 1
		default:
			err = ErrPatternBit(c)
			return
		}
		p.Width++
	}

	if p.Width > 32 {
		err = ErrPatternWidth
		return
	}

	return
}

// MustPattern is ParsePattern for literals known good at compile time.
func MustPattern(text string) (p Pattern) {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}

	return
}

// Matches reports whether the word agrees with the pattern on every
// constrained bit.
func (p Pattern) Matches(w Word) bool {
	return p.Width == w.Width && (w.Bits&p.care) == p.bits
}

// Exact reports whether the pattern contains no wildcard bits.
func (p Pattern) Exact() bool {
	return p.care == mask(p.Width)
}

// Word returns the runtime value of an exact pattern. A pattern with
// wildcard bits has no runtime value.
func (p Pattern) Word() (w Word, err error) {
	if !p.Exact() {
		err = ErrPatternWild
		return
	}

	w = NewWord(p.Width, p.bits)

	return
}

// Overlaps reports whether some word matches both patterns.
func (p Pattern) Overlaps(q Pattern) bool {
	both := p.care & q.care

	return p.Width == q.Width && (p.bits&both) == (q.bits&both)
}

// String returns the pattern as an MSB-first literal.
func (p Pattern) String() (text string) {
	for n := p.Width - 1; n >= 0; n-- {
		switch {
		case (p.care>>n)&1 == 0:
			text += "?"
		case (p.bits>>n)&1 == 0:
			text += "_"
		default:
			text += "@"
		}
	}

	return
}
