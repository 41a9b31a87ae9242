package utf8chars

// DecodeResult is the outcome of decoding one character.
type DecodeResult struct {
	// Rune is the decoded code point, or RuneError if Valid is false.
	Rune rune

	// Size is the number of bytes consumed. It is the full character length
	// for a well-formed character and exactly 1 for an ill-formed one, so
	// that advancing by Size always makes progress. It is 0 only when the
	// input was empty.
	Size int

	// Valid is true if a complete, well-formed character was decoded.
	Valid bool
}

// invalid is the result of every failed decode.
var invalid = DecodeResult{Rune: RuneError, Size: 1}

// Decode decodes the first UTF-8 character of s.
//
// The decode fails if s is shorter than the length announced by the leading
// byte, if one of the following bytes is not a continuation byte, or if the
// assembled value is an overlong form, a surrogate, or beyond [MaxRune]. A
// failed decode returns {RuneError, 1, false}: only the leading byte is
// consumed, so a truncated sequence at the end of s is reported one byte at a
// time rather than skipped as a whole.
//
// Decoding an empty s returns {RuneError, 0, false}.
func Decode[T Bytes](s T) DecodeResult {
	n := len(s)
	if n == 0 {
		return DecodeResult{Rune: RuneError}
	}
	c0 := s[0]
	if c0 < runeSelf {
		return DecodeResult{Rune: rune(c0), Size: 1, Valid: true}
	}

	size := OneCharLen(c0)
	if size == 1 || n < size {
		// Stray continuation byte, 11111xxx, or a truncated character.
		return invalid
	}
	r := rune(c0 & leadMask[size])
	for i := 1; i < size; i++ {
		c := s[i]
		if c&^maskx != tagx {
			return invalid
		}
		r = r<<6 | rune(c&maskx)
	}
	if r < minRune[size] || r > MaxRune || surrogateMin <= r && r <= surrogateMax {
		return invalid
	}
	return DecodeResult{Rune: r, Size: size, Valid: true}
}

// DecodeRune is like [Decode] but returns the code point and size only.
func DecodeRune[T Bytes](s T) (r rune, size int) {
	dr := Decode(s)
	return dr.Rune, dr.Size
}

// FullChar reports whether s begins with a complete UTF-8 character or with
// a sequence that is ill-formed regardless of what follows it. It returns
// false for an empty s and for a proper prefix of a well-formed character,
// in which case a streaming caller should wait for more input before
// decoding.
func FullChar[T Bytes](s T) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	x := first[s[0]]
	if n >= int(x&sizeMask) {
		// ASCII, invalid lead, or enough bytes.
		return true
	}
	accept := acceptRanges[x>>acceptShift]
	if n > 1 && (s[1] < accept.lo || accept.hi < s[1]) {
		return true
	}
	if n > 2 && (s[2] < locb || hicb < s[2]) {
		return true
	}
	return false
}
