package utf8chars

// Limits of Unicode scalar values and their UTF-8 encoding.
const (
	RuneError = '\uFFFD'     // Replacement character for ill-formed input
	MaxRune   = '\U0010FFFF' // Maximum valid Unicode code point
	UTFMax    = 4            // Maximum number of bytes of a UTF-8 character
)

// Bytes is the set of byte sequence types accepted by this package. Functions
// that return parts of their input return them in the input's type, so
// passing a string yields substrings and passing a []byte yields sub-slices.
type Bytes interface {
	~[]byte | ~string
}

const (
	runeSelf = 0x80 // Bytes below runeSelf are single-byte characters

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// The lowest and highest continuation byte.
	locb = 0x80 // 1000 0000
	hicb = 0xBF // 1011 1111

	maskx = 0x3F // 0011 1111, payload bits of a continuation byte
	tagx  = 0x80 // 1000 0000
	tag2  = 0xC0 // 1100 0000
	tag3  = 0xE0 // 1110 0000
	tag4  = 0xF0 // 1111 0000
)

// Lead byte classes stored in the first table. The high nibble is an index
// into acceptRanges or F for the special one-byte cases. The low nibble is
// the character length in bytes, or the status for the one-byte cases.
const (
	as = 0xF0 // ASCII: size 1
	xx = 0xF1 // never a valid lead: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3 (E0, rejects overlong forms)
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3 (ED, rejects surrogates)
	s5 = 0x34 // accept 3, size 4 (F0, rejects overlong forms)
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4 (F4, rejects values above MaxRune)

	sizeMask    = 7
	acceptShift = 4
)

// acceptRange is the range of valid values for the second byte of a
// multi-byte character.
type acceptRange struct {
	lo uint8 // lowest value for second byte
	hi uint8 // highest value for second byte
}

// acceptRanges is indexed by first[c]>>acceptShift for every lead byte c
// which is neither ASCII nor xx.
var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// Payload bits of a lead byte and the smallest code point that needs the
// given number of bytes, indexed by character length.
var (
	leadMask = [UTFMax + 1]uint8{0, 0x7F, 0x1F, 0x0F, 0x07}
	minRune  = [UTFMax + 1]rune{0, 0, 0x80, 0x800, 0x10000}
)

// OneCharLen returns the byte length of a UTF-8 character based on the high
// bits of its leading byte alone: 0xxxxxxx is 1, 110xxxxx is 2, 1110xxxx is 3
// and 11110xxx is 4. The continuation bytes are not examined.
//
// The caller must make sure that c starts a valid character. For any other
// byte (a continuation byte 10xxxxxx or an invalid 11111xxx) the function
// returns 1 so that a caller stepping through bytes still makes progress, but
// that value carries no meaning. Use [OneCharLenChecked] for untrusted input.
func OneCharLen(c byte) int {
	return int(charLen[c>>3])
}

// OneCharLenChecked is like [OneCharLen] but it also reports whether c can
// start a well-formed UTF-8 character at all. Continuation bytes, the lead
// bytes of always overlong forms (0xC0, 0xC1) and the lead bytes of values
// beyond [MaxRune] (0xF5 to 0xFF) return (1, false).
func OneCharLenChecked(c byte) (int, bool) {
	switch x := first[c]; x {
	case as:
		return 1, true
	case xx:
		return 1, false
	default:
		return int(x & sizeMask), true
	}
}
