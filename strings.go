package utf8chars

// IsValid reports whether s consists entirely of well-formed UTF-8
// characters. A truncated character at the end makes s invalid.
func IsValid[T Bytes](s T) bool {
	return invalidOffset(s) < 0
}

// Validate is like [IsValid] but returns an *[InvalidUTF8Error] locating the
// first ill-formed sequence. It returns nil for valid input.
func Validate[T Bytes](s T) error {
	if i := invalidOffset(s); i >= 0 {
		return newInvalidUTF8Error(i, []byte(s[i:]))
	}
	return nil
}

// invalidOffset returns the offset of the first failed decode in s, or -1.
func invalidOffset[T Bytes](s T) int {
	for i := 0; i < len(s); {
		if s[i] < runeSelf {
			i++
			continue
		}
		dr := Decode(s[i:])
		if !dr.Valid {
			return i
		}
		i += dr.Size
	}
	return -1
}

// CharsLen returns the number of characters in s.
//
// The input must be valid UTF-8. Only the leading byte of each character is
// looked at, as with [OneCharLen], so the result for ill-formed input is
// meaningless, but the function still terminates.
func CharsLen[T Bytes](s T) int {
	n := 0
	for i := 0; i < len(s); i += OneCharLen(s[i]) {
		n++
	}
	return n
}

// AtLeastCharsLen returns the number of characters in s, but stops counting
// at n. It returns min(CharsLen(s), n) and is faster than [CharsLen] when
// checking a length against a threshold:
//
//	switch l := utf8chars.AtLeastCharsLen(s, 9); {
//	case l < 5:
//		// shorter than 5
//	case l < 9:
//		// shorter than 9
//	}
//
// The input must be valid UTF-8, as for [CharsLen].
func AtLeastCharsLen[T Bytes](s T, n int) int {
	count := 0
	for i := 0; i < len(s) && count < n; i += OneCharLen(s[i]) {
		count++
	}
	return count
}

// FrontChar splits s into its first character and the rest. The length of the
// first character is taken from its leading byte and clipped to len(s), so a
// truncated character is returned as far as it goes. An empty s returns two
// empty values.
func FrontChar[T Bytes](s T) (first, rest T) {
	if len(s) == 0 {
		return s, s
	}
	n := min(OneCharLen(s[0]), len(s))
	return s[:n], s[n:]
}

// ToRunes decodes s into code points. Ill-formed sequences are replaced by
// [RuneError], one per byte.
func ToRunes[T Bytes](s T) []rune {
	// len(s) is an upper bound of the number of code points.
	rs := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		if c := s[i]; c < runeSelf {
			rs = append(rs, rune(c))
			i++
			continue
		}
		dr := Decode(s[i:])
		rs = append(rs, dr.Rune)
		i += dr.Size
	}
	return rs
}

// FromRunes encodes code points as UTF-8. Surrogates and values outside of
// [0, MaxRune] are encoded as [RuneError].
func FromRunes(rs []rune) string {
	return string(AppendRunes(make([]byte, 0, len(rs)), rs))
}

// AppendRunes appends the UTF-8 encoding of rs to dst and returns the
// extended buffer. Invalid code points are appended as [RuneError].
func AppendRunes(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		dst = AppendRune(dst, r)
	}
	return dst
}

// Sanitize returns a copy of s as a string in which every ill-formed
// sequence is replaced by [RuneError]. Each failed decode consumes one byte,
// so a truncated three byte character becomes up to three replacements. A
// valid s is returned unchanged.
func Sanitize[T Bytes](s T) string {
	i := invalidOffset(s)
	if i < 0 {
		return string(s)
	}
	out := make([]byte, i, len(s)+2*UTFMax)
	copy(out, s[:i])
	for i < len(s) {
		dr := Decode(s[i:])
		if dr.Valid {
			out = append(out, s[i:i+dr.Size]...)
		} else {
			out = append(out, replacement...)
		}
		i += dr.Size
	}
	return string(out)
}

// replacement is the encoding of RuneError.
var replacement = []byte("\uFFFD")
