package utf8chars

// Step returns the first character found in the given byte sequence together
// with the rest of the sequence and the decode result of that character. It
// fully validates the character: an ill-formed sequence is returned as a
// single byte with an invalid decode result whose Rune is [RuneError].
//
// This function can be called continuously to extract all characters from a
// byte sequence, as illustrated in the examples. If the length of "rest" is
// 0, the entire sequence has been processed. Given an empty s, the function
// returns empty values and a zero DecodeResult.
//
// Unlike [FrontChar], which trusts the leading byte, Step never returns more
// than one byte of an ill-formed sequence. It makes no allocations.
func Step[T Bytes](s T) (char, rest T, dr DecodeResult) {
	// An empty sequence returns nothing.
	if len(s) == 0 {
		return s, s, DecodeResult{}
	}

	// Fast track ASCII.
	if c := s[0]; c < runeSelf {
		return s[:1], s[1:], DecodeResult{Rune: rune(c), Size: 1, Valid: true}
	}

	dr = Decode(s)
	return s[:dr.Size], s[dr.Size:], dr
}
