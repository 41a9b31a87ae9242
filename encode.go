package utf8chars

// EncodeResult holds the UTF-8 encoding of one code point. It never needs
// more than UTFMax bytes and is returned by value.
type EncodeResult struct {
	buf [UTFMax]byte
	n   uint8
}

// Bytes returns the encoded bytes.
func (e EncodeResult) Bytes() []byte {
	return e.buf[:e.n]
}

// Len returns the number of encoded bytes, between 1 and 4.
func (e EncodeResult) Len() int {
	return int(e.n)
}

// String returns the encoded character as a string.
func (e EncodeResult) String() string {
	return string(e.buf[:e.n])
}

// Encode returns the UTF-8 encoding of r. Surrogates, negative values and
// values beyond [MaxRune] are encoded as [RuneError]. The result is never
// empty.
func Encode(r rune) EncodeResult {
	var e EncodeResult
	switch {
	case 0 <= r && r < runeSelf:
		e.buf[0] = byte(r)
		e.n = 1
	case 0 <= r && r < minRune[3]:
		e.buf[0] = tag2 | byte(r>>6)
		e.buf[1] = tagx | byte(r)&maskx
		e.n = 2
	case r < 0 || r > MaxRune, surrogateMin <= r && r <= surrogateMax:
		r = RuneError
		fallthrough
	case r < minRune[4]:
		e.buf[0] = tag3 | byte(r>>12)
		e.buf[1] = tagx | byte(r>>6)&maskx
		e.buf[2] = tagx | byte(r)&maskx
		e.n = 3
	default:
		e.buf[0] = tag4 | byte(r>>18)
		e.buf[1] = tagx | byte(r>>12)&maskx
		e.buf[2] = tagx | byte(r>>6)&maskx
		e.buf[3] = tagx | byte(r)&maskx
		e.n = 4
	}
	return e
}

// AppendRune appends the UTF-8 encoding of r to dst and returns the extended
// buffer. Invalid code points are appended as [RuneError].
func AppendRune(dst []byte, r rune) []byte {
	if 0 <= r && r < runeSelf {
		return append(dst, byte(r))
	}
	e := Encode(r)
	return append(dst, e.buf[:e.n]...)
}
