package utf8chars

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Sanitizer is a transformer that copies UTF-8 text and replaces every
// ill-formed sequence by the encoding of [RuneError], exactly as [Sanitize]
// does. It waits for more input when the source ends in the middle of a
// character that may still turn out to be well-formed.
var Sanitizer transform.Transformer = sanitizer{}

// Validator is a transformer that copies UTF-8 text and stops with
// [ErrInvalidUTF8] at the first ill-formed sequence.
var Validator transform.Transformer = validator{}

// UTF8 is an encoding.Encoding for UTF-8 text. Both its decoder and its
// encoder sanitize their input with [Sanitizer]. Chain the [Validator] to
// reject ill-formed input instead.
var UTF8 encoding.Encoding = utf8Encoding{}

type sanitizer struct{ transform.NopResetter }

func (sanitizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < runeSelf {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !FullChar(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		dr := Decode(src[nSrc:])
		enc := src[nSrc : nSrc+dr.Size]
		if !dr.Valid {
			enc = replacement
			if ce := Logger().Check(zap.DebugLevel, "replacing ill-formed UTF-8 byte"); ce != nil {
				ce.Write(zap.Int("offset", nSrc), zap.Uint8("byte", src[nSrc]))
			}
		}
		if nDst+len(enc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], enc)
		nSrc += dr.Size
	}
	return nDst, nSrc, nil
}

type validator struct{ transform.NopResetter }

func (validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := min(len(src), len(dst))
	for i := 0; i < n; {
		if c := src[i]; c < runeSelf {
			dst[i] = c
			i++
			continue
		}
		dr := Decode(src[i:])
		if !dr.Valid {
			err = ErrInvalidUTF8
			if !atEOF && !FullChar(src[i:]) {
				err = transform.ErrShortSrc
			}
			return i, i, err
		}
		if i+dr.Size > len(dst) {
			return i, i, transform.ErrShortDst
		}
		i += copy(dst[i:], src[i:i+dr.Size])
	}
	if len(src) > len(dst) {
		err = transform.ErrShortDst
	}
	return n, n, err
}

type utf8Encoding struct{}

func (utf8Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: Sanitizer}
}

func (utf8Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: Sanitizer}
}

// String returns the name of the encoding.
func (utf8Encoding) String() string { return "UTF-8" }
