package utf8chars

import (
	"iter"

	"go.uber.org/zap"
)

// Runes is a view of a UTF-8 byte sequence as a sequence of code points.
// Ill-formed sequences are yielded as [RuneError], one per byte.
//
// A Runes value refers to the bytes it was created with and never copies
// them. There is deliberately no Size method: counting characters needs a
// full scan, and a view is usually iterated once. Use [CharsLen] when the
// count is needed.
//
//	for r := range utf8chars.AsRunes(s).All() {
//		...
//	}
type Runes[T Bytes] struct {
	s T
}

// AsRunes returns a code point view of s.
func AsRunes[T Bytes](s T) Runes[T] {
	return Runes[T]{s: s}
}

// Bytes returns the underlying byte sequence.
func (v Runes[T]) Bytes() T { return v.s }

// String returns the underlying bytes as a string.
func (v Runes[T]) String() string { return string(v.s) }

// Begin returns an iterator at the first character.
func (v Runes[T]) Begin() RuneIterator[T] { return NewRuneIterator(v.s, 0) }

// End returns an iterator past the last character.
func (v Runes[T]) End() RuneIterator[T] { return NewRuneIterator(v.s, len(v.s)) }

// Empty reports whether the view has no bytes.
func (v Runes[T]) Empty() bool { return len(v.s) == 0 }

// Front returns the first code point.
// The view must not be empty.
func (v Runes[T]) Front() rune {
	return Decode(v.s).Rune
}

// Back returns the last code point. It does not scan the view from the start.
// The view must not be empty.
func (v Runes[T]) Back() rune {
	_, dr := lastChar(v.s)
	return dr.Rune
}

// All returns an iterator over the code points of the view.
func (v Runes[T]) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for it := v.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether both views hold the same bytes.
func (v Runes[T]) Equal(other Runes[T]) bool {
	return string(v.s) == string(other.s)
}

// Chars is a view of a UTF-8 byte sequence as a sequence of characters, each
// given as the part of the input that encodes it. Ill-formed sequences are
// yielded byte by byte, as they are.
//
// Like [Runes], Chars refers to its input without copying it and has no Size
// method.
type Chars[T Bytes] struct {
	s T
}

// AsChars returns a character view of s.
func AsChars[T Bytes](s T) Chars[T] {
	return Chars[T]{s: s}
}

// Bytes returns the underlying byte sequence.
func (v Chars[T]) Bytes() T { return v.s }

// String returns the underlying bytes as a string.
func (v Chars[T]) String() string { return string(v.s) }

// Begin returns an iterator at the first character.
func (v Chars[T]) Begin() CharIterator[T] { return NewCharIterator(v.s, 0) }

// End returns an iterator past the last character.
func (v Chars[T]) End() CharIterator[T] { return NewCharIterator(v.s, len(v.s)) }

// Empty reports whether the view has no bytes.
func (v Chars[T]) Empty() bool { return len(v.s) == 0 }

// Front returns the bytes of the first character.
// The view must not be empty.
func (v Chars[T]) Front() T {
	return v.s[:Decode(v.s).Size]
}

// Back returns the bytes of the last character. It does not scan the view
// from the start.
// The view must not be empty.
func (v Chars[T]) Back() T {
	start, _ := lastChar(v.s)
	return v.s[start:]
}

// All returns an iterator over the characters of the view.
func (v Chars[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := v.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether both views hold the same bytes.
func (v Chars[T]) Equal(other Chars[T]) bool {
	return string(v.s) == string(other.s)
}

// backSizes is the order in which lastChar tries character lengths. One byte
// must be last: a single non-ASCII byte always decodes to an ill-formed
// character of size 1, so it ends the search.
var backSizes = [...]int{3, 2, 4, 1}

// lastChar returns the offset and decode result of the last character of a
// non-empty s. The character is the one forward iteration would yield last:
// the candidate whose decode ends exactly at the end of s.
func lastChar[T Bytes](s T) (int, DecodeResult) {
	last := len(s)
	if c := s[last-1]; c < runeSelf {
		return last - 1, DecodeResult{Rune: rune(c), Size: 1, Valid: true}
	}
	for _, size := range backSizes {
		if size > last {
			continue
		}
		start := last - size
		if dr := Decode(s[start:]); dr.Size == size {
			return start, dr
		}
	}
	Logger().Error("no character ends at the end of the input",
		zap.Int("length", last), zap.Binary("tail", []byte(s[max(0, last-UTFMax):])))
	panic("utf8chars: no character ends at the end of the input")
}
