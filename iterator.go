package utf8chars

// cursor is the state shared by the character iterators: a position in s and
// the decoded character starting there. The decode result is a cache derived
// from the position.
type cursor[T Bytes] struct {
	s   T
	pos int
	dr  DecodeResult
}

func newCursor[T Bytes](s T, pos int) cursor[T] {
	c := cursor[T]{s: s, pos: pos}
	c.decode()
	return c
}

func (c *cursor[T]) decode() {
	if c.pos < len(c.s) {
		c.dr = Decode(c.s[c.pos:])
	} else {
		c.dr = DecodeResult{}
	}
}

// next moves to the start of the next character.
func (c *cursor[T]) next() {
	c.pos += c.dr.Size
	c.decode()
}

// RuneIterator iterates over the characters of a UTF-8 byte sequence and
// yields them as code points. Ill-formed sequences are yielded as
// [RuneError], one per byte.
//
// A RuneIterator is a plain value: copying it saves the position, and the
// copy can be advanced independently. It does not own the underlying bytes.
type RuneIterator[T Bytes] struct {
	cursor[T]
}

// NewRuneIterator returns an iterator positioned at the character starting at
// byte offset pos of s. pos must be the start of a character or len(s).
func NewRuneIterator[T Bytes](s T, pos int) RuneIterator[T] {
	return RuneIterator[T]{newCursor(s, pos)}
}

// Value returns the current code point.
// The iterator must not be done.
func (it RuneIterator[T]) Value() rune {
	return it.dr.Rune
}

// Valid reports whether the current character is well-formed.
func (it RuneIterator[T]) Valid() bool {
	return it.dr.Valid
}

// Next moves the iterator to the next character.
// The iterator must not be done.
func (it *RuneIterator[T]) Next() {
	it.next()
}

// Done reports whether the iterator has reached the end of its input.
func (it RuneIterator[T]) Done() bool {
	return it.pos >= len(it.s)
}

// Pos returns the byte offset of the current character.
func (it RuneIterator[T]) Pos() int {
	return it.pos
}

// Equal reports whether both iterators are at the same position. Only
// iterators over the same input are comparable.
func (it RuneIterator[T]) Equal(other RuneIterator[T]) bool {
	return it.pos == other.pos
}

// CharIterator iterates over the characters of a UTF-8 byte sequence and
// yields each one as the part of the input that encodes it. Ill-formed
// sequences are yielded byte by byte, as they are.
//
// Like [RuneIterator], a CharIterator is a copyable, non-owning value.
type CharIterator[T Bytes] struct {
	cursor[T]
}

// NewCharIterator returns an iterator positioned at the character starting at
// byte offset pos of s. pos must be the start of a character or len(s).
func NewCharIterator[T Bytes](s T, pos int) CharIterator[T] {
	return CharIterator[T]{newCursor(s, pos)}
}

// Value returns the bytes of the current character.
// The iterator must not be done.
func (it CharIterator[T]) Value() T {
	return it.s[it.pos : it.pos+it.dr.Size]
}

// Rune returns the current character decoded as a code point.
// The iterator must not be done.
func (it CharIterator[T]) Rune() rune {
	return it.dr.Rune
}

// Valid reports whether the current character is well-formed.
func (it CharIterator[T]) Valid() bool {
	return it.dr.Valid
}

// Next moves the iterator to the next character.
// The iterator must not be done.
func (it *CharIterator[T]) Next() {
	it.next()
}

// Done reports whether the iterator has reached the end of its input.
func (it CharIterator[T]) Done() bool {
	return it.pos >= len(it.s)
}

// Pos returns the byte offset of the current character.
func (it CharIterator[T]) Pos() int {
	return it.pos
}

// Equal reports whether both iterators are at the same position. Only
// iterators over the same input are comparable.
func (it CharIterator[T]) Equal(other CharIterator[T]) bool {
	return it.pos == other.pos
}
