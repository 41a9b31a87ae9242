/*
Package utf8chars implements validation, decoding, encoding, counting and
iteration of Unicode text stored as UTF-8, and character views over byte
sequences that never copy or decode the whole input.

Every function accepts both strings and byte slices through the [Bytes] type
set. Functions that return parts of their input return them in the input's
type.

# Overview

Using this package, you can:
  - Validate UTF-8 text ([IsValid], [Validate])
  - Decode and encode single characters ([Decode], [Encode], [AppendRune])
  - Count characters ([CharsLen], [AtLeastCharsLen])
  - Convert between UTF-8 and code points ([ToRunes], [FromRunes])
  - Iterate over characters ([AsRunes], [AsChars], [Step], [FrontChar])
  - Clean up ill-formed text ([Sanitize], [Sanitizer], [UTF8])

# Ill-formed Input

Decoding never fails. A sequence that is not well-formed UTF-8 decodes to
the replacement character U+FFFD ([RuneError]) and consumes exactly one byte,
so iteration always makes progress and a truncated character at the end of
the input is reported byte by byte:

	utf8chars.ToRunes("a\xe2\x82")   // ['a', U+FFFD, U+FFFD]

Overlong forms, surrogates (U+D800 to U+DFFF) and values beyond U+10FFFF
are ill-formed. They never decode to their literal value. Encoding such a
value produces the encoding of U+FFFD:

	utf8chars.FromRunes([]rune{0x110000}) // "�"

Only [Validate] and the [Validator] transformer report ill-formed input as an
error. Their errors match [ErrInvalidUTF8].

# Character Views

[Runes] and [Chars] wrap a byte sequence without owning it and iterate over
it one character at a time, as code points or as the bytes of each
character:

	for r := range utf8chars.AsRunes(s).All() {
		...
	}

	for it := utf8chars.AsChars(b).Begin(); !it.Done(); it.Next() {
		fmt.Printf("%q\n", it.Value())
	}

Iterators are plain values. Copy one to remember a position.

The views have no Size method because counting characters requires a full
scan. Front and Back return the first and the last character in constant
time; Back searches backwards from the end of the input.

# Trusted Input

[OneCharLen], [CharsLen] and [AtLeastCharsLen] look at leading bytes only
and are meant for text that is already known to be valid. Their results for
ill-formed input are meaningless, although they always terminate. Use
[OneCharLenChecked] and [Decode] on untrusted bytes.

All functions are safe for concurrent use. The package logs through
[Logger], which is a no-op logger unless [SetLogger] was called.
*/
package utf8chars
