//go:build generate

// This program generates the lead byte tables used by the decoder. The
// tables are derived by encoding every Unicode scalar value, so they always
// agree with the encoding rules of RFC 3629.
//
//go:generate go run gen_leadtable.go

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"unicode/utf8"
)

// leadClass describes the characters starting with one lead byte.
type leadClass struct {
	size   int   // 0 if no scalar value starts with this byte
	lo, hi uint8 // range of second bytes, for size > 1
}

func main() {
	log.SetPrefix("gen_leadtable: ")
	log.SetFlags(0)

	src, err := generate()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to leadtable.go")
	if err := os.WriteFile("leadtable.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func generate() (string, error) {
	var classes [256]leadClass
	buf := make([]byte, utf8.UTFMax)
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := utf8.EncodeRune(buf, r)
		c := &classes[buf[0]]
		if c.size == 0 {
			c.size, c.lo, c.hi = n, 0xFF, 0
		}
		if c.size != n {
			return "", fmt.Errorf("lead byte %#02x starts characters of %d and %d bytes", buf[0], c.size, n)
		}
		if n > 1 {
			c.lo = min(c.lo, buf[1])
			c.hi = max(c.hi, buf[1])
		}
	}

	var out bytes.Buffer
	out.WriteString(`// Code generated via go generate from gen_leadtable.go. DO NOT EDIT.

package utf8chars

// first holds the lead byte class of every byte. See the class constants in
// properties.go.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
`)
	for row := 0; row < 16; row++ {
		out.WriteByte('\t')
		for col := 0; col < 16; col++ {
			name, err := className(byte(row<<4|col), classes[row<<4|col])
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&out, "%s, ", name)
		}
		fmt.Fprintf(&out, "// 0x%X0-0x%XF\n", row, row)
	}
	out.WriteString(`}

// charLen maps the top five bits of a byte to the character length implied by
// its high bits. Continuation bytes and 11111xxx map to 1.
var charLen = [32]uint8{
`)
	for i := 0; i < 32; i++ {
		if i%8 == 0 {
			out.WriteByte('\t')
		}
		fmt.Fprintf(&out, "%d, ", highBitsLen(byte(i<<3)))
		if i%8 == 7 {
			fmt.Fprintf(&out, "// 0x%02X-0x%02X\n", (i-7)<<3, i<<3|7)
		}
	}
	out.WriteString("}\n")

	return out.String(), nil
}

// className maps a lead class to the name of its constant in properties.go.
func className(b byte, c leadClass) (string, error) {
	switch {
	case c.size == 0:
		return "xx", nil
	case c.size == 1:
		return "as", nil
	case c.size == 2 && c.lo == 0x80 && c.hi == 0xBF:
		return "s1", nil
	case c.size == 3 && c.lo == 0xA0 && c.hi == 0xBF:
		return "s2", nil
	case c.size == 3 && c.lo == 0x80 && c.hi == 0xBF:
		return "s3", nil
	case c.size == 3 && c.lo == 0x80 && c.hi == 0x9F:
		return "s4", nil
	case c.size == 4 && c.lo == 0x90 && c.hi == 0xBF:
		return "s5", nil
	case c.size == 4 && c.lo == 0x80 && c.hi == 0xBF:
		return "s6", nil
	case c.size == 4 && c.lo == 0x80 && c.hi == 0x8F:
		return "s7", nil
	}
	return "", fmt.Errorf("no class for lead byte %#02x (size %d, second byte %#02x-%#02x)", b, c.size, c.lo, c.hi)
}

// highBitsLen returns the length implied by the high bits of a lead byte.
func highBitsLen(b byte) int {
	switch {
	case b < 0xC0:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	}
	return 1
}
