package utf8chars

import (
	"testing"
	"unicode/utf8"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DecodeResult
	}{
		{"empty", "", DecodeResult{RuneError, 0, false}},
		{"ascii", "a", DecodeResult{'a', 1, true}},
		{"nul", "\x00", DecodeResult{0, 1, true}},
		{"two bytes", "é", DecodeResult{'é', 2, true}},
		{"three bytes", "€", DecodeResult{'€', 3, true}},
		{"four bytes", "🎉", DecodeResult{'🎉', 4, true}},
		{"only the first character", "ab", DecodeResult{'a', 1, true}},
		{"max rune", "\xf4\x8f\xbf\xbf", DecodeResult{MaxRune, 4, true}},
		{"last before surrogates", "\xed\x9f\xbf", DecodeResult{0xD7FF, 3, true}},
		{"first after surrogates", "\xee\x80\x80", DecodeResult{0xE000, 3, true}},
		{"replacement character itself", "\xef\xbf\xbd", DecodeResult{RuneError, 3, true}},
		{"overlong nul", "\xc0\x80", DecodeResult{RuneError, 1, false}},
		{"overlong two bytes", "\xc1\xbf", DecodeResult{RuneError, 1, false}},
		{"overlong three bytes", "\xe0\x9f\xbf", DecodeResult{RuneError, 1, false}},
		{"overlong four bytes", "\xf0\x8f\xbf\xbf", DecodeResult{RuneError, 1, false}},
		{"surrogate low", "\xed\xa0\x80", DecodeResult{RuneError, 1, false}},
		{"surrogate high", "\xed\xbf\xbf", DecodeResult{RuneError, 1, false}},
		{"beyond max rune", "\xf4\x90\x80\x80", DecodeResult{RuneError, 1, false}},
		{"lead f5", "\xf5\x80\x80\x80", DecodeResult{RuneError, 1, false}},
		{"lead f8", "\xf8\x88\x80\x80\x80", DecodeResult{RuneError, 1, false}},
		{"lead ff", "\xff", DecodeResult{RuneError, 1, false}},
		{"stray continuation", "\x80a", DecodeResult{RuneError, 1, false}},
		{"truncated three bytes", "\xe2\x82", DecodeResult{RuneError, 1, false}},
		{"truncated four bytes", "\xf0\x9f\x8e", DecodeResult{RuneError, 1, false}},
		{"lone lead", "\xc3", DecodeResult{RuneError, 1, false}},
		{"bad continuation", "\xe2\x28\xa1", DecodeResult{RuneError, 1, false}},
		{"ascii instead of continuation", "\xc3a", DecodeResult{RuneError, 1, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.input); got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got := Decode([]byte(tt.input)); got != tt.want {
				t.Errorf("Decode([]byte(%q)) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestDecodeAgainstStdlib compares Decode with unicode/utf8 for every lead
// byte and second byte, followed by a selection of third and fourth bytes.
func TestDecodeAgainstStdlib(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive comparison")
	}
	b := make([]byte, 4)
	for lead := 0; lead < 256; lead++ {
		b[0] = byte(lead)
		for second := 0; second < 256; second++ {
			b[1] = byte(second)
			for _, third := range []byte{0x41, 0x80, 0x9F, 0xA0, 0xBF, 0xC0} {
				b[2] = third
				for _, fourth := range []byte{0x41, 0x80, 0xBF} {
					b[3] = fourth
					for n := 1; n <= 4; n++ {
						r, size := utf8.DecodeRune(b[:n])
						got := Decode(b[:n])
						if got.Rune != r || got.Size != size {
							t.Fatalf("Decode(% x) = %+v, stdlib returns (%U, %d)", b[:n], got, r, size)
						}
						if want := size > 1 || r != utf8.RuneError; got.Valid != want {
							t.Fatalf("Decode(% x).Valid = %v", b[:n], got.Valid)
						}
					}
				}
			}
		}
	}
}

func TestDecodeRune(t *testing.T) {
	r, size := DecodeRune("€uro")
	if r != '€' || size != 3 {
		t.Errorf("DecodeRune = (%U, %d), want (U+20AC, 3)", r, size)
	}
	r, size = DecodeRune([]byte{0xe2, 0x82})
	if r != RuneError || size != 1 {
		t.Errorf("DecodeRune(truncated) = (%U, %d), want (U+FFFD, 1)", r, size)
	}
}

func TestOneCharLen(t *testing.T) {
	tests := []struct {
		c       byte
		want    int
		checked int
		ok      bool
	}{
		{0x00, 1, 1, true},
		{'a', 1, 1, true},
		{0x7F, 1, 1, true},
		{0x80, 1, 1, false},
		{0xBF, 1, 1, false},
		{0xC0, 2, 1, false},
		{0xC1, 2, 1, false},
		{0xC2, 2, 2, true},
		{0xDF, 2, 2, true},
		{0xE0, 3, 3, true},
		{0xED, 3, 3, true},
		{0xEF, 3, 3, true},
		{0xF0, 4, 4, true},
		{0xF4, 4, 4, true},
		{0xF5, 4, 1, false},
		{0xF7, 4, 1, false},
		{0xF8, 1, 1, false},
		{0xFF, 1, 1, false},
	}

	for _, tt := range tests {
		if got := OneCharLen(tt.c); got != tt.want {
			t.Errorf("OneCharLen(%#02x) = %d, want %d", tt.c, got, tt.want)
		}
		got, ok := OneCharLenChecked(tt.c)
		if got != tt.checked || ok != tt.ok {
			t.Errorf("OneCharLenChecked(%#02x) = (%d, %v), want (%d, %v)", tt.c, got, ok, tt.checked, tt.ok)
		}
	}
}

// TestOneCharLenMatchesEncoding checks that the length tables agree with the
// encoding of every scalar value.
func TestOneCharLenMatchesEncoding(t *testing.T) {
	b := make([]byte, utf8.UTFMax)
	for r := rune(0); r <= MaxRune; r++ {
		if surrogateMin <= r && r <= surrogateMax {
			continue
		}
		n := utf8.EncodeRune(b, r)
		if got := OneCharLen(b[0]); got != n {
			t.Fatalf("OneCharLen(%#02x) = %d, want %d for %U", b[0], got, n, r)
		}
		if got, ok := OneCharLenChecked(b[0]); got != n || !ok {
			t.Fatalf("OneCharLenChecked(%#02x) = (%d, %v), want (%d, true) for %U", b[0], got, ok, n, r)
		}
	}
}

func TestFullChar(t *testing.T) {
	inputs := []string{
		"", "a", "\x80", "\xc3", "\xc3\xa9", "\xe2", "\xe2\x82", "\xe2\x82\xac",
		"\xe0\x80", "\xed\xa0", "\xf0", "\xf0\x9f", "\xf0\x9f\x8e", "\xf0\x8f",
		"\xf4\x90", "\xf5", "\xff", "\xe2\x28", "\xf0\x9f\x28",
	}
	for _, s := range inputs {
		if got, want := FullChar(s), utf8.FullRuneInString(s); got != want {
			t.Errorf("FullChar(%q) = %v, want %v", s, got, want)
		}
	}
}
