package utf8chars

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("Hello, 世界! Grüße 🎉 ", 64)

func BenchmarkIsValid(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		IsValid(benchText)
	}
}

func BenchmarkCharsLen(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		CharsLen(benchText)
	}
}

func BenchmarkToRunes(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ToRunes(benchText)
	}
}

func BenchmarkRunesAll(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		for range AsRunes(benchText).All() {
		}
	}
}

func BenchmarkBack(b *testing.B) {
	v := AsChars(benchText)
	for i := 0; i < b.N; i++ {
		v.Back()
	}
}
