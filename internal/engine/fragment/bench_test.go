package fragment

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// generateFragments splits text of the given size into fragments of
// fragSize bytes, cutting through multi-byte runes.
func generateFragments(size, fragSize int) []string {
	text := strings.Repeat("the quick brown 狐 jumps over 🐕 ", size/40+1)[:size]
	frags := make([]string, 0, size/fragSize+1)
	for len(text) > 0 {
		n := min(fragSize, len(text))
		frags = append(frags, text[:n])
		text = text[n:]
	}
	return frags
}

func BenchmarkNew(b *testing.B) {
	frags := generateFragments(1<<20, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(frags)
	}
}

func BenchmarkLocate(b *testing.B) {
	tb := New(generateFragments(1<<20, 7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tb.Locate(i % tb.Len())
	}
}

func BenchmarkRunes(b *testing.B) {
	for _, fragSize := range []int{3, 64, 4096} {
		tb := New(generateFragments(1<<16, fragSize))
		b.Run(fmt.Sprintf("frag%d", fragSize), func(b *testing.B) {
			b.SetBytes(int64(tb.Len()))
			for i := 0; i < b.N; i++ {
				it := tb.Runes()
				for it.Next() {
				}
			}
		})
	}
}

func BenchmarkWriteTo(b *testing.B) {
	tb := New(generateFragments(1<<16, 64))
	b.SetBytes(int64(tb.Len()))
	for i := 0; i < b.N; i++ {
		_, _ = tb.WriteTo(io.Discard)
	}
}

func BenchmarkEqual(b *testing.B) {
	x := New(generateFragments(1<<16, 64))
	y := New(generateFragments(1<<16, 37))
	b.SetBytes(int64(x.Len()))
	for i := 0; i < b.N; i++ {
		_ = x.Equal(y)
	}
}

func BenchmarkSum64(b *testing.B) {
	tb := New(generateFragments(1<<16, 64))
	b.SetBytes(int64(tb.Len()))
	for i := 0; i < b.N; i++ {
		_ = tb.Sum64()
	}
}
