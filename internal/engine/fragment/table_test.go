package fragment

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	var zero Table
	if zero.Len() != 0 || !zero.IsEmpty() {
		t.Errorf("zero Table should be empty, got length %d", zero.Len())
	}

	tb := New(nil)
	if tb.Len() != 0 {
		t.Errorf("New(nil) should have length 0, got %d", tb.Len())
	}
	if !tb.IsEmpty() {
		t.Error("New(nil) should be empty")
	}
	if tb.String() != "" {
		t.Errorf("New(nil) String() should be empty, got %q", tb.String())
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  int
	}{
		{"no fragments", nil, 0},
		{"single empty", []string{""}, 0},
		{"only empties", []string{"", "", ""}, 0},
		{"two", []string{"12", "3"}, 3},
		{"with empties", []string{"", "abc", ""}, 3},
		{"unicode", []string{"日本", "語"}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := New(tt.frags)
			if tb.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", tb.Len(), tt.want)
			}
			if tb.IsEmpty() != (tt.want == 0) {
				t.Errorf("IsEmpty() = %v, want %v", tb.IsEmpty(), tt.want == 0)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	tb := FromStrings("hello ", "world")
	if tb.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", tb.Len())
	}

	pos, err := tb.Locate(6)
	if err != nil {
		t.Fatalf("Locate(6): %v", err)
	}
	if pos != (Position{Fragment: 1, Offset: 0}) {
		t.Errorf("Locate(6) = %+v, want {1 0}", pos)
	}
	if b, _ := tb.ByteAt(6); b != 'w' {
		t.Errorf("ByteAt(6) = %q, want 'w'", b)
	}

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 0}},
		{5, Position{0, 5}},
		{10, Position{1, 4}},
	}
	for _, tt := range tests {
		got, err := tb.Locate(tt.offset)
		if err != nil {
			t.Errorf("Locate(%d): %v", tt.offset, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Locate(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestLocateOutOfRange(t *testing.T) {
	tb := FromStrings("ab", "c")
	for _, off := range []int{-1, 3, 4, 100} {
		_, err := tb.Locate(off)
		if !errors.Is(err, ErrOffsetOutOfRange) {
			t.Errorf("Locate(%d) error = %v, want ErrOffsetOutOfRange", off, err)
		}
		var oe *OffsetError
		if !errors.As(err, &oe) || oe.Offset != off || oe.Len != 3 {
			t.Errorf("Locate(%d) error = %#v, want *OffsetError", off, err)
		}
	}

	if _, err := New(nil).Locate(0); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Locate(0) on empty table error = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestLocateSkipsEmptyFragments(t *testing.T) {
	tb := FromStrings("", "ab", "", "", "cd", "")
	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 0}},
		{1, Position{1, 1}},
		{2, Position{4, 0}},
		{3, Position{4, 1}},
	}
	for _, tt := range tests {
		got, err := tb.Locate(tt.offset)
		if err != nil {
			t.Fatalf("Locate(%d): %v", tt.offset, err)
		}
		if got != tt.want {
			t.Errorf("Locate(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestLocateMatchesConcatenation(t *testing.T) {
	f := func(frags []string) bool {
		tb := New(frags)
		joined := strings.Join(frags, "")
		for o := 0; o < len(joined); o++ {
			pos, err := tb.Locate(o)
			if err != nil {
				return false
			}
			if tb.Fragment(pos.Fragment)[pos.Offset] != joined[o] {
				return false
			}
		}
		_, err := tb.Locate(len(joined))
		return errors.Is(err, ErrOffsetOutOfRange)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLenMatchesConcatenation(t *testing.T) {
	f := func(frags []string) bool {
		return New(frags).Len() == len(strings.Join(frags, ""))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFragments(t *testing.T) {
	tb := FromStrings("", "ab", "c", "")
	wantFrags := []string{"", "ab", "c", ""}
	wantOffsets := []int{0, 0, 2, 3}

	// Twice, to check that each call starts over.
	for round := 0; round < 2; round++ {
		it := tb.Fragments()
		i := 0
		for it.Next() {
			if it.Index() != i {
				t.Errorf("Index() = %d, want %d", it.Index(), i)
			}
			if it.Fragment() != wantFrags[i] {
				t.Errorf("Fragment() = %q, want %q", it.Fragment(), wantFrags[i])
			}
			if it.Offset() != wantOffsets[i] {
				t.Errorf("Offset() = %d, want %d", it.Offset(), wantOffsets[i])
			}
			i++
		}
		if i != len(wantFrags) {
			t.Errorf("round %d: visited %d fragments, want %d", round, i, len(wantFrags))
		}
		if it.Next() {
			t.Error("Next() after exhaustion should return false")
		}
	}
}

func TestEmptyFragmentsAreTransparent(t *testing.T) {
	a := FromStrings("", "abc", "")
	b := FromStrings("abc")

	if a.Len() != b.Len() {
		t.Errorf("Len() = %d, want %d", a.Len(), b.Len())
	}
	if a.String() != b.String() {
		t.Errorf("String() = %q, want %q", a.String(), b.String())
	}
	if !a.Equal(b) || a.Sum64() != b.Sum64() {
		t.Error("tables should be equal with equal hashes")
	}
	for o := 0; o < 3; o++ {
		ba, _ := a.ByteAt(o)
		bb, _ := b.ByteAt(o)
		if ba != bb {
			t.Errorf("ByteAt(%d) = %q, want %q", o, ba, bb)
		}
	}
	if got, want := collectRunes(t, a), collectRunes(t, b); got != want {
		t.Errorf("runes = %q, want %q", got, want)
	}
	if a.Index("bc") != 1 || a.Width() != b.Width() {
		t.Error("search and width should ignore empty fragments")
	}
}

func TestConcat(t *testing.T) {
	left := FromStrings("a", "b")
	right := FromStrings("c", "d")
	tb := Concat(left, right)
	if got := tb.String(); got != "abcd" {
		t.Errorf("String() = %q, want %q", got, "abcd")
	}
	if tb.FragmentCount() != 4 {
		t.Errorf("FragmentCount() = %d, want 4", tb.FragmentCount())
	}

	// Concatenating sub-views copies only their visible part.
	sub, _ := FromStrings("0123", "4", "56").Slice(1, 6)
	tb = Concat(sub, right, Table{})
	if got := tb.String(); got != "12345cd" {
		t.Errorf("String() = %q, want %q", got, "12345cd")
	}

	nested := Concat(Concat(FromStrings("a", "b"), FromStrings("c", "d")), Concat(FromStrings("e", "f"), FromStrings("g", "h")))
	flat := Concat(FromStrings("a", "b"), FromStrings("c", "d"), FromStrings("e", "f"), FromStrings("g", "h"))
	if !nested.Equal(flat) || nested.String() != "abcdefgh" {
		t.Errorf("nested = %q, flat = %q", nested.String(), flat.String())
	}
}
