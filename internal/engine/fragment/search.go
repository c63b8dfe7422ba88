package fragment

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// IndexByte returns the logical offset of the first instance of c, or -1.
func (t Table) IndexByte(c byte) int {
	return t.indexByteFrom(c, 0)
}

func (t Table) indexByteFrom(c byte, from int) int {
	p := piecesAt(t, from)
	offset := from
	for piece := p.peek(); piece != ""; piece = p.peek() {
		if i := strings.IndexByte(piece, c); i >= 0 {
			return offset + i
		}
		offset += len(piece)
		p.skip(len(piece))
	}
	return -1
}

// Index returns the logical offset of the first instance of substr, or -1.
// Matches may span any number of fragments.
func (t Table) Index(substr string) int {
	n := len(substr)
	switch {
	case n == 0:
		return 0
	case n > t.Len():
		return -1
	}
	for from := 0; from+n <= t.Len(); {
		i := t.indexByteFrom(substr[0], from)
		if i < 0 || i+n > t.Len() {
			return -1
		}
		if t.matchAt(i, substr) {
			return i
		}
		from = i + 1
	}
	return -1
}

// IndexRune returns the logical offset of the first instance of r, or -1.
// Malformed sequences never match.
func (t Table) IndexRune(r rune) int {
	if 0 <= r && r < utf8.RuneSelf {
		return t.IndexByte(byte(r))
	}
	if !utf8.ValidRune(r) {
		return -1
	}
	return t.indexFunc(func(c rune) bool { return c == r }, false)
}

// LastIndexRune returns the logical offset of the last instance of r, or -1.
func (t Table) LastIndexRune(r rune) int {
	if !utf8.ValidRune(r) {
		return -1
	}
	return t.indexFunc(func(c rune) bool { return c == r }, true)
}

// IndexAny returns the logical offset of the first rune that is also in
// chars, or -1.
func (t Table) IndexAny(chars string) int {
	if chars == "" {
		return -1
	}
	return t.indexFunc(func(c rune) bool { return strings.ContainsRune(chars, c) }, false)
}

// LastIndexAny returns the logical offset of the last rune that is also in
// chars, or -1.
func (t Table) LastIndexAny(chars string) int {
	if chars == "" {
		return -1
	}
	return t.indexFunc(func(c rune) bool { return strings.ContainsRune(chars, c) }, true)
}

// Contains reports whether substr is within the logical text.
func (t Table) Contains(substr string) bool {
	return t.Index(substr) >= 0
}

// ContainsRune reports whether r is within the logical text.
func (t Table) ContainsRune(r rune) bool {
	return t.IndexRune(r) >= 0
}

// ContainsAny reports whether any rune of chars is within the logical text.
func (t Table) ContainsAny(chars string) bool {
	return t.IndexAny(chars) >= 0
}

// indexFunc scans runes front to back, stepping over malformed bytes.
// With last set it keeps scanning and returns the final match.
func (t Table) indexFunc(match func(rune) bool, last bool) int {
	c := NewCursor(t)
	found := -1
	for {
		offset := c.Offset()
		r, _, err := c.ReadRune()
		if errors.Is(err, io.EOF) {
			return found
		}
		if err != nil {
			continue
		}
		if match(r) {
			if !last {
				return offset
			}
			found = offset
		}
	}
}
