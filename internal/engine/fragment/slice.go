package fragment

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Slice returns a view of the logical bytes [start, end). The view shares
// this table's fragments. Offsets need not fall on rune boundaries; a view
// that cuts a rune reports decode errors when read as runes.
func (t Table) Slice(start, end int) (Table, error) {
	if start > end {
		return Table{}, fmt.Errorf("slice [%d:%d]: %w", start, end, ErrRangeInvalid)
	}
	if start < 0 {
		return Table{}, &OffsetError{Offset: start, Len: t.Len()}
	}
	if end > t.Len() {
		return Table{}, &OffsetError{Offset: end, Len: t.Len()}
	}
	if start == 0 && end == t.Len() {
		return t, nil
	}
	return t.window(t.lo+start, t.lo+end), nil
}

// SplitAt splits the table into [0, offset) and [offset, Len()).
func (t Table) SplitAt(offset int) (Table, Table, error) {
	if offset < 0 || offset > t.Len() {
		return Table{}, Table{}, &OffsetError{Offset: offset, Len: t.Len()}
	}
	return t.window(t.lo, t.lo+offset), t.window(t.lo+offset, t.hi), nil
}

// TrimSpace returns a view without leading and trailing white space.
func (t Table) TrimSpace() Table {
	return t.TrimLeftSpace().TrimRightSpace()
}

// TrimLeftSpace returns a view without leading white space.
func (t Table) TrimLeftSpace() Table {
	c := NewCursor(t)
	start := 0
	for {
		r, _, err := c.ReadRune()
		if err != nil || !unicode.IsSpace(r) {
			break
		}
		start = c.Offset()
	}
	if start == 0 {
		return t
	}
	return t.window(t.lo+start, t.hi)
}

// TrimRightSpace returns a view without trailing white space.
func (t Table) TrimRightSpace() Table {
	end := t.Len()
	for end > 0 {
		r, size := t.lastRune(end)
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if end == t.Len() {
		return t
	}
	return t.window(t.lo, t.lo+end)
}

// CutLastRune removes the final rune. It returns the shortened view, the
// rune, and false if the table was empty. A malformed final byte is returned
// as utf8.RuneError and removed alone.
func (t Table) CutLastRune() (Table, rune, bool) {
	if t.IsEmpty() {
		return t, 0, false
	}
	r, size := t.lastRune(t.Len())
	return t.window(t.lo, t.hi-size), r, true
}

// lastRune decodes the rune ending at the logical offset end (> 0).
func (t Table) lastRune(end int) (rune, int) {
	start := end - 1
	for start > 0 && end-start < utf8.UTFMax {
		if b, _ := t.ByteAt(start); isUTF8Start(b) {
			break
		}
		start--
	}
	c, err := NewCursorAt(t, start)
	if err != nil {
		return utf8.RuneError, 1
	}
	r, size, err := c.ReadRune()
	if err != nil || start+size != end {
		return utf8.RuneError, 1
	}
	return r, size
}

// isUTF8Start returns true if the byte is the start of a UTF-8 sequence.
func isUTF8Start(b byte) bool {
	// Continuation bytes are 10xxxxxx.
	return b&0xC0 != 0x80
}
