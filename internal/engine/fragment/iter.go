package fragment

import (
	"errors"
	"io"
)

// ByteIterator iterates over the raw bytes of a table.
type ByteIterator struct {
	cursor *Cursor
	b      byte
	offset int
}

// Bytes returns an iterator over all bytes in the table.
func (t Table) Bytes() *ByteIterator {
	return &ByteIterator{cursor: NewCursor(t)}
}

// Next advances to the next byte.
// Returns true if there is a byte, false if iteration is complete.
func (it *ByteIterator) Next() bool {
	it.offset = it.cursor.Offset()
	b, err := it.cursor.ReadByte()
	if err != nil {
		return false
	}
	it.b = b
	return true
}

// Byte returns the current byte.
func (it *ByteIterator) Byte() byte {
	return it.b
}

// Offset returns the logical offset of the current byte.
func (it *ByteIterator) Offset() int {
	return it.offset
}

// RuneIterator iterates over the runes of a table.
// Iteration stops at the first malformed sequence; Err reports it.
type RuneIterator struct {
	cursor  *Cursor
	current rune
	size    int
	offset  int
	err     error
}

// Runes returns an iterator over all runes in the table.
func (t Table) Runes() *RuneIterator {
	return &RuneIterator{cursor: NewCursor(t)}
}

// Next advances to the next rune.
// Returns true if there is a rune, false if iteration is complete or failed.
func (it *RuneIterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.offset = it.cursor.Offset()
	r, size, err := it.cursor.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			it.err = err
		}
		it.size = 0
		return false
	}
	it.current, it.size = r, size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current rune.
func (it *RuneIterator) Size() int {
	return it.size
}

// Offset returns the logical byte offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.offset
}

// Err returns the decode error that stopped iteration, if any.
func (it *RuneIterator) Err() error {
	return it.err
}

// RuneCount returns the number of runes in the table.
func (t Table) RuneCount() (int, error) {
	it := t.Runes()
	n := 0
	for it.Next() {
		n++
	}
	return n, it.Err()
}

// Validate reports the first malformed UTF-8 sequence in the logical text,
// or nil if the whole text decodes.
func (t Table) Validate() error {
	it := t.Runes()
	for it.Next() {
	}
	return it.Err()
}
