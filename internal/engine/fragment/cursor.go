package fragment

import (
	"io"
	"unicode/utf8"
)

// Cursor reads a table's logical text as bytes or runes.
// It implements io.Reader, io.ByteReader and io.RuneReader.
//
// A cursor only moves forward. Create a new one to start over.
type Cursor struct {
	table  Table
	idx    int    // Index of the current fragment
	cur    string // Current fragment; "" once the cursor is exhausted
	pos    int    // Byte offset within cur; always < len(cur) at rest
	offset int    // Logical byte offset

	// Bytes of a rune whose encoding crosses a fragment boundary.
	// Empty between reads.
	carry [utf8.UTFMax]byte
	n     int
}

// NewCursor creates a cursor at the start of the table.
func NewCursor(t Table) *Cursor {
	c := &Cursor{table: t, idx: -1}
	c.nextFragment()
	return c
}

// NewCursorAt creates a cursor positioned at a logical byte offset.
// An offset equal to t.Len() yields an exhausted cursor.
func NewCursorAt(t Table, offset int) (*Cursor, error) {
	if offset == t.Len() && offset >= 0 {
		return &Cursor{table: t, idx: t.FragmentCount(), offset: offset}, nil
	}
	pos, err := t.Locate(offset)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:  t,
		idx:    pos.Fragment,
		cur:    t.Fragment(pos.Fragment),
		pos:    pos.Offset,
		offset: offset,
	}, nil
}

// Offset returns the logical byte offset of the next byte to be read.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of bytes not yet read.
func (c *Cursor) Remaining() int {
	return c.table.Len() - c.offset
}

// AtEnd returns true if every byte has been read.
func (c *Cursor) AtEnd() bool {
	return c.cur == ""
}

// nextFragment moves to the next non-empty fragment.
func (c *Cursor) nextFragment() {
	c.pos = 0
	for c.idx++; c.idx < c.table.FragmentCount(); c.idx++ {
		if f := c.table.Fragment(c.idx); f != "" {
			c.cur = f
			return
		}
	}
	c.cur = ""
}

// advance consumes n bytes, crossing fragments as needed.
func (c *Cursor) advance(n int) {
	c.offset += n
	for n > 0 && c.cur != "" {
		left := len(c.cur) - c.pos
		if n < left {
			c.pos += n
			return
		}
		n -= left
		c.nextFragment()
	}
}

// ReadByte returns the next raw byte. It never reports a decode error.
func (c *Cursor) ReadByte() (byte, error) {
	if c.cur == "" {
		return 0, io.EOF
	}
	b := c.cur[c.pos]
	c.advance(1)
	return b, nil
}

// Read copies raw bytes into p.
func (c *Cursor) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.cur == "" {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && c.cur != "" {
		k := copy(p[n:], c.cur[c.pos:])
		n += k
		c.advance(k)
	}
	return n, nil
}

// ReadRune decodes the next rune. At the end of the text it returns io.EOF.
//
// A rune whose bytes are split between fragments is reassembled. Malformed
// input is reported as a *DecodeError and is never replaced with
// utf8.RuneError. After ErrInvalidSequence the cursor has moved past one
// byte; after ErrTruncatedSequence it is at the end.
func (c *Cursor) ReadRune() (rune, int, error) {
	if c.cur == "" {
		return 0, 0, io.EOF
	}
	rest := c.cur[c.pos:]
	if rest[0] < utf8.RuneSelf {
		c.advance(1)
		return rune(rest[0]), 1, nil
	}
	if !utf8.FullRuneInString(rest) {
		return c.readCarried()
	}

	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError && size == 1 {
		return 0, 0, c.fail(ErrInvalidSequence, []byte{rest[0]}, 1)
	}
	c.advance(size)
	return r, size, nil
}

// readCarried decodes a rune that starts at the tail of the current fragment
// and continues into the following non-empty fragments.
func (c *Cursor) readCarried() (rune, int, error) {
	c.n = copy(c.carry[:], c.cur[c.pos:])
	defer func() { c.n = 0 }()

	// Peek ahead without moving the cursor.
	idx := c.idx
	for !utf8.FullRune(c.carry[:c.n]) {
		idx++
		for idx < c.table.FragmentCount() && c.table.Fragment(idx) == "" {
			idx++
		}
		if idx >= c.table.FragmentCount() {
			// Everything left is in the carry buffer.
			return 0, 0, c.fail(ErrTruncatedSequence, c.carry[:c.n], c.n)
		}
		c.n += copy(c.carry[c.n:], c.table.Fragment(idx))
	}

	r, size := utf8.DecodeRune(c.carry[:c.n])
	if r == utf8.RuneError && size == 1 {
		return 0, 0, c.fail(ErrInvalidSequence, c.carry[:1], 1)
	}
	c.advance(size)
	return r, size, nil
}

// fail builds a DecodeError for the bytes at the cursor and skips skip bytes.
func (c *Cursor) fail(kind error, bad []byte, skip int) error {
	err := &DecodeError{
		Offset: c.offset,
		Bytes:  append([]byte(nil), bad...),
		Err:    kind,
	}
	c.advance(skip)
	return err
}
