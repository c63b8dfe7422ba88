package fragment

import "sort"

// Position identifies a byte inside a table: the fragment that holds it and
// the offset within that fragment.
type Position struct {
	Fragment int
	Offset   int
}

// Table is an immutable sequence of borrowed text fragments read as one
// logical string. Tables are cheap to copy; copies and sub-views share the
// underlying fragments.
//
// The zero Table is empty and ready to use.
type Table struct {
	frags []string // borrowed from the caller, never written
	ends  []int    // ends[i] is the absolute offset just past frags[i]

	// Visible window. A table built by New sees everything; sub-views narrow
	// the byte window and the fragment range without touching frags or ends.
	lo, hi      int
	first, last int
}

// New creates a table over fragments. The slice is retained, not copied.
// Zero-length fragments are allowed and are skipped by every traversal.
func New(fragments []string) Table {
	ends := make([]int, len(fragments))
	total := 0
	for i, f := range fragments {
		total += len(f)
		ends[i] = total
	}
	return Table{
		frags: fragments,
		ends:  ends,
		hi:    total,
		last:  len(fragments),
	}
}

// FromStrings creates a table from its arguments.
func FromStrings(fragments ...string) Table {
	return New(fragments)
}

// Concat returns a table reading the given tables one after another.
// Only string headers are copied; text bytes stay where they are.
func Concat(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += t.FragmentCount()
	}
	frags := make([]string, 0, n)
	for _, t := range tables {
		for i := 0; i < t.FragmentCount(); i++ {
			frags = append(frags, t.Fragment(i))
		}
	}
	return New(frags)
}

// Len returns the total byte length of the logical text.
func (t Table) Len() int {
	return t.hi - t.lo
}

// IsEmpty returns true if the table holds no bytes.
func (t Table) IsEmpty() bool {
	return t.hi == t.lo
}

// FragmentCount returns the number of fragments visible through this table,
// including zero-length ones.
func (t Table) FragmentCount() int {
	return t.last - t.first
}

// Fragment returns fragment i, clipped to this table's window.
// Returns "" if i is out of range.
func (t Table) Fragment(i int) string {
	if i < 0 || i >= t.FragmentCount() {
		return ""
	}
	return t.clip(t.first + i)
}

// clip returns frags[abs] restricted to [lo, hi).
func (t Table) clip(abs int) string {
	f := t.frags[abs]
	start := t.ends[abs] - len(f)
	from, to := 0, len(f)
	if t.lo > start {
		from = t.lo - start
	}
	if t.hi < t.ends[abs] {
		to = t.hi - start
	}
	if from >= to {
		return ""
	}
	return f[from:to]
}

// Locate maps a logical byte offset to the fragment holding that byte.
// An offset on a fragment boundary belongs to the next non-empty fragment.
func (t Table) Locate(offset int) (Position, error) {
	if offset < 0 || offset >= t.Len() {
		return Position{}, &OffsetError{Offset: offset, Len: t.Len()}
	}
	abs := t.lo + offset
	i := t.search(abs)
	start := t.ends[i] - len(t.frags[i])
	if t.lo > start {
		start = t.lo
	}
	return Position{Fragment: i - t.first, Offset: abs - start}, nil
}

// ByteAt returns the byte at the given logical offset.
func (t Table) ByteAt(offset int) (byte, error) {
	pos, err := t.Locate(offset)
	if err != nil {
		return 0, err
	}
	return t.Fragment(pos.Fragment)[pos.Offset], nil
}

// search returns the first visible fragment whose end lies past abs.
// Empty fragments never qualify, since their end equals their start.
func (t Table) search(abs int) int {
	n := t.last - t.first
	return t.first + sort.Search(n, func(k int) bool {
		return t.ends[t.first+k] > abs
	})
}

// window returns a view of the absolute byte range [lo, hi).
func (t Table) window(lo, hi int) Table {
	v := Table{frags: t.frags, ends: t.ends, lo: lo, hi: hi, first: t.first, last: t.first}
	if lo == hi {
		return v
	}
	v.first = t.search(lo)
	n := t.last - t.first
	v.last = t.first + sort.Search(n, func(k int) bool {
		return t.ends[t.first+k] >= hi
	}) + 1
	return v
}

// FragmentIterator iterates over the fragments of a table in stored order.
type FragmentIterator struct {
	table  Table
	idx    int
	frag   string
	offset int
}

// Fragments returns an iterator over all fragments, zero-length ones
// included. Each call starts over from the first fragment.
func (t Table) Fragments() *FragmentIterator {
	return &FragmentIterator{table: t, idx: -1}
}

// Next advances to the next fragment.
// Returns true if there is a fragment, false if iteration is complete.
func (it *FragmentIterator) Next() bool {
	if it.idx >= it.table.FragmentCount() {
		return false
	}
	it.offset += len(it.frag)
	it.idx++
	if it.idx >= it.table.FragmentCount() {
		it.frag = ""
		return false
	}
	it.frag = it.table.Fragment(it.idx)
	return true
}

// Fragment returns the current fragment.
func (it *FragmentIterator) Fragment() string {
	return it.frag
}

// Index returns the index of the current fragment.
func (it *FragmentIterator) Index() int {
	return it.idx
}

// Offset returns the logical byte offset of the start of the current fragment.
func (it *FragmentIterator) Offset() int {
	return it.offset
}
