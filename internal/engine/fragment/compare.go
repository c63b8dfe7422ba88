package fragment

import (
	"hash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// pieces walks the non-empty remainders of a table's fragments.
type pieces struct {
	table Table
	next  int
	rest  string
}

func piecesAt(t Table, offset int) pieces {
	pos, err := t.Locate(offset)
	if err != nil {
		return pieces{table: t, next: t.FragmentCount()}
	}
	return pieces{
		table: t,
		next:  pos.Fragment + 1,
		rest:  t.Fragment(pos.Fragment)[pos.Offset:],
	}
}

// peek returns the unread part of the current fragment, or "" at the end.
func (p *pieces) peek() string {
	for p.rest == "" && p.next < p.table.FragmentCount() {
		p.rest = p.table.Fragment(p.next)
		p.next++
	}
	return p.rest
}

func (p *pieces) skip(n int) {
	p.rest = p.rest[n:]
}

// Equal reports whether two tables hold the same logical bytes, however the
// bytes are split into fragments.
func (t Table) Equal(other Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	return t.Compare(other) == 0
}

// Compare compares two tables lexicographically by bytes and returns -1, 0
// or +1.
func (t Table) Compare(other Table) int {
	a, b := piecesAt(t, 0), piecesAt(other, 0)
	for {
		pa, pb := a.peek(), b.peek()
		switch {
		case pa == "" && pb == "":
			return 0
		case pa == "":
			return -1
		case pb == "":
			return 1
		}
		n := min(len(pa), len(pb))
		if c := strings.Compare(pa[:n], pb[:n]); c != 0 {
			return c
		}
		a.skip(n)
		b.skip(n)
	}
}

// EqualString reports whether the logical text equals s.
func (t Table) EqualString(s string) bool {
	return t.Len() == len(s) && t.HasPrefix(s)
}

// HasPrefix reports whether the logical text begins with prefix.
func (t Table) HasPrefix(prefix string) bool {
	if len(prefix) > t.Len() {
		return false
	}
	return t.matchAt(0, prefix)
}

// HasSuffix reports whether the logical text ends with suffix.
func (t Table) HasSuffix(suffix string) bool {
	if len(suffix) > t.Len() {
		return false
	}
	return t.matchAt(t.Len()-len(suffix), suffix)
}

// matchAt reports whether s occurs at the logical offset. The caller
// guarantees offset+len(s) <= t.Len().
func (t Table) matchAt(offset int, s string) bool {
	p := piecesAt(t, offset)
	for s != "" {
		piece := p.peek()
		n := min(len(piece), len(s))
		if piece[:n] != s[:n] {
			return false
		}
		p.skip(n)
		s = s[n:]
	}
	return true
}

// Hash writes every logical byte, in order, to h. Tables that are Equal
// produce the same hash state.
func (t Table) Hash(h hash.Hash) {
	for i := 0; i < t.FragmentCount(); i++ {
		_, _ = io.WriteString(h, t.Fragment(i))
	}
}

// Sum64 returns the 64-bit xxHash of the logical text.
func (t Table) Sum64() uint64 {
	d := xxhash.New()
	t.Hash(d)
	return d.Sum64()
}
