package fragment

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the logical text to w one fragment at a time. No decoding
// takes place, so the only possible error is one returned by w.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 0; i < t.FragmentCount(); i++ {
		f := t.Fragment(i)
		if f == "" {
			continue
		}
		n, err := io.WriteString(w, f)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the logical text as a single string.
// This is the one operation that copies the fragments.
func (t Table) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// Format implements fmt.Formatter. Plain %s and %v stream the fragments;
// other verbs and flags format the materialized string.
func (t Table) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if _, ok := f.Width(); !ok && !f.Flag('#') && !f.Flag('-') {
			if _, ok := f.Precision(); !ok {
				_, _ = t.WriteTo(f)
				return
			}
		}
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), t.String())
}
