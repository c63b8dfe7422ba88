package fragment

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// eastAsian treats ambiguous-width characters as wide.
var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

// Width returns the monospace display width of the logical text, summed per
// fragment. A grapheme cluster split across fragments is measured in parts.
func (t Table) Width() int {
	w := 0
	for i := 0; i < t.FragmentCount(); i++ {
		w += uniseg.StringWidth(t.Fragment(i))
	}
	return w
}

// WidthEastAsian is like Width but counts East Asian ambiguous characters
// as two columns.
func (t Table) WidthEastAsian() int {
	w := 0
	for i := 0; i < t.FragmentCount(); i++ {
		w += eastAsian.StringWidth(t.Fragment(i))
	}
	return w
}
