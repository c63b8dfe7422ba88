// Package fragment provides a read-only text view made of borrowed string
// fragments.
//
// A Table presents an ordered list of fragments as one logical string
// without concatenating them. The fragments are never copied; the table keeps
// a single slice of cumulative end offsets so that a logical byte offset can
// be mapped to its fragment in O(log n).
//
// Key features:
//   - O(1) length, O(log n) offset lookup
//   - Rune decoding that reassembles UTF-8 sequences split across fragments
//   - Rendering, equality and hashing independent of how text is partitioned
//   - Sub-views (Slice, SplitAt, Trim*) that share the caller's fragments
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	t := fragment.FromStrings("hello ", "wor", "ld")
//	t.Len()                  // 11
//	pos, _ := t.Locate(6)    // {Fragment: 1, Offset: 0}
//	t.WriteTo(os.Stdout)     // hello world
//	t.Equal(fragment.FromStrings("hello world")) // true
//
// The caller owns the fragment slice passed to New and must not modify it
// while the table, or any cursor or view derived from it, is in use.
package fragment
