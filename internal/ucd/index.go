package ucd

import (
	"unicode"

	"github.com/f3rmion/unilookup/internal/uni"
)

// Named reports whether a code point with database name name takes part in
// name searches. Controls have no database name but are still searchable
// under their synthesized names.
func Named(r rune, name string) bool {
	return name != "" || unicode.IsControl(r)
}

type indexEntry struct {
	cp   rune
	name string
}

// Index is a precomputed, read-only view of a Names source that only
// holds searchable code points. It is safe for concurrent readers.
type Index struct {
	entries []indexEntry
	byRune  map[rune]int
}

// NewIndex scans the full code point space of src once.
func NewIndex(src Names) *Index {
	idx := &Index{byRune: make(map[rune]int)}
	for r := rune(0); r <= uni.MaxCodePoint; r++ {
		name := src.Name(r)
		if !Named(r, name) {
			continue
		}
		idx.byRune[r] = len(idx.entries)
		idx.entries = append(idx.entries, indexEntry{cp: r, name: name})
	}
	return idx
}

// Name returns the database name recorded for r.
func (x *Index) Name(r rune) string {
	if i, ok := x.byRune[r]; ok {
		return x.entries[i].name
	}
	return ""
}

// Range calls fn for every searchable code point in ascending order
// until fn returns false.
func (x *Index) Range(fn func(r rune, name string) bool) {
	for _, e := range x.entries {
		if !fn(e.cp, e.name) {
			return
		}
	}
}

// Len returns the number of searchable code points.
func (x *Index) Len() int {
	return len(x.entries)
}
