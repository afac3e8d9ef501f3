package lookup

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

// Search returns every code point whose display name contains the uppercased
// fragment, in ascending code point order. Code points without a name are
// skipped; controls are matched on their synthesized names.
//
// Without an index this calls the name source for all 0x110000 code points.
func (e *Engine) Search(fragment string) []uni.Record {
	needle := cases.Upper(language.Und).String(strings.TrimSpace(fragment))

	var out []uni.Record
	visit := func(r rune, name string) bool {
		display := displayName(r, name)
		if strings.Contains(display, needle) {
			out = append(out, uni.NewRecord(fragment, r, glyph(r), display))
		}
		return true
	}

	if rg, ok := e.names.(Ranger); ok {
		rg.Range(visit)
	} else {
		for r := rune(0); r <= uni.MaxCodePoint; r++ {
			name := e.names.Name(r)
			if !ucd.Named(r, name) {
				continue
			}
			visit(r, name)
		}
	}

	slices.SortStableFunc(out, func(a, b uni.Record) int {
		return cmp.Compare(a.CP, b.CP)
	})
	return out
}
