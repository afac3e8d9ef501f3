// Package details derives secondary properties of a code point for display.
package details

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	gopinyin "github.com/mozillazg/go-pinyin"
	"golang.org/x/text/unicode/norm"
)

// Properties holds everything shown next to a record in detail views.
type Properties struct {
	Category string   `json:"category"`         // General category, e.g. "Lu"
	Script   string   `json:"script,omitempty"` // e.g. "Latin", "Han"
	UTF8     string   `json:"utf8,omitempty"`   // e.g. "E2 82 AC"
	UTF16    string   `json:"utf16,omitempty"`  // e.g. "D83D DE00"
	NFD      string   `json:"nfd,omitempty"`    // Canonical decomposition, when it differs
	NFKD     string   `json:"nfkd,omitempty"`   // Compatibility decomposition, when it differs
	Width    int      `json:"width"`            // Terminal cells
	Pinyin   []string `json:"pinyin,omitempty"` // Mandarin readings for Han ideographs
}

// Inspector computes Properties. It is safe for concurrent use.
type Inspector struct {
	args gopinyin.Args
}

// NewInspector creates an inspector that reports pinyin with tone marks
// and every known reading.
func NewInspector() *Inspector {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true
	return &Inspector{args: args}
}

// Inspect returns the properties of r.
func (in *Inspector) Inspect(r rune) Properties {
	p := Properties{
		Category: Category(r),
		Script:   Script(r),
		Width:    runewidth.RuneWidth(r),
	}

	if !utf8.ValidRune(r) {
		// Surrogates have no UTF-8 or UTF-16 encoding of their own.
		return p
	}

	s := string(r)
	p.UTF8 = hexBytes([]byte(s))
	p.UTF16 = hexUnits(utf16.Encode([]rune{r}))
	if d := norm.NFD.String(s); d != s {
		p.NFD = codePoints(d)
	}
	if d := norm.NFKD.String(s); d != s {
		p.NFKD = codePoints(d)
	}
	if unicode.Is(unicode.Han, r) {
		p.Pinyin = in.Pinyin(r)
	}
	return p
}

// Pinyin returns the Mandarin readings of a Han ideograph.
func (in *Inspector) Pinyin(r rune) []string {
	result := gopinyin.Pinyin(string(r), in.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Category returns the two-letter general category of r, "Cn" when unassigned.
func Category(r rune) string {
	for name, table := range unicode.Categories {
		// Skip the one-letter groups and "LC".
		if len(name) != 2 || !unicode.IsLower(rune(name[1])) {
			continue
		}
		if unicode.Is(table, r) {
			return name
		}
	}
	return "Cn"
}

// Script returns the script name of r, or "" when it has none.
func Script(r rune) string {
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return name
		}
	}
	return ""
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}

func hexUnits(u []uint16) string {
	parts := make([]string, len(u))
	for i, c := range u {
		parts[i] = fmt.Sprintf("%04X", c)
	}
	return strings.Join(parts, " ")
}

func codePoints(s string) string {
	var parts []string
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
