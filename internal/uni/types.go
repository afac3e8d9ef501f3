// Package uni provides the core types shared by every unilookup front end.
package uni

import (
	"fmt"
	"unicode"
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint = 0x10FFFF

// Record describes one resolved Unicode character.
type Record struct {
	Query string `json:"query" yaml:"query"` // Input that produced this record, as typed
	Char  string `json:"char" yaml:"char"`   // Display glyph, or a mnemonic for ASCII controls (e.g., "LF")
	CP    rune   `json:"cp" yaml:"cp"`       // Code point
	Hex   string `json:"hex" yaml:"hex"`     // U+XXXX notation, always derived from CP
	Name  string `json:"name" yaml:"name"`   // Canonical or synthesized name
}

// NewRecord builds a record for cp. Hex is filled in from cp.
func NewRecord(query string, cp rune, char, name string) Record {
	return Record{
		Query: query,
		Char:  char,
		CP:    cp,
		Hex:   Hex(cp),
		Name:  name,
	}
}

// Hex formats cp as "U+" followed by at least four uppercase hex digits.
func Hex(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}

// Display returns Char in a form that is safe to print in a terminal cell.
// ASCII control records already carry a mnemonic and are returned as is.
// Other invisible code points become "·" and combining marks are shown on
// a dotted circle.
func (r Record) Display() string {
	cp := r.CP
	switch {
	case cp < 0x20 || cp == 0x7F:
		return r.Char
	case unicode.IsControl(cp), unicode.Is(unicode.Cs, cp), !unicode.IsPrint(cp) && !unicode.IsSpace(cp):
		return "·"
	case unicode.In(cp, unicode.Mn, unicode.Me):
		return "◌" + r.Char
	}
	return r.Char
}

// Entry is one row handed to a renderer: either a Record or an error message.
type Entry struct {
	Record *Record `json:"record,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// IsError reports whether the entry carries an error instead of a record.
func (e Entry) IsError() bool {
	return e.Record == nil
}

// RecordEntry wraps r in an Entry.
func RecordEntry(r Record) Entry {
	return Entry{Record: &r}
}

// ErrorEntry wraps err in an Entry.
func ErrorEntry(err error) Entry {
	return Entry{Error: err.Error()}
}

// Records returns the records of entries, skipping error entries.
func Records(entries []Entry) []Record {
	var out []Record
	for _, e := range entries {
		if e.Record != nil {
			out = append(out, *e.Record)
		}
	}
	return out
}
