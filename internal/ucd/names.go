// Package ucd exposes the Unicode name database and the ASCII control tables.
package ucd

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Hangul syllable composition constants (Unicode 3.12).
const (
	hangulBase  = 0xAC00
	hangulEnd   = 0xD7A3
	hangulJungN = 21
	hangulJongN = 28
)

var (
	hangulCho = []string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB",
		"S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	hangulJung = []string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O",
		"WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU",
		"EU", "YI", "I",
	}
	hangulJong = []string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS",
		"S", "SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// Names maps a code point to its canonical Unicode name.
// An empty string means the database has no name for it.
type Names interface {
	Name(r rune) string
}

// Database is the Unicode name table shipped with golang.org/x/text.
type Database struct{}

// Name returns the canonical name of r, or "" for control characters,
// surrogates, private use, noncharacters and unassigned code points.
func (Database) Name(r rune) string {
	raw := runenames.Name(r)
	if raw == "" || !strings.HasPrefix(raw, "<") {
		return raw
	}

	// Range entries come back as placeholders such as "<CJK Ideograph>".
	switch {
	case strings.HasPrefix(raw, "<CJK Ideograph"):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", r)
	case strings.HasPrefix(raw, "<Tangut Ideograph"):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", r)
	case strings.HasPrefix(raw, "<Hangul Syllable"):
		return hangulName(r)
	}
	return ""
}

// Assigned reports whether the database has an entry for r at all,
// including entries without a name such as controls.
func (Database) Assigned(r rune) bool {
	return runenames.Name(r) != ""
}

func hangulName(r rune) string {
	if r < hangulBase || r > hangulEnd {
		return ""
	}
	code := int(r - hangulBase)
	jong := code % hangulJongN
	jung := (code / hangulJongN) % hangulJungN
	cho := code / (hangulJongN * hangulJungN)
	return "HANGUL SYLLABLE " + hangulCho[cho] + hangulJung[jung] + hangulJong[jong]
}
