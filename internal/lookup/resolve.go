package lookup

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

// ParseError describes query text that is not a valid code point number.
type ParseError struct {
	Text string // Offending text, without the "U+" prefix
	Base int    // 10 or 16
	Err  error  // ErrInvalidHex or ErrInvalidDecimal
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q is not a base %d integer", e.Err, e.Text, e.Base)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *Engine) byHex(query, digits string) (uni.Record, error) {
	n, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return uni.Record{}, &ParseError{Text: digits, Base: 16, Err: ErrInvalidHex}
	}
	return e.byCodePoint(query, n)
}

func (e *Engine) byDecimal(query, digits string) (uni.Record, error) {
	n, err := parseDecimal(digits)
	if err != nil {
		return uni.Record{}, err
	}
	return e.byCodePoint(query, n)
}

func (e *Engine) byChar(query, char string) (uni.Record, error) {
	r, size := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError && size <= 1 {
		return uni.Record{}, fmt.Errorf("%w: %q", ErrInvalidChar, char)
	}
	return uni.NewRecord(query, r, char, e.NameOf(r)), nil
}

func (e *Engine) byCodePoint(query string, n int64) (uni.Record, error) {
	if n < 0 || n > uni.MaxCodePoint {
		return uni.Record{}, fmt.Errorf("%w: %d is not in 0..0x10FFFF", ErrOutOfRange, n)
	}
	r := rune(n)
	return uni.NewRecord(query, r, glyph(r), e.NameOf(r)), nil
}

// NameOf returns the display name of r. It never returns "": controls and
// code points without a database name get a bracketed synthesized name.
func (e *Engine) NameOf(r rune) string {
	return displayName(r, e.names.Name(r))
}

func displayName(r rune, name string) string {
	if name != "" {
		return name
	}
	if n, ok := ucd.ASCIIControlName(r); ok {
		return n
	}
	return "<UNICODE CONTROL CHARACTER " + uni.Hex(r) + ">"
}

// glyph renders r as a string. Surrogates render as U+FFFD.
func glyph(r rune) string {
	return string(r)
}

// FixControls replaces the glyph and name of every ASCII control record with
// its mnemonic and bracketed name. Applying it twice changes nothing.
func FixControls(records []uni.Record) {
	for i := range records {
		fixControl(&records[i])
	}
}

func fixControl(rec *uni.Record) {
	abbrev, ok := ucd.ControlAbbrev(rec.CP)
	if !ok {
		return
	}
	name, _ := ucd.ASCIIControlName(rec.CP)
	rec.Char = abbrev
	rec.Name = name
}
