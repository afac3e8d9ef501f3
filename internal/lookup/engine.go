// Package lookup resolves free-form queries into Unicode character records.
//
// A query is one of:
//
//	U+1F600   hex code point
//	128512    decimal code point (at or above the decimal floor)
//	😀        a single character
//	grinning  a fragment of the character name
//
// Resolution errors never escape [Engine.Lookup]; they come back as a single
// error entry.
package lookup

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/f3rmion/unilookup/internal/logging"
	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

// Strategy identifies how a query is resolved.
type Strategy int

const (
	StrategyNone    Strategy = iota // Empty query
	StrategyHex                     // "U+" prefixed hex code point
	StrategyDecimal                 // All-digit decimal code point
	StrategyChar                    // Exactly one character
	StrategyName                    // Name fragment search
)

func (s Strategy) String() string {
	switch s {
	case StrategyHex:
		return "hex code point"
	case StrategyDecimal:
		return "decimal code point"
	case StrategyChar:
		return "single character"
	case StrategyName:
		return "name fragment"
	default:
		return "none"
	}
}

// Ranger is implemented by name sources that can list their searchable code
// points in ascending order, such as [ucd.Index].
type Ranger interface {
	Range(fn func(r rune, name string) bool)
}

// Engine resolves queries against a name source. It holds no mutable state
// and may be shared between goroutines when its source can.
type Engine struct {
	names        ucd.Names
	decimalFloor int64
}

// New creates an engine backed by names.
func New(names ucd.Names, opts ...Option) *Engine {
	e := &Engine{
		names:        names,
		decimalFloor: DefaultDecimalFloor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DecimalFloor returns the configured minimum for the decimal branch.
func (e *Engine) DecimalFloor() int64 {
	return e.decimalFloor
}

// Lookup resolves query and converts any failure into a single error entry.
// An empty query yields no entries.
func (e *Engine) Lookup(query string) []uni.Entry {
	records, err := e.Resolve(query)
	if err != nil {
		logging.Debug.Printf("query %q failed: %v", query, err)
		return []uni.Entry{uni.ErrorEntry(err)}
	}

	entries := make([]uni.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, uni.RecordEntry(r))
	}
	return entries
}

// Resolve classifies query, runs the matching strategy and normalizes
// ASCII control records. Records echo the query as given.
func (e *Engine) Resolve(query string) ([]uni.Record, error) {
	strategy, err := e.Classify(query)
	if err != nil {
		return nil, err
	}
	logging.Debug.Printf("query %q is a %s", query, strategy)

	q := queryText(query)

	var records []uni.Record
	switch strategy {
	case StrategyNone:
		return nil, nil
	case StrategyHex:
		rec, err := e.byHex(query, q[2:])
		if err != nil {
			return nil, err
		}
		records = []uni.Record{rec}
	case StrategyDecimal:
		rec, err := e.byDecimal(query, q)
		if err != nil {
			return nil, err
		}
		records = []uni.Record{rec}
	case StrategyChar:
		rec, err := e.byChar(query, q)
		if err != nil {
			return nil, err
		}
		records = []uni.Record{rec}
	case StrategyName:
		records = e.Search(query)
	}

	FixControls(records)
	logging.Debug.Printf("query %q: %d result(s)", query, len(records))
	return records, nil
}

// Classify picks the strategy for query. A numeric query that cannot be
// read as an integer is an error, since its value decides the branch.
func (e *Engine) Classify(query string) (Strategy, error) {
	q := queryText(query)
	switch {
	case q == "":
		return StrategyNone, nil
	case strings.HasPrefix(q, "U+"):
		return StrategyHex, nil
	case isNumeric(q):
		n, err := parseDecimal(q)
		if err != nil {
			return StrategyNone, err
		}
		if n >= e.decimalFloor {
			return StrategyDecimal, nil
		}
	}

	if utf8.RuneCountInString(q) == 1 {
		return StrategyChar, nil
	}
	return StrategyName, nil
}

// isNumeric reports whether every rune of s is a numeric character.
func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return s != ""
}

// parseDecimal reads s as a base 10 integer written with decimal digits of
// any script. Numeric characters that are not decimal digits, such as ½ or ²,
// are rejected.
func parseDecimal(s string) (int64, error) {
	var n int64
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok || n > (math.MaxInt64-int64(d))/10 {
			return 0, &ParseError{Text: s, Base: 10, Err: ErrInvalidDecimal}
		}
		n = n*10 + int64(d)
	}
	return n, nil
}

// digitValue returns the value of the decimal digit r. Decimal digits are
// encoded in contiguous ascending runs that start at zero, so the value is
// the offset from the start of the run, modulo 10.
func digitValue(r rune) (int, bool) {
	if !unicode.IsDigit(r) {
		return 0, false
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10, true
}

// queryText returns the text a query is classified on: the query without
// surrounding white space, or the query itself when it is a single white
// space character.
func queryText(query string) string {
	q := strings.TrimSpace(query)
	if q == "" && utf8.RuneCountInString(query) == 1 {
		return query
	}
	return q
}
