package lookup

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

var testIndex = sync.OnceValue(func() *ucd.Index {
	return ucd.NewIndex(ucd.Database{})
})

func newEngine(opts ...Option) *Engine {
	return New(ucd.Database{}, opts...)
}

func resolveOne(t *testing.T, e *Engine, query string) uni.Record {
	t.Helper()
	records, err := e.Resolve(query)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", query, err)
	}
	if len(records) != 1 {
		t.Fatalf("Resolve(%q) returned %d records, want 1", query, len(records))
	}
	return records[0]
}

func TestClassify(t *testing.T) {
	e := newEngine()
	tests := []struct {
		query string
		want  Strategy
	}{
		{"", StrategyNone},
		{"   ", StrategyNone},
		{" ", StrategyChar},
		{"\t", StrategyChar},
		{"U+0041", StrategyHex},
		{"U+ZZZZ", StrategyHex},
		{"U+", StrategyHex},
		{"65", StrategyDecimal},
		{"32", StrategyDecimal},
		{"31", StrategyName},
		{"10", StrategyName},
		{"5", StrategyChar},
		{"\u0663", StrategyChar},
		{"\u0663\u0663", StrategyDecimal},
		{"\uff16\uff15", StrategyDecimal},
		{"\u0663\u0661", StrategyName},
		{"A", StrategyChar},
		{"€", StrategyChar},
		{" € ", StrategyChar},
		{"u+0041", StrategyName},
		{"heart", StrategyName},
		{"😀😀", StrategyName},
	}
	for _, tt := range tests {
		got, err := e.Classify(tt.query)
		if err != nil {
			t.Errorf("Classify(%q) error: %v", tt.query, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestClassifyDecimalFloor(t *testing.T) {
	e := newEngine(WithDecimalFloor(0))
	for _, q := range []string{"0", "5", "10", "31", "127"} {
		got, err := e.Classify(q)
		if err != nil {
			t.Fatalf("Classify(%q): %v", q, err)
		}
		if got != StrategyDecimal {
			t.Errorf("Classify(%q) with floor 0 = %v, want %v", q, got, StrategyDecimal)
		}
	}
}

func TestResolveHex(t *testing.T) {
	rec := resolveOne(t, newEngine(), "U+0041")
	want := uni.Record{Query: "U+0041", Char: "A", CP: 65, Hex: "U+0041", Name: "LATIN CAPITAL LETTER A"}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestResolveHexAstral(t *testing.T) {
	rec := resolveOne(t, newEngine(), "U+1F600")
	if rec.CP != 0x1F600 {
		t.Errorf("CP = %X, want 1F600", rec.CP)
	}
	if rec.Hex != "U+1F600" {
		t.Errorf("Hex = %q, want %q", rec.Hex, "U+1F600")
	}
	if rec.Name != "GRINNING FACE" {
		t.Errorf("Name = %q, want %q", rec.Name, "GRINNING FACE")
	}
}

func TestResolveDecimal(t *testing.T) {
	rec := resolveOne(t, newEngine(), "8364")
	if rec.CP != 8364 || rec.Char != "€" || rec.Name != "EURO SIGN" || rec.Hex != "U+20AC" {
		t.Errorf("got %+v", rec)
	}
}

func TestResolveDecimalOtherScripts(t *testing.T) {
	tests := []struct {
		query string
		want  rune
	}{
		{"\u0663\u0663", '!'},         // Arabic-Indic
		{"\uff16\uff15", 'A'},         // fullwidth
		{"\u0968\u0966\u0966", 0xC8},  // Devanagari
		{"\U0001D7D7\U0001D7E0", 'b'}, // mathematical bold 9, double-struck 8
		{"6\u0665", 'A'},              // mixed scripts
	}
	for _, tt := range tests {
		rec := resolveOne(t, newEngine(), tt.query)
		if rec.CP != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.query, rec.Hex, uni.Hex(tt.want))
		}
		if rec.Query != tt.query {
			t.Errorf("Resolve(%q): Query = %q", tt.query, rec.Query)
		}
	}
}

func TestResolveDecimalControlWithZeroFloor(t *testing.T) {
	rec := resolveOne(t, newEngine(WithDecimalFloor(0)), "10")
	want := uni.Record{
		Query: "10",
		Char:  "LF",
		CP:    10,
		Hex:   "U+000A",
		Name:  "<ASCII CONTROL CHARACTER LINE FEED>",
	}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestResolveChar(t *testing.T) {
	rec := resolveOne(t, newEngine(), "€")
	if rec.CP != 8364 || rec.Name != "EURO SIGN" || rec.Hex != "U+20AC" || rec.Char != "€" {
		t.Errorf("got %+v", rec)
	}

	// Single digits stay below the decimal floor.
	rec = resolveOne(t, newEngine(), "5")
	if rec.CP != '5' || rec.Name != "DIGIT FIVE" {
		t.Errorf("got %+v, want DIGIT FIVE", rec)
	}
	rec = resolveOne(t, newEngine(), "\u0663")
	if rec.CP != 0x0663 || rec.Name != "ARABIC-INDIC DIGIT THREE" {
		t.Errorf("got %+v, want ARABIC-INDIC DIGIT THREE", rec)
	}
}

func TestResolveWhitespaceCharacter(t *testing.T) {
	rec := resolveOne(t, newEngine(), " ")
	if rec.CP != ' ' || rec.Name != "SPACE" || rec.Query != " " {
		t.Errorf("got %+v, want SPACE", rec)
	}
	rec = resolveOne(t, newEngine(), "\t")
	if rec.CP != '\t' || rec.Char != "HT" || rec.Name != "<ASCII CONTROL CHARACTER HORIZONTAL TABULATION>" {
		t.Errorf("got %+v, want HT", rec)
	}
}

func TestResolveEchoesQuery(t *testing.T) {
	rec := resolveOne(t, newEngine(), "  U+0041 ")
	if rec.Query != "  U+0041 " {
		t.Errorf("Query = %q, want the untrimmed input", rec.Query)
	}
}

func TestResolveASCIIControls(t *testing.T) {
	e := newEngine()
	for _, c := range ucd.Controls() {
		query := fmt.Sprintf("U+%04X", c.CP)
		rec := resolveOne(t, e, query)
		if rec.Char != c.Abbrev {
			t.Errorf("%s: Char = %q, want %q", query, rec.Char, c.Abbrev)
		}
		wantName := "<ASCII CONTROL CHARACTER " + c.Name + ">"
		if rec.Name != wantName {
			t.Errorf("%s: Name = %q, want %q", query, rec.Name, wantName)
		}
	}
	if n := len(ucd.Controls()); n != 33 {
		t.Errorf("control table has %d entries, want 33", n)
	}
}

func TestResolveUnnamed(t *testing.T) {
	e := newEngine()
	tests := []rune{0x80, 0x85, 0x9F, 0x378, 0xE000, 0xFDD0, 0xFFFF, 0x10FFFF}
	for _, cp := range tests {
		rec := resolveOne(t, e, fmt.Sprintf("U+%04X", cp))
		want := fmt.Sprintf("<UNICODE CONTROL CHARACTER U+%04X>", cp)
		if rec.Name != want {
			t.Errorf("U+%04X: Name = %q, want %q", cp, rec.Name, want)
		}
	}
}

func TestResolveRangeNames(t *testing.T) {
	e := newEngine()
	tests := map[string]string{
		"U+4E00":  "CJK UNIFIED IDEOGRAPH-4E00",
		"U+3400":  "CJK UNIFIED IDEOGRAPH-3400",
		"U+20000": "CJK UNIFIED IDEOGRAPH-20000",
		"U+AC00":  "HANGUL SYLLABLE GA",
		"U+D7A3":  "HANGUL SYLLABLE HIH",
		"U+D55C":  "HANGUL SYLLABLE HAN",
		"U+17000": "TANGUT IDEOGRAPH-17000",
	}
	for query, want := range tests {
		rec := resolveOne(t, e, query)
		if rec.Name != want {
			t.Errorf("%s: Name = %q, want %q", query, rec.Name, want)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	e := newEngine()
	tests := []struct {
		query string
		want  error
	}{
		{"U+ZZZZ", ErrInvalidHex},
		{"U+", ErrInvalidHex},
		{"U+ 41", ErrInvalidHex},
		{"U+0x41", ErrInvalidHex},
		{"U+110000", ErrOutOfRange},
		{"U+-1", ErrOutOfRange},
		{"1114112", ErrOutOfRange},
		{"99999999999999999999999", ErrInvalidDecimal},
		{"½½", ErrInvalidDecimal},
		{"½", ErrInvalidDecimal},
		{"3²", ErrInvalidDecimal},
		{"\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663\u0663", ErrInvalidDecimal},
		{"\xff", ErrInvalidChar},
	}
	for _, tt := range tests {
		_, err := e.Resolve(tt.query)
		if !errors.Is(err, tt.want) {
			t.Errorf("Resolve(%q) error = %v, want %v", tt.query, err, tt.want)
		}
	}
}

func TestLookupErrorEntry(t *testing.T) {
	entries := newEngine().Lookup("U+ZZZZ")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].IsError() {
		t.Fatalf("entry is not an error: %+v", entries[0])
	}
	if !strings.Contains(entries[0].Error, "ZZZZ") {
		t.Errorf("error %q does not mention the input", entries[0].Error)
	}
}

func TestLookupEmpty(t *testing.T) {
	for _, q := range []string{"", "  ", "\t\n"} {
		if entries := newEngine().Lookup(q); len(entries) != 0 {
			t.Errorf("Lookup(%q) = %v, want no entries", q, entries)
		}
	}
}

func TestFixControlsIdempotent(t *testing.T) {
	records := []uni.Record{
		uni.NewRecord("q", 10, "\n", "whatever"),
		uni.NewRecord("q", 127, "\x7f", ""),
		uni.NewRecord("q", 'A', "A", "LATIN CAPITAL LETTER A"),
	}
	FixControls(records)
	once := append([]uni.Record(nil), records...)
	FixControls(records)

	for i := range records {
		if records[i] != once[i] {
			t.Errorf("record %d changed on second pass: %+v -> %+v", i, once[i], records[i])
		}
	}
	if records[0].Char != "LF" || records[1].Char != "DEL" {
		t.Errorf("control glyphs not replaced: %q %q", records[0].Char, records[1].Char)
	}
	if records[2].Char != "A" {
		t.Errorf("non-control glyph changed to %q", records[2].Char)
	}
}

func TestHexFormat(t *testing.T) {
	tests := map[rune]string{
		0:        "U+0000",
		0x41:     "U+0041",
		0x20AC:   "U+20AC",
		0x1F600:  "U+1F600",
		0x10FFFF: "U+10FFFF",
	}
	for cp, want := range tests {
		if got := uni.Hex(cp); got != want {
			t.Errorf("Hex(%X) = %q, want %q", cp, got, want)
		}
	}
}

func checkSearch(t *testing.T, records []uni.Record, needle string) {
	t.Helper()
	for i, rec := range records {
		if !strings.Contains(rec.Name, needle) {
			t.Errorf("%s %q does not contain %q", rec.Hex, rec.Name, needle)
		}
		if rec.Hex != uni.Hex(rec.CP) {
			t.Errorf("%s: hex does not match cp %d", rec.Hex, rec.CP)
		}
		if i > 0 && records[i-1].CP >= rec.CP {
			t.Errorf("results not ascending at %d: %s then %s", i, records[i-1].Hex, rec.Hex)
		}
	}
}

func TestSearchHeart(t *testing.T) {
	e := New(testIndex())
	entries := e.Lookup("heart")
	records := uni.Records(entries)
	if len(records) < 10 {
		t.Fatalf("got %d records for heart, want many", len(records))
	}
	if len(records) != len(entries) {
		t.Errorf("search produced error entries: %+v", entries)
	}
	checkSearch(t, records, "HEART")

	var found bool
	for _, rec := range records {
		if rec.CP == 0x2665 && rec.Name == "BLACK HEART SUIT" {
			found = true
		}
		if rec.Query != "heart" {
			t.Errorf("%s: Query = %q, want %q", rec.Hex, rec.Query, "heart")
		}
	}
	if !found {
		t.Error("BLACK HEART SUIT missing from results")
	}
}

func TestSearchIndexMatchesFullScan(t *testing.T) {
	scan := newEngine().Search("snowman")
	indexed := New(testIndex()).Search("snowman")
	if len(scan) == 0 {
		t.Fatal("full scan found nothing for snowman")
	}
	if len(scan) != len(indexed) {
		t.Fatalf("full scan found %d, index found %d", len(scan), len(indexed))
	}
	for i := range scan {
		if scan[i] != indexed[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, scan[i], indexed[i])
		}
	}
}

func TestLookupConcurrent(t *testing.T) {
	e := New(testIndex())
	queries := []string{"U+2665", "9829", "♥", "heart", "U+000A", "U+ZZZZ"}
	want := make([][]uni.Entry, len(queries))
	for i, q := range queries {
		want[i] = e.Lookup(q)
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(queries)*8)
	for n := 0; n < 8; n++ {
		for i, q := range queries {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got := e.Lookup(q)
				if len(got) != len(want[i]) {
					errs <- fmt.Sprintf("Lookup(%q): %d entries, want %d", q, len(got), len(want[i]))
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestSearchControls(t *testing.T) {
	e := New(testIndex())

	records, err := e.Resolve("line feed")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) == 0 || records[0].CP != 10 {
		t.Fatalf("first result for line feed = %+v, want U+000A", records)
	}
	if records[0].Char != "LF" || records[0].Name != "<ASCII CONTROL CHARACTER LINE FEED>" {
		t.Errorf("control record not normalized: %+v", records[0])
	}

	records, err = e.Resolve("unicode control character")
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[rune]bool)
	for _, rec := range records {
		seen[rec.CP] = true
	}
	for _, cp := range []rune{0x80, 0x9F} {
		if !seen[cp] {
			t.Errorf("C1 control U+%04X missing from results", cp)
		}
	}
	for _, cp := range []rune{0x378, 0xE000, 0xD800} {
		if seen[cp] {
			t.Errorf("unnamed code point U+%04X should be skipped", cp)
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	entries := New(testIndex()).Lookup("zzzqqq no such name")
	if len(entries) != 0 {
		t.Errorf("got %d entries, want none", len(entries))
	}
}

type mapNames map[rune]string

func (m mapNames) Name(r rune) string { return m[r] }

func TestSearchWithCustomSource(t *testing.T) {
	e := New(mapNames{
		0x2603: "SNOWMAN",
		0x41:   "LATIN CAPITAL LETTER A",
		0x26C4: "SNOWMAN WITHOUT SNOW",
	})
	records := e.Search("Snowman")
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].CP != 0x2603 || records[1].CP != 0x26C4 {
		t.Errorf("unexpected order: %s, %s", records[0].Hex, records[1].Hex)
	}
}
