package ucd

import (
	"testing"
	"unicode"
)

func TestControlTables(t *testing.T) {
	controls := Controls()
	if len(controls) != 33 {
		t.Fatalf("Controls() returned %d rows, want 33", len(controls))
	}
	for i, c := range controls {
		if !IsASCIIControl(c.CP) {
			t.Errorf("row %d: U+%04X is not an ASCII control", i, c.CP)
		}
		if c.Name == "" || c.Abbrev == "" {
			t.Errorf("row %d: empty name or abbreviation: %+v", i, c)
		}
		if n := len(c.Abbrev); n < 2 || n > 3 {
			t.Errorf("row %d: abbreviation %q is not 2-3 letters", i, c.Abbrev)
		}
		if i > 0 && controls[i-1].CP >= c.CP {
			t.Errorf("rows out of order at %d", i)
		}
	}
	if last := controls[len(controls)-1]; last.CP != Delete || last.Abbrev != "DEL" {
		t.Errorf("last row = %+v, want DELETE", last)
	}
}

func TestASCIIControlName(t *testing.T) {
	got, ok := ASCIIControlName(7)
	if !ok || got != "<ASCII CONTROL CHARACTER BELL>" {
		t.Errorf("ASCIIControlName(7) = %q, %v", got, ok)
	}
	if _, ok := ASCIIControlName(0x80); ok {
		t.Error("C1 control reported as ASCII control")
	}
	if _, ok := ControlAbbrev(' '); ok {
		t.Error("space reported as control")
	}
}

func TestDatabaseName(t *testing.T) {
	db := Database{}
	tests := map[rune]string{
		'A':      "LATIN CAPITAL LETTER A",
		' ':      "SPACE",
		0x20AC:   "EURO SIGN",
		0x2603:   "SNOWMAN",
		0x4E2D:   "CJK UNIFIED IDEOGRAPH-4E2D",
		0xAC01:   "HANGUL SYLLABLE GAG",
		0xB098:   "HANGUL SYLLABLE NA",
		0x0000:   "",
		0x007F:   "",
		0x0085:   "",
		0xD800:   "",
		0xE000:   "",
		0x0378:   "",
		0x10FFFF: "",
	}
	for r, want := range tests {
		if got := db.Name(r); got != want {
			t.Errorf("Name(U+%04X) = %q, want %q", r, got, want)
		}
	}
}

func TestDatabaseAssigned(t *testing.T) {
	db := Database{}
	if !db.Assigned(0x0A) {
		t.Error("line feed should be assigned")
	}
	if db.Assigned(0x0378) {
		t.Error("U+0378 should be unassigned")
	}
}

func TestNamed(t *testing.T) {
	if !Named(0x0A, "") {
		t.Error("controls are searchable")
	}
	if !Named(0x90, "") {
		t.Error("C1 controls are searchable")
	}
	if Named(0xE000, "") {
		t.Error("private use without a name is not searchable")
	}
	if !Named('A', "LATIN CAPITAL LETTER A") {
		t.Error("named code points are searchable")
	}
}

type fakeNames map[rune]string

func (f fakeNames) Name(r rune) string { return f[r] }

func TestIndex(t *testing.T) {
	idx := NewIndex(fakeNames{'B': "BEE", 'A': "AY", 0xE000: ""})

	// 65 controls plus the two named letters.
	var controls int
	for r := rune(0); r <= 0x10FFFF; r++ {
		if unicode.IsControl(r) {
			controls++
		}
	}
	if idx.Len() != controls+2 {
		t.Errorf("Len() = %d, want %d", idx.Len(), controls+2)
	}
	if idx.Name('B') != "BEE" {
		t.Errorf("Name('B') = %q", idx.Name('B'))
	}

	var prev rune = -1
	idx.Range(func(r rune, name string) bool {
		if r <= prev {
			t.Errorf("Range not ascending: %X after %X", r, prev)
		}
		if r == 0xE000 {
			t.Error("unnamed code point indexed")
		}
		prev = r
		return true
	})

	var visited int
	idx.Range(func(rune, string) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("Range visited %d entries after stop, want 3", visited)
	}
}
