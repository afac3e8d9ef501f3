package export

import (
	"path/filepath"
	"testing"

	"github.com/f3rmion/unilookup/internal/uni"
)

func TestWriteReadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chars.db")

	first := []uni.Record{
		uni.NewRecord("heart", 0x2665, "♥", "BLACK HEART SUIT"),
		uni.NewRecord("heart", 0x1F496, "💖", "SPARKLING HEART"),
	}
	second := []uni.Record{
		uni.NewRecord("U+000A", 10, "LF", "<ASCII CONTROL CHARACTER LINE FEED>"),
	}

	if err := WriteSQLite(path, first); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	if err := WriteSQLite(path, second); err != nil {
		t.Fatalf("WriteSQLite (append): %v", err)
	}

	got, err := ReadSQLite(path)
	if err != nil {
		t.Fatalf("ReadSQLite: %v", err)
	}
	want := append(first, second...)
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWriteSQLiteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	if err := WriteSQLite(path, nil); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	got, err := ReadSQLite(path)
	if err != nil {
		t.Fatalf("ReadSQLite: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want none", len(got))
	}
}
