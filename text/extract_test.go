package text

import (
	"bytes"
	"testing"
	"unicode/utf16"

	"github.com/clxtext/msdoc/clx"
)

func TestExtractCompressedPiece(t *testing.T) {
	wd := []byte("xxHello")
	table := &clx.Table{
		CP:          []uint32{0, 6},
		Descriptors: []clx.Descriptor{{FC: 4, Compressed: true}},
	}
	got, warnings, err := Extract(wd, table)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestExtractUncompressedPiece(t *testing.T) {
	units := utf16.Encode([]rune("Hi"))
	var buf bytes.Buffer
	for _, u := range units {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}
	wd := buf.Bytes()

	table := &clx.Table{
		CP:          []uint32{0, 3},
		Descriptors: []clx.Descriptor{{FC: 0, Compressed: false}},
	}
	got, _, err := Extract(wd, table)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "Hi" {
		t.Errorf("got %q, want %q", got, "Hi")
	}
}

func TestExtractClampsOutOfRangePiece(t *testing.T) {
	wd := []byte("ab")
	table := &clx.Table{
		CP:          []uint32{0, 101},
		Descriptors: []clx.Descriptor{{FC: 0, Compressed: true}},
	}
	_, warnings, err := Extract(wd, table)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

func TestExtractInconsistentTableShape(t *testing.T) {
	table := &clx.Table{
		CP:          []uint32{0},
		Descriptors: []clx.Descriptor{{FC: 0, Compressed: true}},
	}
	_, _, err := Extract([]byte("x"), table)
	if err == nil {
		t.Fatal("expected error for mismatched cp/descriptor counts")
	}
}
