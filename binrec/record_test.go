package binrec

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseRecordFc(t *testing.T) {
	var raw uint32 = 42 | 1<<30
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, raw)

	rec, err := ParseRecord("fc", data)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	fc, ok := rec.Get("fc")
	if !ok {
		t.Fatal("missing fc field")
	}
	if fc.Bits[0].Numeric != 42 {
		t.Errorf("fc = %d, want 42", fc.Bits[0].Numeric)
	}
	compressed, ok := rec.Get("fCompressed")
	if !ok || compressed.Bits[0].Numeric != 1 {
		t.Errorf("fCompressed not set to 1")
	}
}

func TestParseRecordTruncated(t *testing.T) {
	_, err := ParseRecord("pcd", make([]byte, 4))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestParseRecordPreservesOrder(t *testing.T) {
	data := make([]byte, 8)
	rec, err := ParseRecord("pcd", data)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	want := []string{"pcdFlags", "fc", "prm"}
	if len(rec.Keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(rec.Keys), len(want))
	}
	for i, k := range want {
		if rec.Keys[i] != k {
			t.Errorf("Keys[%d] = %q, want %q", i, rec.Keys[i], k)
		}
	}
}

func TestParseRecordPartialStopsAtBoundary(t *testing.T) {
	// cswNew = 1 (2 bytes) means only nFibNew is present, not the trailing 8 bytes.
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, 274)

	rec, n, err := ParseRecordPartial("FibRgCswNew", data)
	if err != nil {
		t.Fatalf("ParseRecordPartial: %v", err)
	}
	if n != 2 {
		t.Errorf("consumed %d bytes, want 2", n)
	}
	nFibNew, ok := rec.Get("nFibNew")
	if !ok || nFibNew.Field.Numeric != 274 {
		t.Errorf("nFibNew not decoded correctly")
	}
	if _, ok := rec.Get("rgCswNewData_extend"); ok {
		t.Error("rgCswNewData_extend should not be present when data is only 2 bytes")
	}
}

func TestParseRecordUnknownTag(t *testing.T) {
	_, err := ParseRecord("NotATag", nil)
	if err == nil {
		t.Fatal("expected error for unknown tag")
	}
}
