package schema

import "testing"

// Every registered record type with a declared fixed length must have its
// field lengths sum to that length, and every bit-split field's sub-widths
// must sum to 8*Length. This is the "schema completeness" property from
// spec.md §8.
func TestSchemaCompleteness(t *testing.T) {
	fixed := map[string]int{
		"FibBase":   32,
		"clw":       2,
		"FibRgW97":  28,
		"cslw":      2,
		"FibRgLw97": 88,
		"cbRgFcLcb": 2,
		"cswNew":    2,
		"pcd":       8,
		"fc":        4,
	}

	for tag, fields := range registry {
		total := 0
		for _, f := range fields {
			total += f.Length
			if f.IsBitField() {
				sum := 0
				for _, b := range f.Bits {
					sum += b.Width
				}
				if sum != f.Length*8 {
					t.Errorf("%s.%s: bit widths sum to %d, want %d", tag, f.Name, sum, f.Length*8)
				}
			}
		}
		if want, ok := fixed[tag]; ok && total != want {
			t.Errorf("%s: field lengths sum to %d, want %d", tag, total, want)
		}
	}
}

func TestLookupUnknownTag(t *testing.T) {
	if _, err := Lookup("NotARecord"); err == nil {
		t.Fatal("expected error for unknown record type")
	}
}

func TestLookupKnownTags(t *testing.T) {
	for _, tag := range []string{
		"FibBase", "clw", "FibRgW97", "cslw", "FibRgLw97", "cbRgFcLcb",
		"FibRgFcLcb", "cswNew", "FibRgCswNew", "pcd", "fc",
	} {
		if _, err := Lookup(tag); err != nil {
			t.Errorf("Lookup(%q): %v", tag, err)
		}
	}
}

func TestFibRgFcLcbHasClxPair(t *testing.T) {
	fields, _ := Lookup("FibRgFcLcb")
	var sawFc, sawLcb bool
	for _, f := range fields {
		if f.Name == "fcClx" {
			sawFc = true
		}
		if f.Name == "lcbClx" {
			sawLcb = true
		}
	}
	if !sawFc || !sawLcb {
		t.Fatal("FibRgFcLcb schema must carry fcClx/lcbClx pair")
	}
}
