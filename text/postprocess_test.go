package text

import "testing"

func TestPostProcessCRLF(t *testing.T) {
	got := postProcess("line1\rline2")
	want := "line1\r\nline2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessHyperlinkWithDisplayText(t *testing.T) {
	in := "\x13HYPERLINK \"http://example.com\" \x14click here\x15\x13"
	got := postProcess(in)
	want := "(click here) [http://example.com]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestPostProcessHyperlinkSwitchesAnyOrder covers spec.md §4.6 step 3: the
// \t/\o/\n/\m/\l field switches may appear in any order, not just the
// \t,\o,\n,\m,\l sequence Word itself tends to emit.
func TestPostProcessHyperlinkSwitchesAnyOrder(t *testing.T) {
	in := "\x13HYPERLINK \"http://example.com\" \\o \"tip\" \\t \"target\" \x14click here\x15\x13"
	got := postProcess(in)
	want := "(click here) [http://example.com]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessBareHyperlink(t *testing.T) {
	got := postProcess(`HYPERLINK "http://example.com"`)
	want := "[http://example.com]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessIncludePicture(t *testing.T) {
	got := postProcess(`INCLUDEPICTURE "C:\\images\\logo.png"`)
	want := "IMG[C:\\\\images\\\\logo.png]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessMergeFormatVariant(t *testing.T) {
	got := postProcess(`\* MERGEFORMATINET`)
	want := ""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessIncludePictureWithMergeFormat(t *testing.T) {
	got := postProcess(`INCLUDEPICTURE "a.png" \* MERGEFORMAT`)
	want := "IMG[a.png] "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessMergeFormatPlain(t *testing.T) {
	got := postProcess(`before \* MERGEFORMAT after`)
	want := "before  after"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessCellSeparators(t *testing.T) {
	got := postProcess("a\x07\x07b\x07c")
	want := "a\r\nb|c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostProcessControlCharsStripped(t *testing.T) {
	got := postProcess("a\x00b\x01c\x14d\x15e")
	want := "abcde"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
