package text

import "regexp"

// The post-processing pipeline runs over the concatenated, decoded piece
// text in a fixed order: it strips field-boundary control characters left
// over from the binary layout, normalizes line breaks, collapses
// HYPERLINK and INCLUDEPICTURE field codes down to readable text, and
// turns the table-cell separator character into either a line break (when
// doubled, marking a row end) or a literal pipe.
var (
	reFieldSep         = regexp.MustCompile("\x13")
	reCR               = regexp.MustCompile("\r")
	reHyperlinkField   = regexp.MustCompile(`HYP?ERLINK "(.*?)"(?:\s*\\[tonml] *".*?")* *\x14(.*?)\x15`)
	reFieldControls    = regexp.MustCompile("\x00|\x01|\x14|\x15")
	reHyperlinkBare    = regexp.MustCompile(`HYP?ERLINK *"(.*?)"`)
	reIncludePicture   = regexp.MustCompile(`INCLUDEPICTURE *"(.*?)"`)
	reMergeFormat      = regexp.MustCompile(`\\\* *MERGEFORMAT(INET?)?`)
	reCellSepPair      = regexp.MustCompile("\x07\x07")
	reCellSep          = regexp.MustCompile("\x07")
)

// postProcess runs the nine-step cleanup pass over freshly concatenated
// piece text. Step order matters: the HYPERLINK-with-display-text form
// must be collapsed before the control characters it straddles are
// stripped, and before the bare HYPERLINK fallback runs.
func postProcess(s string) string {
	s = reFieldSep.ReplaceAllString(s, "")
	s = reCR.ReplaceAllString(s, "\r\n")
	s = reHyperlinkField.ReplaceAllString(s, "($2) [$1]")
	s = reFieldControls.ReplaceAllString(s, "")
	s = reHyperlinkBare.ReplaceAllString(s, "[$1]")
	s = reIncludePicture.ReplaceAllString(s, "IMG[$1]")
	s = reMergeFormat.ReplaceAllString(s, "")
	s = reCellSepPair.ReplaceAllString(s, "\r\n")
	s = reCellSep.ReplaceAllString(s, "|")
	return s
}
