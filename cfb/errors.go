package cfb

import "errors"

// ErrAmbiguousTableStream is returned when a compound file has zero or
// more than one stream whose name strips down to "Table".
var ErrAmbiguousTableStream = errors.New("cfb: ambiguous table stream")
