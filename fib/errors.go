package fib

import "errors"

// ErrInconsistentLength signals that cbRgFcLcb or cswNew's magnitude implies
// a trailing-record length longer than what remains of the WordDocument
// stream. Truncation of a fixed-length step (FibBase, clw, FibRgW97, ...)
// surfaces as the wrapped binrec.ErrTruncated instead; this sentinel is
// strictly for the two magnitude-vs-remaining-stream checks spec.md §4.4
// names separately.
var ErrInconsistentLength = errors.New("fib: inconsistent length or value")
