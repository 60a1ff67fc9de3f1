package clx

import "errors"

// ErrMissingPcdt is returned when a Clx blob has no clxt=0x02 tag anywhere
// in it, meaning it carries no piece table at all.
var ErrMissingPcdt = errors.New("clx: missing Pcdt record")

// ErrMalformedPlcPcd is returned when the PlcPcd bytes inside a Pcdt don't
// fit the fixed 4-byte-cp/8-byte-pcd layout, or a piece descriptor within
// it can't be decoded.
var ErrMalformedPlcPcd = errors.New("clx: malformed PlcPcd")
