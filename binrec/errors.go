package binrec

import "errors"

// ErrTruncated is returned by ParseRecord when data ends before a schema
// field it declares is fully satisfied.
var ErrTruncated = errors.New("binrec: truncated record")
