package schema

import "errors"

// ErrUnknownRecordType is returned by Lookup when a record-type tag has no
// registered schema. Per spec this is always a programming error — it means
// a caller passed a tag that was never meant to exist — never a condition
// arising from untrusted input.
var ErrUnknownRecordType = errors.New("schema: unknown record type")
