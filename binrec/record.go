package binrec

import (
	"fmt"

	"github.com/clxtext/msdoc/schema"
)

// Value is the decoded content of one record entry: either a DecodedField
// (opaque byte run) or, for schema fields that declare Bits, a slice of
// BitField. Exactly one of the two is populated.
type Value struct {
	Field DecodedField
	Bits  []BitField
}

// Record is an ordered, named collection of decoded field values, built by
// walking a schema.Field list over a byte slice in order. Field order
// mirrors declaration order in the schema, not map iteration order.
type Record struct {
	Tag    string
	Keys   []string
	Values map[string]Value
}

// Set stores v under key, appending key to Keys the first time it is seen.
// Re-setting an existing key overwrites its value without duplicating the
// key order.
func (r *Record) Set(key string, v Value) {
	if r.Values == nil {
		r.Values = make(map[string]Value)
	}
	if _, exists := r.Values[key]; !exists {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = v
}

// Get returns the value stored under key and whether it was present.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// ParseRecord decodes data strictly against the named schema: every field
// the schema declares must have its full byte range present in data, or
// ParseRecord fails with ErrTruncated.
func ParseRecord(tag string, data []byte) (*Record, error) {
	fields, err := schema.Lookup(tag)
	if err != nil {
		return nil, err
	}

	rec := &Record{Tag: tag}
	offset := 0
	for _, f := range fields {
		if offset+f.Length > len(data) {
			return nil, fmt.Errorf("%w: %s.%s needs %d bytes at offset %d, have %d",
				ErrTruncated, tag, f.Name, f.Length, offset, len(data))
		}
		chunk := data[offset : offset+f.Length]
		if f.IsBitField() {
			widths := make([]int, len(f.Bits))
			for i, b := range f.Bits {
				widths[i] = b.Width
			}
			bits := DecodeBits(chunk, widths)
			for i, b := range f.Bits {
				rec.Set(b.Name, Value{Bits: []BitField{bits[i]}})
			}
		} else {
			rec.Set(f.Name, Value{Field: DecodeField(chunk)})
		}
		offset += f.Length
	}
	return rec, nil
}

// ParseRecordPartial decodes data against the named schema up to whatever
// length is actually present, stopping before the first field that would
// overrun data rather than failing. It is used for the Fib's variable-length
// trailing records (FibRgFcLcb97, FibRgCswNew), whose true length is derived
// from an earlier field and may be shorter than the schema's maximum-known
// layout. It returns the number of bytes actually consumed.
func ParseRecordPartial(tag string, data []byte) (*Record, int, error) {
	fields, err := schema.Lookup(tag)
	if err != nil {
		return nil, 0, err
	}

	rec := &Record{Tag: tag}
	offset := 0
	for _, f := range fields {
		if offset+f.Length > len(data) {
			break
		}
		chunk := data[offset : offset+f.Length]
		if f.IsBitField() {
			widths := make([]int, len(f.Bits))
			for i, b := range f.Bits {
				widths[i] = b.Width
			}
			bits := DecodeBits(chunk, widths)
			for i, b := range f.Bits {
				rec.Set(b.Name, Value{Bits: []BitField{bits[i]}})
			}
		} else {
			rec.Set(f.Name, Value{Field: DecodeField(chunk)})
		}
		offset += f.Length
	}
	return rec, offset, nil
}
