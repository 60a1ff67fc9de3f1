// Package binrec is the primitive decoder and schema-driven record parser
// that sits directly on top of package schema: it turns raw byte slices into
// named, ordered field values, using a schema.Field list to decide where
// opaque values end and bit-packed sub-fields begin.
package binrec

import "fmt"

// DecodedField is the result of decoding an opaque byte run: its raw bytes,
// little-endian unsigned value, hex form, and length.
type DecodedField struct {
	Raw     []byte
	Numeric uint64
	Hex     string
	Len     int
}

// DecodeField decodes b as a little-endian unsigned integer. A zero-length
// slice decodes to Numeric 0. Slices longer than 8 bytes still decode, but
// Numeric and Hex hold only the value of the first (lowest-order) 8 bytes;
// higher-order bytes are dropped. Raw and Len still cover the whole slice.
func DecodeField(b []byte) DecodedField {
	raw := make([]byte, len(b))
	copy(raw, b)

	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return DecodedField{
		Raw:     raw,
		Numeric: v,
		Hex:     fmt.Sprintf("0x%x", v),
		Len:     len(b),
	}
}

// BitField is one sub-field recovered from DecodeBits: its MSB-to-LSB bit
// string, its numeric value, and its width in bits.
type BitField struct {
	Bits    string
	Numeric uint64
	Width   int
}

// DecodeBits splits up to 8 bytes of b into consecutive bit fields per
// widths. The source convention (see spec design notes) is: concatenate the
// bytes' bits LSB-first within each byte to form one long bit stream, then
// read each width-wide chunk of that stream MSB-first. Equivalently — and
// how this is implemented — each chunk is just the little-endian bit-field
// extraction (value >> cursor) & mask, cursor advancing by each width in
// turn; the MSB-first text form is produced for display only.
func DecodeBits(b []byte, widths []int) []BitField {
	var stream uint64
	for i := 0; i < len(b) && i < 8; i++ {
		stream |= uint64(b[i]) << uint(8*i)
	}

	out := make([]BitField, len(widths))
	cursor := uint(0)
	for i, w := range widths {
		mask := uint64(1)<<uint(w) - 1
		v := (stream >> cursor) & mask
		out[i] = BitField{
			Bits:    fmt.Sprintf("%0*b", w, v),
			Numeric: v,
			Width:   w,
		}
		cursor += uint(w)
	}
	return out
}
