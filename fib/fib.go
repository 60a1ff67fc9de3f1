// Package fib parses the File Information Block: the fixed header at the
// start of the WordDocument stream, plus its two variable-length trailing
// records (FibRgFcLcb97 and FibRgCswNew), whose true lengths are carried in
// earlier fields rather than being statically known.
package fib

import (
	"fmt"

	"github.com/clxtext/msdoc/binrec"
)

// Fib is the parsed File Information Block. Only the fields the rest of
// this module needs are surfaced on the struct; the full decoded records
// remain available via Raw for callers that want something this package
// doesn't expose directly.
type Fib struct {
	WIdent uint16
	NFib   uint16

	CcpText uint32 // character count of the main document text

	FcClx  uint32 // byte offset of the Clx blob in the Table stream
	LcbClx uint32 // byte length of the Clx blob

	NFibNew uint16 // 0 unless a Word 2000+ extension record follows

	// RgCswNewData is set only when NFibNew == 274: the 8-byte field
	// reconstructed by concatenating nFibNew's own bytes with the
	// rgCswNewData_extend bytes that follow it and re-decoding the result as
	// a single little-endian value.
	RgCswNewData *binrec.DecodedField

	// Raw holds the individually parsed records, in encounter order, for
	// callers that need a field this package does not re-surface.
	Raw []*binrec.Record
}

// nFibNewExtension is the nFibNew sentinel that signals a Word 2000+
// extension, whose rgCswNewData is reconstructed from nFibNew's own bytes
// plus the following rgCswNewData_extend field.
const nFibNewExtension = 274

// Parse decodes the FIB from the start of a WordDocument stream's bytes.
func Parse(data []byte) (*Fib, error) {
	fib := &Fib{}

	base, err := binrec.ParseRecord("FibBase", data)
	if err != nil {
		return nil, fmt.Errorf("fib: FibBase: %w", err)
	}
	fib.Raw = append(fib.Raw, base)
	cursor := 32

	wIdent, _ := base.Get("wIdent")
	fib.WIdent = uint16(wIdent.Field.Numeric)
	nFib, _ := base.Get("nFib")
	fib.NFib = uint16(nFib.Field.Numeric)

	clw, err := binrec.ParseRecord("clw", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: clw: %w", err)
	}
	fib.Raw = append(fib.Raw, clw)
	cursor += 2

	rgW97, err := binrec.ParseRecord("FibRgW97", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: FibRgW97: %w", err)
	}
	fib.Raw = append(fib.Raw, rgW97)
	cursor += 28

	cslw, err := binrec.ParseRecord("cslw", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: cslw: %w", err)
	}
	fib.Raw = append(fib.Raw, cslw)
	cursor += 2

	rgLw97, err := binrec.ParseRecord("FibRgLw97", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: FibRgLw97: %w", err)
	}
	fib.Raw = append(fib.Raw, rgLw97)
	ccpText, _ := rgLw97.Get("ccpText")
	fib.CcpText = uint32(ccpText.Field.Numeric)
	cursor += 88

	cbRgFcLcb, err := binrec.ParseRecord("cbRgFcLcb", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: cbRgFcLcb: %w", err)
	}
	fib.Raw = append(fib.Raw, cbRgFcLcb)
	cursor += 2

	cbRgFcLcbVal, _ := cbRgFcLcb.Get("cbRgFcLcb")
	rgFcLcbLen := int(cbRgFcLcbVal.Field.Numeric) * 8
	if cursor+rgFcLcbLen > len(data) {
		return nil, fmt.Errorf("%w: cbRgFcLcb=%d implies FibRgFcLcb needs %d bytes at offset %d, have %d",
			ErrInconsistentLength, cbRgFcLcbVal.Field.Numeric, rgFcLcbLen, cursor, len(data)-cursor)
	}
	rgFcLcb, consumed, err := binrec.ParseRecordPartial("FibRgFcLcb", data[cursor:cursor+rgFcLcbLen])
	if err != nil {
		return nil, fmt.Errorf("fib: FibRgFcLcb: %w", err)
	}
	fib.Raw = append(fib.Raw, rgFcLcb)
	if fcClx, ok := rgFcLcb.Get("fcClx"); ok {
		fib.FcClx = uint32(fcClx.Field.Numeric)
	}
	if lcbClx, ok := rgFcLcb.Get("lcbClx"); ok {
		fib.LcbClx = uint32(lcbClx.Field.Numeric)
	}
	cursor += consumed
	// Any bytes beyond what the schema could map (newer nFib versions carry
	// extra trailing pairs this schema doesn't name) are skipped, not an error.
	cursor += rgFcLcbLen - consumed

	cswNew, err := binrec.ParseRecord("cswNew", data[cursor:])
	if err != nil {
		return nil, fmt.Errorf("fib: cswNew: %w", err)
	}
	fib.Raw = append(fib.Raw, cswNew)
	cursor += 2

	cswNewVal, _ := cswNew.Get("cswNew")
	cswNewLen := int(cswNewVal.Field.Numeric) * 2
	if cursor+cswNewLen > len(data) {
		return nil, fmt.Errorf("%w: cswNew=%d implies FibRgCswNew needs %d bytes at offset %d, have %d",
			ErrInconsistentLength, cswNewVal.Field.Numeric, cswNewLen, cursor, len(data)-cursor)
	}
	if cswNewLen > 0 {
		rgCswNew, _, err := binrec.ParseRecordPartial("FibRgCswNew", data[cursor:cursor+cswNewLen])
		if err != nil {
			return nil, fmt.Errorf("fib: FibRgCswNew: %w", err)
		}
		fib.Raw = append(fib.Raw, rgCswNew)
		nFibNewVal, hasNFibNew := rgCswNew.Get("nFibNew")
		if hasNFibNew {
			fib.NFibNew = uint16(nFibNewVal.Field.Numeric)
		}
		// A Word 2000+ extension (nFibNew == 274) repurposes the leading
		// nFibNew field plus the six extend bytes as one 8-byte rgCswNewData
		// block.
		if hasNFibNew && fib.NFibNew == nFibNewExtension {
			if extend, ok := rgCswNew.Get("rgCswNewData_extend"); ok {
				merged := append(append([]byte{}, nFibNewVal.Field.Raw...), extend.Field.Raw...)
				decoded := binrec.DecodeField(merged)
				fib.RgCswNewData = &decoded
			}
		}
	}

	return fib, nil
}
