// Package schema holds the static, table-driven layout descriptions for the
// fixed binary records that make up the MS-DOC Fib and piece table. Each
// schema is an ordered sequence of field entries: either an opaque
// fixed-length byte run, or a fixed-length run that is further split into
// bit-packed sub-fields.
//
// Schemas are read-only after package initialization and safe for
// concurrent use by any number of callers.
package schema

import "fmt"

// Bit describes one bit-packed sub-field within a Field entry.
type Bit struct {
	Name  string
	Width int // in bits
}

// Field describes one entry in a record's layout, in the order it appears
// in the binary record.
type Field struct {
	Name   string
	Length int // in bytes
	Bits   []Bit
}

// IsBitField reports whether this entry decomposes into bit sub-fields
// rather than being decoded as a single opaque value.
func (f Field) IsBitField() bool {
	return len(f.Bits) > 0
}

var registry = map[string][]Field{
	"FibBase":      fibBase,
	"clw":          simpleField("clw", 2),
	"FibRgW97":     simpleField("rgW97", 28),
	"cslw":         simpleField("cslw", 2),
	"FibRgLw97":    fibRgLw97,
	"cbRgFcLcb":    simpleField("cbRgFcLcb", 2),
	"FibRgFcLcb":   fibRgFcLcb,
	"cswNew":       simpleField("cswNew", 2),
	"FibRgCswNew":  fibRgCswNew,
	"pcd":          pcdFields,
	"fc":           fcFields,
}

func simpleField(name string, length int) []Field {
	return []Field{{Name: name, Length: length}}
}

// Lookup returns the ordered field list for a record-type tag. An unknown
// tag is a programming error, surfaced to the caller as ErrUnknownRecordType.
func Lookup(tag string) ([]Field, error) {
	fields, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, tag)
	}
	return fields, nil
}

// fibBase is the fixed 32-byte FibBase record at the start of the Fib.
var fibBase = []Field{
	{Name: "wIdent", Length: 2},
	{Name: "nFib", Length: 2},
	{Name: "unused0", Length: 2},
	{Name: "lid", Length: 2},
	{Name: "pnNext", Length: 2},
	{Name: "flags1", Length: 2, Bits: []Bit{
		{Name: "fDot", Width: 1},
		{Name: "fGlsy", Width: 1},
		{Name: "fComplex", Width: 1},
		{Name: "fHasPic", Width: 1},
		{Name: "cQuickSaves", Width: 4},
		{Name: "fEncrypted", Width: 1},
		{Name: "fWhichTblStm", Width: 1},
		{Name: "fReadOnlyRecommended", Width: 1},
		{Name: "fWriteReservation", Width: 1},
		{Name: "reserved1", Width: 4},
	}},
	{Name: "nFibBack", Length: 2},
	{Name: "lKey", Length: 4},
	{Name: "envr", Length: 1},
	{Name: "flags2", Length: 1, Bits: []Bit{
		{Name: "fMac", Width: 1},
		{Name: "fEmptySpecial", Width: 1},
		{Name: "fLoadOverridePage", Width: 1},
		{Name: "fFuturesavedUndo", Width: 1},
		{Name: "fWord97Saved", Width: 1},
		{Name: "fSpare0", Width: 3},
	}},
	{Name: "reserved2", Length: 4},
	{Name: "reserved3", Length: 8},
}

// fibRgLw97 is the fixed 88-byte block of 32-bit counts, including the
// character counts used to size the main document text.
var fibRgLw97 = []Field{
	{Name: "cbMac", Length: 4},
	{Name: "reserved1", Length: 4},
	{Name: "ccpText", Length: 4},
	{Name: "ccpFtn", Length: 4},
	{Name: "ccpHdd", Length: 4},
	{Name: "reserved2", Length: 4},
	{Name: "ccpAtn", Length: 4},
	{Name: "ccpEdn", Length: 4},
	{Name: "ccpTxbx", Length: 4},
	{Name: "ccpHdrTxbx", Length: 4},
	{Name: "reserved3", Length: 48},
}

// fcLcbNames enumerates the (fc, lcb) pair names of FibRgFcLcb97, in order.
// This is the schema's maximum-known length; the Fib parser applies it to
// only the first delta bytes actually present (see fib.Parse).
var fcLcbNames = []string{
	"StshfOrig", "Stshf", "PlcffndRef", "PlcffndTxt", "PlcfandRef", "PlcfandTxt",
	"Plcfsed", "PlcfpgdFtn", "Plcfhdd", "PlcfbteChpx", "PlcfbtePapx", "Plcfsea",
	"Sttbfffn", "PlcffldMom", "PlcffldHdr", "PlcffldFtn", "PlcffldAtn", "PlcffldMcr",
	"Sttbfbkmk", "Plcfbkf", "Plcfbkl", "Cmds", "Plcfmcr", "Sttbfmcr",
	"PrDrvr", "PrEnvPort", "PrEnvLand", "Wss", "Dop", "SttbfAssoc",
	"Clx", "PlcfpgdFtn2", "PlcfpgdEdn", "PlcfpgdEdn2", "DggInfo", "SttbfRMark",
	"SttbfCaption", "SttbfAutoCaption", "Plcfwkb", "Plcfspl", "PlcftxbxTxt", "PlcffldTxbx",
	"PlcfhdrtxbxTxt", "PlcffldHdrTxbx", "StwUser", "Sttbttmbd",
}

var fibRgFcLcb = buildFcLcbFields()

func buildFcLcbFields() []Field {
	fields := make([]Field, 0, len(fcLcbNames)*2)
	for _, n := range fcLcbNames {
		fields = append(fields,
			Field{Name: "fc" + n, Length: 4},
			Field{Name: "lcb" + n, Length: 4},
		)
	}
	return fields
}

// fibRgCswNew covers the nFibNew field plus the six bytes the Fib parser's
// post-pass reconstructs into rgCswNewData when nFibNew signals a Word 2000+
// extension (see fib.Parse). A trailing reserved field pads out to the
// common cswNew=5 (10 byte) case; shorter cswNew values simply truncate the
// walk (schema-for-max-length, applied-to-delta-present, per the teacher's
// variable-length-trailing-record convention).
var fibRgCswNew = []Field{
	{Name: "nFibNew", Length: 2},
	{Name: "rgCswNewData_extend", Length: 6},
	{Name: "reserved1", Length: 2},
}

// pcdFields is the 8-byte piece descriptor: two opaque flag/property words
// bracketing the 4-byte fc field, which is re-decoded against the "fc"
// schema once extracted (see clx.Parse).
var pcdFields = []Field{
	{Name: "pcdFlags", Length: 2},
	{Name: "fc", Length: 4},
	{Name: "prm", Length: 2},
}

// fcFields is the bit-packed layout of a Pcd's fc word: a 30-bit stream
// offset, the compression flag, and one reserved bit.
var fcFields = []Field{
	{Name: "fc", Length: 4, Bits: []Bit{
		{Name: "fc", Width: 30},
		{Name: "fCompressed", Width: 1},
		{Name: "reserved", Width: 1},
	}},
}
