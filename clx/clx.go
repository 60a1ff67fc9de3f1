// Package clx parses the Clx blob found at fcClx/lcbClx in the Table
// stream: the RgPrc/Pcdt split, the Pcdt wrapper, and the PlcPcd piece
// table it carries — a parallel cp[] array of character positions and an
// apcd[] array of piece descriptors.
package clx

import (
	"fmt"

	"github.com/clxtext/msdoc/binrec"
	"github.com/clxtext/msdoc/internal/xlog"
)

// Descriptor is one piece descriptor: the bit-unpacked fc word of a Pcd.
type Descriptor struct {
	FC         uint32
	Compressed bool
}

// Table is the recovered piece table: a character-position array one
// longer than the descriptor array, cp[i]..cp[i+1] bounding the run of
// text that Descriptors[i] describes.
type Table struct {
	CP          []uint32
	Descriptors []Descriptor
}

// Warning describes a recoverable condition encountered while parsing a
// Clx blob — currently just a Pcdt lcb that disagrees with the actual
// PlcPcd length present.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// Option configures Parse.
type Option func(*config)

type config struct {
	logger xlog.Logger
}

// WithLogger overrides the logger used for parse-time diagnostics. The
// default discards everything.
func WithLogger(l xlog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// clxtPcdt is the byte tag (clxt) that marks the start of a Pcdt record
// within a Clx blob; anything before the first occurrence of this byte is
// RgPrc data this package does not need.
const clxtPcdt = 0x02

// Split locates the Pcdt sub-record within a Clx blob by scanning for the
// first clxt==0x02 byte, mirroring the convention that RgPrc entries never
// begin with that tag. It returns the Pcdt bytes (tag byte onward).
func Split(clxBlob []byte) ([]byte, error) {
	for i, b := range clxBlob {
		if b == clxtPcdt {
			return clxBlob[i:], nil
		}
	}
	return nil, fmt.Errorf("%w: no clxt=0x02 tag found in %d byte Clx blob", ErrMissingPcdt, len(clxBlob))
}

// Parse decodes a Clx blob into a piece Table: it splits out the Pcdt
// record, reads its lcb-declared length, and unpacks the PlcPcd it
// contains. A Pcdt lcb that disagrees with the actual PlcPcd length present
// is not fatal — it is reported as a Warning and logged, but parsing always
// proceeds over the actual blob (everything after the lcb field), never
// truncated to what lcb claims, matching doc2python's parsePcdt: it uses
// len(blob)-cursor unconditionally and never branches on lcb at all.
func Parse(clxBlob []byte, opts ...Option) (*Table, []Warning, error) {
	cfg := &config{logger: xlog.Discard}
	for _, o := range opts {
		o(cfg)
	}

	pcdt, err := Split(clxBlob)
	if err != nil {
		return nil, nil, err
	}
	if len(pcdt) < 5 {
		return nil, nil, fmt.Errorf("%w: Pcdt needs at least 5 bytes, have %d", ErrMalformedPlcPcd, len(pcdt))
	}

	var warnings []Warning
	lcb := binrec.DecodeField(pcdt[1:5]).Numeric
	plcData := pcdt[5:]
	if uint64(len(plcData)) != lcb {
		// Non-fatal: the declared length disagrees with what's actually
		// present. lcb is only used for this comparison — the bytes parsed
		// are always the full blob, never lcb-truncated.
		msg := fmt.Sprintf("Pcdt lcb=%d disagrees with actual PlcPcd length %d, using actual", lcb, len(plcData))
		warnings = append(warnings, Warning{msg})
		cfg.logger.Printf("clx: %s", msg)
	}

	table, err := parsePlcPcd(plcData)
	if err != nil {
		return nil, nil, err
	}
	return table, warnings, nil
}

func parsePlcPcd(data []byte) (*Table, error) {
	if (len(data)+8)%12 != 0 {
		return nil, fmt.Errorf("%w: PlcPcd length %d does not fit the 12-byte-per-piece layout",
			ErrMalformedPlcPcd, len(data))
	}
	nCP := (len(data) + 8) / 12
	nPcd := nCP - 1
	if nPcd < 0 {
		return nil, fmt.Errorf("%w: PlcPcd too short to contain any piece descriptors", ErrMalformedPlcPcd)
	}

	table := &Table{
		CP:          make([]uint32, 0, nCP),
		Descriptors: make([]Descriptor, 0, nPcd),
	}

	cursor := 0
	for i := 0; i < nCP; i++ {
		table.CP = append(table.CP, uint32(binrec.DecodeField(data[cursor:cursor+4]).Numeric))
		cursor += 4
	}

	for i := 0; i < nPcd; i++ {
		pcd, err := binrec.ParseRecord("pcd", data[cursor:cursor+8])
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %v", ErrMalformedPlcPcd, i, err)
		}
		fcVal, ok := pcd.Get("fc")
		if !ok {
			return nil, fmt.Errorf("%w: piece %d missing fc field", ErrMalformedPlcPcd, i)
		}
		fcRecord, err := binrec.ParseRecord("fc", fcVal.Field.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d fc word: %v", ErrMalformedPlcPcd, i, err)
		}
		fc, _ := fcRecord.Get("fc")
		compressed, _ := fcRecord.Get("fCompressed")

		table.Descriptors = append(table.Descriptors, Descriptor{
			FC:         uint32(fc.Bits[0].Numeric),
			Compressed: compressed.Bits[0].Numeric == 1,
		})
		cursor += 8
	}

	return table, nil
}
