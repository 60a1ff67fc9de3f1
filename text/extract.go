// Package text turns a WordDocument stream and its piece table into plain
// text: for each piece, compute its byte range, decode it with the codec
// its compression flag selects, concatenate, and run the result through the
// post-processing pipeline that cleans up field codes and control
// characters left over from the binary layout.
package text

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/clxtext/msdoc/clx"
	"github.com/clxtext/msdoc/internal/xlog"
)

// Warning describes a recoverable condition encountered while extracting
// text: a piece whose byte range had to be clamped to the stream, or a
// byte sequence that could not be decoded cleanly.
type Warning struct {
	PieceIndex int
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("piece %d: %s", w.PieceIndex, w.Message)
}

// Option configures Extract.
type Option func(*config)

type config struct {
	singleByte encoding.Encoding
	logger     xlog.Logger
}

// WithEncoding overrides the single-byte codec used for compressed
// (non-Unicode) pieces. The default is Windows-1252, matching the common
// case for Word documents authored on Western-locale systems; callers
// parsing documents from other code pages should set this explicitly.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.singleByte = enc }
}

// WithLogger overrides the logger used for low-severity decode
// diagnostics. The default discards everything.
func WithLogger(l xlog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Extract reconstructs plain text from a WordDocument stream given its
// piece table. It never fails on an out-of-range piece — that condition is
// clamped and reported as a Warning — but does fail if the piece table
// itself is inconsistent (a cp entry count other than descriptors plus one).
func Extract(wordDocument []byte, table *clx.Table, opts ...Option) (string, []Warning, error) {
	cfg := &config{
		singleByte: charmap.Windows1252,
		logger:     xlog.Discard,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(table.CP) != len(table.Descriptors)+1 {
		return "", nil, fmt.Errorf("text: piece table has %d cp entries for %d descriptors, want %d",
			len(table.CP), len(table.Descriptors), len(table.Descriptors)+1)
	}

	var sb strings.Builder
	var warnings []Warning
	decoder := cfg.singleByte.NewDecoder()

	for i, d := range table.Descriptors {
		cpLen := int(table.CP[i+1]) - int(table.CP[i]) - 1
		if cpLen < 0 {
			warnings = append(warnings, Warning{i, fmt.Sprintf("negative run length %d, skipping piece", cpLen)})
			continue
		}

		var start, end int
		if d.Compressed {
			start = int(d.FC) / 2
			end = start + cpLen
		} else {
			start = int(d.FC)
			end = start + 2*cpLen
		}

		start, end, clamped := clampRange(start, end, len(wordDocument))
		if clamped {
			warnings = append(warnings, Warning{i, "piece byte range exceeded WordDocument stream, clamped"})
			cfg.logger.Printf("text: piece %d clamped to [%d:%d)", i, start, end)
		}
		if start >= end {
			continue
		}
		raw := wordDocument[start:end]

		var decoded string
		if d.Compressed {
			out, _, err := transform.Bytes(decoder, raw)
			if err != nil {
				warnings = append(warnings, Warning{i, fmt.Sprintf("single-byte decode: %v, using replacement output", err)})
			}
			decoded = string(out)
		} else {
			decoded = decodeUTF16LE(raw)
		}
		sb.WriteString(decoded)
	}

	out := sb.String()
	out = postProcess(out)
	return out, warnings, nil
}

// clampRange clips [start, end) to [0, max), reporting whether clipping
// was necessary.
func clampRange(start, end, max int) (int, int, bool) {
	clamped := false
	if start < 0 {
		start = 0
		clamped = true
	}
	if start > max {
		start = max
		clamped = true
	}
	if end > max {
		end = max
		clamped = true
	}
	if end < start {
		end = start
	}
	return start, end, clamped
}

func decodeUTF16LE(raw []byte) string {
	n := len(raw) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return string(utf16.Decode(units))
}
