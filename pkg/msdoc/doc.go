// Package msdoc extracts plain text from Microsoft Word 97-2003 (.doc)
// binary documents.
//
// Basic usage:
//
//	doc, err := msdoc.Open("document.doc")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//
//	text, _, err := doc.Text()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(text)
package msdoc

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"

	"github.com/clxtext/msdoc/cfb"
	"github.com/clxtext/msdoc/clx"
	"github.com/clxtext/msdoc/fib"
	"github.com/clxtext/msdoc/internal/xlog"
	"github.com/clxtext/msdoc/text"
)

// config holds the options shared across the clx and text layers, since
// both the Clx parser (Pcdt lcb mismatches) and the text extractor
// (clamped ranges) need the same logger, and only the
// text layer needs the encoding.
type config struct {
	encoding encoding.Encoding
	logger   xlog.Logger
}

// Option configures Open/OpenReader.
type Option func(*config)

// WithEncoding overrides the single-byte codec used for compressed pieces.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.encoding = enc }
}

// WithLogger overrides the logger used for decode diagnostics, shared by
// both the piece-table parser and the text extractor.
func WithLogger(l xlog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func buildConfig(opts []Option) *config {
	cfg := &config{logger: xlog.Discard}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// Warning is a recoverable condition surfaced from text extraction.
type Warning = text.Warning

// Document is an opened .doc file, its WordDocument/Table streams and Fib
// already parsed. Text extraction happens on Text().
type Document struct {
	closer       io.Closer
	wordDocument []byte
	table        []byte
	fib          *fib.Fib
	cfg          *config
}

// Open reads and parses the named .doc file.
func Open(filename string, opts ...Option) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("msdoc: %w", err)
	}
	doc, err := OpenReader(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	doc.closer = f
	return doc, nil
}

// OpenReader reads and parses a .doc file from an already-open reader. The
// caller remains responsible for closing r if it implements io.Closer;
// Document.Close is then a no-op.
func OpenReader(r io.Reader, opts ...Option) (*Document, error) {
	container, err := cfb.Open(r)
	if err != nil {
		return nil, fmt.Errorf("msdoc: %w", err)
	}

	wordDocument, err := container.WordDocument()
	if err != nil {
		return nil, fmt.Errorf("msdoc: %w", err)
	}

	table, err := container.TableStream()
	if err != nil {
		return nil, fmt.Errorf("msdoc: %w", err)
	}

	f, err := fib.Parse(wordDocument)
	if err != nil {
		return nil, fmt.Errorf("msdoc: %w", err)
	}

	return &Document{
		wordDocument: wordDocument,
		table:        table,
		fib:          f,
		cfg:          buildConfig(opts),
	}, nil
}

// Close releases the underlying file handle, if Open (not OpenReader)
// opened one. It is safe to call multiple times.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	return c.Close()
}

// Text parses the Clx piece table and extracts the document's plain text,
// returning any recoverable warnings alongside it.
func (d *Document) Text() (string, []Warning, error) {
	if int(d.fib.LcbClx) == 0 {
		return "", nil, fmt.Errorf("msdoc: FIB declares no Clx blob (lcbClx=0)")
	}
	start := int(d.fib.FcClx)
	end := start + int(d.fib.LcbClx)
	if start < 0 || end > len(d.table) {
		return "", nil, fmt.Errorf("msdoc: Clx range [%d:%d) exceeds table stream length %d", start, end, len(d.table))
	}

	table, clxWarnings, err := clx.Parse(d.table[start:end], clx.WithLogger(d.cfg.logger))
	if err != nil {
		return "", nil, fmt.Errorf("msdoc: %w", err)
	}

	textOpts := []text.Option{text.WithLogger(d.cfg.logger)}
	if d.cfg.encoding != nil {
		textOpts = append(textOpts, text.WithEncoding(d.cfg.encoding))
	}
	out, textWarnings, err := text.Extract(d.wordDocument, table, textOpts...)
	if err != nil {
		return "", nil, fmt.Errorf("msdoc: %w", err)
	}

	var warnings []Warning
	for _, w := range clxWarnings {
		warnings = append(warnings, Warning{Message: w.Message})
	}
	warnings = append(warnings, textWarnings...)
	return out, warnings, nil
}
