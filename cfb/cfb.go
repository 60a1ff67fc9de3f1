// Package cfb opens the OLE2 compound-file container a .doc file is stored
// in and exposes its named streams. It is a thin wrapper over
// github.com/richardlehane/mscfb, adding the WordDocument/Table stream
// lookup, which fails rather than guessing when a document carries zero or
// more than one Table stream.
package cfb

import (
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

// Container is an opened compound file: its streams, read eagerly into
// memory, keyed by name.
type Container struct {
	streams map[string][]byte
	names   []string
}

// Open reads every stream out of r's compound-file container.
func Open(r io.Reader) (*Container, error) {
	cr, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("cfb: %w", err)
	}

	c := &Container{streams: make(map[string][]byte)}
	for entry, err := cr.Next(); err != io.EOF; entry, err = cr.Next() {
		if err != nil {
			return nil, fmt.Errorf("cfb: reading directory: %w", err)
		}
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, buf); err != nil && err != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("cfb: reading stream %q: %w", entry.Name, err)
		}
		c.streams[entry.Name] = buf
		c.names = append(c.names, entry.Name)
	}
	return c, nil
}

// Streams returns the names of every stream in the container, in the order
// they were encountered.
func (c *Container) Streams() []string {
	return c.names
}

// ReadStream returns the raw bytes of the named stream.
func (c *Container) ReadStream(name string) ([]byte, error) {
	data, ok := c.streams[name]
	if !ok {
		return nil, fmt.Errorf("cfb: no such stream %q", name)
	}
	return data, nil
}

// WordDocument returns the bytes of the mandatory "WordDocument" stream.
func (c *Container) WordDocument() ([]byte, error) {
	return c.ReadStream("WordDocument")
}

// TableStream locates the Table stream by scanning for a root entry whose
// name, with its leading character stripped, equals "Table" — the legacy
// format stores the active piece table in either "0Table" or "1Table", and
// this ignores the FIB's fWhichTblStm selector bit in favor of "the one
// that exists". If zero or more than one stream matches, guessing which
// one holds the real piece table risks reading garbage, so this fails with
// ErrAmbiguousTableStream instead.
func (c *Container) TableStream() ([]byte, error) {
	var match string
	count := 0
	for _, name := range c.names {
		if len(name) > 1 && name[1:] == "Table" {
			match = name
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: found %d candidate Table streams, want exactly 1", ErrAmbiguousTableStream, count)
	}
	return c.streams[match], nil
}
