// Package xlog is the ambient logging surface used by the parsing
// packages: discard-by-default, swappable by the host application.
package xlog

import (
	"io"
	"log"
)

// Logger is the logging interface the parsing packages depend on.
type Logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Discard is the default logger: it drops everything written to it.
var Discard Logger = log.New(io.Discard, "[msdoc] ", log.LstdFlags)

// New wraps a standard library *log.Logger as a Logger.
func New(w io.Writer) Logger {
	return log.New(w, "[msdoc] ", log.LstdFlags)
}
