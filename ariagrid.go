// Package ariagrid provides a fluent API for recovering logical tables
// from the rendered markup of dashboard data grids.
//
// Dashboard renderers emit their grids as a flat sequence of
// accessibility-role-tagged elements rather than as HTML tables. This
// package linearizes that markup and reconstructs the tables it encodes.
//
// Basic usage:
//
//	csv, err := ariagrid.Open("last-retrieval-outbreaks.html").CSV()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	tables, err := ariagrid.Open("report.html").
//	    MinRows(2).
//	    Tables()
//
// For advanced use cases, the lower-level griddoc and tables packages are
// also available.
package ariagrid

import (
	"io"

	"github.com/tsawler/ariagrid/format"
	"github.com/tsawler/ariagrid/griddoc"
)

// Open opens an HTML file and returns an Extractor for fluent
// configuration. The file is not read until a terminal operation such as
// Dataset() or CSV() is called.
//
// Example:
//
//	dataset, err := ariagrid.Open("report.html").Dataset()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// OpenReader creates an Extractor that reads markup from r. The stream is
// not consumed until a terminal operation is called.
//
// Example:
//
//	csv, err := ariagrid.OpenReader(resp.Body).CSV()
func OpenReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		format:  format.HTML,
		options: defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened griddoc.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := griddoc.Open("report.html")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	csv, err := ariagrid.FromReader(r).CSV()
func FromReader(r *griddoc.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		format:       format.HTML,
		options:      defaultOptions(),
	}
}

// FromHTML creates an Extractor from in-memory markup, typically the
// return value of a browse.Session fetch.
//
// Example:
//
//	csv, err := ariagrid.FromHTML(markup).CSV()
func FromHTML(markup string) *Extractor {
	return &Extractor{
		markup:  markup,
		format:  format.HTML,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	csv := ariagrid.Must(ariagrid.Open("report.html").CSV())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
