package ariagrid

import (
	"fmt"
	"io"

	"github.com/tsawler/ariagrid/format"
	"github.com/tsawler/ariagrid/griddoc"
	"github.com/tsawler/ariagrid/model"
	"github.com/tsawler/ariagrid/tables"
)

// Extractor provides a fluent interface for recovering tables from
// rendered dashboard markup. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename string
	markup   string
	source   io.Reader
	format   format.Format

	// Reader
	reader *griddoc.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability. Each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		markup:       e.markup,
		source:       e.source,
		format:       e.format,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}

	if e.markup != "" {
		r, err := griddoc.Parse(e.markup)
		if err != nil {
			return fmt.Errorf("failed to parse markup: %w", err)
		}
		e.reader = r
		e.ownsReader = true
		e.readerOpened = true
		return nil
	}

	if e.source != nil {
		r, err := griddoc.OpenReader(e.source)
		if err != nil {
			return fmt.Errorf("failed to read markup: %w", err)
		}
		e.reader = r
		e.ownsReader = true
		e.readerOpened = true
		return nil
	}

	if e.filename == "" {
		return fmt.Errorf("no input specified")
	}
	if e.format != format.HTML {
		return fmt.Errorf("unsupported file format: %s", e.format)
	}

	r, err := griddoc.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open HTML: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// KeepPresentation disables the attribute stripping pass, leaving style,
// class, tabindex and aria-* attributes on the parsed tree. Useful when
// the caller wants to inspect the document after extraction.
//
// Example:
//
//	items, err := ariagrid.Open("report.html").KeepPresentation().Items()
func (e *Extractor) KeepPresentation() *Extractor {
	newExt := e.clone()
	newExt.options.keepPresentation = true
	return newExt
}

// MinRows drops reconstructed tables with fewer than n rows. Virtualized
// grids sometimes emit stray single-cell fragments around the real
// tables; MinRows(2) filters those out.
//
// Example:
//
//	tables, err := ariagrid.Open("report.html").MinRows(2).Tables()
func (e *Extractor) MinRows(n int) *Extractor {
	newExt := e.clone()
	newExt.options.minRows = n
	return newExt
}

// ============================================================================
// Terminal Operations (perform the extraction)
// ============================================================================

// Items returns the flattened grid item stream in document order, before
// any table reconstruction.
func (e *Extractor) Items() ([]tables.Item, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	if !e.options.keepPresentation {
		e.reader.StripPresentation()
	}
	return e.reader.GridItems(), nil
}

// Dataset reconstructs all tables and returns them as a model.Dataset.
func (e *Extractor) Dataset() (model.Dataset, error) {
	items, err := e.Items()
	if err != nil {
		return model.Dataset{}, err
	}

	dataset := tables.Reconstruct(items)
	if e.options.minRows > 0 {
		kept := dataset.Tables[:0]
		for _, t := range dataset.Tables {
			if t.RowCount() >= e.options.minRows {
				kept = append(kept, t)
			}
		}
		dataset.Tables = kept
	}
	return dataset, nil
}

// Tables reconstructs all tables and returns them as a slice.
func (e *Extractor) Tables() ([]model.Table, error) {
	dataset, err := e.Dataset()
	if err != nil {
		return nil, err
	}
	return dataset.Tables, nil
}

// CSV reconstructs all tables and renders them as CSV, with a blank line
// between consecutive tables.
func (e *Extractor) CSV() (string, error) {
	dataset, err := e.Dataset()
	if err != nil {
		return "", err
	}
	return dataset.ToCSV(), nil
}
