// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/airgraph/core"
)

// Writer writes route records in the layout Read accepts. The header is
// emitted before the first row.
type Writer struct {
	cw      *csv.Writer
	row     []string
	started bool
	err     error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := resolve(opts)
	cw := csv.NewWriter(w)
	cw.Comma = o.Delimiter

	return &Writer{cw: cw, row: make([]string, len(Columns)), err: o.err}
}

// Write buffers one record.
func (w *Writer) Write(rec core.RouteRecord) error {
	if err := w.header(); err != nil {
		return err
	}
	fillEndpoint(w.row[:6], rec.Origin)
	fillEndpoint(w.row[6:], rec.Destination)

	return w.cw.Write(w.row)
}

// WriteAll writes every record and flushes. An empty slice still produces the header.
func (w *Writer) WriteAll(recs []core.RouteRecord) error {
	if err := w.header(); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.cw.Flush()

	return w.cw.Error()
}

func (w *Writer) header() error {
	if w.err != nil {
		return w.err
	}
	if w.started {
		return nil
	}
	w.started = true

	return w.cw.Write(Columns)
}

// fillEndpoint writes ep into dst in Columns order.
func fillEndpoint(dst []string, ep core.Endpoint) {
	dst[0] = ep.Code
	dst[1] = ep.Name
	dst[2] = ep.City
	dst[3] = ep.Country
	dst[4] = strconv.FormatFloat(ep.Lat, 'f', -1, 64)
	dst[5] = strconv.FormatFloat(ep.Lon, 'f', -1, 64)
}
