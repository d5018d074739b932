// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: CSV rows -> core.RouteRecord sequence.
// Policy:
//   - The sequence stops at the first bad row; the error is always *core.IngestionError.
//   - Rows are checked with core.Check here so failures carry the CSV line.
//   - Codes are kept as written; query-side callers upper-case their input.

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/airgraph/core"
)

// side names the six columns describing one endpoint.
type side struct {
	code, name, city, country, lat, lon string
}

var (
	originSide = side{ColOriginCode, ColOriginName, ColOriginCity, ColOriginCountry, ColOriginLat, ColOriginLon}
	destSide   = side{ColDestCode, ColDestName, ColDestCity, ColDestCountry, ColDestLat, ColDestLon}
)

// Read returns the route records of the CSV stream r. Every iteration re-reads
// from the current position of r, so a stream is normally ranged over once.
//
// Errors (yielded once, then the sequence ends):
//   - Index -1: ErrEmptyInput, ErrMissingColumn, ErrInvalidDelimiter or a header
//     read failure.
//   - Index >= 0: csv syntax or field-count errors, ErrMissingField or
//     ErrInvalidCoordinate for unparsable degrees, and any core.Check failure.
func Read(r io.Reader, opts ...Option) iter.Seq2[core.RouteRecord, error] {
	o := resolve(opts)

	return func(yield func(core.RouteRecord, error) bool) {
		if o.err != nil {
			yield(core.RouteRecord{}, &core.IngestionError{Index: -1, Err: o.err})
			return
		}
		cr := csv.NewReader(r)
		cr.Comma = o.Delimiter
		cr.ReuseRecord = true

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			yield(core.RouteRecord{}, &core.IngestionError{Index: -1, Err: ErrEmptyInput})
			return
		}
		if err != nil {
			yield(core.RouteRecord{}, &core.IngestionError{Index: -1, Line: lineOf(err), Err: err})
			return
		}
		h, err := parseHeader(row)
		if err != nil {
			yield(core.RouteRecord{}, &core.IngestionError{Index: -1, Line: 1, Err: err})
			return
		}

		var idx int
		for {
			row, err = cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				yield(core.RouteRecord{}, &core.IngestionError{Index: idx, Line: lineOf(err), Err: err})
				return
			}
			line, _ := cr.FieldPos(0)
			rec, field, err := h.record(row)
			if err == nil {
				field, err = core.Check(rec)
			}
			if err != nil {
				yield(core.RouteRecord{}, &core.IngestionError{Index: idx, Line: line, Field: field, Err: err})
				return
			}
			if !yield(rec, nil) {
				return
			}
			idx++
		}
		o.Logger.Debug("csv routes read", "records", idx)
	}
}

// File is Read over the file at path. The file is opened on every iteration
// and closed when the iteration ends.
func File(path string, opts ...Option) iter.Seq2[core.RouteRecord, error] {
	return func(yield func(core.RouteRecord, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(core.RouteRecord{}, &core.IngestionError{Index: -1, Err: err})
			return
		}
		defer f.Close()

		for rec, err := range Read(f, opts...) {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// LoadFile builds the dataset at path into st. A failed load leaves the current
// snapshot in place and is logged at error level.
func LoadFile(st *core.Store, path string, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	start := time.Now()

	g, err := st.Load(File(path, opts...))
	if err != nil {
		o.Logger.Error("route load failed", "path", path, "error", err)
		return nil, err
	}
	o.Logger.Info("routes loaded",
		"path", path,
		"airports", g.VertexCount(),
		"routes", g.EdgeCount(),
		"generation", st.Generation(),
		"elapsed", time.Since(start),
	)

	return g, nil
}

// record converts one data row.
func (h header) record(row []string) (core.RouteRecord, string, error) {
	origin, field, err := h.endpoint(row, originSide)
	if err != nil {
		return core.RouteRecord{}, field, err
	}
	dest, field, err := h.endpoint(row, destSide)
	if err != nil {
		return core.RouteRecord{}, field, err
	}

	return core.RouteRecord{Origin: origin, Destination: dest}, "", nil
}

func (h header) endpoint(row []string, s side) (core.Endpoint, string, error) {
	lat, err := parseDegrees(h.get(row, s.lat))
	if err != nil {
		return core.Endpoint{}, fieldPaths[s.lat], err
	}
	lon, err := parseDegrees(h.get(row, s.lon))
	if err != nil {
		return core.Endpoint{}, fieldPaths[s.lon], err
	}

	return core.Endpoint{
		Code:    h.get(row, s.code),
		Name:    h.get(row, s.name),
		City:    h.get(row, s.city),
		Country: h.get(row, s.country),
		Lat:     lat,
		Lon:     lon,
	}, "", nil
}

func parseDegrees(s string) (float64, error) {
	if s == "" {
		return 0, core.ErrMissingField
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidCoordinate, s)
	}

	return v, nil
}

// lineOf extracts the line number from a csv.ParseError, else 0.
func lineOf(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}

	return 0
}
