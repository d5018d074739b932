// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Column headers of the route dataset.
const (
	ColOriginCode    = "Source Airport Code"
	ColOriginName    = "Source Airport Name"
	ColOriginCity    = "Source Airport City"
	ColOriginCountry = "Source Airport Country"
	ColOriginLat     = "Source Airport Latitude"
	ColOriginLon     = "Source Airport Longitude"
	ColDestCode      = "Destination Airport Code"
	ColDestName      = "Destination Airport Name"
	ColDestCity      = "Destination Airport City"
	ColDestCountry   = "Destination Airport Country"
	ColDestLat       = "Destination Airport Latitude"
	ColDestLon       = "Destination Airport Longitude"
)

// Columns lists every header in the order Writer emits them.
var Columns = []string{
	ColOriginCode, ColOriginName, ColOriginCity, ColOriginCountry, ColOriginLat, ColOriginLon,
	ColDestCode, ColDestName, ColDestCity, ColDestCountry, ColDestLat, ColDestLon,
}

// requiredColumns must be present in the header.
var requiredColumns = []string{
	ColOriginCode, ColOriginLat, ColOriginLon,
	ColDestCode, ColDestLat, ColDestLon,
}

// fieldPaths maps a header to the record field path used in IngestionError.Field.
var fieldPaths = map[string]string{
	ColOriginCode:    "origin.code",
	ColOriginName:    "origin.name",
	ColOriginCity:    "origin.city",
	ColOriginCountry: "origin.country",
	ColOriginLat:     "origin.latitude",
	ColOriginLon:     "origin.longitude",
	ColDestCode:      "destination.code",
	ColDestName:      "destination.name",
	ColDestCity:      "destination.city",
	ColDestCountry:   "destination.country",
	ColDestLat:       "destination.latitude",
	ColDestLon:       "destination.longitude",
}

var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("ingest: missing required column")

	// ErrEmptyInput indicates the input has no header row.
	ErrEmptyInput = errors.New("ingest: input is empty")
)

// header maps column names to their position in a row.
type header map[string]int

// parseHeader indexes the header row. Names are trimmed and a UTF-8 BOM on the
// first cell is dropped; the first occurrence of a duplicated name wins.
func parseHeader(row []string) (header, error) {
	h := make(header, len(row))
	for i, name := range row {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	return h, nil
}

// get returns the trimmed cell for col, or "" when the column is absent.
func (h header) get(row []string, col string) string {
	if i, ok := h[col]; ok && i < len(row) {
		return strings.TrimSpace(row[i])
	}

	return ""
}
