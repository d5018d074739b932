// Package ingest turns route CSV files into the record sequence core.Build
// consumes, and writes generated networks back out in the same layout.
//
// Input layout (header row required, column order free, extra columns ignored):
//
//	Source Airport Code, Source Airport Name, Source Airport City,
//	Source Airport Country, Source Airport Latitude, Source Airport Longitude,
//	Destination Airport Code, ... (same six fields for the destination)
//
// Code, latitude and longitude columns are required for both sides; name, city
// and country columns may be absent and then read as empty strings.
//
// Read and File return iter.Seq2[core.RouteRecord, error]. The first malformed
// row stops the sequence with a *core.IngestionError that carries the 0-based
// record index, the 1-based CSV line and the field path ("origin.latitude"),
// so core.Build fails the whole load and a core.Store keeps its prior snapshot.
//
// Writer emits the same header followed by one row per record.
package ingest
