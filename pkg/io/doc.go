// Package io provides JSON import and export for frame datasets.
//
// # Overview
//
// Spreadsheets are the primary input, but a frame is small enough to keep as
// JSON as well. The JSON form is used for:
//
//   - Fixtures and hand-written test datasets
//   - Caching decoded workbooks so a re-render skips spreadsheet decoding
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "members": [
//	    {"start": "1", "end": "2"},
//	    {"start": "2", "end": "3"}
//	  ],
//	  "nodes": [
//	    {"id": "1", "x": 0, "y": 0, "z": 0},
//	    {"id": "2", "x": 0, "y": 5, "z": 0},
//	    {"id": "3", "x": 4, "y": 5, "z": 0}
//	  ]
//	}
//
// Coordinates that are omitted read as 0. Members are kept in order, and
// member identifiers are re-derived on import, so they never need to be
// written down.
//
// Unlike workbook decoding, an empty JSON dataset is not an error here; the
// caller decides whether an empty frame is acceptable.
package io
