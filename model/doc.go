// Package model provides the intermediate representation for highlight
// extraction.
//
// This package defines the user-facing data structures that the extraction
// pipeline produces and consumes. All geometry lives in page coordinate
// units with the origin at the top-left corner and Y increasing downward,
// matching the coordinate space annotations are reported in.
//
// # Core Types
//
//   - [Rect] - axis-aligned rectangle with intersection and overlap helpers
//   - [Word] - a positioned word on a page
//   - [Region] - the geometric footprint of one annotation
//   - [Record] - one reconstructed highlight or annotation
//
// Word values exist only for the duration of one page's processing. Record
// values are created once per detected region and flow through the merge and
// deduplication stages before being returned to the caller.
package model
