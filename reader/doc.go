// Package reader provides access to the PDF documents the extraction
// pipeline operates on.
//
// The core engine only depends on the [Source] and [Page] interfaces, which
// describe what any PDF access layer must provide: per-page annotation
// records and positioned words, plus best-effort clipped text extraction.
// The production implementation, [OpenDocument], is backed by
// github.com/ledongthuc/pdf; [Preflight] runs a pdfcpu validation probe to
// catch structurally broken or image-only documents before parsing.
//
// All geometry handed out by this package is converted to top-left-origin
// page coordinates with Y increasing downward.
package reader
