// Package pagemark provides a fluent API for extracting highlight and
// annotation text from PDF files.
//
// Basic usage:
//
//	records, warnings, err := pagemark.Open("notes.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagemark.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := pagemark.Open("notes.pdf").
//	    Pages(1, 2, 3).
//	    Colors(colors.Yellow, colors.Green).
//	    HighlightsOnly().
//	    Records()
//
// For advanced use cases, the lower-level reader and extract packages are
// also available.
package pagemark

import (
	"github.com/pagemark/pagemark/model"
	"github.com/pagemark/pagemark/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Records().
//
// Example:
//
//	records, warnings, err := pagemark.Open("notes.pdf").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
		config:   DefaultConfig(),
	}
}

// FromSource creates an Extractor from an already-opened reader.Source.
// This is useful when you need more control over the source lifecycle.
// Note: The caller is responsible for closing the source.
func FromSource(src reader.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
		config:       DefaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pagemark.Must(pagemark.Open("notes.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a call to Records() and panics if the error is
// non-nil. It discards warnings and returns just the records.
func MustRecords(records []model.Record, _ []Warning, err error) []model.Record {
	if err != nil {
		panic(err)
	}
	return records
}
