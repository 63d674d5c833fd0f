// Package lectern provides a fluent API for rewriting PowerPoint decks
// into screen-reader optimized documents.
//
// Basic usage:
//
//	doc, warnings, err := lectern.Open("deck.pptx").Optimize(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", lectern.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := lectern.Open("deck.pptx").
//	    Language("de").
//	    Providers(vision, completion).
//	    DescriptionCache("descriptions.db").
//	    Optimize(ctx)
//
// For advanced use cases, the lower-level pptx, classify and annotate
// packages are also available.
package lectern

import (
	"github.com/tsawler/lectern/pptx"
)

// Open opens a PPTX file and returns a Pipeline for fluent configuration.
// The returned Pipeline must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Optimize().
//
// Example:
//
//	doc, warnings, err := lectern.Open("deck.pptx").Optimize(ctx)
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultPipelineOptions(),
	}
}

// FromReader creates a Pipeline from an already-opened pptx.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := pptx.Open("deck.pptx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, warnings, err := lectern.FromReader(r).Optimize(ctx)
func FromReader(r *pptx.Reader) *Pipeline {
	return &Pipeline{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultPipelineOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := lectern.Must(lectern.Open("deck.pptx").SlideCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() or Optimize()
// and panics if the error is non-nil. It discards warnings and returns
// just the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	doc := lectern.MustDocument(lectern.Open("deck.pptx").Document())
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
