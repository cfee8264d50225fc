// Package slidekit builds presentations in memory and writes them as PPTX
// files.
//
// Basic usage:
//
//	p, err := slidekit.NewPresentation(layout.Screen16x9, true)
//	if err != nil {
//	    // handle error
//	}
//	box := p.CreateSlide().CreateRichTextShape()
//	box.CreateTextRun("Hello")
//
//	warnings, err := slidekit.Export(p).WriteFile("hello.pptx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slidekit.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := slidekit.Export(p).
//	    Compression(flate.BestCompression).
//	    DescribeImagesWithOCR().
//	    WriteFile("deck.pptx")
//
// The model, layout and pptx packages are available for finer control.
package slidekit

import (
	"strings"

	"github.com/tsawler/slidekit/layout"
	"github.com/tsawler/slidekit/model"
	"github.com/tsawler/slidekit/pptx"
)

// Warning describes a non-fatal problem found while exporting.
type Warning = pptx.Warning

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// NewPresentation returns an empty presentation sized to the named layout.
func NewPresentation(name layout.Name, landscape bool) (*model.Presentation, error) {
	p := model.NewPresentation()
	if err := p.Layout.Set(name, landscape); err != nil {
		return nil, err
	}
	return p, nil
}

// Export returns an Exporter for fluent configuration.
//
// Example:
//
//	warnings, err := slidekit.Export(p).WriteFile("deck.pptx")
func Export(p *model.Presentation) *Exporter {
	return &Exporter{
		presentation: p,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	p := slidekit.Must(slidekit.NewPresentation(layout.A4, true))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWrite wraps a call to a terminal export operation, panicking if the
// error is non-nil and discarding warnings.
//
// Example:
//
//	data := slidekit.MustWrite(slidekit.Export(p).Bytes())
func MustWrite[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
