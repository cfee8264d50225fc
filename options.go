package slidekit

import (
	"compress/flate"
	"time"

	"github.com/tsawler/slidekit/pptx"
)

// ExportOptions holds configuration for writing a presentation.
type ExportOptions struct {
	compression int
	describer   pptx.Describer
	ocr         bool // describe drawings with an OCR client opened per write
	now         func() time.Time
}

// defaultOptions returns the default export options.
func defaultOptions() ExportOptions {
	return ExportOptions{
		compression: flate.DefaultCompression,
	}
}

// clone returns a copy of the options. Describer and clock are shared.
func (o ExportOptions) clone() ExportOptions {
	return ExportOptions{
		compression: o.compression,
		describer:   o.describer,
		ocr:         o.ocr,
		now:         o.now,
	}
}

// writerOptions translates the options for pptx.NewWriter. d overrides the
// configured describer when non-nil.
func (o ExportOptions) writerOptions(d pptx.Describer) []pptx.Option {
	opts := []pptx.Option{pptx.WithCompression(o.compression)}
	if d == nil {
		d = o.describer
	}
	if d != nil {
		opts = append(opts, pptx.WithDescriber(d))
	}
	if o.now != nil {
		opts = append(opts, pptx.WithClock(o.now))
	}
	return opts
}
