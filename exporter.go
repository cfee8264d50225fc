package slidekit

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsawler/slidekit/model"
	"github.com/tsawler/slidekit/ocr"
	"github.com/tsawler/slidekit/pptx"
)

// Exporter provides a fluent interface for writing a presentation.
// Each configuration method returns a new Exporter, so a configured
// Exporter can be shared and extended without affecting others.
type Exporter struct {
	presentation *model.Presentation
	options      ExportOptions

	// Accumulated error (fail-fast)
	err error
}

func (e *Exporter) clone() *Exporter {
	return &Exporter{
		presentation: e.presentation,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// Compression sets the deflate level, from flate.HuffmanOnly to
// flate.BestCompression. An invalid level makes every terminal operation
// fail.
//
// Example:
//
//	_, err := slidekit.Export(p).Compression(flate.BestSpeed).WriteFile("deck.pptx")
func (e *Exporter) Compression(level int) *Exporter {
	newExp := e.clone()
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		if newExp.err == nil {
			newExp.err = fmt.Errorf("invalid compression level %d", level)
		}
		return newExp
	}
	newExp.options.compression = level
	return newExp
}

// DescribeImages sets a describer consulted for drawings that have no
// description. Describer failures are reported as warnings.
func (e *Exporter) DescribeImages(d pptx.Describer) *Exporter {
	newExp := e.clone()
	newExp.options.describer = d
	return newExp
}

// DescribeImagesWithOCR describes drawings with the text Tesseract finds in
// them. The OCR client lives for a single write. Without the "ocr" build
// tag terminal operations fail with ocr.ErrOCRNotEnabled.
func (e *Exporter) DescribeImagesWithOCR() *Exporter {
	newExp := e.clone()
	newExp.options.ocr = true
	return newExp
}

// Clock sets the time used for creation and modification dates the
// presentation leaves unset.
func (e *Exporter) Clock(now func() time.Time) *Exporter {
	newExp := e.clone()
	newExp.options.now = now
	return newExp
}

// Write encodes the presentation as PPTX to w.
func (e *Exporter) Write(w io.Writer) (warnings []Warning, err error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.presentation == nil {
		return nil, errors.New("no presentation to export")
	}

	var d pptx.Describer
	if e.options.ocr {
		client, oerr := ocr.New()
		if oerr != nil {
			return nil, fmt.Errorf("starting OCR: %w", oerr)
		}
		defer func() {
			if cerr := client.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		d = client
	}

	return pptx.NewWriter(e.options.writerOptions(d)...).Write(w, e.presentation)
}

// WriteFile writes the presentation to the named file. Nothing is written
// when encoding fails.
func (e *Exporter) WriteFile(name string) ([]Warning, error) {
	if e.err != nil {
		return nil, e.err
	}
	var buf bytes.Buffer
	warnings, err := e.Write(&buf)
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// Bytes returns the encoded presentation.
func (e *Exporter) Bytes() ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := e.Write(&buf)
	if err != nil {
		return nil, warnings, err
	}
	return buf.Bytes(), warnings, nil
}

// Text returns the plain text of every slide, slides separated by a blank
// line.
func (e *Exporter) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	if e.presentation == nil {
		return "", nil, errors.New("no presentation to export")
	}
	return e.presentation.ExtractText(), nil, nil
}
