package model

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/slidekit/format"
	"github.com/tsawler/slidekit/measure"
)

// ErrUnknownImageFormat is returned when drawing data is not a supported
// image.
var ErrUnknownImageFormat = errors.New("unknown image format")

// Drawing is an embedded picture.
type Drawing struct {
	Graphic
	path   string
	data   []byte
	format format.Format
}

// NewDrawing returns a drawing without image data.
func NewDrawing() *Drawing {
	return &Drawing{Graphic: newGraphic()}
}

func (d *Drawing) Kind() Kind { return KindDrawing }

// Path returns the file the image was loaded from, if any.
func (d *Drawing) Path() string { return d.path }

// Data returns the raw image bytes.
func (d *Drawing) Data() []byte { return d.data }

// Format returns the detected image format.
func (d *Drawing) Format() format.Format { return d.format }

// SetPath loads the image at path.
func (d *Drawing) SetPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := d.SetData(data); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	d.path = path
	return nil
}

// SetData sets the image bytes. The format is detected from the content.
// When the drawing has no size yet, raster images are sized to their pixel
// dimensions.
func (d *Drawing) SetData(data []byte) error {
	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		return ErrUnknownImageFormat
	}

	var cfg image.Config
	if f.Raster() {
		c, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode %s header: %w", f, err)
		}
		cfg = c
	}

	d.data = data
	d.format = f
	d.path = ""
	if cfg.Width > 0 && cfg.Height > 0 && d.width.IsZero() && d.height.IsZero() {
		d.width = measure.Pixels(float64(cfg.Width))
		d.height = measure.Pixels(float64(cfg.Height))
		d.touch()
	}
	return nil
}

// Extension returns the file extension used when the image is stored in a
// package, including the dot.
func (d *Drawing) Extension() string { return d.format.Extension() }

// MIMEType returns the content type of the image.
func (d *Drawing) MIMEType() string { return d.format.MIMEType() }

// DataHash returns the md5 hex digest of the image bytes, or "" when the
// drawing is empty.
func (d *Drawing) DataHash() string {
	if len(d.data) == 0 {
		return ""
	}
	sum := md5.Sum(d.data)
	return hex.EncodeToString(sum[:])
}

func (d *Drawing) HashCode() string {
	return hashOf(append(d.Graphic.hashParts(), d.path, d.DataHash(), "model.Drawing")...)
}
