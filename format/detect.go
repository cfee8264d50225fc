// Package format provides image format detection for drawing shapes.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents an image format that can be embedded in a slide.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a Portable Network Graphics image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a Graphics Interchange Format image.
	GIF
	// BMP indicates a Windows bitmap.
	BMP
	// TIFF indicates a Tagged Image File Format image.
	TIFF
	// WEBP indicates a WebP image.
	WEBP
	// SVG indicates a Scalable Vector Graphics document.
	SVG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case WEBP:
		return "WEBP"
	case SVG:
		return "SVG"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension used for the format inside a
// presentation package.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpeg"
	case GIF:
		return ".gif"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	case WEBP:
		return ".webp"
	case SVG:
		return ".svg"
	default:
		return ""
	}
}

// MIMEType returns the content type registered for the format.
func (f Format) MIMEType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	case WEBP:
		return "image/webp"
	case SVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// Raster reports whether the format is a bitmap that carries pixel
// dimensions in its header.
func (f Format) Raster() bool {
	return f != Unknown && f != SVG
}

// Detect determines the image format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg", ".jpe":
		return JPEG
	case ".gif":
		return GIF
	case ".bmp", ".dib":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	case ".webp":
		return WEBP
	case ".svg":
		return SVG
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes to determine the format.
// This is more reliable than extension-based detection.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("BM")) && len(data) >= 14:
		return BMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WEBP
	case detectSVGMagic(data):
		return SVG
	}
	return Unknown
}

// detectSVGMagic checks if the data looks like an SVG document.
func detectSVGMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '<' {
		return false
	}
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	return strings.Contains(head, "<svg")
}

// DetectFromReader reads the first bytes of r and detects the format
// from them.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
