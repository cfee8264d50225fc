//go:build ocr

// Package ocr derives alternative text for drawings by running Tesseract
// over their image data.
//
// It wraps the Tesseract OCR engine via gosseract and requires Tesseract to
// be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/slidekit/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources. It is safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG, ...)
// and returns the text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// DescribeDrawing sets the description of d to the text recognised in its
// image. Drawings that already have a description, have no data or hold a
// vector image are left alone.
func (c *Client) DescribeDrawing(d *model.Drawing) error {
	if d == nil || !describable(d) {
		return nil
	}
	text, err := c.RecognizeImage(d.Data())
	if err != nil {
		return err
	}
	d.SetDescription(strings.Join(strings.Fields(text), " "))
	return nil
}

// SetLanguage sets the language(s) for recognition, "+" separated
// (e.g. "eng+fra"). The default is "eng".
func (c *Client) SetLanguage(lang ...string) error {
	return c.client.SetLanguage(lang...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
