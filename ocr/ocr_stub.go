//go:build !ocr

// Package ocr derives alternative text for drawings by running Tesseract
// over their image data.
//
// This is the stub used when the "ocr" build tag is not set. Every
// operation returns ErrOCRNotEnabled. To enable OCR, rebuild with:
//
//	go build -tags ocr
package ocr

import (
	"errors"

	"github.com/tsawler/slidekit/model"
)

// ErrOCRNotEnabled is returned when OCR is used but support was not
// compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// DescribeDrawing returns ErrOCRNotEnabled for any drawing that would be
// sent for recognition.
func (c *Client) DescribeDrawing(d *model.Drawing) error {
	if d == nil || !describable(d) {
		return nil
	}
	return ErrOCRNotEnabled
}

func (c *Client) SetLanguage(lang ...string) error {
	return ErrOCRNotEnabled
}

func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
