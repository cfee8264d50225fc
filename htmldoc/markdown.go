package htmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"

	"github.com/tsawler/slidekit/model"
)

// ParseMarkdown converts CommonMark read from r into paragraphs. The source
// is rendered to HTML and converted with the same rules as Parse; raw HTML
// in the source is dropped.
func ParseMarkdown(r io.Reader) ([]*model.Paragraph, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading Markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering Markdown: %w", err)
	}
	return ParseWithOptions(&buf, Options{Navigation: NavigationExclusionNone})
}

// FillRichTextMarkdown replaces the paragraphs of shape with those parsed
// from the Markdown in r.
func FillRichTextMarkdown(shape *model.RichText, r io.Reader) error {
	if shape == nil {
		return errors.New("nil rich text shape")
	}
	ps, err := ParseMarkdown(r)
	if err != nil {
		return err
	}
	shape.SetParagraphs(ps)
	return nil
}
