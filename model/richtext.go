package model

import (
	"strconv"
	"strings"
)

// TextElement is a piece of paragraph content.
type TextElement interface {
	Text() string
	HashCode() string
}

// TextRun is a run of plain text.
type TextRun struct {
	text string
}

// NewTextRun returns a run holding text.
func NewTextRun(text string) *TextRun { return &TextRun{text: text} }

func (r *TextRun) Text() string        { return r.text }
func (r *TextRun) SetText(text string) { r.text = text }
func (r *TextRun) HashCode() string    { return hashOf(r.text, "model.TextRun") }

// Break is a line break inside a paragraph.
type Break struct{}

func (Break) Text() string     { return "\n" }
func (Break) HashCode() string { return hashOf("model.Break") }

// Paragraph is a sequence of text elements.
type Paragraph struct {
	Level    int    // indent level, 0 is top level
	Bullet   string // bullet character, empty for none
	Numbered bool   // auto-numbered list item

	elements []TextElement
}

// NewParagraph returns an empty paragraph.
func NewParagraph() *Paragraph { return &Paragraph{} }

// Elements returns the paragraph content in order.
func (p *Paragraph) Elements() []TextElement { return p.elements }

// AddElement appends e to the paragraph.
func (p *Paragraph) AddElement(e TextElement) { p.elements = append(p.elements, e) }

// CreateTextRun appends a run of text.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	r := NewTextRun(text)
	p.elements = append(p.elements, r)
	return r
}

// CreateBreak appends a line break.
func (p *Paragraph) CreateBreak() Break {
	p.elements = append(p.elements, Break{})
	return Break{}
}

// PlainText concatenates the paragraph content.
func (p *Paragraph) PlainText() string {
	var sb strings.Builder
	for _, e := range p.elements {
		sb.WriteString(e.Text())
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no content.
func (p *Paragraph) IsEmpty() bool { return len(p.elements) == 0 }

func (p *Paragraph) HashCode() string {
	parts := []string{strconv.Itoa(p.Level), p.Bullet, strconv.FormatBool(p.Numbered)}
	for _, e := range p.elements {
		parts = append(parts, e.HashCode())
	}
	return hashOf(append(parts, "model.Paragraph")...)
}

// RichText is a text box.
type RichText struct {
	Frame
	paragraphs []*Paragraph
	active     int
}

// NewRichText returns a text box holding one empty paragraph.
func NewRichText() *RichText {
	return &RichText{paragraphs: []*Paragraph{NewParagraph()}}
}

func (r *RichText) Kind() Kind { return KindRichText }

// Paragraphs returns the paragraphs in order.
func (r *RichText) Paragraphs() []*Paragraph { return r.paragraphs }

// SetParagraphs replaces the content. The last paragraph becomes active.
// An empty list leaves a single empty paragraph.
func (r *RichText) SetParagraphs(ps []*Paragraph) {
	if len(ps) == 0 {
		ps = []*Paragraph{NewParagraph()}
	}
	r.paragraphs = ps
	r.active = len(ps) - 1
}

// ActiveParagraph returns the paragraph new runs are appended to.
func (r *RichText) ActiveParagraph() *Paragraph { return r.paragraphs[r.active] }

// CreateParagraph appends a paragraph and makes it active.
func (r *RichText) CreateParagraph() *Paragraph {
	p := NewParagraph()
	r.paragraphs = append(r.paragraphs, p)
	r.active = len(r.paragraphs) - 1
	return p
}

// CreateTextRun appends a run to the active paragraph.
func (r *RichText) CreateTextRun(text string) *TextRun {
	return r.ActiveParagraph().CreateTextRun(text)
}

// CreateBreak appends a line break to the active paragraph.
func (r *RichText) CreateBreak() Break {
	return r.ActiveParagraph().CreateBreak()
}

// PlainText returns the text of all paragraphs separated by newlines.
func (r *RichText) PlainText() string {
	lines := make([]string, len(r.paragraphs))
	for i, p := range r.paragraphs {
		lines[i] = p.PlainText()
	}
	return strings.Join(lines, "\n")
}

func (r *RichText) hashParts() []string {
	parts := r.Frame.hashParts()
	for _, p := range r.paragraphs {
		parts = append(parts, p.HashCode())
	}
	return parts
}

func (r *RichText) HashCode() string {
	return hashOf(append(r.hashParts(), "model.RichText")...)
}

// AdjustValue is a named shape guide value of a preset geometry.
type AdjustValue struct {
	Name  string
	Value int64
}

// EnhancedGeometry describes the outline of a custom shape.
type EnhancedGeometry struct {
	Preset string // preset geometry name, e.g. "roundRect"
	Adjust []AdjustValue
}

func (e EnhancedGeometry) HashCode() string {
	parts := []string{e.Preset}
	for _, a := range e.Adjust {
		parts = append(parts, a.Name, strconv.FormatInt(a.Value, 10))
	}
	return hashOf(append(parts, "model.EnhancedGeometry")...)
}

// CustomShape is a text box with a non-rectangular outline.
type CustomShape struct {
	RichText
	Geometry EnhancedGeometry
}

// NewCustomShape returns a custom shape using the given preset geometry.
func NewCustomShape(preset string) *CustomShape {
	return &CustomShape{
		RichText: *NewRichText(),
		Geometry: EnhancedGeometry{Preset: preset},
	}
}

func (c *CustomShape) Kind() Kind { return KindCustom }

func (c *CustomShape) String() string { return c.PlainText() }

func (c *CustomShape) HashCode() string {
	return hashOf(append(c.RichText.hashParts(), c.Geometry.HashCode(), "model.CustomShape")...)
}
