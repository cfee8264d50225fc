package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/tsawler/slidekit/model"
)

// Parse converts HTML read from r into paragraphs using DefaultOptions.
//
// Block elements start new paragraphs, <br> becomes a line break and list
// items become bulleted (or numbered, inside <ol>) paragraphs whose Level is
// their nesting depth. Script, style and navigation content is skipped.
// Whitespace is collapsed as a browser would, except inside <pre>.
func Parse(r io.Reader) ([]*model.Paragraph, error) {
	return ParseWithOptions(r, DefaultOptions())
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(r io.Reader, opts Options) ([]*model.Paragraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	c := &converter{
		opts:  opts,
		excl:  newExclusionChecker(opts.Navigation, doc),
		start: true,
	}
	c.cur = c.newParagraph()
	c.walk(body)
	c.endParagraph()
	return c.out, nil
}

// ParseFile converts the named HTML file.
func ParseFile(filename string) ([]*model.Paragraph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// FillRichText replaces the paragraphs of shape with those parsed from r.
// An input without text leaves the shape with a single empty paragraph.
func FillRichText(shape *model.RichText, r io.Reader) error {
	if shape == nil {
		return errors.New("nil rich text shape")
	}
	ps, err := Parse(r)
	if err != nil {
		return err
	}
	shape.SetParagraphs(ps)
	return nil
}

// converter accumulates paragraphs during a single traversal.
type converter struct {
	opts Options
	excl *exclusionChecker

	out []*model.Paragraph
	cur *model.Paragraph
	run strings.Builder

	lists []bool // open lists, true for ordered
	cells int    // cells seen in the current table row
	pre   int

	space bool // collapsed whitespace waiting to be written
	start bool // at the start of a line
}

func (c *converter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.text(n.Data)
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) || c.excl.shouldExclude(n) {
			return
		}
	default:
		c.children(n)
		return
	}

	switch n.Data {
	case "br":
		c.lineBreak()

	case "ul", "ol":
		c.endParagraph()
		c.lists = append(c.lists, n.Data == "ol")
		c.children(n)
		c.lists = c.lists[:len(c.lists)-1]
		c.endParagraph()

	case "li":
		c.endParagraph()
		if len(c.lists) > 0 && c.lists[len(c.lists)-1] {
			c.cur.Numbered = true
		} else {
			c.cur.Bullet = c.opts.bullet()
		}
		c.children(n)
		c.endParagraph()
		c.cur = c.newParagraph()

	case "pre":
		c.endParagraph()
		c.pre++
		c.children(n)
		c.pre--
		c.endParagraph()

	case "tr":
		c.endParagraph()
		c.cells = 0
		c.children(n)
		c.endParagraph()

	case "td", "th":
		if c.cells > 0 {
			c.raw("\t")
		}
		c.cells++
		c.children(n)

	default:
		if isBlock(n.Data) {
			c.endParagraph()
			c.children(n)
			c.endParagraph()
			return
		}
		c.children(n)
	}
}

func (c *converter) children(n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.walk(ch)
	}
}

func (c *converter) text(s string) {
	if c.pre > 0 {
		for i, line := range strings.Split(s, "\n") {
			if i > 0 {
				c.lineBreak()
			}
			c.raw(line)
		}
		return
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			c.space = true
			continue
		}
		if c.space && !c.start {
			c.run.WriteByte(' ')
		}
		c.space = false
		c.start = false
		c.run.WriteRune(r)
	}
}

// raw writes s without whitespace collapsing.
func (c *converter) raw(s string) {
	if s == "" {
		return
	}
	c.run.WriteString(s)
	c.space = false
	c.start = s == "\t"
}

func (c *converter) flushRun() {
	if c.run.Len() > 0 {
		c.cur.CreateTextRun(c.run.String())
		c.run.Reset()
	}
}

func (c *converter) lineBreak() {
	c.flushRun()
	c.cur.CreateBreak()
	c.space = false
	c.start = true
}

// endParagraph closes the current paragraph, keeping it only if it holds
// text, and opens a fresh one. A list marker on a paragraph without text
// moves to the next paragraph, as in <li><p>text</p></li>.
func (c *converter) endParagraph() {
	c.flushRun()
	els := c.cur.Elements()
	for len(els) > 0 {
		if _, ok := els[len(els)-1].(model.Break); !ok {
			break
		}
		els = els[:len(els)-1]
	}
	next := c.newParagraph()
	if len(els) > 0 {
		p := c.newParagraph()
		p.Level, p.Bullet, p.Numbered = c.cur.Level, c.cur.Bullet, c.cur.Numbered
		for _, e := range els {
			p.AddElement(e)
		}
		c.out = append(c.out, p)
	} else {
		next.Bullet, next.Numbered = c.cur.Bullet, c.cur.Numbered
	}
	c.cur = next
	c.space = false
	c.start = true
}

func (c *converter) newParagraph() *model.Paragraph {
	p := model.NewParagraph()
	if len(c.lists) > 1 {
		p.Level = len(c.lists) - 1
	}
	return p
}

// shouldSkipElement returns true if the element never carries readable text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "head", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlock reports whether the element starts and ends a paragraph.
func isBlock(tagName string) bool {
	switch tagName {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "article", "section", "main", "header", "footer",
		"address", "figure", "figcaption", "dl", "dt", "dd", "table", "hr":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}
