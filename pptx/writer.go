// Package pptx writes presentations as PPTX (Office Open XML Presentation)
// packages.
package pptx

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/slidekit/model"
)

//go:embed templates/*.xml
var templates embed.FS

const application = "slidekit"

// Warning describes a non-fatal problem found while writing.
type Warning struct {
	Slide   int    // 1-indexed slide number, 0 for the package itself
	Shape   string // shape name, if the problem concerns one shape
	Message string
}

func (w Warning) String() string {
	var sb strings.Builder
	if w.Slide > 0 {
		fmt.Fprintf(&sb, "slide %d: ", w.Slide)
	}
	if w.Shape != "" {
		fmt.Fprintf(&sb, "%s: ", w.Shape)
	}
	sb.WriteString(w.Message)
	return sb.String()
}

// Describer fills in a description for a drawing that has none.
type Describer interface {
	DescribeDrawing(d *model.Drawing) error
}

// Option configures a Writer.
type Option func(*Writer)

// WithCompression sets the deflate level used for package parts, from
// flate.HuffmanOnly to flate.BestCompression.
func WithCompression(level int) Option {
	return func(w *Writer) { w.compression = level }
}

// WithDescriber sets a describer consulted for drawings without a
// description.
func WithDescriber(d Describer) Option {
	return func(w *Writer) { w.describer = d }
}

// WithClock sets the time source used for document timestamps that the
// presentation leaves unset.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// Writer serialises presentations. A Writer holds only configuration and
// may be reused.
type Writer struct {
	compression int
	describer   Describer
	now         func() time.Time
}

// NewWriter returns a Writer with the given options applied.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		compression: flate.DefaultCompression,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Compression returns the configured deflate level.
func (w *Writer) Compression() int { return w.compression }

// Write encodes p as a PPTX package to out.
func (w *Writer) Write(out io.Writer, p *model.Presentation) ([]Warning, error) {
	if p == nil {
		return nil, errors.New("nil presentation")
	}
	if w.compression < flate.HuffmanOnly || w.compression > flate.BestCompression {
		return nil, fmt.Errorf("invalid compression level %d", w.compression)
	}

	pkg := newPackage(w)
	if err := pkg.build(p); err != nil {
		return pkg.warnings, err
	}

	zw := zip.NewWriter(out)
	level := w.compression
	zw.RegisterCompressor(zip.Deflate, func(dst io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(dst, level)
	})
	for _, part := range pkg.parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return pkg.warnings, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := fw.Write(part.data); err != nil {
			return pkg.warnings, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return pkg.warnings, fmt.Errorf("closing archive: %w", err)
	}
	return pkg.warnings, nil
}

// WriteFile writes p to the named file, creating or truncating it.
func (w *Writer) WriteFile(name string, p *model.Presentation) (warnings []Warning, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return w.Write(f, p)
}

// Write encodes p with default options.
func Write(out io.Writer, p *model.Presentation) ([]Warning, error) {
	return NewWriter().Write(out, p)
}

// WriteFile writes p to the named file with default options.
func WriteFile(name string, p *model.Presentation) ([]Warning, error) {
	return NewWriter().WriteFile(name, p)
}

type part struct {
	name string
	data []byte
}

// pkgBuilder assembles the parts of one package in memory.
type pkgBuilder struct {
	w        *Writer
	parts    []part
	warnings []Warning

	media       *Sequence
	mediaByHash map[string]string // image data hash -> part name
	defaults    map[string]string // extension -> content type
	overrides   []ctOverrideXML
}

func newPackage(w *Writer) *pkgBuilder {
	return &pkgBuilder{
		w:           w,
		media:       NewSequence(1),
		mediaByHash: make(map[string]string),
		defaults: map[string]string{
			"rels": ctRelationships,
			"xml":  ctXML,
		},
	}
}

func (b *pkgBuilder) warn(slide int, shape, format string, args ...any) {
	b.warnings = append(b.warnings, Warning{Slide: slide, Shape: shape, Message: fmt.Sprintf(format, args...)})
}

func (b *pkgBuilder) addXML(name, contentType string, v any) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	b.addRaw(name, contentType, buf.Bytes())
	return nil
}

func (b *pkgBuilder) addRaw(name, contentType string, data []byte) {
	b.parts = append(b.parts, part{name: name, data: data})
	if contentType != "" {
		b.overrides = append(b.overrides, ctOverrideXML{PartName: "/" + name, ContentType: contentType})
	}
}

func (b *pkgBuilder) addTemplate(name, contentType string) error {
	data, err := templates.ReadFile("templates/" + name[strings.LastIndex(name, "/")+1:])
	if err != nil {
		return fmt.Errorf("reading template for %s: %w", name, err)
	}
	b.addRaw(name, contentType, data)
	return nil
}

func rels(r ...relationshipXML) relationshipsXML {
	return relationshipsXML{Xmlns: nsPackageRels, Relationship: r}
}

func (b *pkgBuilder) build(p *model.Presentation) error {
	if err := b.addXML("_rels/.rels", "", rels(
		relationshipXML{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		relationshipXML{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		relationshipXML{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	)); err != nil {
		return err
	}
	if err := b.addXML("docProps/core.xml", ctCoreProps, b.coreProperties(p.Metadata)); err != nil {
		return err
	}
	if err := b.addXML("docProps/app.xml", ctExtendedProps, appPropertiesXML{
		Xmlns:       nsExtendedProps,
		Application: application,
		Company:     p.Metadata.Company,
		Slides:      p.SlideCount(),
	}); err != nil {
		return err
	}

	if err := b.addTemplate("ppt/slideMasters/slideMaster1.xml", ctSlideMaster); err != nil {
		return err
	}
	if err := b.addXML("ppt/slideMasters/_rels/slideMaster1.xml.rels", "", rels(
		relationshipXML{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		relationshipXML{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	)); err != nil {
		return err
	}
	if err := b.addTemplate("ppt/slideLayouts/slideLayout1.xml", ctSlideLayout); err != nil {
		return err
	}
	if err := b.addXML("ppt/slideLayouts/_rels/slideLayout1.xml.rels", "", rels(
		relationshipXML{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	)); err != nil {
		return err
	}
	if err := b.addTemplate("ppt/theme/theme1.xml", ctTheme); err != nil {
		return err
	}

	size := p.PageLayout()
	presRels := NewSequence(1)
	presRel := []relationshipXML{
		{ID: presRels.nextRelID(), Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		{ID: presRels.nextRelID(), Type: relTheme, Target: "theme/theme1.xml"},
	}
	pres := presentationXML{
		XmlnsA: nsDrawingML,
		XmlnsR: nsRelationships,
		XmlnsP: nsPresentationML,
		SlideMasterIdList: sldMasterIdListXML{
			SldMasterId: []slideIdXML{{ID: 2147483648, RID: presRel[0].ID}},
		},
		SlideSz: slideSzXML{
			Cx:   emu(size.CX()),
			Cy:   emu(size.CY()),
			Type: slideSizeType(size.Name()),
		},
		NotesSz: extXML{Cx: 6858000, Cy: 9144000},
	}

	slideIDs := NewSequence(256)
	for i, s := range p.Slides() {
		num := i + 1
		name := fmt.Sprintf("slides/slide%d.xml", num)
		if err := b.buildSlide(num, s); err != nil {
			return fmt.Errorf("slide %d: %w", num, err)
		}
		rid := presRels.nextRelID()
		presRel = append(presRel, relationshipXML{ID: rid, Type: relSlide, Target: name})
		if pres.SlideIdList == nil {
			pres.SlideIdList = &slideIdListXML{}
		}
		pres.SlideIdList.SlideId = append(pres.SlideIdList.SlideId, slideIdXML{ID: uint32(slideIDs.Next()), RID: rid})
	}

	if err := b.addXML("ppt/presentation.xml", ctPresentation, pres); err != nil {
		return err
	}
	if err := b.addXML("ppt/_rels/presentation.xml.rels", "", rels(presRel...)); err != nil {
		return err
	}

	// The content types part goes first in the archive.
	types := contentTypesXML{Xmlns: nsContentTypes, Overrides: b.overrides}
	exts := make([]string, 0, len(b.defaults))
	for ext := range b.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		types.Defaults = append(types.Defaults, ctDefaultXML{Extension: ext, ContentType: b.defaults[ext]})
	}
	body := b.parts
	b.parts = nil
	if err := b.addXML("[Content_Types].xml", "", types); err != nil {
		return err
	}
	b.parts = append(b.parts, body...)
	return nil
}

func (b *pkgBuilder) coreProperties(m model.Metadata) corePropertiesXML {
	now := b.w.now().UTC()
	created, modified := m.CreationDate, m.ModDate
	if created.IsZero() {
		created = now
	}
	if modified.IsZero() {
		modified = now
	}
	return corePropertiesXML{
		XmlnsCP:      nsCoreProps,
		XmlnsDC:      nsDublinCore,
		XmlnsDCTerms: nsDCTerms,
		XmlnsXSI:     nsXSI,
		Title:        m.Title,
		Subject:      m.Subject,
		Creator:      m.Author,
		Keywords:     strings.Join(m.Keywords, ", "),
		Description:  m.Description,
		Category:     m.Category,
		Created:      &w3cdtfXML{Type: "dcterms:W3CDTF", Value: created.UTC().Format(time.RFC3339)},
		Modified:     &w3cdtfXML{Type: "dcterms:W3CDTF", Value: modified.UTC().Format(time.RFC3339)},
	}
}

// storeMedia adds the image of d to the package once per distinct content
// and returns its part name.
func (b *pkgBuilder) storeMedia(d *model.Drawing) string {
	hash := d.DataHash()
	if name, ok := b.mediaByHash[hash]; ok {
		return name
	}
	ext := d.Extension()
	name := fmt.Sprintf("ppt/media/image%d%s", b.media.Next(), ext)
	b.parts = append(b.parts, part{name: name, data: d.Data()})
	b.defaults[strings.TrimPrefix(ext, ".")] = d.MIMEType()
	b.mediaByHash[hash] = name
	return name
}
