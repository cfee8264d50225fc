package pptx

import (
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/tsawler/slidekit/layout"
	"github.com/tsawler/slidekit/measure"
	"github.com/tsawler/slidekit/model"
)

// slideBuilder converts the shapes of one slide.
type slideBuilder struct {
	pkg  *pkgBuilder
	num  int
	ids  *Sequence // shape ids; 1 is the shape tree itself
	rels *Sequence
	rel  []relationshipXML
	refs map[string]string // media part name -> relationship id
}

func (b *pkgBuilder) buildSlide(num int, s *model.Slide) error {
	sb := &slideBuilder{
		pkg:  b,
		num:  num,
		ids:  NewSequence(1),
		rels: NewSequence(1),
		refs: make(map[string]string),
	}
	sb.rel = append(sb.rel, relationshipXML{
		ID:     sb.rels.nextRelID(),
		Type:   relSlideLayout,
		Target: "../slideLayouts/slideLayout1.xml",
	})

	tree := grpSpXML{
		NvGrpSpPr: nvGrpSpPrXML{CNvPr: cNvPrXML{ID: sb.ids.Next(), Name: ""}},
		GrpSpPr: grpSpPrXML{Xfrm: &xfrmXML{
			ChOff: &offXML{},
			ChExt: &extXML{},
		}},
		Shapes: sb.shapes(s),
	}
	if s.Notes != "" {
		b.warn(num, "", "speaker notes are not written")
	}

	doc := slideXML{
		XmlnsA: nsDrawingML,
		XmlnsR: nsRelationships,
		XmlnsP: nsPresentationML,
		CSld:   cSldXML{Name: s.Name, SpTree: tree},
	}
	name := fmt.Sprintf("ppt/slides/slide%d.xml", num)
	if err := b.addXML(name, ctSlide, doc); err != nil {
		return err
	}
	return b.addXML(
		path.Join(path.Dir(name), "_rels", path.Base(name)+".rels"), "",
		rels(sb.rel...),
	)
}

func (sb *slideBuilder) warn(s model.Shape, format string, args ...any) {
	sb.pkg.warn(sb.num, s.Name(), format, args...)
}

func (sb *slideBuilder) shapes(c model.Container) []any {
	var out []any
	for _, s := range c.Shapes() {
		if s == nil {
			continue
		}
		if el := sb.shape(s); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (sb *slideBuilder) shape(s model.Shape) any {
	if k := s.Kind(); k != model.KindLine && k != model.KindGroup {
		if h, v := model.Flips(s); h || v {
			sb.warn(s, "negative extents normalised")
		}
	}

	switch s := s.(type) {
	case *model.CustomShape:
		return sb.custom(s)
	case *model.RichText:
		return sb.richText(s)
	case *model.Line:
		return sb.line(s)
	case *model.Drawing:
		return sb.drawing(s)
	case *model.Table:
		return sb.table(s)
	case *model.Chart:
		return sb.chart(s)
	case *model.Group:
		return sb.group(s)
	default:
		sb.warn(s, "unsupported shape kind %s skipped", s.Kind())
		return nil
	}
}

func (sb *slideBuilder) nonVisual(s model.Shape) cNvPrXML {
	id := sb.ids.Next()
	name := s.Name()
	if name == "" {
		name = s.Kind().String() + " " + strconv.Itoa(id)
	}
	return cNvPrXML{ID: id, Name: name, Descr: s.Description()}
}

func (sb *slideBuilder) richText(s *model.RichText) spXML {
	return spXML{
		NvSpPr: nvSpPrXML{
			CNvPr:   sb.nonVisual(s),
			CNvSpPr: cNvSpPrXML{TxBox: true},
		},
		SpPr: spPrXML{
			Xfrm:     xfrm(s),
			PrstGeom: &prstGeomXML{Prst: "rect"},
		},
		TxBody: textBody(s.Paragraphs()),
	}
}

func (sb *slideBuilder) custom(s *model.CustomShape) spXML {
	preset := s.Geometry.Preset
	if preset == "" {
		preset = "rect"
	}
	geom := &prstGeomXML{Prst: preset}
	for _, a := range s.Geometry.Adjust {
		geom.AvLst.Gd = append(geom.AvLst.Gd, gdXML{Name: a.Name, Fmla: "val " + strconv.FormatInt(a.Value, 10)})
	}
	return spXML{
		NvSpPr: nvSpPrXML{CNvPr: sb.nonVisual(s)},
		SpPr:   spPrXML{Xfrm: xfrm(s), PrstGeom: geom},
		TxBody: textBody(s.Paragraphs()),
	}
}

var compoundLines = map[string]string{
	model.LineStyleSingle:    "sng",
	model.LineStyleDouble:    "dbl",
	model.LineStyleThickThin: "thickThin",
	model.LineStyleThinThick: "thinThick",
	model.LineStyleTriple:    "tri",
}

func (sb *slideBuilder) line(s *model.Line) cxnSpXML {
	cmpd, ok := compoundLines[s.Style()]
	if !ok {
		sb.warn(s, "unknown line style %q written as single", s.Style())
		cmpd = "sng"
	}
	return cxnSpXML{
		NvCxnSpPr: nvCxnSpPrXML{CNvPr: sb.nonVisual(s)},
		SpPr: spPrXML{
			Xfrm:     xfrm(s),
			PrstGeom: &prstGeomXML{Prst: "line"},
			Ln:       &lnXML{W: emu(s.StrokeWidth()), Cmpd: cmpd},
		},
	}
}

func (sb *slideBuilder) drawing(d *model.Drawing) any {
	if len(d.Data()) == 0 {
		sb.warn(d, "drawing has no image data; skipped")
		return nil
	}
	if d.Description() == "" && sb.pkg.w.describer != nil {
		if err := sb.pkg.w.describer.DescribeDrawing(d); err != nil {
			sb.warn(d, "describing image: %v", err)
		}
	}

	media := sb.pkg.storeMedia(d)
	rid, ok := sb.refs[media]
	if !ok {
		rid = sb.rels.nextRelID()
		sb.refs[media] = rid
		sb.rel = append(sb.rel, relationshipXML{
			ID:     rid,
			Type:   relImage,
			Target: "../media/" + path.Base(media),
		})
	}

	return picXML{
		NvPicPr: nvPicPrXML{
			CNvPr:    sb.nonVisual(d),
			CNvPicPr: cNvPicPrXML{PicLocks: picLocksXML{NoChangeAspect: d.ResizeProportional()}},
		},
		BlipFill: blipFillXML{Blip: blipXML{Embed: rid}},
		SpPr: spPrXML{
			Xfrm:     xfrm(d),
			PrstGeom: &prstGeomXML{Prst: "rect"},
		},
	}
}

func (sb *slideBuilder) table(t *model.Table) graphicFrameXML {
	rows := make([][]*model.Cell, 0, t.RowCount())
	heights := make([]measure.Measure, 0, t.RowCount())
	for _, r := range t.Rows() {
		rows = append(rows, r.Cells())
		heights = append(heights, r.Height())
	}
	if len(rows) == 0 {
		sb.warn(t, "table has no rows")
	}
	return sb.grid(t, t.ColCount(), rows, heights)
}

// chart writes the chart data as a table: a header row of categories
// followed by one row per series.
func (sb *slideBuilder) chart(c *model.Chart) graphicFrameXML {
	sb.warn(c, "chart written as a data table")

	cols := 1
	for _, s := range c.Series() {
		cols = max(cols, len(s.Values)+1, len(s.Categories)+1)
	}
	header := make([]*model.Cell, cols)
	header[0] = &model.Cell{Text: c.Title, IsHeader: true}
	for i := 1; i < cols; i++ {
		header[i] = &model.Cell{IsHeader: true}
	}
	if series := c.Series(); len(series) > 0 {
		for i, cat := range series[0].Categories {
			header[i+1].Text = cat
		}
	}

	rows := [][]*model.Cell{header}
	for _, s := range c.Series() {
		row := make([]*model.Cell, cols)
		row[0] = &model.Cell{Text: s.Name}
		for i := 1; i < cols; i++ {
			row[i] = &model.Cell{}
			if i-1 < len(s.Values) {
				row[i].Text = strconv.FormatFloat(s.Values[i-1], 'g', -1, 64)
			}
		}
		rows = append(rows, row)
	}
	return sb.grid(c, cols, rows, make([]measure.Measure, len(rows)))
}

func (sb *slideBuilder) grid(s model.Shape, cols int, rows [][]*model.Cell, heights []measure.Measure) graphicFrameXML {
	x := xfrm(s)
	tbl := &tblXML{TblPr: tblPrXML{FirstRow: true}}

	colW := x.Ext.Cx / int64(cols)
	for i := 0; i < cols; i++ {
		tbl.TblGrid.GridCol = append(tbl.TblGrid.GridCol, gridColXML{W: colW})
	}
	var autoH int64
	if len(rows) > 0 {
		autoH = x.Ext.Cy / int64(len(rows))
	}
	merged := make([][]tcXML, len(rows))
	for i := range rows {
		merged[i] = make([]tcXML, cols)
	}
	for i, cells := range rows {
		tr := trXML{H: autoH}
		if !heights[i].IsZero() {
			tr.H = emu(heights[i])
		}
		for j, c := range cells {
			tc := merged[i][j]
			tc.TxBody = *cellBody(c.Text)
			if !tc.HMerge && !tc.VMerge {
				rs := min(max(c.RowSpan, 1), len(rows)-i)
				cs := min(max(c.ColSpan, 1), cols-j)
				if rs > 1 {
					tc.RowSpan = rs
				}
				if cs > 1 {
					tc.GridSpan = cs
				}
				for r := i; r < i+rs; r++ {
					for k := j; k < j+cs; k++ {
						merged[r][k].VMerge = merged[r][k].VMerge || r > i
						merged[r][k].HMerge = merged[r][k].HMerge || k > j
					}
				}
			}
			tr.Tc = append(tr.Tc, tc)
		}
		tbl.Tr = append(tbl.Tr, tr)
	}

	return graphicFrameXML{
		NvGraphicFramePr: nvGraphicFramePrXML{CNvPr: sb.nonVisual(s)},
		Xfrm:             *x,
		Graphic: graphicXML{GraphicData: graphicDataXML{
			URI: nsTable,
			Tbl: tbl,
		}},
	}
}

func (sb *slideBuilder) group(g *model.Group) grpSpXML {
	nv := sb.nonVisual(g)
	x := xfrm(g)
	// Children carry their own flips.
	x.FlipH, x.FlipV = false, false
	x.ChOff = &offXML{X: x.Off.X, Y: x.Off.Y}
	x.ChExt = &extXML{Cx: x.Ext.Cx, Cy: x.Ext.Cy}
	return grpSpXML{
		XMLName:   xmlName("p:grpSp"),
		NvGrpSpPr: nvGrpSpPrXML{CNvPr: nv},
		GrpSpPr:   grpSpPrXML{Xfrm: x},
		Shapes:    sb.shapes(g),
	}
}

// xfrm returns the transform of s in EMU.
func xfrm(s model.Shape) *xfrmXML {
	b := model.Bounds(s)
	h, v := model.Flips(s)
	return &xfrmXML{
		Rot:   s.Rotation() * 60000,
		FlipH: h,
		FlipV: v,
		Off:   offXML{X: round(b.LLx), Y: round(b.LLy)},
		Ext:   extXML{Cx: round(b.URx - b.LLx), Cy: round(b.URy - b.LLy)},
	}
}

func textBody(ps []*model.Paragraph) *txBodyXML {
	body := &txBodyXML{BodyPr: bodyPrXML{Wrap: "square"}}
	for _, p := range ps {
		body.P = append(body.P, paragraph(p))
	}
	if len(body.P) == 0 {
		body.P = append(body.P, pXML{})
	}
	return body
}

func cellBody(text string) *txBodyXML {
	p := model.NewParagraph()
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			p.CreateBreak()
		}
		if line != "" {
			p.CreateTextRun(line)
		}
	}
	return textBody([]*model.Paragraph{p})
}

func paragraph(p *model.Paragraph) pXML {
	var out pXML
	if p.Level > 0 || p.Bullet != "" || p.Numbered {
		out.PPr = &pPrXML{Lvl: p.Level}
		switch {
		case p.Numbered:
			out.PPr.BuAutoNum = &buAutoNumXML{Type: "arabicPeriod"}
		case p.Bullet != "":
			out.PPr.BuChar = &buCharXML{Char: p.Bullet}
		default:
			out.PPr.BuNone = &struct{}{}
		}
	}
	for _, e := range p.Elements() {
		switch e.(type) {
		case model.Break:
			out.Items = append(out.Items, brXML{})
		default:
			out.Items = append(out.Items, rXML{RPr: rPrXML{Lang: "en-US"}, T: e.Text()})
		}
	}
	return out
}

// emu returns m in whole EMU.
func emu(m measure.Measure) int64 {
	return round(m.ValueForUnit(measure.EMU))
}

func round(v float64) int64 { return int64(math.Round(v)) }

func slideSizeType(n layout.Name) string { return string(n) }
