package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/slidekit/layout"
	"github.com/tsawler/slidekit/measure"
	"github.com/tsawler/slidekit/model"
)

// node is a generic XML element used to inspect written parts.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

// attr returns the unqualified attribute local.
func (n *node) attr(local string) string { return n.nsAttr("", local) }

func (n *node) nsAttr(space, local string) string {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// child follows a path of local element names, taking the first match at
// each step.
func (n *node) child(path ...string) *node {
	cur := n
	for _, name := range path {
		var next *node
		for i := range cur.Nodes {
			if cur.Nodes[i].XMLName.Local == name {
				next = &cur.Nodes[i]
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// texts returns the content of every a:t below n in document order.
func (n *node) texts() []string {
	var out []string
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.XMLName.Local == "t" {
			out = append(out, c.Text)
			continue
		}
		out = append(out, c.texts()...)
	}
	return out
}

// pkg is a written package read back into memory.
type pkg struct {
	order []string
	parts map[string][]byte
}

func (p pkg) parse(t *testing.T, name string) *node {
	t.Helper()
	data, ok := p.parts[name]
	if !ok {
		t.Fatalf("part %s not written", name)
	}
	var n node
	if err := xml.Unmarshal(data, &n); err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	return &n
}

// spTree returns the shapes on slide num in z-order.
func (p pkg) spTree(t *testing.T, num int) []node {
	t.Helper()
	sld := p.parse(t, "ppt/slides/slide"+itoa(num)+".xml")
	tree := sld.child("cSld", "spTree")
	if tree == nil {
		t.Fatal("slide has no spTree")
	}
	var shapes []node
	for _, n := range tree.Nodes {
		switch n.XMLName.Local {
		case "nvGrpSpPr", "grpSpPr":
		default:
			shapes = append(shapes, n)
		}
	}
	return shapes
}

func itoa(n int) string { return strconv.Itoa(n) }

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func write(t *testing.T, p *model.Presentation, opts ...Option) (pkg, []Warning) {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	var buf bytes.Buffer
	warnings, err := NewWriter(opts...).Write(&buf, p)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	out := pkg{parts: make(map[string][]byte)}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		out.order = append(out.order, f.Name)
		out.parts[f.Name] = data
	}
	return out, warnings
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWriteEmptyPresentation(t *testing.T) {
	p := model.NewPresentation()
	out, warnings := write(t, p)

	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if out.order[0] != "[Content_Types].xml" {
		t.Errorf("first part = %s, want [Content_Types].xml", out.order[0])
	}
	for _, name := range []string{
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
	} {
		if _, ok := out.parts[name]; !ok {
			t.Errorf("part %s missing", name)
		}
	}

	pres := out.parse(t, "ppt/presentation.xml")
	if pres.child("sldIdLst") != nil {
		t.Error("sldIdLst written for a presentation without slides")
	}
}

func TestWriteSlideSize(t *testing.T) {
	tests := []struct {
		name      string
		layout    layout.Name
		landscape bool
		wantCx    string
		wantCy    string
		wantType  string
	}{
		{"default", layout.Screen4x3, true, "9144000", "6858000", "screen4x3"},
		{"portrait 4x3", layout.Screen4x3, false, "6858000", "9144000", "screen4x3"},
		{"A4", layout.A4, true, "10692000", "7560000", "A4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewPresentation()
			if err := p.Layout.Set(tt.layout, tt.landscape); err != nil {
				t.Fatal(err)
			}
			out, _ := write(t, p)
			sz := out.parse(t, "ppt/presentation.xml").child("sldSz")
			got := []string{sz.attr("cx"), sz.attr("cy"), sz.attr("type")}
			want := []string{tt.wantCx, tt.wantCy, tt.wantType}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("sldSz mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteCustomSlideSize(t *testing.T) {
	p := model.NewPresentation()
	p.Layout.SetCustom(measure.Centimeters(20), measure.Centimeters(10), true)
	out, _ := write(t, p)

	sz := out.parse(t, "ppt/presentation.xml").child("sldSz")
	if sz.attr("cx") != "7200000" || sz.attr("cy") != "3600000" {
		t.Errorf("sldSz = %s x %s, want 7200000 x 3600000", sz.attr("cx"), sz.attr("cy"))
	}
	if sz.attr("type") != "" {
		t.Errorf("type = %q, want none", sz.attr("type"))
	}
}

func TestWriteSlideList(t *testing.T) {
	p := model.NewPresentation()
	p.CreateSlide()
	p.CreateSlide()
	p.CreateSlide()
	out, _ := write(t, p)

	pres := out.parse(t, "ppt/presentation.xml")
	ids := pres.child("sldIdLst").Nodes
	if len(ids) != 3 {
		t.Fatalf("sldIdLst has %d entries, want 3", len(ids))
	}

	targets := make(map[string]string)
	for _, r := range out.parse(t, "ppt/_rels/presentation.xml.rels").Nodes {
		targets[r.attr("Id")] = r.attr("Target")
	}
	for i, id := range ids {
		if id.attr("id") == "" {
			t.Errorf("slide %d has no id", i+1)
		}
		want := "slides/slide" + itoa(i+1) + ".xml"
		if got := targets[id.nsAttr(nsRelationships, "id")]; got != want {
			t.Errorf("slide %d r:id resolves to %q, want %q", i+1, got, want)
		}
	}
	if ids[0].attr("id") == ids[1].attr("id") {
		t.Error("slide ids are not unique")
	}
}

func TestWriteRichText(t *testing.T) {
	p := model.NewPresentation()
	s := p.CreateSlide()
	box := s.CreateRichTextShape()
	box.SetName("Title")
	box.SetPosition(measure.Centimeters(1), measure.Centimeters(2))
	box.SetWidth(measure.Centimeters(3))
	box.SetHeight(measure.Centimeters(4))
	box.CreateTextRun("Hello")
	box.CreateBreak()
	box.CreateTextRun("World")
	item := box.CreateParagraph()
	item.Bullet = "•"
	item.Level = 1
	box.CreateTextRun("point")

	out, warnings := write(t, p)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	shapes := out.spTree(t, 1)
	if len(shapes) != 1 || shapes[0].XMLName.Local != "sp" {
		t.Fatalf("shapes = %v, want one sp", shapes)
	}
	sp := shapes[0]

	if got := sp.child("nvSpPr", "cNvPr").attr("name"); got != "Title" {
		t.Errorf("name = %q, want Title", got)
	}
	off := sp.child("spPr", "xfrm", "off")
	ext := sp.child("spPr", "xfrm", "ext")
	got := []string{off.attr("x"), off.attr("y"), ext.attr("cx"), ext.attr("cy")}
	want := []string{"360000", "720000", "1080000", "1440000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("xfrm mismatch (-want +got):\n%s", diff)
	}

	body := sp.child("txBody")
	if diff := cmp.Diff([]string{"Hello", "World", "point"}, body.texts()); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
	first := body.Nodes[2] // bodyPr, lstStyle, p
	var kinds []string
	for _, n := range first.Nodes {
		kinds = append(kinds, n.XMLName.Local)
	}
	if diff := cmp.Diff([]string{"r", "br", "r"}, kinds); diff != "" {
		t.Errorf("first paragraph elements (-want +got):\n%s", diff)
	}
	ppr := body.Nodes[3].child("pPr")
	if ppr == nil || ppr.attr("lvl") != "1" || ppr.child("buChar").attr("char") != "•" {
		t.Errorf("bullet paragraph properties = %+v", ppr)
	}
}

func TestWriteCustomShape(t *testing.T) {
	p := model.NewPresentation()
	c := p.CreateSlide().CreateCustomShape("roundRect")
	c.Geometry.Adjust = []model.AdjustValue{{Name: "adj", Value: 16667}}

	out, _ := write(t, p)
	geom := out.spTree(t, 1)[0].child("spPr", "prstGeom")
	if geom.attr("prst") != "roundRect" {
		t.Errorf("prst = %q, want roundRect", geom.attr("prst"))
	}
	gd := geom.child("avLst", "gd")
	if gd == nil || gd.attr("name") != "adj" || gd.attr("fmla") != "val 16667" {
		t.Errorf("guide = %+v", gd)
	}
}

func TestWriteLine(t *testing.T) {
	p := model.NewPresentation()
	l := p.CreateSlide().CreateLineShape(3, 1, 1, 2, measure.Centimeter)
	l.SetStyle(model.LineStyleDouble)

	out, warnings := write(t, p)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none for a reversed line", warnings)
	}
	cxn := out.spTree(t, 1)[0]
	if cxn.XMLName.Local != "cxnSp" {
		t.Fatalf("element = %s, want cxnSp", cxn.XMLName.Local)
	}
	x := cxn.child("spPr", "xfrm")
	if x.attr("flipH") != "true" || x.attr("flipV") != "" {
		t.Errorf("flipH, flipV = %q, %q", x.attr("flipH"), x.attr("flipV"))
	}
	if got := x.child("off").attr("x"); got != "360000" {
		t.Errorf("off x = %s, want 360000", got)
	}
	if got := x.child("ext").attr("cx"); got != "720000" {
		t.Errorf("ext cx = %s, want 720000", got)
	}
	ln := cxn.child("spPr", "ln")
	if ln.attr("cmpd") != "dbl" || ln.attr("w") != "12700" {
		t.Errorf("ln = %+v", ln.Attrs)
	}
}

func TestWriteGroup(t *testing.T) {
	p := model.NewPresentation()
	s := p.CreateSlide()
	g := s.CreateGroup()
	a := g.CreateRichTextShape()
	a.SetPosition(measure.Centimeters(1), measure.Centimeters(1))
	a.SetWidth(measure.Centimeters(1))
	a.SetHeight(measure.Centimeters(1))
	inner := g.CreateGroup()
	b := inner.CreateRichTextShape()
	b.SetPosition(measure.Centimeters(4), measure.Centimeters(2))
	b.SetWidth(measure.Centimeters(1))
	b.SetHeight(measure.Centimeters(1))

	out, _ := write(t, p)
	grp := out.spTree(t, 1)[0]
	if grp.XMLName.Local != "grpSp" {
		t.Fatalf("element = %s, want grpSp", grp.XMLName.Local)
	}
	x := grp.child("grpSpPr", "xfrm")
	got := []string{
		x.child("off").attr("x"), x.child("off").attr("y"),
		x.child("ext").attr("cx"), x.child("ext").attr("cy"),
		x.child("chOff").attr("x"), x.child("chExt").attr("cx"),
	}
	want := []string{"360000", "360000", "1440000", "720000", "360000", "1440000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("group xfrm mismatch (-want +got):\n%s", diff)
	}

	var kinds []string
	for _, n := range grp.Nodes {
		kinds = append(kinds, n.XMLName.Local)
	}
	if diff := cmp.Diff([]string{"nvGrpSpPr", "grpSpPr", "sp", "grpSp"}, kinds); diff != "" {
		t.Errorf("group children (-want +got):\n%s", diff)
	}
}

func TestWriteGroupWithReversedLine(t *testing.T) {
	p := model.NewPresentation()
	g := p.CreateSlide().CreateGroup()
	g.CreateLineShape(3, 1, 1, 2, measure.Centimeter)

	out, warnings := write(t, p)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	grp := out.spTree(t, 1)[0]
	x := grp.child("grpSpPr", "xfrm")
	if x.attr("flipH") != "" || x.attr("flipV") != "" {
		t.Errorf("group flipH, flipV = %q, %q, want unset", x.attr("flipH"), x.attr("flipV"))
	}
	got := []string{
		x.child("off").attr("x"), x.child("ext").attr("cx"),
		x.child("chOff").attr("x"), x.child("chExt").attr("cx"),
	}
	if diff := cmp.Diff([]string{"360000", "720000", "360000", "720000"}, got); diff != "" {
		t.Errorf("group xfrm mismatch (-want +got):\n%s", diff)
	}
	if flip := grp.child("cxnSp", "spPr", "xfrm").attr("flipH"); flip != "true" {
		t.Errorf("line flipH = %q, want true", flip)
	}
}

func TestWriteShapeIDsUnique(t *testing.T) {
	p := model.NewPresentation()
	s := p.CreateSlide()
	s.CreateRichTextShape()
	g := s.CreateGroup()
	g.CreateRichTextShape()
	g.CreateLineShape(0, 0, 1, 1, measure.Inch)

	out, _ := write(t, p)
	sld := out.parse(t, "ppt/slides/slide1.xml")
	seen := make(map[string]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if n.XMLName.Local == "cNvPr" {
			id := n.attr("id")
			if seen[id] {
				t.Errorf("duplicate shape id %s", id)
			}
			seen[id] = true
		}
		for i := range n.Nodes {
			walk(&n.Nodes[i])
		}
	}
	walk(sld)
	if len(seen) != 5 {
		t.Errorf("found %d shape ids, want 5", len(seen))
	}
}

func TestWriteDrawingsShareMedia(t *testing.T) {
	data := pngBytes(t, 4, 3)
	p := model.NewPresentation()
	for i := 0; i < 2; i++ {
		d := p.CreateSlide().CreateDrawingShape()
		if err := d.SetData(data); err != nil {
			t.Fatal(err)
		}
	}
	other := p.Slide(2).CreateDrawingShape()
	if err := other.SetData(pngBytes(t, 2, 2)); err != nil {
		t.Fatal(err)
	}

	out, warnings := write(t, p)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	var media []string
	for _, name := range out.order {
		if strings.HasPrefix(name, "ppt/media/") {
			media = append(media, name)
		}
	}
	if diff := cmp.Diff([]string{"ppt/media/image1.png", "ppt/media/image2.png"}, media); diff != "" {
		t.Errorf("media parts (-want +got):\n%s", diff)
	}
	if !bytes.Equal(out.parts["ppt/media/image1.png"], data) {
		t.Error("image1.png does not hold the drawing bytes")
	}

	for num := 1; num <= 2; num++ {
		pic := out.spTree(t, num)[0]
		rid := pic.child("blipFill", "blip").nsAttr(nsRelationships, "embed")
		relsPart := out.parse(t, "ppt/slides/_rels/slide"+itoa(num)+".xml.rels")
		var target string
		for _, r := range relsPart.Nodes {
			if r.attr("Id") == rid {
				target = r.attr("Target")
			}
		}
		if target != "../media/image1.png" {
			t.Errorf("slide %d picture targets %q, want ../media/image1.png", num, target)
		}
		ext := pic.child("spPr", "xfrm", "ext")
		if ext.attr("cx") != "38100" || ext.attr("cy") != "28575" {
			t.Errorf("slide %d picture ext = %s x %s", num, ext.attr("cx"), ext.attr("cy"))
		}
	}

	types := out.parse(t, "[Content_Types].xml")
	found := false
	for _, d := range types.Nodes {
		if d.XMLName.Local == "Default" && d.attr("Extension") == "png" {
			found = d.attr("ContentType") == "image/png"
		}
	}
	if !found {
		t.Error("no png default content type")
	}
}

func TestWriteWarnings(t *testing.T) {
	p := model.NewPresentation()
	s := p.CreateSlide()
	s.Notes = "remember"
	empty := s.CreateDrawingShape()
	empty.SetName("Logo")
	chart := s.CreateChartShape()
	chart.SetName("Sales")
	chart.AddSeries(model.Series{Name: "2026", Categories: []string{"Q1", "Q2"}, Values: []float64{1, 2}})

	out, warnings := write(t, p)
	want := []Warning{
		{Slide: 1, Shape: "Logo", Message: "drawing has no image data; skipped"},
		{Slide: 1, Shape: "Sales", Message: "chart written as a data table"},
		{Slide: 1, Message: "speaker notes are not written"},
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}

	shapes := out.spTree(t, 1)
	if len(shapes) != 1 || shapes[0].XMLName.Local != "graphicFrame" {
		t.Fatalf("shapes = %v, want one graphicFrame", shapes)
	}
	tbl := shapes[0].child("graphic", "graphicData", "tbl")
	if diff := cmp.Diff([]string{"Q1", "Q2", "2026", "1", "2"}, tbl.texts()); diff != "" {
		t.Errorf("chart table text (-want +got):\n%s", diff)
	}
}

func TestWriteTable(t *testing.T) {
	p := model.NewPresentation()
	tbl := p.CreateSlide().CreateTableShape(2)
	tbl.SetResizeProportional(false)
	tbl.SetWidthAndHeight(measure.Centimeters(4), measure.Centimeters(2))
	tbl.CreateRow()
	tbl.CreateRow().SetHeight(measure.Centimeters(1.5))
	_ = tbl.SetCellText(0, 0, "a")
	_ = tbl.SetCellText(1, 1, "line1\nline2")
	cell, _ := tbl.Cell(0, 0)
	cell.ColSpan = 2

	out, _ := write(t, p)
	tblNode := out.spTree(t, 1)[0].child("graphic", "graphicData", "tbl")

	var widths, heights []string
	for _, n := range tblNode.child("tblGrid").Nodes {
		widths = append(widths, n.attr("w"))
	}
	var rows []node
	for _, n := range tblNode.Nodes {
		if n.XMLName.Local == "tr" {
			rows = append(rows, n)
			heights = append(heights, n.attr("h"))
		}
	}
	if diff := cmp.Diff([]string{"720000", "720000"}, widths); diff != "" {
		t.Errorf("column widths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"360000", "540000"}, heights); diff != "" {
		t.Errorf("row heights (-want +got):\n%s", diff)
	}
	if got := rows[0].Nodes[0].attr("gridSpan"); got != "2" {
		t.Errorf("gridSpan = %q, want 2", got)
	}
	if got := rows[0].Nodes[1].attr("hMerge"); got != "true" {
		t.Errorf("covered cell hMerge = %q, want true", got)
	}
	if diff := cmp.Diff([]string{"line1", "line2"}, rows[1].Nodes[1].texts()); diff != "" {
		t.Errorf("multi-line cell (-want +got):\n%s", diff)
	}
}

func TestWriteTableMergedCells(t *testing.T) {
	p := model.NewPresentation()
	tbl := p.CreateSlide().CreateTableShape(3)
	tbl.SetResizeProportional(false)
	tbl.SetWidthAndHeight(measure.Centimeters(6), measure.Centimeters(3))
	for i := 0; i < 3; i++ {
		tbl.CreateRow()
	}
	anchor, _ := tbl.Cell(0, 1)
	anchor.RowSpan, anchor.ColSpan = 2, 2
	// Spans past the last row are cut at the table edge.
	tall, _ := tbl.Cell(1, 0)
	tall.RowSpan = 5

	out, _ := write(t, p)
	tblNode := out.spTree(t, 1)[0].child("graphic", "graphicData", "tbl")

	var got [][]string
	for _, tr := range tblNode.Nodes {
		if tr.XMLName.Local != "tr" {
			continue
		}
		var row []string
		for _, tc := range tr.Nodes {
			row = append(row, tc.attr("rowSpan")+"/"+tc.attr("gridSpan")+"/"+tc.attr("vMerge")+"/"+tc.attr("hMerge"))
		}
		got = append(got, row)
	}
	want := [][]string{
		{"///", "2/2//", "///true"},
		{"2///", "//true/", "//true/true"},
		{"//true/", "///", "///"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cell spans rowSpan/gridSpan/vMerge/hMerge (-want +got):\n%s", diff)
	}
}

type fakeDescriber struct {
	err   error
	calls int
}

func (f *fakeDescriber) DescribeDrawing(d *model.Drawing) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	d.SetDescription("a grey square")
	return nil
}

func TestWriteDescriber(t *testing.T) {
	newDeck := func() *model.Presentation {
		p := model.NewPresentation()
		s := p.CreateSlide()
		d := s.CreateDrawingShape()
		if err := d.SetData(pngBytes(t, 1, 1)); err != nil {
			t.Fatal(err)
		}
		described := s.CreateDrawingShape()
		if err := described.SetData(pngBytes(t, 1, 1)); err != nil {
			t.Fatal(err)
		}
		described.SetDescription("kept")
		return p
	}

	t.Run("fills empty descriptions", func(t *testing.T) {
		f := &fakeDescriber{}
		out, warnings := write(t, newDeck(), WithDescriber(f))
		if len(warnings) != 0 {
			t.Errorf("warnings = %v", warnings)
		}
		if f.calls != 1 {
			t.Errorf("describer called %d times, want 1", f.calls)
		}
		shapes := out.spTree(t, 1)
		if got := shapes[0].child("nvPicPr", "cNvPr").attr("descr"); got != "a grey square" {
			t.Errorf("descr = %q", got)
		}
		if got := shapes[1].child("nvPicPr", "cNvPr").attr("descr"); got != "kept" {
			t.Errorf("descr = %q, want kept", got)
		}
	})

	t.Run("errors become warnings", func(t *testing.T) {
		f := &fakeDescriber{err: errors.New("no engine")}
		_, warnings := write(t, newDeck(), WithDescriber(f))
		if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "no engine") {
			t.Errorf("warnings = %v, want one describer warning", warnings)
		}
	})
}

func TestWriteCoreProperties(t *testing.T) {
	p := model.NewPresentation()
	p.Metadata.Title = "Review"
	p.Metadata.Author = "Ops"
	p.Metadata.Keywords = []string{"q1", "plan"}
	p.Metadata.CreationDate = time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC)

	out, _ := write(t, p)
	core := out.parse(t, "docProps/core.xml")
	got := map[string]string{}
	for _, n := range core.Nodes {
		got[n.XMLName.Local] = n.Text
	}
	want := map[string]string{
		"title":    "Review",
		"creator":  "Ops",
		"keywords": "q1, plan",
		"created":  "2025-12-24T08:00:00Z",
		"modified": "2026-03-01T09:30:00Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("core properties (-want +got):\n%s", diff)
	}
}

func TestWriteCompression(t *testing.T) {
	p := model.NewPresentation()
	p.CreateSlide().CreateRichTextShape().CreateTextRun(strings.Repeat("compressible ", 200))

	size := func(level int) int {
		var buf bytes.Buffer
		if _, err := NewWriter(WithCompression(level), WithClock(fixedClock)).Write(&buf, p); err != nil {
			t.Fatalf("Write() level %d: %v", level, err)
		}
		return buf.Len()
	}
	if stored, best := size(0), size(9); best >= stored {
		t.Errorf("best compression %d bytes, no compression %d bytes", best, stored)
	}

	var buf bytes.Buffer
	if _, err := NewWriter(WithCompression(42)).Write(&buf, p); err == nil {
		t.Error("Write() with level 42: error = nil, want error")
	}
}

func TestWriteNil(t *testing.T) {
	if _, err := Write(io.Discard, nil); err == nil {
		t.Error("Write(nil) error = nil, want error")
	}
}

func TestWriteZeroValuePresentation(t *testing.T) {
	p := &model.Presentation{}
	p.CreateSlide()

	out, _ := write(t, p)
	sz := out.parse(t, "ppt/presentation.xml").child("sldSz")
	def := layout.New()
	got := []string{sz.attr("cx"), sz.attr("cy"), sz.attr("type")}
	want := []string{strconv.FormatInt(emu(def.CX()), 10), strconv.FormatInt(emu(def.CY()), 10), string(def.Name())}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slide size (-want +got):\n%s", diff)
	}
}

func TestWriteFile(t *testing.T) {
	p := model.NewPresentation()
	p.CreateSlide()
	name := filepath.Join(t.TempDir(), "deck.pptx")
	if _, err := WriteFile(name, p); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer zr.Close()
	if len(zr.File) == 0 {
		t.Error("archive is empty")
	}

	if _, err := WriteFile(filepath.Join(t.TempDir(), "missing", "deck.pptx"), p); err == nil {
		t.Error("WriteFile() into missing directory: error = nil, want error")
	}
}

func TestWarningString(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{Warning{Message: "m"}, "m"},
		{Warning{Slide: 2, Message: "m"}, "slide 2: m"},
		{Warning{Slide: 2, Shape: "Logo", Message: "m"}, "slide 2: Logo: m"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(256)
	if s.Peek() != 256 {
		t.Errorf("Peek() = %d, want 256", s.Peek())
	}
	got := []int{s.Next(), s.Next(), s.Next()}
	if diff := cmp.Diff([]int{256, 257, 258}, got); diff != "" {
		t.Errorf("Next() values (-want +got):\n%s", diff)
	}
	if id := NewSequence(1).nextRelID(); id != "rId1" {
		t.Errorf("nextRelID() = %q, want rId1", id)
	}
}
