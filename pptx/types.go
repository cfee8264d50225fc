package pptx

import "encoding/xml"

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDublinCore     = "http://purl.org/dc/elements/1.1/"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"
	nsTable          = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// Relationship types.
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = nsRelationships + "/extended-properties"
	relSlide          = nsRelationships + "/slide"
	relSlideMaster    = nsRelationships + "/slideMaster"
	relSlideLayout    = nsRelationships + "/slideLayout"
	relTheme          = nsRelationships + "/theme"
	relImage          = nsRelationships + "/image"
)

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// The element names below carry their namespace prefix literally. Each part
// root declares the prefixes it uses.

// contentTypesXML represents [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name        `xml:"Types"`
	Xmlns     string          `xml:"xmlns,attr"`
	Defaults  []ctDefaultXML  `xml:"Default"`
	Overrides []ctOverrideXML `xml:"Override"`
}

type ctDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Xmlns        string            `xml:"xmlns,attr"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName      xml.Name   `xml:"cp:coreProperties"`
	XmlnsCP      string     `xml:"xmlns:cp,attr"`
	XmlnsDC      string     `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string     `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string     `xml:"xmlns:xsi,attr"`
	Title        string     `xml:"dc:title,omitempty"`
	Subject      string     `xml:"dc:subject,omitempty"`
	Creator      string     `xml:"dc:creator,omitempty"`
	Keywords     string     `xml:"cp:keywords,omitempty"`
	Description  string     `xml:"dc:description,omitempty"`
	Category     string     `xml:"cp:category,omitempty"`
	Created      *w3cdtfXML `xml:"dcterms:created"`
	Modified     *w3cdtfXML `xml:"dcterms:modified"`
}

type w3cdtfXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company,omitempty"`
	Slides      int      `xml:"Slides"`
	Notes       int      `xml:"Notes"`
}

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName           xml.Name           `xml:"p:presentation"`
	XmlnsA            string             `xml:"xmlns:a,attr"`
	XmlnsR            string             `xml:"xmlns:r,attr"`
	XmlnsP            string             `xml:"xmlns:p,attr"`
	SlideMasterIdList sldMasterIdListXML `xml:"p:sldMasterIdLst"`
	SlideIdList       *slideIdListXML    `xml:"p:sldIdLst"`
	SlideSz           slideSzXML         `xml:"p:sldSz"`
	NotesSz           extXML             `xml:"p:notesSz"`
}

type sldMasterIdListXML struct {
	SldMasterId []slideIdXML `xml:"p:sldMasterId"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"p:sldId"`
}

type slideIdXML struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type slideSzXML struct {
	Cx   int64  `xml:"cx,attr"` // Width in EMUs
	Cy   int64  `xml:"cy,attr"` // Height in EMUs
	Type string `xml:"type,attr,omitempty"`
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XmlnsA    string       `xml:"xmlns:a,attr"`
	XmlnsR    string       `xml:"xmlns:r,attr"`
	XmlnsP    string       `xml:"xmlns:p,attr"`
	CSld      cSldXML      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrXML `xml:"p:clrMapOvr"`
}

type clrMapOvrXML struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type cSldXML struct {
	Name   string   `xml:"name,attr,omitempty"`
	SpTree grpSpXML `xml:"p:spTree"`
}

// grpSpXML is a group of shapes. The slide's shape tree has the same
// layout; nested groups set XMLName to p:grpSp, the tree leaves it empty.
type grpSpXML struct {
	XMLName   xml.Name
	NvGrpSpPr nvGrpSpPrXML `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrXML   `xml:"p:grpSpPr"`
	Shapes    []any        // sp, cxnSp, pic, graphicFrame, grpSp in z-order
}

type nvGrpSpPrXML struct {
	CNvPr      cNvPrXML `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type cNvPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type grpSpPrXML struct {
	Xfrm *xfrmXML `xml:"a:xfrm"`
}

type xfrmXML struct {
	Rot   int     `xml:"rot,attr,omitempty"` // 60000ths of a degree
	FlipH bool    `xml:"flipH,attr,omitempty"`
	FlipV bool    `xml:"flipV,attr,omitempty"`
	Off   offXML  `xml:"a:off"`
	Ext   extXML  `xml:"a:ext"`
	ChOff *offXML `xml:"a:chOff"`
	ChExt *extXML `xml:"a:chExt"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// spXML represents a shape element.
type spXML struct {
	XMLName xml.Name   `xml:"p:sp"`
	NvSpPr  nvSpPrXML  `xml:"p:nvSpPr"`
	SpPr    spPrXML    `xml:"p:spPr"`
	TxBody  *txBodyXML `xml:"p:txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"p:cNvSpPr"`
	NvPr    struct{}   `xml:"p:nvPr"`
}

type cNvSpPrXML struct {
	TxBox bool `xml:"txBox,attr,omitempty"`
}

type spPrXML struct {
	Xfrm     *xfrmXML     `xml:"a:xfrm"`
	PrstGeom *prstGeomXML `xml:"a:prstGeom"`
	Ln       *lnXML       `xml:"a:ln"`
}

type prstGeomXML struct {
	Prst  string   `xml:"prst,attr"`
	AvLst avLstXML `xml:"a:avLst"`
}

type avLstXML struct {
	Gd []gdXML `xml:"a:gd"`
}

type gdXML struct {
	Name string `xml:"name,attr"`
	Fmla string `xml:"fmla,attr"`
}

type lnXML struct {
	W    int64  `xml:"w,attr"` // Width in EMUs
	Cmpd string `xml:"cmpd,attr,omitempty"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	BodyPr   bodyPrXML `xml:"a:bodyPr"`
	LstStyle struct{}  `xml:"a:lstStyle"`
	P        []pXML    `xml:"a:p"` // Paragraphs
}

type bodyPrXML struct {
	Wrap string `xml:"wrap,attr,omitempty"`
}

// pXML represents a paragraph.
type pXML struct {
	PPr   *pPrXML `xml:"a:pPr"`
	Items []any   // a:r and a:br in document order
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr,omitempty"` // Bullet level (0-8)
	BuNone    *struct{}     `xml:"a:buNone"`
	BuChar    *buCharXML    `xml:"a:buChar"`
	BuAutoNum *buAutoNumXML `xml:"a:buAutoNum"`
}

type buCharXML struct {
	Char string `xml:"char,attr"` // Bullet character
}

type buAutoNumXML struct {
	Type string `xml:"type,attr"` // arabicPeriod, alphaLcParenR, etc.
}

// rXML represents a text run.
type rXML struct {
	XMLName xml.Name `xml:"a:r"`
	RPr     rPrXML   `xml:"a:rPr"`
	T       string   `xml:"a:t"`
}

type rPrXML struct {
	Lang string `xml:"lang,attr"`
}

type brXML struct {
	XMLName xml.Name `xml:"a:br"`
}

// cxnSpXML represents a connector (line).
type cxnSpXML struct {
	XMLName   xml.Name     `xml:"p:cxnSp"`
	NvCxnSpPr nvCxnSpPrXML `xml:"p:nvCxnSpPr"`
	SpPr      spPrXML      `xml:"p:spPr"`
}

type nvCxnSpPrXML struct {
	CNvPr      cNvPrXML `xml:"p:cNvPr"`
	CNvCxnSpPr struct{} `xml:"p:cNvCxnSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

// picXML represents a picture element.
type picXML struct {
	XMLName  xml.Name    `xml:"p:pic"`
	NvPicPr  nvPicPrXML  `xml:"p:nvPicPr"`
	BlipFill blipFillXML `xml:"p:blipFill"`
	SpPr     spPrXML     `xml:"p:spPr"`
}

type nvPicPrXML struct {
	CNvPr    cNvPrXML    `xml:"p:cNvPr"`
	CNvPicPr cNvPicPrXML `xml:"p:cNvPicPr"`
	NvPr     struct{}    `xml:"p:nvPr"`
}

type cNvPicPrXML struct {
	PicLocks picLocksXML `xml:"a:picLocks"`
}

type picLocksXML struct {
	NoChangeAspect bool `xml:"noChangeAspect,attr,omitempty"`
}

type blipFillXML struct {
	Blip    blipXML    `xml:"a:blip"`
	Stretch stretchXML `xml:"a:stretch"`
}

type blipXML struct {
	Embed string `xml:"r:embed,attr"` // r:embed relationship ID
}

type stretchXML struct {
	FillRect struct{} `xml:"a:fillRect"`
}

// graphicFrameXML represents a graphic frame (tables, charts).
type graphicFrameXML struct {
	XMLName          xml.Name            `xml:"p:graphicFrame"`
	NvGraphicFramePr nvGraphicFramePrXML `xml:"p:nvGraphicFramePr"`
	Xfrm             xfrmXML             `xml:"p:xfrm"`
	Graphic          graphicXML          `xml:"a:graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr             cNvPrXML `xml:"p:cNvPr"`
	CNvGraphicFramePr struct{} `xml:"p:cNvGraphicFramePr"`
	NvPr              struct{} `xml:"p:nvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"a:graphicData"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"a:tbl"` // Table
}

// tblXML represents a table.
type tblXML struct {
	TblPr   tblPrXML   `xml:"a:tblPr"`
	TblGrid tblGridXML `xml:"a:tblGrid"`
	Tr      []trXML    `xml:"a:tr"` // Table rows
}

type tblPrXML struct {
	FirstRow bool `xml:"firstRow,attr,omitempty"`
}

type tblGridXML struct {
	GridCol []gridColXML `xml:"a:gridCol"`
}

type gridColXML struct {
	W int64 `xml:"w,attr"` // Width in EMUs
}

type trXML struct {
	H  int64   `xml:"h,attr"` // Row height in EMUs
	Tc []tcXML `xml:"a:tc"`   // Table cells
}

type tcXML struct {
	RowSpan  int       `xml:"rowSpan,attr,omitempty"`
	GridSpan int       `xml:"gridSpan,attr,omitempty"`
	HMerge   bool      `xml:"hMerge,attr,omitempty"` // covered by a cell to the left
	VMerge   bool      `xml:"vMerge,attr,omitempty"` // covered by a cell above
	TxBody   txBodyXML `xml:"a:txBody"`
}

func xmlName(local string) xml.Name { return xml.Name{Local: local} }
