package ocr

import "github.com/tsawler/slidekit/model"

// PageSegMode selects how Tesseract analyses the page layout. The values
// match Tesseract's own numbering.
type PageSegMode int

const (
	PSMOSDOnly         PageSegMode = 0  // orientation and script detection only
	PSMAutoOSD         PageSegMode = 1  // automatic with OSD
	PSMAutoOnly        PageSegMode = 2  // automatic, no OSD or OCR
	PSMAuto            PageSegMode = 3  // fully automatic (default)
	PSMSingleColumn    PageSegMode = 4  // single column of variable sizes
	PSMSingleBlockVert PageSegMode = 5  // uniform block of vertical text
	PSMSingleBlock     PageSegMode = 6  // uniform block of text
	PSMSingleLine      PageSegMode = 7  // single text line
	PSMSingleWord      PageSegMode = 8  // single word
	PSMCircleWord      PageSegMode = 9  // single word in a circle
	PSMSingleChar      PageSegMode = 10 // single character
	PSMSparseText      PageSegMode = 11 // as much text as possible, any order
	PSMSparseTextOSD   PageSegMode = 12 // sparse text with OSD
	PSMRawLine         PageSegMode = 13 // single line, bypassing Tesseract hacks
)

// describable reports whether d is a raster image with data and no
// description yet.
func describable(d *model.Drawing) bool {
	return d.Description() == "" && len(d.Data()) > 0 && d.Format().Raster()
}
