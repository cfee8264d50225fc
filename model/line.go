package model

import "github.com/tsawler/slidekit/measure"

// Line styles.
const (
	LineStyleSingle    = "single"
	LineStyleDouble    = "double"
	LineStyleThickThin = "thickThin"
	LineStyleThinThick = "thinThick"
	LineStyleTriple    = "tri"
)

// Line is a straight connector. It is stored as a frame whose width and
// height may be negative when the line runs right-to-left or bottom-to-top.
type Line struct {
	Frame
	style  string
	stroke measure.Measure
}

// NewLine returns a line from (fromX, fromY) to (toX, toY), all in unit.
func NewLine(fromX, fromY, toX, toY float64, unit measure.Unit) *Line {
	l := &Line{style: LineStyleSingle, stroke: measure.Points(1)}
	l.Frame.offsetX = measure.New(fromX, unit)
	l.Frame.offsetY = measure.New(fromY, unit)
	l.Frame.width = measure.New(toX-fromX, unit)
	l.Frame.height = measure.New(toY-fromY, unit)
	return l
}

func (l *Line) Kind() Kind { return KindLine }

// Style returns the compound line style.
func (l *Line) Style() string { return l.style }

// SetStyle sets the compound line style. An empty style resets it to single.
func (l *Line) SetStyle(style string) {
	if style == "" {
		style = LineStyleSingle
	}
	l.style = style
}

// StrokeWidth returns the width of the stroke.
func (l *Line) StrokeWidth() measure.Measure { return l.stroke }

func (l *Line) SetStrokeWidth(w measure.Measure) { l.stroke = w }

// End returns the end point of the line.
func (l *Line) End() Point {
	return Point{
		X: measure.Add(l.Frame.offsetX, l.Frame.width),
		Y: measure.Add(l.Frame.offsetY, l.Frame.height),
	}
}

func (l *Line) HashCode() string {
	return hashOf(append(l.Frame.hashParts(), l.style, l.stroke.HashCode(), "model.Line")...)
}
