package model

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/tsawler/slidekit/measure"
)

// Kind identifies the concrete type of a shape.
type Kind int

const (
	KindUnknown Kind = iota
	KindRichText
	KindCustom
	KindLine
	KindGroup
	KindChart
	KindDrawing
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindRichText:
		return "RichText"
	case KindCustom:
		return "Custom"
	case KindLine:
		return "Line"
	case KindGroup:
		return "Group"
	case KindChart:
		return "Chart"
	case KindDrawing:
		return "Drawing"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Shape is implemented by every element that can be placed on a slide.
// All concrete shapes embed a [Frame]; the interface cannot be implemented
// outside this package.
type Shape interface {
	Kind() Kind
	Name() string
	Description() string
	OffsetX() measure.Measure
	OffsetY() measure.Measure
	Width() measure.Measure
	Height() measure.Measure
	SetOffsetX(measure.Measure)
	SetOffsetY(measure.Measure)
	SetWidth(measure.Measure)
	SetHeight(measure.Measure)
	Rotation() int
	Container() Container
	HashCode() string

	frame() *Frame
}

// Container holds an ordered sequence of shapes. Order is z-order, first
// shape at the back.
type Container interface {
	Shapes() []Shape
	AddShape(s Shape) Shape
	RemoveShape(s Shape) bool
}

// invalidator is implemented by containers that cache derived geometry.
type invalidator interface {
	invalidate()
}

// Frame is the geometry and identity shared by all shapes.
type Frame struct {
	name        string
	description string
	offsetX     measure.Measure
	offsetY     measure.Measure
	width       measure.Measure
	height      measure.Measure
	rotation    int

	container Container
}

func (f *Frame) frame() *Frame { return f }

func (f *Frame) Name() string { return f.name }

func (f *Frame) SetName(name string) { f.name = name }

func (f *Frame) Description() string { return f.description }

func (f *Frame) SetDescription(d string) { f.description = d }

func (f *Frame) OffsetX() measure.Measure { return f.offsetX }

func (f *Frame) OffsetY() measure.Measure { return f.offsetY }

func (f *Frame) Width() measure.Measure { return f.width }

func (f *Frame) Height() measure.Measure { return f.height }

func (f *Frame) SetOffsetX(v measure.Measure) {
	f.offsetX = v
	f.touch()
}

func (f *Frame) SetOffsetY(v measure.Measure) {
	f.offsetY = v
	f.touch()
}

func (f *Frame) SetWidth(v measure.Measure) {
	f.width = v
	f.touch()
}

func (f *Frame) SetHeight(v measure.Measure) {
	f.height = v
	f.touch()
}

// SetPosition sets both offsets.
func (f *Frame) SetPosition(x, y measure.Measure) {
	f.offsetX, f.offsetY = x, y
	f.touch()
}

// Rotation returns the clockwise rotation in degrees, 0-359.
func (f *Frame) Rotation() int { return f.rotation }

// SetRotation sets the rotation in degrees. Values are normalised to 0-359.
func (f *Frame) SetRotation(deg int) {
	f.rotation = ((deg % 360) + 360) % 360
}

// Container returns the slide or group holding the shape, or nil.
func (f *Frame) Container() Container { return f.container }

// touch tells a caching parent that this shape's geometry changed.
func (f *Frame) touch() {
	if inv, ok := f.container.(invalidator); ok {
		inv.invalidate()
	}
}

func (f *Frame) hashParts() []string {
	return []string{
		f.name,
		f.description,
		f.offsetX.HashCode(),
		f.offsetY.HashCode(),
		f.width.HashCode(),
		f.height.HashCode(),
		strconv.Itoa(f.rotation),
	}
}

// hashOf returns the md5 hex digest of the concatenated parts.
func hashOf(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}

// attach moves s into c, detaching it from any previous container. Re-adding
// a member of c moves it to the front of the z-order.
func attach(c Container, s Shape) {
	f := s.frame()
	if f.container != nil {
		f.container.RemoveShape(s)
	}
	f.container = c
}

// shapeList is the member sequence shared by slides and groups.
type shapeList struct {
	shapes []Shape
}

func (l *shapeList) list() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

func (l *shapeList) indexOf(s Shape) int {
	for i, m := range l.shapes {
		if m == s {
			return i
		}
	}
	return -1
}

func (l *shapeList) remove(s Shape) bool {
	i := l.indexOf(s)
	if i < 0 {
		return false
	}
	l.shapes = append(l.shapes[:i], l.shapes[i+1:]...)
	s.frame().container = nil
	return true
}

func (l *shapeList) move(from, to int) bool {
	n := len(l.shapes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	s := l.shapes[from]
	l.shapes = append(l.shapes[:from], l.shapes[from+1:]...)
	l.shapes = append(l.shapes[:to], append([]Shape{s}, l.shapes[to:]...)...)
	return true
}

func (l *shapeList) hashParts() []string {
	parts := make([]string, 0, len(l.shapes))
	for _, s := range l.shapes {
		parts = append(parts, s.HashCode())
	}
	return parts
}

// create adds s to c and returns it with its concrete type.
func create[T Shape](c Container, s T) T {
	c.AddShape(s)
	return s
}
