package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/slidekit/measure"
)

// ErrInvalidLayoutKey is returned when a layout name is not in the table
// of known page sizes.
var ErrInvalidLayoutKey = errors.New("invalid layout key")

// Name identifies a page size.
type Name string

const (
	Custom      Name = ""
	Screen4x3   Name = "screen4x3"
	Screen16x10 Name = "screen16x10"
	Screen16x9  Name = "screen16x9"
	Mm35        Name = "35mm"
	A3          Name = "A3"
	A4          Name = "A4"
	B4ISO       Name = "B4ISO"
	B5ISO       Name = "B5ISO"
	Banner      Name = "banner"
	Letter      Name = "letter"
	Overhead    Name = "overhead"
)

// size is a landscape (cx, cy) pair in EMU.
type size struct {
	cx, cy float64
}

var dimensions = map[Name]size{
	Screen4x3:   {9144000, 6858000},
	Screen16x10: {9144000, 5715000},
	Screen16x9:  {9144000, 5143500},
	Mm35:        {10287000, 6858000},
	A3:          {15120000, 10692000},
	A4:          {10692000, 7560000},
	B4ISO:       {10826750, 8120063},
	B5ISO:       {7169150, 5376863},
	Banner:      {7315200, 914400},
	Letter:      {9144000, 6858000},
	Overhead:    {9144000, 6858000},
}

// Names returns the known layout names in lexical order.
func Names() []Name {
	names := make([]Name, 0, len(dimensions))
	for n := range dimensions {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Lookup returns the landscape dimensions of a named layout.
func Lookup(name Name) (cx, cy measure.Measure, err error) {
	d, ok := dimensions[name]
	if !ok {
		return measure.Measure{}, measure.Measure{}, fmt.Errorf("%w: %q", ErrInvalidLayoutKey, name)
	}
	return measure.EMUs(d.cx), measure.EMUs(d.cy), nil
}

// Layout is the slide size of a presentation.
type Layout struct {
	name Name
	cx   measure.Measure
	cy   measure.Measure
}

// New returns a landscape 4:3 screen layout.
func New() *Layout {
	l := &Layout{}
	// Screen4x3 is always in the table.
	_ = l.Set(Screen4x3, true)
	return l
}

// Set switches to a named layout. A portrait layout swaps the table's
// width and height. On error the layout is left unchanged.
func (l *Layout) Set(name Name, landscape bool) error {
	cx, cy, err := Lookup(name)
	if err != nil {
		return err
	}
	l.name = name
	l.cx, l.cy = orient(cx, cy, landscape)
	return nil
}

// SetCustom switches to caller-supplied dimensions.
func (l *Layout) SetCustom(cx, cy measure.Measure, landscape bool) {
	l.name = Custom
	l.cx, l.cy = orient(cx, cy, landscape)
}

func orient(cx, cy measure.Measure, landscape bool) (measure.Measure, measure.Measure) {
	if !landscape {
		return cy, cx
	}
	return cx, cy
}

// Name returns the current layout name, or Custom.
func (l *Layout) Name() Name { return l.name }

// CX returns the slide width.
func (l *Layout) CX() measure.Measure { return l.cx }

// CY returns the slide height.
func (l *Layout) CY() measure.Measure { return l.cy }

// CXForUnit returns the slide width converted to u.
func (l *Layout) CXForUnit(u measure.Unit) float64 { return l.cx.ValueForUnit(u) }

// CYForUnit returns the slide height converted to u.
func (l *Layout) CYForUnit(u measure.Unit) float64 { return l.cy.ValueForUnit(u) }

// SetCX sets the slide width and marks the layout as custom.
func (l *Layout) SetCX(v measure.Measure) *Layout {
	l.name = Custom
	l.cx = v
	return l
}

// SetCY sets the slide height and marks the layout as custom.
func (l *Layout) SetCY(v measure.Measure) *Layout {
	l.name = Custom
	l.cy = v
	return l
}

// IsLandscape reports whether the slide is at least as wide as it is tall.
func (l *Layout) IsLandscape() bool {
	return !measure.LowerThan(l.cx, l.cy)
}
