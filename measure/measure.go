package measure

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Unit identifies the unit a Measure value is expressed in.
type Unit string

const (
	EMU        Unit = "emu"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Millimeter Unit = "mm"
	Pixel      Unit = "px"
	Point      Unit = "pt"
)

// EMU per unit.
const (
	EMUPerCentimeter = 360000.0
	EMUPerInch       = 914400.0
	EMUPerMillimeter = 36000.0
	EMUPerPoint      = 12700.0
	EMUPerPixel      = 9525.0
)

// tolerance is the largest EMU difference still considered equal.
const tolerance = 1e-6

// Known reports whether u is one of the units defined by this package.
func (u Unit) Known() bool {
	switch u {
	case EMU, Centimeter, Inch, Millimeter, Pixel, Point:
		return true
	default:
		return false
	}
}

// Measure is a length value tagged with its unit.
// The zero value is 0 EMU.
type Measure struct {
	value float64
	unit  Unit
}

// New returns a Measure of value in unit.
func New(value float64, unit Unit) Measure {
	return Measure{value: value, unit: unit}
}

func EMUs(v float64) Measure        { return New(v, EMU) }
func Centimeters(v float64) Measure { return New(v, Centimeter) }
func Inches(v float64) Measure      { return New(v, Inch) }
func Millimeters(v float64) Measure { return New(v, Millimeter) }
func Pixels(v float64) Measure      { return New(v, Pixel) }
func Points(v float64) Measure      { return New(v, Point) }

// Value returns the raw value in the measure's own unit.
func (m Measure) Value() float64 { return m.value }

// Unit returns the unit tag.
func (m Measure) Unit() Unit { return m.unit }

// SetValue replaces the value in place, keeping the unit.
func (m *Measure) SetValue(v float64) *Measure {
	m.value = v
	return m
}

// SetUnit replaces the unit tag in place without converting the value.
func (m *Measure) SetUnit(u Unit) *Measure {
	m.unit = u
	return m
}

// IsZero reports whether the raw value is zero.
func (m Measure) IsZero() bool { return m.value == 0 }

// Scale returns m multiplied by f, in m's unit.
func (m Measure) Scale(f float64) Measure {
	return Measure{value: m.value * f, unit: m.unit}
}

// ValueForUnit converts the value to target. The conversion goes through
// EMU; only the EMU to pixel leg rounds.
func (m Measure) ValueForUnit(target Unit) float64 {
	return convert(m.value, m.unit, target)
}

// In returns m expressed in target.
func (m Measure) In(target Unit) Measure {
	return Measure{value: m.ValueForUnit(target), unit: target}
}

// String formats m as value followed by unit, e.g. "12.5cm".
func (m Measure) String() string {
	return strconv.FormatFloat(m.value, 'f', -1, 64) + string(m.unit)
}

// HashCode returns a stable content hash over unit and value.
func (m Measure) HashCode() string {
	sum := md5.Sum([]byte(string(m.unit) +
		strconv.FormatFloat(m.value, 'g', -1, 64) +
		fmt.Sprintf("%T", m)))
	return hex.EncodeToString(sum[:])
}

func convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}

	switch from {
	case Millimeter:
		v *= EMUPerMillimeter
	case Centimeter:
		v *= EMUPerCentimeter
	case Inch:
		v *= EMUPerInch
	case Pixel:
		v *= EMUPerPixel
	case Point:
		v *= EMUPerPoint
	}

	switch to {
	case Millimeter:
		v /= EMUPerMillimeter
	case Centimeter:
		v /= EMUPerCentimeter
	case Inch:
		v /= EMUPerInch
	case Pixel:
		v = math.Round(v / EMUPerPixel)
	case Point:
		v /= EMUPerPoint
	}

	return v
}

// Parse reads a leading decimal numeral followed by a unit suffix, e.g.
// "12.5cm" or "-3pt". Parsing never fails: a missing or malformed numeral
// reads as 0 and a missing suffix yields the empty unit. The suffix is
// case-folded.
func Parse(text string) Measure {
	s := strings.TrimSpace(text)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}

	rest := cases.Fold().String(s[i:])
	j := 0
	for j < len(rest) && rest[j] >= 'a' && rest[j] <= 'z' {
		j++
	}

	return Measure{value: leadingFloat(s[:i]), unit: Unit(rest[:j])}
}

// leadingFloat parses the longest valid float prefix of a numeral made of
// an optional sign, digits and dots. "1.2.3" reads as 1.2.
func leadingFloat(s string) float64 {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	seenDot := false
	for end < len(s) {
		if s[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Add returns a+b in a's unit. b is converted to a's unit first.
func Add(a, b Measure) Measure {
	return Measure{value: a.value + b.ValueForUnit(a.unit), unit: a.unit}
}

// Subtract returns a-b in a's unit. b is converted to a's unit first.
func Subtract(a, b Measure) Measure {
	return Measure{value: a.value - b.ValueForUnit(a.unit), unit: a.unit}
}

// Compare compares a and b by their EMU values. It returns -1, 0 or +1.
func Compare(a, b Measure) int {
	d := a.ValueForUnit(EMU) - b.ValueForUnit(EMU)
	switch {
	case d > tolerance:
		return 1
	case d < -tolerance:
		return -1
	default:
		return 0
	}
}

// Equals reports whether a and b describe the same length.
func Equals(a, b Measure) bool { return Compare(a, b) == 0 }

// GreaterThan reports whether a is longer than b.
func GreaterThan(a, b Measure) bool { return Compare(a, b) > 0 }

// LowerThan reports whether a is shorter than b.
func LowerThan(a, b Measure) bool { return Compare(a, b) < 0 }

// Ratio returns a/b computed on EMU values. It returns 0 if b is zero.
func Ratio(a, b Measure) float64 {
	d := b.ValueForUnit(EMU)
	if d == 0 {
		return 0
	}
	return a.ValueForUnit(EMU) / d
}
