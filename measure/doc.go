// Package measure provides a unit-aware length type for presentation
// geometry.
//
// Every position and size in a slide deck is a [Measure]: a float64 value
// tagged with a [Unit]. English Metric Units (EMU) are the canonical unit;
// there are 360000 EMU per centimetre, 914400 per inch, 36000 per
// millimetre, 12700 per point and 9525 per pixel (at 96 dpi).
//
//	w := measure.Centimeters(12.5)
//	emu := w.ValueForUnit(measure.EMU) // 4500000
//
// # Parsing
//
// [Parse] reads strings like "12.5cm" or "96px". It is deliberately lenient:
// a missing numeral reads as 0, a missing suffix as the empty unit, and no
// input ever produces an error. Unknown units behave like EMU in
// conversions.
//
// # Arithmetic and comparison
//
// [Add] and [Subtract] return a result in the unit of their first operand,
// converting the second operand first. [Compare], [Equals], [GreaterThan]
// and [LowerThan] compare the EMU values of both operands, so 1in equals
// 2.54cm.
package measure
