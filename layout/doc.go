// Package layout provides the slide size of a presentation.
//
// A [Layout] is either one of the named page sizes known to presentation
// applications or a custom width and height:
//
//	l := layout.New() // Screen4x3, landscape
//	if err := l.Set(layout.A4, false); err != nil {
//	    // handle error
//	}
//	l.SetCustom(measure.Centimeters(30), measure.Centimeters(20), true)
//
// The table of named sizes is stored in landscape orientation. Choosing a
// portrait layout swaps width and height once, when the layout is set.
// Names not in the table are rejected with an error wrapping
// [ErrInvalidLayoutKey].
package layout
