package model

import (
	"golang.org/x/text/unicode/norm"
)

// Generic font families.
const (
	FamilyRoman      = "roman"
	FamilySwiss      = "swiss"
	FamilyModern     = "modern"
	FamilyScript     = "script"
	FamilyDecorative = "decorative"
	FamilySystem     = "system"
)

// Font pitches.
const (
	PitchFixed    = "fixed"
	PitchVariable = "variable"
)

// FontFace declares a font used by a presentation.
type FontFace struct {
	Name          string
	Family        string
	GenericFamily string
	Pitch         string
}

// NewFontFace returns a variable-pitch face whose family is its name.
func NewFontFace(name string) *FontFace {
	return &FontFace{Name: name, Family: name, Pitch: PitchVariable}
}

// HashCode identifies the face. Names are compared in Unicode NFC, so
// precomposed and decomposed spellings hash alike.
func (f *FontFace) HashCode() string {
	return hashOf(
		norm.NFC.String(f.Name),
		norm.NFC.String(f.Family),
		f.GenericFamily,
		f.Pitch,
		"model.FontFace",
	)
}
