// Package model provides the in-memory document object model of a
// presentation.
//
// # Presentation Structure
//
// A [Presentation] holds metadata, a slide layout and an ordered list of
// slides:
//
//	p := model.NewPresentation()
//	p.Metadata.Title = "Quarterly review"
//	slide := p.CreateSlide()
//	box := slide.CreateRichTextShape()
//	box.CreateTextRun("Hello")
//
// Each [Slide] is a [Container] of shapes in z-order, the first shape at
// the back.
//
// # Shapes
//
// Every shape implements the [Shape] interface and embeds a [Frame] that
// carries its name, offsets, size and rotation. The concrete types are:
//
//   - [RichText] - text boxes made of paragraphs
//   - [CustomShape] - text boxes with a preset outline
//   - [Line] - straight connectors
//   - [Chart] - data charts
//   - [Drawing] - embedded pictures
//   - [Table] - grids of text cells
//   - [Group] - shapes made of other shapes
//
// Charts, drawings and tables embed a [Graphic], which keeps width and
// height in proportion when one of them is changed.
//
// # Geometry
//
// [CalculateOffsets] and [CalculateExtents] compute the area covered by the
// shapes of a container. A [Group] derives its own position and size from
// them and caches the result until one of its members changes.
//
// Nothing in this package is safe for concurrent mutation.
package model
