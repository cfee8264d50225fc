package pptx

import "strconv"

// Sequence hands out increasing integers. The writer keeps one per
// numbering scope: shape ids per slide, relationship ids per part and media
// indices per package.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first value is first.
func NewSequence(first int) *Sequence {
	return &Sequence{next: first}
}

// Next returns the next value.
func (s *Sequence) Next() int {
	v := s.next
	s.next++
	return v
}

// Peek returns the value the next call to Next will return.
func (s *Sequence) Peek() int { return s.next }

// nextRelID returns the next relationship id, e.g. "rId3".
func (s *Sequence) nextRelID() string {
	return "rId" + strconv.Itoa(s.Next())
}
