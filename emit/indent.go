package emit

import "strings"

// Indenter tracks the current indentation depth of one output document.
// It is created once per document and shared by reference with every nested
// builder for the duration of a render.
type Indenter struct {
	unit  string
	depth int
}

// NewIndenter returns an indenter using one tab per depth level.
func NewIndenter() *Indenter {
	return &Indenter{unit: "\t"}
}

// NewIndenterUnit returns an indenter using the given indent unit.
func NewIndenterUnit(unit string) *Indenter {
	return &Indenter{unit: unit}
}

// Depth returns the current depth.
func (i *Indenter) Depth() int {
	return i.depth
}

// Prefix returns the indent prefix for the current depth.
func (i *Indenter) Prefix() string {
	return strings.Repeat(i.unit, i.depth)
}

// Line returns content prefixed with the current indent.
func (i *Indenter) Line(content string) string {
	return i.Prefix() + content
}

// Push deepens the indentation by one level.
func (i *Indenter) Push() {
	i.depth++
}

// Pop restores the indentation by one level. Popping at depth zero is a
// silent no-op.
func (i *Indenter) Pop() {
	if i.depth > 0 {
		i.depth--
	}
}

// Reset sets the depth back to zero. Called at the start of every top-level
// render so repeated renders of the same builder graph are independent.
func (i *Indenter) Reset() {
	i.depth = 0
}
