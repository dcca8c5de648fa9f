// Package output tracks the monitors and where they sit in layout space.
package output

import (
	"fmt"

	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/logger"
)

// Output represents a physical display
type Output struct {
	Name    string
	X       int // Position in layout space
	Y       int
	Width   int
	Height  int
	Scale   float64
	Primary bool
}

// Box returns the output's area in layout coordinates
func (o *Output) Box() geom.Box {
	return geom.Box{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Contains checks if a point is within this output
func (o *Output) Contains(x, y float64) bool {
	return o.Box().Contains(x, y)
}

func (o *Output) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", o.Name, o.Width, o.Height, o.X, o.Y)
}

// Layout arranges outputs left to right in the order they were added.
type Layout struct {
	outputs []*Output
}

// NewLayout returns an empty layout
func NewLayout() *Layout {
	return &Layout{}
}

// Outputs returns the outputs in layout order
func (l *Layout) Outputs() []*Output {
	out := make([]*Output, len(l.outputs))
	copy(out, l.outputs)
	return out
}

// Len returns the number of outputs
func (l *Layout) Len() int { return len(l.outputs) }

// Add places o to the right of the rightmost output. Adding an output that
// is already present is ignored.
func (l *Layout) Add(o *Output) {
	if o == nil || l.index(o) >= 0 {
		return
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	x := 0
	for _, existing := range l.outputs {
		if right := existing.X + existing.Width; right > x {
			x = right
		}
	}
	o.X, o.Y = x, 0
	l.outputs = append(l.outputs, o)
	l.determinePrimary()
	logger.Debugf("output layout: added %s", o)
}

// Remove takes o out of the layout. The remaining outputs keep their positions.
func (l *Layout) Remove(o *Output) bool {
	i := l.index(o)
	if i < 0 {
		return false
	}
	l.outputs = append(l.outputs[:i], l.outputs[i+1:]...)
	o.Primary = false
	l.determinePrimary()
	logger.Debugf("output layout: removed %s", o)
	return true
}

// At returns the output containing the given layout coordinates
func (l *Layout) At(x, y float64) *Output {
	for _, o := range l.outputs {
		if o.Contains(x, y) {
			return o
		}
	}
	return nil
}

// Primary returns the primary output, or nil when there are none
func (l *Layout) Primary() *Output {
	for _, o := range l.outputs {
		if o.Primary {
			return o
		}
	}
	return nil
}

// Extents is the smallest box holding every output.
func (l *Layout) Extents() geom.Box {
	if len(l.outputs) == 0 {
		return geom.Box{}
	}
	x1, y1 := l.outputs[0].X, l.outputs[0].Y
	x2, y2 := x1+l.outputs[0].Width, y1+l.outputs[0].Height
	for _, o := range l.outputs[1:] {
		x1 = min(x1, o.X)
		y1 = min(y1, o.Y)
		x2 = max(x2, o.X+o.Width)
		y2 = max(y2, o.Y+o.Height)
	}
	return geom.Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (l *Layout) index(o *Output) int {
	for i, existing := range l.outputs {
		if existing == o {
			return i
		}
	}
	return -1
}

// determinePrimary marks the output at (0,0) as primary, falling back to the
// first output when nothing sits at the origin.
func (l *Layout) determinePrimary() {
	for _, o := range l.outputs {
		o.Primary = false
	}
	for _, o := range l.outputs {
		if o.X == 0 && o.Y == 0 {
			o.Primary = true
			return
		}
	}
	if len(l.outputs) > 0 {
		l.outputs[0].Primary = true
	}
}
