// Package geom holds the integer geometry shared by the window manager.
package geom

import "strings"

// Box is a rectangle in logical layout coordinates.
type Box struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside b. The right and bottom
// borders are exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= float64(b.X) && x < float64(b.X+b.Width) &&
		y >= float64(b.Y) && y < float64(b.Y+b.Height)
}

// Empty reports whether b has no area.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Edges is a bit mask of window borders, laid out like wlr_edges.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1 << 0
	EdgeBottom Edges = 1 << 1
	EdgeLeft   Edges = 1 << 2
	EdgeRight  Edges = 1 << 3

	EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// Has reports whether every edge in o is set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o && o != EdgeNone
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}
	var parts []string
	for _, ed := range []struct {
		bit  Edges
		name string
	}{{EdgeTop, "top"}, {EdgeBottom, "bottom"}, {EdgeLeft, "left"}, {EdgeRight, "right"}} {
		if e&ed.bit != 0 {
			parts = append(parts, ed.name)
		}
	}
	return strings.Join(parts, "|")
}
