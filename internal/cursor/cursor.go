// Package cursor holds the pointer interaction state machine.
//
// The state is one of Passthrough, Move, Resize or Pressed. Every state but
// Passthrough carries the grabbed view and a grab offset captured when the
// state was entered. Resize additionally keeps the edge mask and the grabbed
// geometry box, and the box is re-derived from them on every motion event.
package cursor

import (
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
)

// Mode is the pointer interaction mode.
type Mode int

const (
	Passthrough Mode = iota
	Move
	Resize
	Pressed
)

func (m Mode) String() string {
	switch m {
	case Passthrough:
		return "passthrough"
	case Move:
		return "move"
	case Resize:
		return "resize"
	case Pressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// State is the current interaction. The zero value is Passthrough.
type State struct {
	mode    Mode
	grabbed *view.View

	// cursor position minus the grabbed reference point
	grabX, grabY float64

	// layout coordinates of the grabbed window geometry
	grabBox geom.Box
	edges   geom.Edges
}

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// Grabbed returns the grabbed view; nil exactly when the mode is Passthrough.
func (s *State) Grabbed() *view.View { return s.grabbed }

// Edges returns the resize edges of a Resize grab.
func (s *State) Edges() geom.Edges { return s.edges }

// GrabBox returns the geometry captured when a Resize grab started.
func (s *State) GrabBox() geom.Box { return s.grabBox }

// GrabOffset returns the offset captured when the grab started.
func (s *State) GrabOffset() (float64, float64) { return s.grabX, s.grabY }

// Reset returns to Passthrough and clears the grab.
func (s *State) Reset() {
	*s = State{}
}

// BeginMove grabs v so that the view origin follows the cursor.
func (s *State) BeginMove(v *view.View, cx, cy float64) {
	if v == nil {
		return
	}
	*s = State{
		mode:    Move,
		grabbed: v,
		grabX:   cx - float64(v.X),
		grabY:   cy - float64(v.Y),
	}
}

// BeginResize grabs v so that the edges in the mask follow the cursor. The
// grab offset is measured from the border being dragged, so grabbing a
// little inside the window does not make it jump.
func (s *State) BeginResize(v *view.View, cx, cy float64, edges geom.Edges) {
	if v == nil {
		return
	}
	geo := v.Geometry()

	borderX := float64(v.X + geo.X)
	if edges&geom.EdgeRight != 0 {
		borderX += float64(geo.Width)
	}
	borderY := float64(v.Y + geo.Y)
	if edges&geom.EdgeBottom != 0 {
		borderY += float64(geo.Height)
	}

	box := geo
	box.X += v.X
	box.Y += v.Y

	*s = State{
		mode:    Resize,
		grabbed: v,
		grabX:   cx - borderX,
		grabY:   cy - borderY,
		grabBox: box,
		edges:   edges,
	}
}

// BeginPressed keeps delivering pointer motion to v after a button press,
// where (sx, sy) were the surface-local coordinates of the press.
func (s *State) BeginPressed(v *view.View, cx, cy, sx, sy float64) {
	if v == nil {
		return
	}
	*s = State{
		mode:    Pressed,
		grabbed: v,
		grabX:   cx - sx,
		grabY:   cy - sy,
	}
}

// MoveTarget is the new view origin for a Move grab.
func (s *State) MoveTarget(cx, cy float64) (int, int) {
	return int(cx - s.grabX), int(cy - s.grabY)
}

// PressedLocal is the pointer position in the pressed view's own coordinates.
func (s *State) PressedLocal(cx, cy float64) (float64, float64) {
	return cx - s.grabX, cy - s.grabY
}

// ResizeTarget is the new window geometry, in layout coordinates, for a
// Resize grab with the cursor at (cx, cy).
func (s *State) ResizeTarget(cx, cy float64) geom.Box {
	return ResizeBox(s.grabBox, s.edges, cx-s.grabX, cy-s.grabY)
}

// ResizeBox moves the edges of grab named in edges to the border point and
// returns the result. Top wins over bottom and left over right when both
// are set. An edge is clamped one unit short of its opposite edge so the
// size never drops below 1.
func ResizeBox(grab geom.Box, edges geom.Edges, borderX, borderY float64) geom.Box {
	left := grab.X
	right := grab.X + grab.Width
	top := grab.Y
	bottom := grab.Y + grab.Height

	if edges&geom.EdgeTop != 0 {
		top = int(borderY)
		if top >= bottom {
			top = bottom - 1
		}
	} else if edges&geom.EdgeBottom != 0 {
		bottom = int(borderY)
		if bottom <= top {
			bottom = top + 1
		}
	}
	if edges&geom.EdgeLeft != 0 {
		left = int(borderX)
		if left >= right {
			left = right - 1
		}
	} else if edges&geom.EdgeRight != 0 {
		right = int(borderX)
		if right <= left {
			right = left + 1
		}
	}

	return geom.Box{X: left, Y: top, Width: right - left, Height: bottom - top}
}
