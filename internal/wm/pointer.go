package wm

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/godalming123/tinytile/internal/cursor"
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/view"
)

const defaultCursorImage = "left_ptr"

// NewPointer attaches a pointer to the cursor.
func (s *Server) NewPointer(dev PointerDevice) {
	s.pointer.AttachDevice(dev)
	s.updateCapabilities()
	s.log.Debug("new pointer", "name", dev.Name())
}

// PointerMotion handles relative motion.
func (s *Server) PointerMotion(ev MotionEvent) {
	s.pointer.Move(ev.Device, ev.DX, ev.DY)
	s.processCursorMotion(ev.Time)
}

// PointerMotionAbsolute handles absolute motion, for example from a nested
// backend window.
func (s *Server) PointerMotionAbsolute(ev AbsoluteMotionEvent) {
	s.pointer.WarpAbsolute(ev.Device, ev.X, ev.Y)
	s.processCursorMotion(ev.Time)
}

// PointerButton focuses the view under the cursor on press. Alt with the
// left button starts a move and Alt with the right button a bottom-right
// resize; anything else goes to the client.
func (s *Server) PointerButton(ev ButtonEvent) {
	cx, cy := s.pointer.Position()
	v, _, sx, sy := s.viewAt(cx, cy)

	if ev.Pressed {
		s.Focus(v)

		if s.seatKeyboard != nil && s.keyboardModifiers() == keys.ModAlt {
			s.ignoreNextAltRelease = true
			switch ev.Button {
			case evdev.BTN_LEFT:
				s.beginInteractive(v, cursor.Move, geom.EdgeNone)
				return
			case evdev.BTN_RIGHT:
				s.beginInteractive(v, cursor.Resize, geom.EdgeBottom|geom.EdgeRight)
				return
			}
		}
	}

	s.seat.PointerButton(ev.Time, ev.Button, ev.Pressed)

	if !ev.Pressed {
		s.grab.Reset()
	} else if v != nil {
		// motion keeps going to the pressed view until release
		s.grab.BeginPressed(v, cx, cy, sx, sy)
	}
}

// PointerAxis forwards scrolling to the pointer-focused client.
func (s *Server) PointerAxis(ev AxisEvent) {
	s.seat.PointerAxis(ev)
}

// PointerFrame forwards a frame to the pointer-focused client.
func (s *Server) PointerFrame() {
	s.seat.PointerFrame()
}

func (s *Server) processCursorMotion(time uint32) {
	cx, cy := s.pointer.Position()
	switch s.grab.Mode() {
	case cursor.Move:
		x, y := s.grab.MoveTarget(cx, cy)
		s.grab.Grabbed().Move(x, y)
		return
	case cursor.Resize:
		s.processResize(cx, cy)
		return
	}

	s.updateDragIconPosition()
	s.processMotion(time)
}

func (s *Server) processResize(cx, cy float64) {
	v := s.grab.Grabbed()
	box := s.grab.ResizeTarget(cx, cy)
	geo := v.Geometry()
	v.Move(box.X-geo.X, box.Y-geo.Y)
	v.Resize(box.Width, box.Height)
}

// processMotion re-runs pointer hit testing at the current cursor position.
// It is also called whenever the view under the cursor may have changed
// without the cursor moving.
func (s *Server) processMotion(time uint32) {
	cx, cy := s.pointer.Position()
	v, surface, sx, sy := s.viewAt(cx, cy)
	dragging := s.seat.Drag() != nil

	if v == nil && !dragging && s.grab.Mode() != cursor.Pressed {
		s.pointer.SetImage(defaultCursorImage)
	}

	switch {
	case s.grab.Mode() == cursor.Pressed && !dragging:
		lx, ly := s.grab.PressedLocal(cx, cy)
		s.seat.PointerMotion(time, lx, ly)
	case surface != nil:
		s.seat.PointerEnter(surface, sx, sy)
		s.seat.PointerMotion(time, sx, sy)
	default:
		s.seat.PointerClearFocus()
	}
}

// viewAt hit tests the scene. A surface whose node belongs to no view is
// treated as nothing.
func (s *Server) viewAt(lx, ly float64) (*view.View, view.Surface, float64, float64) {
	hit, ok := s.scene.At(lx, ly)
	if !ok || hit.View == nil || hit.Surface == nil {
		return nil, nil, 0, 0
	}
	return hit.View, hit.Surface, hit.SX, hit.SY
}

func (s *Server) updateCapabilities() {
	caps := CapPointer
	if len(s.keyboards) > 0 {
		caps |= CapKeyboard
	}
	s.seat.SetCapabilities(caps)
}
