package wm

import "github.com/godalming123/tinytile/internal/view"

// Focus gives keyboard focus to v.
//
// A view with mapped children gives focus to its most recently active child
// chain instead, and the outermost parent is raised so that the whole tree
// comes to the front. Nothing happens when the resolved view already has
// keyboard focus.
func (s *Server) Focus(v *view.View) {
	if v == nil {
		return
	}
	target := v.ActivePopup()
	outer := target.Root()

	prev := s.seat.KeyboardFocus()
	if prev != nil && prev == target.Surface() {
		// a cycle may have moved the focused pointer away without moving
		// keyboard focus
		s.focused = target
		return
	}
	if prev != nil {
		// deactivate before the target is activated
		if pv := s.surfaces[prev]; pv != nil {
			pv.Toplevel.SetActivated(false)
		}
	}

	s.views.MoveToTop(outer)
	for c := target; c.Parent() != nil; c = c.Parent() {
		c.Promote()
	}
	s.focused = target

	target.Toplevel.SetActivated(true)
	var pressed []uint32
	mods := s.keyboardModifiers()
	if s.seatKeyboard != nil {
		pressed = s.seatKeyboard.state.Pressed()
	}
	s.seat.KeyboardEnter(target.Surface(), pressed, mods)

	// stacking may have changed what is under the pointer
	s.processMotion(0)
}

func (s *Server) clearFocus() {
	s.focused = nil
	if prev := s.seat.KeyboardFocus(); prev != nil {
		if pv := s.surfaces[prev]; pv != nil {
			pv.Toplevel.SetActivated(false)
		}
	}
	s.seat.KeyboardClearFocus()
}
