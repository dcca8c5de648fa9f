package wm

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/notify"
)

// handleKey dispatches on the exact modifier mask. It returns true when the
// key was consumed and must not reach the client.
func (s *Server) handleKey(code uint32, pressed bool, mods keys.Modifiers, sym keys.Sym) bool {
	if pressed {
		if mods&keys.ModAlt != 0 && code != evdev.KEY_LEFTALT {
			s.ignoreNextAltRelease = true
		}
		switch mods {
		case keys.ModAlt | keys.ModCtrl:
			if vt, ok := sym.VT(); ok {
				s.changeVT(vt)
				return true
			}
			return s.handleAltCtrlBinding(sym)
		case keys.ModAlt:
			return s.handleAltBinding(sym)
		case keys.ModLogo:
			return s.handleLogoBinding(sym)
		case keys.ModAlt | keys.ModShift:
			return s.handleAltShiftBinding(sym)
		case 0:
			return sym == keys.Escape && s.overlay.Hide()
		}
		return false
	}

	// Releasing the modifier that drove the client picker commits the
	// highlighted view.
	if ((mods == keys.ModLogo && sym == keys.SuperL) || (mods == keys.ModAlt && sym == keys.AltL)) &&
		s.overlay.Type() == notify.ClientsList {
		s.overlay.Hide()
		s.Focus(s.focused)
	}
	if mods == keys.ModAlt && sym == keys.AltL {
		if !s.ignoreNextAltRelease {
			if s.overlay.Type() != notify.Hello {
				s.showHello()
			} else {
				s.overlay.Hide()
			}
		}
		s.ignoreNextAltRelease = false
		return true
	}
	return false
}

func (s *Server) handleAltBinding(sym keys.Sym) bool {
	switch sym {
	case keys.Escape:
		s.Terminate()
	case keys.LowerQ:
		if s.focused != nil {
			s.focused.Toplevel.SendClose()
		}
	case keys.Return:
		s.run(s.cfg.Commands.Terminal)
	case keys.LowerX:
		s.run(s.cfg.Commands.Suspend)
	case keys.LowerA:
		s.showClientsList()
	case keys.LowerF:
		if s.focused != nil {
			s.toggleMaximize(s.focused)
		}
	case keys.LowerW:
		s.cycle(false)
	case keys.LowerS:
		s.cycle(true)
	case keys.LowerE:
		s.run(s.cfg.Commands.FileManager)
	case keys.LowerB:
		s.run(s.cfg.Commands.Browser)
	case keys.LowerH:
		s.run(s.cfg.Commands.Help)
	default:
		return false
	}
	return true
}

// cycle highlights the neighbouring view: it is raised and becomes the
// focused view, but keyboard focus only moves when the modifier is
// released.
func (s *Server) cycle(forward bool) {
	if s.focused != nil && s.views.Count() > 1 {
		wrap := s.cfg.Behaviour.WrapClientPicker
		target := s.views.Previous(s.focused, wrap)
		if forward {
			target = s.views.Next(s.focused, wrap)
		}
		s.views.MoveToTop(target)
		s.focused = target
	}
	s.showClientsList()
}

// handleLogoBinding reorders the focused view one step in cycle order
// without changing focus or stacking.
func (s *Server) handleLogoBinding(sym keys.Sym) bool {
	switch sym {
	case keys.LowerW:
		if s.focused != nil && s.views.Count() > 1 {
			s.views.MoveBackward(s.focused)
		}
	case keys.LowerS:
		if s.focused != nil && s.views.Count() > 1 {
			s.views.MoveForward(s.focused)
		}
	default:
		return false
	}
	s.showClientsList()
	return true
}

// handleAltCtrlBinding resizes the focused view. A bound key is consumed
// even when there is nothing to resize.
func (s *Server) handleAltCtrlBinding(sym keys.Sym) bool {
	var dw, dh int
	step := s.cfg.Behaviour.PixelsToMoveWindows
	switch sym {
	case keys.LowerW:
		dh = -step
	case keys.LowerA:
		dw = -step
	case keys.LowerS:
		dh = step
	case keys.LowerD:
		dw = step
	default:
		return false
	}
	if v := s.focused; v != nil && !v.UsesWholeScreen() {
		geo := v.Geometry()
		v.Resize(max(1, geo.Width+dw), max(1, geo.Height+dh))
	}
	return true
}

// handleAltShiftBinding moves the focused view. Shift makes the letters
// upper case.
func (s *Server) handleAltShiftBinding(sym keys.Sym) bool {
	var dx, dy int
	step := s.cfg.Behaviour.PixelsToMoveWindows
	switch sym {
	case keys.UpperW:
		dy = -step
	case keys.UpperA:
		dx = -step
	case keys.UpperS:
		dy = step
	case keys.UpperD:
		dx = step
	default:
		return false
	}
	if v := s.focused; v != nil && !v.UsesWholeScreen() {
		v.Move(v.X+dx, v.Y+dy)
	}
	return true
}

func (s *Server) changeVT(n int) {
	if s.session == nil {
		s.log.Debug("no session to change VT with", "vt", n)
		return
	}
	if err := s.session.ChangeVT(n); err != nil {
		s.log.Warn("could not change VT", "vt", n, "err", err)
	}
}
