package wm

import (
	"github.com/godalming123/tinytile/internal/keys"
)

const fallbackLayout = "us"

type keyboard struct {
	dev   KeyboardDevice
	state *keys.State
}

// NewKeyboard sets up a keyboard with the configured layout and repeat
// info and makes it the seat keyboard.
func (s *Server) NewKeyboard(dev KeyboardDevice) {
	s.addKeyboard(dev)
	s.updateCapabilities()
}

// NewVirtualKeyboard sets up a keyboard created by a client through the
// virtual keyboard protocol.
func (s *Server) NewVirtualKeyboard(dev KeyboardDevice) {
	s.addKeyboard(dev)
}

func (s *Server) addKeyboard(dev KeyboardDevice) {
	if s.keyboardFor(dev) != nil {
		return
	}
	km, err := keys.Compile(s.cfg.Keyboard.Layout)
	if err != nil {
		s.log.Warn("falling back to the us layout", "err", err)
		km, _ = keys.Compile(fallbackLayout)
	}
	dev.SetKeymap(km)
	dev.SetRepeatInfo(s.cfg.Keyboard.RepeatRate, s.cfg.Keyboard.RepeatDelay)

	kb := &keyboard{dev: dev, state: keys.NewState(km)}
	s.keyboards = append(s.keyboards, kb)
	s.seat.SetKeyboard(dev)
	s.seatKeyboard = kb
	s.log.Debug("new keyboard", "name", dev.Name(), "layout", km.Layout())
}

// KeyboardDestroyed forgets a keyboard.
func (s *Server) KeyboardDestroyed(dev KeyboardDevice) {
	for i, kb := range s.keyboards {
		if kb.dev != dev {
			continue
		}
		s.keyboards = append(s.keyboards[:i], s.keyboards[i+1:]...)
		if s.seatKeyboard == kb {
			s.seatKeyboard = nil
			if n := len(s.keyboards); n > 0 {
				s.seatKeyboard = s.keyboards[n-1]
				s.seat.SetKeyboard(s.seatKeyboard.dev)
			}
		}
		return
	}
}

// Key runs compositor bindings and forwards every key they do not consume
// to the focused client. Bindings see the modifiers and keysym as they were
// before this event was applied, so releasing Alt is still seen with Alt
// held.
func (s *Server) Key(dev KeyboardDevice, ev KeyEvent) {
	kb := s.keyboardFor(dev)
	if kb == nil {
		s.log.Debug("key from an unknown keyboard", "name", dev.Name())
		return
	}
	s.seatKeyboard = kb

	mods := kb.state.Modifiers()
	sym := kb.state.Sym(ev.Code)
	handled := s.handleKey(ev.Code, ev.Pressed, mods, sym)
	changed := kb.state.Update(ev.Code, ev.Pressed)

	if !handled {
		s.seat.SetKeyboard(dev)
		s.seat.KeyboardKey(ev.Time, ev.Code, ev.Pressed)
	}
	if changed {
		s.seat.SetKeyboard(dev)
		s.seat.KeyboardModifiers(kb.state.Modifiers())
	}
}

func (s *Server) keyboardFor(dev KeyboardDevice) *keyboard {
	for _, kb := range s.keyboards {
		if kb.dev == dev {
			return kb
		}
	}
	return nil
}

// keyboardModifiers returns the seat keyboard's modifiers.
func (s *Server) keyboardModifiers() keys.Modifiers {
	if s.seatKeyboard == nil {
		return 0
	}
	return s.seatKeyboard.state.Modifiers()
}
