package keys

import (
	"sort"

	evdev "github.com/gvalkov/golang-evdev"
)

var modifierBits = map[uint32]Modifiers{
	evdev.KEY_LEFTSHIFT:  ModShift,
	evdev.KEY_RIGHTSHIFT: ModShift,
	evdev.KEY_LEFTCTRL:   ModCtrl,
	evdev.KEY_RIGHTCTRL:  ModCtrl,
	evdev.KEY_LEFTALT:    ModAlt,
	evdev.KEY_RIGHTALT:   ModMod5,
	evdev.KEY_LEFTMETA:   ModLogo,
	evdev.KEY_RIGHTMETA:  ModLogo,
}

// State tracks the keys held on one keyboard and the modifiers they produce.
type State struct {
	keymap  *Keymap
	pressed map[uint32]struct{}
	caps    bool
}

// NewState returns an empty state over km.
func NewState(km *Keymap) *State {
	return &State{keymap: km, pressed: make(map[uint32]struct{})}
}

// Keymap returns the keymap the state resolves with.
func (s *State) Keymap() *Keymap { return s.keymap }

// Modifiers returns the effective modifier mask.
func (s *State) Modifiers() Modifiers {
	var m Modifiers
	for code := range s.pressed {
		m |= modifierBits[code]
	}
	if s.caps {
		m |= ModCaps
	}
	return m
}

// Sym resolves code against the current modifiers.
func (s *State) Sym(code uint32) Sym {
	return s.keymap.Sym(code, s.Modifiers())
}

// Update applies a key event and reports whether the modifier mask changed.
func (s *State) Update(code uint32, pressed bool) bool {
	before := s.Modifiers()
	if pressed {
		if _, held := s.pressed[code]; !held && code == evdev.KEY_CAPSLOCK {
			s.caps = !s.caps
		}
		s.pressed[code] = struct{}{}
	} else {
		delete(s.pressed, code)
	}
	return s.Modifiers() != before
}

// Pressed returns the held keycodes in ascending order.
func (s *State) Pressed() []uint32 {
	codes := make([]uint32, 0, len(s.pressed))
	for code := range s.pressed {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Reset releases every key and clears Caps Lock.
func (s *State) Reset() {
	s.pressed = make(map[uint32]struct{})
	s.caps = false
}
