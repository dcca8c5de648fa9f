package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/godalming123/tinytile/internal/keys"
)

// stroke is one evdev key transition.
type stroke struct {
	code    uint32
	pressed bool
}

// chord presses mods in order, taps code, and releases mods in reverse.
func chord(code uint32, mods ...uint32) []stroke {
	out := make([]stroke, 0, 2*len(mods)+2)
	for _, m := range mods {
		out = append(out, stroke{m, true})
	}
	out = append(out, stroke{code, true}, stroke{code, false})
	for i := len(mods) - 1; i >= 0; i-- {
		out = append(out, stroke{mods[i], false})
	}
	return out
}

var specialKeys = map[tea.KeyType]keys.Sym{
	tea.KeyEnter:     keys.Return,
	tea.KeyEsc:       keys.Escape,
	tea.KeyTab:       keys.Tab,
	tea.KeyBackspace: keys.BackSpace,
	tea.KeyDelete:    keys.Delete,
	tea.KeyHome:      keys.Home,
	tea.KeyEnd:       keys.End,
	tea.KeyUp:        keys.Up,
	tea.KeyDown:      keys.Down,
	tea.KeyLeft:      keys.Left,
	tea.KeyRight:     keys.Right,
	tea.KeySpace:     keys.Space,
}

var functionKeys = map[tea.KeyType]uint32{
	tea.KeyF2: evdev.KEY_F2, tea.KeyF3: evdev.KEY_F3, tea.KeyF4: evdev.KEY_F4,
	tea.KeyF5: evdev.KEY_F5, tea.KeyF6: evdev.KEY_F6, tea.KeyF7: evdev.KEY_F7,
	tea.KeyF8: evdev.KEY_F8, tea.KeyF9: evdev.KEY_F9, tea.KeyF10: evdev.KEY_F10,
	tea.KeyF11: evdev.KEY_F11, tea.KeyF12: evdev.KEY_F12,
}

// strokes translates a terminal key into the key events a real keyboard
// would have sent. Terminals cannot report a bare modifier or the logo key,
// so F1 stands for a tap of Alt and Ctrl+w / Ctrl+s for Logo+w / Logo+s.
func strokes(km *keys.Keymap, msg tea.KeyMsg) []stroke {
	var mods []uint32
	if msg.Alt {
		mods = append(mods, evdev.KEY_LEFTALT)
	}

	if msg.Type == tea.KeyF1 {
		return []stroke{{evdev.KEY_LEFTALT, true}, {evdev.KEY_LEFTALT, false}}
	}
	if code, ok := functionKeys[msg.Type]; ok {
		return chord(code, mods...)
	}
	if sym, ok := specialKeys[msg.Type]; ok {
		return symStrokes(km, sym, mods)
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := keys.LowerA + keys.Sym(msg.Type-tea.KeyCtrlA)
		if !msg.Alt && (letter == keys.LowerW || letter == keys.LowerS) {
			return symStrokes(km, letter, []uint32{evdev.KEY_LEFTMETA})
		}
		return symStrokes(km, letter, append(mods, evdev.KEY_LEFTCTRL))
	}
	if msg.Type != tea.KeyRunes {
		return nil
	}

	var out []stroke
	for _, r := range msg.Runes {
		out = append(out, symStrokes(km, keys.Sym(r), mods)...)
	}
	return out
}

func symStrokes(km *keys.Keymap, sym keys.Sym, mods []uint32) []stroke {
	code, shift, ok := km.Code(sym)
	if !ok {
		return nil
	}
	if shift {
		mods = append(append([]uint32(nil), mods...), evdev.KEY_LEFTSHIFT)
	}
	return chord(code, mods...)
}

var mouseButtons = map[tea.MouseButton]uint32{
	tea.MouseButtonLeft:   evdev.BTN_LEFT,
	tea.MouseButtonMiddle: evdev.BTN_MIDDLE,
	tea.MouseButtonRight:  evdev.BTN_RIGHT,
}
