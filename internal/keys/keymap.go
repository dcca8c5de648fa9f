package keys

import (
	"fmt"
	"sort"
	"strings"

	evdev "github.com/gvalkov/golang-evdev"
)

type level struct {
	base, shifted Sym
}

// Keymap resolves evdev keycodes to keysyms for one keyboard layout.
type Keymap struct {
	layout string
	levels map[uint32]level
}

// Layout is the name the keymap was compiled from.
func (k *Keymap) Layout() string { return k.layout }

// Layouts lists the layout names Compile accepts.
func Layouts() []string {
	names := make([]string, 0, len(layoutOverrides))
	for name := range layoutOverrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile builds a keymap from a layout string such as "gb". Only the first
// group of a comma separated list is used.
func Compile(layout string) (*Keymap, error) {
	name := strings.TrimSpace(strings.SplitN(layout, ",", 2)[0])
	overrides, ok := layoutOverrides[name]
	if !ok {
		return nil, fmt.Errorf("unknown keyboard layout %q", layout)
	}

	levels := make(map[uint32]level, len(usLevels)+len(overrides))
	for code, l := range usLevels {
		levels[code] = l
	}
	for code, l := range overrides {
		levels[code] = l
	}
	return &Keymap{layout: name, levels: levels}, nil
}

// Sym resolves code with the given modifiers held. Shift selects the second
// level, Caps Lock inverts it for letters, and Ctrl+Alt turns F1 to F12 into
// the virtual terminal switch keysyms.
func (k *Keymap) Sym(code uint32, mods Modifiers) Sym {
	if s, ok := modifierSyms[code]; ok {
		return s
	}
	if n, ok := functionKeys[code]; ok {
		if mods&(ModCtrl|ModAlt) == ModCtrl|ModAlt {
			return SwitchVT1 + Sym(n-1)
		}
		return F1 + Sym(n-1)
	}
	l, ok := k.levels[code]
	if !ok {
		return NoSymbol
	}
	shifted := mods&ModShift != 0
	if mods&ModCaps != 0 && isLetter(l.base) {
		shifted = !shifted
	}
	if shifted && l.shifted != NoSymbol {
		return l.shifted
	}
	return l.base
}

// Code returns a keycode producing sym on its base or shifted level, and
// whether shift is needed for it.
func (k *Keymap) Code(sym Sym) (code uint32, shift bool, ok bool) {
	for c, s := range modifierSyms {
		if s == sym {
			return c, false, true
		}
	}
	for c, n := range functionKeys {
		if F1+Sym(n-1) == sym {
			return c, false, true
		}
	}
	// search in code order so the answer is stable
	codes := make([]uint32, 0, len(k.levels))
	for c := range k.levels {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, c := range codes {
		l := k.levels[c]
		if l.base == sym {
			return c, false, true
		}
		if l.shifted == sym {
			return c, true, true
		}
	}
	return 0, false, false
}

func isLetter(s Sym) bool {
	return s >= LowerA && s <= LowerZ
}

var modifierSyms = map[uint32]Sym{
	evdev.KEY_LEFTSHIFT:  ShiftL,
	evdev.KEY_RIGHTSHIFT: ShiftR,
	evdev.KEY_LEFTCTRL:   ControlL,
	evdev.KEY_RIGHTCTRL:  ControlR,
	evdev.KEY_CAPSLOCK:   CapsLock,
	evdev.KEY_LEFTALT:    AltL,
	evdev.KEY_RIGHTALT:   Level3,
	evdev.KEY_LEFTMETA:   SuperL,
	evdev.KEY_RIGHTMETA:  SuperR,
}

var functionKeys = map[uint32]int{
	evdev.KEY_F1: 1, evdev.KEY_F2: 2, evdev.KEY_F3: 3, evdev.KEY_F4: 4,
	evdev.KEY_F5: 5, evdev.KEY_F6: 6, evdev.KEY_F7: 7, evdev.KEY_F8: 8,
	evdev.KEY_F9: 9, evdev.KEY_F10: 10, evdev.KEY_F11: 11, evdev.KEY_F12: 12,
}

func letter(r rune) level {
	return level{base: Sym(r), shifted: Sym(r - 'a' + 'A')}
}

func chars(base, shifted rune) level {
	return level{base: Sym(base), shifted: Sym(shifted)}
}

var usLevels = map[uint32]level{
	evdev.KEY_A: letter('a'), evdev.KEY_B: letter('b'), evdev.KEY_C: letter('c'),
	evdev.KEY_D: letter('d'), evdev.KEY_E: letter('e'), evdev.KEY_F: letter('f'),
	evdev.KEY_G: letter('g'), evdev.KEY_H: letter('h'), evdev.KEY_I: letter('i'),
	evdev.KEY_J: letter('j'), evdev.KEY_K: letter('k'), evdev.KEY_L: letter('l'),
	evdev.KEY_M: letter('m'), evdev.KEY_N: letter('n'), evdev.KEY_O: letter('o'),
	evdev.KEY_P: letter('p'), evdev.KEY_Q: letter('q'), evdev.KEY_R: letter('r'),
	evdev.KEY_S: letter('s'), evdev.KEY_T: letter('t'), evdev.KEY_U: letter('u'),
	evdev.KEY_V: letter('v'), evdev.KEY_W: letter('w'), evdev.KEY_X: letter('x'),
	evdev.KEY_Y: letter('y'), evdev.KEY_Z: letter('z'),

	evdev.KEY_1: chars('1', '!'), evdev.KEY_2: chars('2', '@'), evdev.KEY_3: chars('3', '#'),
	evdev.KEY_4: chars('4', '$'), evdev.KEY_5: chars('5', '%'), evdev.KEY_6: chars('6', '^'),
	evdev.KEY_7: chars('7', '&'), evdev.KEY_8: chars('8', '*'), evdev.KEY_9: chars('9', '('),
	evdev.KEY_0: chars('0', ')'),

	evdev.KEY_MINUS:      chars('-', '_'),
	evdev.KEY_EQUAL:      chars('=', '+'),
	evdev.KEY_LEFTBRACE:  chars('[', '{'),
	evdev.KEY_RIGHTBRACE: chars(']', '}'),
	evdev.KEY_SEMICOLON:  chars(';', ':'),
	evdev.KEY_APOSTROPHE: chars('\'', '"'),
	evdev.KEY_GRAVE:      chars('`', '~'),
	evdev.KEY_BACKSLASH:  chars('\\', '|'),
	evdev.KEY_COMMA:      chars(',', '<'),
	evdev.KEY_DOT:        chars('.', '>'),
	evdev.KEY_SLASH:      chars('/', '?'),
	evdev.KEY_SPACE:      {base: Space},

	evdev.KEY_ESC:       {base: Escape},
	evdev.KEY_ENTER:     {base: Return},
	evdev.KEY_BACKSPACE: {base: BackSpace},
	evdev.KEY_TAB:       {base: Tab},
	evdev.KEY_DELETE:    {base: Delete},
	evdev.KEY_HOME:      {base: Home},
	evdev.KEY_END:       {base: End},
	evdev.KEY_LEFT:      {base: Left},
	evdev.KEY_UP:        {base: Up},
	evdev.KEY_RIGHT:     {base: Right},
	evdev.KEY_DOWN:      {base: Down},
}

// Per-layout differences from the US table.
var layoutOverrides = map[string]map[uint32]level{
	"us": {},
	"gb": {
		evdev.KEY_2:          chars('2', '"'),
		evdev.KEY_3:          {base: Sym('3'), shifted: Sterling},
		evdev.KEY_APOSTROPHE: chars('\'', '@'),
		evdev.KEY_BACKSLASH:  chars('#', '~'),
		evdev.KEY_102ND:      chars('\\', '|'),
		evdev.KEY_GRAVE:      {base: Grave, shifted: NotSign},
	},
	// AZERTY letter block
	"fr": {
		evdev.KEY_Q:         letter('a'),
		evdev.KEY_A:         letter('q'),
		evdev.KEY_W:         letter('z'),
		evdev.KEY_Z:         letter('w'),
		evdev.KEY_SEMICOLON: letter('m'),
		evdev.KEY_M:         chars(',', '?'),
	},
}
