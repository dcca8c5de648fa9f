package keys

import "strings"

// Modifiers is a modifier mask with the same bit layout as wlr_keyboard_modifier.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << 0
	ModCaps  Modifiers = 1 << 1
	ModCtrl  Modifiers = 1 << 2
	ModAlt   Modifiers = 1 << 3
	ModMod2  Modifiers = 1 << 4
	ModMod3  Modifiers = 1 << 5
	ModLogo  Modifiers = 1 << 6
	ModMod5  Modifiers = 1 << 7
)

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	names := []struct {
		bit  Modifiers
		name string
	}{
		{ModShift, "shift"}, {ModCaps, "caps"}, {ModCtrl, "ctrl"}, {ModAlt, "alt"},
		{ModMod2, "mod2"}, {ModMod3, "mod3"}, {ModLogo, "logo"}, {ModMod5, "mod5"},
	}
	var parts []string
	for _, n := range names {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}
