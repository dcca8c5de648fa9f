// Package keys turns raw keycodes into keysyms and modifier masks.
//
// Keysym values are the X11/xkbcommon ones so that bindings read the same as
// they would against libxkbcommon. Keycodes are evdev codes.
package keys

import "fmt"

// Sym is a keysym.
type Sym uint32

const (
	NoSymbol Sym = 0

	Space      Sym = 0x0020
	Apostrophe Sym = 0x0027
	Comma      Sym = 0x002c
	Minus      Sym = 0x002d
	Period     Sym = 0x002e
	Slash      Sym = 0x002f
	Semicolon  Sym = 0x003b
	Equal      Sym = 0x003d
	BracketL   Sym = 0x005b
	Backslash  Sym = 0x005c
	BracketR   Sym = 0x005d
	Grave      Sym = 0x0060

	Key0 Sym = 0x0030
	Key9 Sym = 0x0039

	UpperA Sym = 0x0041
	UpperD Sym = 0x0044
	UpperS Sym = 0x0053
	UpperW Sym = 0x0057
	UpperZ Sym = 0x005a

	LowerA Sym = 0x0061
	LowerB Sym = 0x0062
	LowerD Sym = 0x0064
	LowerE Sym = 0x0065
	LowerF Sym = 0x0066
	LowerH Sym = 0x0068
	LowerQ Sym = 0x0071
	LowerS Sym = 0x0073
	LowerW Sym = 0x0077
	LowerX Sym = 0x0078
	LowerZ Sym = 0x007a

	BackSpace Sym = 0xff08
	Tab       Sym = 0xff09
	Return    Sym = 0xff0d
	Escape    Sym = 0xff1b
	Delete    Sym = 0xffff
	Home      Sym = 0xff50
	Left      Sym = 0xff51
	Up        Sym = 0xff52
	Right     Sym = 0xff53
	Down      Sym = 0xff54
	End       Sym = 0xff57

	F1  Sym = 0xffbe
	F12 Sym = 0xffc9

	ShiftL    Sym = 0xffe1
	ShiftR    Sym = 0xffe2
	ControlL  Sym = 0xffe3
	ControlR  Sym = 0xffe4
	CapsLock  Sym = 0xffe5
	AltL      Sym = 0xffe9
	AltR      Sym = 0xffea
	SuperL    Sym = 0xffeb
	SuperR    Sym = 0xffec
	Level3    Sym = 0xfe03 // ISO_Level3_Shift
	Sterling  Sym = 0x00a3
	NotSign   Sym = 0x00ac
	Brokenbar Sym = 0x00a6

	// XF86Switch_VT_1 to XF86Switch_VT_12 are contiguous.
	SwitchVT1  Sym = 0x1008fe01
	SwitchVT12 Sym = 0x1008fe0c
)

// VTCount is the number of virtual terminal switch keysyms.
const VTCount = int(SwitchVT12-SwitchVT1) + 1

// VT returns the 1-based terminal number for a VT switch keysym.
func (s Sym) VT() (int, bool) {
	if s < SwitchVT1 || s > SwitchVT12 {
		return 0, false
	}
	return int(s-SwitchVT1) + 1, true
}

var symNames = map[Sym]string{
	NoSymbol:  "NoSymbol",
	Space:     "space",
	BackSpace: "BackSpace",
	Tab:       "Tab",
	Return:    "Return",
	Escape:    "Escape",
	Delete:    "Delete",
	Home:      "Home",
	Left:      "Left",
	Up:        "Up",
	Right:     "Right",
	Down:      "Down",
	End:       "End",
	ShiftL:    "Shift_L",
	ShiftR:    "Shift_R",
	ControlL:  "Control_L",
	ControlR:  "Control_R",
	CapsLock:  "Caps_Lock",
	AltL:      "Alt_L",
	AltR:      "Alt_R",
	SuperL:    "Super_L",
	SuperR:    "Super_R",
	Level3:    "ISO_Level3_Shift",
}

func (s Sym) String() string {
	if n, ok := symNames[s]; ok {
		return n
	}
	if s >= F1 && s <= F12 {
		return fmt.Sprintf("F%d", int(s-F1)+1)
	}
	if vt, ok := s.VT(); ok {
		return fmt.Sprintf("XF86Switch_VT_%d", vt)
	}
	if s > 0x20 && s < 0x7f {
		return string(rune(s))
	}
	return fmt.Sprintf("0x%04x", uint32(s))
}

// Rune returns the printable character of a Latin-1 keysym.
func (s Sym) Rune() (rune, bool) {
	if (s >= 0x20 && s < 0x7f) || (s >= 0xa0 && s <= 0xff) {
		return rune(s), true
	}
	return 0, false
}
