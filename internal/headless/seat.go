package headless

import (
	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

// EventKind names a delivery the seat made to a client.
type EventKind string

const (
	KeyboardEnter     EventKind = "keyboard-enter"
	KeyboardLeave     EventKind = "keyboard-leave"
	KeyboardKey       EventKind = "key"
	KeyboardModifiers EventKind = "modifiers"
	PointerEnter      EventKind = "pointer-enter"
	PointerLeave      EventKind = "pointer-leave"
	PointerMotion     EventKind = "motion"
	PointerButton     EventKind = "button"
	PointerAxis       EventKind = "axis"
	PointerFrame      EventKind = "frame"
)

// Event is one delivery to a client.
type Event struct {
	Kind    EventKind
	Surface view.Surface
	Code    uint32
	Pressed bool
	Keys    []uint32
	Mods    keys.Modifiers
	X, Y    float64
	Axis    wm.AxisEvent
}

// Seat records what would have been sent to clients.
type Seat struct {
	keyboard wm.KeyboardDevice
	kbFocus  view.Surface
	ptrFocus view.Surface
	caps     wm.Capability

	selection       wm.DataSource
	selectionSerial uint32

	drag wm.Drag

	// serial of the last button press; 0 when no button is held
	buttonSerial uint32
	nextSerial   uint32

	events []Event
}

var _ wm.Seat = (*Seat)(nil)

// NewSeat returns a seat with no focus.
func NewSeat() *Seat { return &Seat{} }

func (s *Seat) SetKeyboard(k wm.KeyboardDevice) { s.keyboard = k }

// Keyboard is the active keyboard.
func (s *Seat) Keyboard() wm.KeyboardDevice { return s.keyboard }

func (s *Seat) KeyboardFocus() view.Surface { return s.kbFocus }

func (s *Seat) KeyboardEnter(surface view.Surface, pressed []uint32, mods keys.Modifiers) {
	if s.kbFocus == surface {
		return
	}
	if s.kbFocus != nil {
		s.record(Event{Kind: KeyboardLeave, Surface: s.kbFocus})
	}
	s.kbFocus = surface
	s.record(Event{Kind: KeyboardEnter, Surface: surface, Keys: append([]uint32(nil), pressed...), Mods: mods})
}

func (s *Seat) KeyboardClearFocus() {
	if s.kbFocus == nil {
		return
	}
	s.record(Event{Kind: KeyboardLeave, Surface: s.kbFocus})
	s.kbFocus = nil
}

func (s *Seat) KeyboardKey(time, code uint32, pressed bool) {
	if s.kbFocus == nil {
		return
	}
	s.record(Event{Kind: KeyboardKey, Surface: s.kbFocus, Code: code, Pressed: pressed})
}

func (s *Seat) KeyboardModifiers(mods keys.Modifiers) {
	if s.kbFocus == nil {
		return
	}
	s.record(Event{Kind: KeyboardModifiers, Surface: s.kbFocus, Mods: mods})
}

func (s *Seat) PointerFocus() view.Surface { return s.ptrFocus }

// PointerFocusClient returns the client owning the pointer focus, or nil.
func (s *Seat) PointerFocusClient() wm.Client {
	surface, ok := s.ptrFocus.(*Surface)
	if !ok || surface.client == nil {
		return nil
	}
	return surface.client
}

func (s *Seat) PointerEnter(surface view.Surface, sx, sy float64) {
	if s.ptrFocus == surface {
		return
	}
	if s.ptrFocus != nil {
		s.record(Event{Kind: PointerLeave, Surface: s.ptrFocus})
	}
	s.ptrFocus = surface
	s.record(Event{Kind: PointerEnter, Surface: surface, X: sx, Y: sy})
}

func (s *Seat) PointerMotion(time uint32, sx, sy float64) {
	if s.ptrFocus == nil {
		return
	}
	s.record(Event{Kind: PointerMotion, Surface: s.ptrFocus, X: sx, Y: sy})
}

func (s *Seat) PointerClearFocus() {
	if s.ptrFocus == nil {
		return
	}
	s.record(Event{Kind: PointerLeave, Surface: s.ptrFocus})
	s.ptrFocus = nil
}

// PointerButton delivers a button to the pointer focus. A release ends any
// drag in progress.
func (s *Seat) PointerButton(time, button uint32, pressed bool) {
	if pressed {
		s.nextSerial++
		s.buttonSerial = s.nextSerial
	} else {
		s.buttonSerial = 0
		s.drag = nil
	}
	if s.ptrFocus == nil {
		return
	}
	s.record(Event{Kind: PointerButton, Surface: s.ptrFocus, Code: button, Pressed: pressed})
}

func (s *Seat) PointerAxis(ev wm.AxisEvent) {
	if s.ptrFocus == nil {
		return
	}
	s.record(Event{Kind: PointerAxis, Surface: s.ptrFocus, Axis: ev})
}

func (s *Seat) PointerFrame() {
	if s.ptrFocus == nil {
		return
	}
	s.record(Event{Kind: PointerFrame, Surface: s.ptrFocus})
}

func (s *Seat) SetCapabilities(caps wm.Capability) { s.caps = caps }

// Capabilities are the advertised seat capabilities.
func (s *Seat) Capabilities() wm.Capability { return s.caps }

func (s *Seat) SetSelection(source wm.DataSource, serial uint32) {
	s.selection = source
	s.selectionSerial = serial
}

// Selection is the current clipboard source.
func (s *Seat) Selection() wm.DataSource { return s.selection }

// ButtonSerial is the serial of the held button press, or 0.
func (s *Seat) ButtonSerial() uint32 { return s.buttonSerial }

// ValidatePointerGrabSerial accepts the serial of the held button when the
// pointer is over origin's tree.
func (s *Seat) ValidatePointerGrabSerial(origin view.Surface, serial uint32) bool {
	if serial == 0 || serial != s.buttonSerial || s.ptrFocus == nil || origin == nil {
		return false
	}
	return s.ptrFocus.Root() == origin.Root()
}

func (s *Seat) StartPointerDrag(d wm.Drag, serial uint32) { s.drag = d }

func (s *Seat) Drag() wm.Drag { return s.drag }

// Events returns every delivery so far.
func (s *Seat) Events() []Event { return append([]Event(nil), s.events...) }

// EventsOf returns the deliveries of one kind.
func (s *Seat) EventsOf(kind EventKind) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the most recent delivery of kind.
func (s *Seat) Last(kind EventKind) (Event, bool) {
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Kind == kind {
			return s.events[i], true
		}
	}
	return Event{}, false
}

// ClearEvents forgets recorded deliveries.
func (s *Seat) ClearEvents() { s.events = nil }

func (s *Seat) record(e Event) { s.events = append(s.events, e) }
