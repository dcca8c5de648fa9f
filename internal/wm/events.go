package wm

import (
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
)

// KeyEvent is a raw key event; Code is an evdev keycode.
type KeyEvent struct {
	Time    uint32
	Code    uint32
	Pressed bool
}

// MotionEvent is relative pointer motion.
type MotionEvent struct {
	Device PointerDevice
	Time   uint32
	DX, DY float64
}

// AbsoluteMotionEvent is pointer motion in 0..1 of the layout.
type AbsoluteMotionEvent struct {
	Device PointerDevice
	Time   uint32
	X, Y   float64
}

// ButtonEvent is a pointer button press or release; Button is an evdev
// BTN_* code.
type ButtonEvent struct {
	Device  PointerDevice
	Time    uint32
	Button  uint32
	Pressed bool
}

// AxisOrientation is the scroll direction of an axis event.
type AxisOrientation int

const (
	AxisVertical AxisOrientation = iota
	AxisHorizontal
)

// AxisEvent is a scroll event.
type AxisEvent struct {
	Time          uint32
	Orientation   AxisOrientation
	Delta         float64
	DeltaDiscrete int32
	Source        uint32
}

// SetCursorRequest asks for a client-provided cursor image.
type SetCursorRequest struct {
	Client             Client
	Surface            view.Surface
	HotspotX, HotspotY int
}

// SelectionRequest asks to set the clipboard selection.
type SelectionRequest struct {
	Source DataSource
	Serial uint32
}

// StartDragRequest asks to start a drag-and-drop grab.
type StartDragRequest struct {
	Drag   Drag
	Origin view.Surface
	Serial uint32
}

// OutputHandler receives monitor hotplug events.
type OutputHandler interface {
	NewOutput(dev OutputDevice)
	OutputDestroyed(dev OutputDevice)
}

// InputHandler receives input device hotplug events.
type InputHandler interface {
	NewKeyboard(dev KeyboardDevice)
	NewVirtualKeyboard(dev KeyboardDevice)
	NewPointer(dev PointerDevice)
	KeyboardDestroyed(dev KeyboardDevice)
}

// KeyboardHandler receives key events.
type KeyboardHandler interface {
	Key(dev KeyboardDevice, ev KeyEvent)
}

// PointerHandler receives the cursor's aggregated pointer events.
type PointerHandler interface {
	PointerMotion(ev MotionEvent)
	PointerMotionAbsolute(ev AbsoluteMotionEvent)
	PointerButton(ev ButtonEvent)
	PointerAxis(ev AxisEvent)
	PointerFrame()
}

// ToplevelHandler receives xdg toplevel lifecycle events and requests.
type ToplevelHandler interface {
	NewToplevel(t view.Toplevel)
	MapToplevel(t view.Toplevel)
	UnmapToplevel(t view.Toplevel)
	DestroyToplevel(t view.Toplevel)
	RequestMove(t view.Toplevel)
	RequestResize(t view.Toplevel, edges geom.Edges)
	RequestMaximize(t view.Toplevel)
	RequestFullscreen(t view.Toplevel)
}

// SeatHandler receives seat requests from clients.
type SeatHandler interface {
	RequestSetCursor(req SetCursorRequest)
	RequestSetSelection(req SelectionRequest)
	RequestStartDrag(req StartDragRequest)
	StartDrag(d Drag)
	DragIconDestroyed(icon DragIcon)
}

// DecorationHandler receives new xdg-decoration objects.
type DecorationHandler interface {
	NewDecoration(d Decoration)
}

// Handler is every event kind a Backend delivers.
type Handler interface {
	OutputHandler
	InputHandler
	KeyboardHandler
	PointerHandler
	ToplevelHandler
	SeatHandler
	DecorationHandler
}
