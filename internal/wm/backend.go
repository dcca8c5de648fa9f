package wm

import (
	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/notify"
	"github.com/godalming123/tinytile/internal/view"
)

// Backend is the display server library: it owns the scene graph, the seat,
// the cursor and the client socket, and it delivers events to a Handler.
type Backend interface {
	Scene() Scene
	Seat() Seat
	Cursor() Cursor
	// Session may return nil when the backend is not running on a VT.
	Session() Session

	// AddSocket opens the client socket and returns its name.
	AddSocket() (string, error)
	// Start enumerates outputs and inputs. Events are delivered to h from
	// the goroutine that calls Run.
	Start(h Handler) error
	// Run serves events until Terminate is called.
	Run() error
	Terminate()
}

// Hit is the result of a scene hit test. View is the managed view owning the
// surface, and may be nil when the node belongs to no view.
type Hit struct {
	Surface view.Surface
	View    *view.View
	SX, SY  float64
}

// Scene is the rendering collaborator.
type Scene interface {
	// AddView creates the scene tree for v. A view with a parent gets its
	// tree nested in the parent's tree.
	AddView(v *view.View) view.Node
	RemoveView(v *view.View)
	// At returns the topmost client surface at layout coordinates.
	At(lx, ly float64) (Hit, bool)
	// Overlay is the layer notification bitmaps are attached to.
	Overlay() notify.Display
	AddDragIcon(icon DragIcon) view.Node
	RemoveDragIcon(icon DragIcon)
}

// Capability is a wl_seat capability bit.
type Capability uint32

const (
	CapPointer  Capability = 1
	CapKeyboard Capability = 2
)

// Client is a connected protocol client.
type Client interface {
	ID() uint32
}

// DataSource is a clipboard or drag-and-drop source offered by a client.
type DataSource interface {
	Destroy()
}

// DragIcon is the surface shown under the cursor during a drag. Offset is
// the icon surface's position relative to the cursor hotspot.
type DragIcon interface {
	Surface() view.Surface
	Offset() (int, int)
}

// Drag is a drag-and-drop operation.
type Drag interface {
	Source() DataSource
	// Icon may be nil.
	Icon() DragIcon
}

// Seat delivers input to clients and tracks which surfaces have focus.
type Seat interface {
	SetKeyboard(k KeyboardDevice)
	KeyboardFocus() view.Surface
	KeyboardEnter(s view.Surface, pressed []uint32, mods keys.Modifiers)
	KeyboardClearFocus()
	KeyboardKey(time, code uint32, pressed bool)
	KeyboardModifiers(mods keys.Modifiers)

	PointerFocus() view.Surface
	PointerFocusClient() Client
	PointerEnter(s view.Surface, sx, sy float64)
	PointerMotion(time uint32, sx, sy float64)
	PointerClearFocus()
	PointerButton(time, button uint32, pressed bool)
	PointerAxis(ev AxisEvent)
	PointerFrame()

	SetCapabilities(caps Capability)
	SetSelection(source DataSource, serial uint32)
	ValidatePointerGrabSerial(origin view.Surface, serial uint32) bool
	StartPointerDrag(d Drag, serial uint32)
	// Drag returns the drag in progress, or nil.
	Drag() Drag
}

// Cursor is the on-screen pointer. Movement is constrained to the output
// layout by the implementation.
type Cursor interface {
	Position() (x, y float64)
	Move(dev PointerDevice, dx, dy float64)
	// WarpAbsolute takes coordinates in 0..1 of the layout.
	WarpAbsolute(dev PointerDevice, x, y float64)
	SetImage(name string)
	SetSurface(s view.Surface, hotspotX, hotspotY int)
	AttachDevice(dev PointerDevice)
	// LoadTheme loads an xcursor theme for outputs of the given scale. An
	// empty theme is the default theme.
	LoadTheme(theme string, size int, scale float64) error
}

// Session switches virtual terminals.
type Session interface {
	ChangeVT(n int) error
}

// Launcher starts external commands.
type Launcher interface {
	Run(cmd string) error
}

// KeyboardDevice is a physical or virtual keyboard.
type KeyboardDevice interface {
	Name() string
	SetKeymap(km *keys.Keymap)
	SetRepeatInfo(rate, delay int32)
}

// PointerDevice is a mouse or touchpad.
type PointerDevice interface {
	Name() string
}

// Mode is an output video mode.
type Mode struct {
	Width, Height int
	Refresh       int // mHz
}

// OutputDevice is a monitor as reported by the backend.
type OutputDevice interface {
	Name() string
	// PreferredMode reports false for backends without modes.
	PreferredMode() (Mode, bool)
	SetMode(m Mode)
	Enable(enabled bool)
	Commit() error
	// Size is the current size in pixels.
	Size() (width, height int)
	Scale() float64
}

// DecorationMode is the xdg-decoration mode of a toplevel.
type DecorationMode int

const (
	DecorationClientSide DecorationMode = iota + 1
	DecorationServerSide
)

// Decoration is a toplevel's decoration object.
type Decoration interface {
	SetMode(m DecorationMode)
}
