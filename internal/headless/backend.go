package headless

import (
	"errors"
	"sync"

	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

// ErrNotStarted is returned by Run before Start.
var ErrNotStarted = errors.New("backend not started")

// Backend is a display server with no real clients or hardware. Devices
// added before Start are announced by Start; after that they are announced
// immediately. The helper methods stand in for clients and devices and
// deliver their events synchronously.
type Backend struct {
	scene   *Scene
	seat    *Seat
	cursor  *Cursor
	session *Session

	// SocketName is returned by AddSocket.
	SocketName string
	// SocketErr and StartErr make AddSocket and Start fail.
	SocketErr error
	StartErr  error

	handler   wm.Handler
	outputs   []*Output
	keyboards []*Keyboard
	pointers  []*Pointer

	clients uint32
	time    uint32

	done chan struct{}
	once sync.Once
}

var _ wm.Backend = (*Backend)(nil)

// New returns a backend with no devices and no session.
func New() *Backend {
	return &Backend{
		scene:      NewScene(),
		seat:       NewSeat(),
		cursor:     NewCursor(),
		SocketName: "wayland-1",
		done:       make(chan struct{}),
	}
}

func (b *Backend) Scene() wm.Scene   { return b.scene }
func (b *Backend) Seat() wm.Seat     { return b.seat }
func (b *Backend) Cursor() wm.Cursor { return b.cursor }

// Session returns nil when no session was set.
func (b *Backend) Session() wm.Session {
	if b.session == nil {
		return nil
	}
	return b.session
}

// SetSession runs the backend on a VT session.
func (b *Backend) SetSession(s *Session) { b.session = s }

// HeadlessScene, HeadlessSeat and HeadlessCursor return the concrete
// collaborators for inspection.
func (b *Backend) HeadlessScene() *Scene   { return b.scene }
func (b *Backend) HeadlessSeat() *Seat     { return b.seat }
func (b *Backend) HeadlessCursor() *Cursor { return b.cursor }

func (b *Backend) AddSocket() (string, error) {
	if b.SocketErr != nil {
		return "", b.SocketErr
	}
	return b.SocketName, nil
}

// Start announces the devices added so far.
func (b *Backend) Start(h wm.Handler) error {
	if b.StartErr != nil {
		return b.StartErr
	}
	b.handler = h
	for _, o := range b.outputs {
		h.NewOutput(o)
	}
	for _, k := range b.keyboards {
		h.NewKeyboard(k)
	}
	for _, p := range b.pointers {
		h.NewPointer(p)
	}
	return nil
}

// Started reports whether Start succeeded.
func (b *Backend) Started() bool { return b.handler != nil }

// Run blocks until Terminate.
func (b *Backend) Run() error {
	if b.handler == nil {
		return ErrNotStarted
	}
	<-b.done
	return nil
}

func (b *Backend) Terminate() {
	b.once.Do(func() { close(b.done) })
}

// Terminated reports whether Terminate was called.
func (b *Backend) Terminated() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// AddOutput plugs in a monitor.
func (b *Backend) AddOutput(o *Output) {
	b.outputs = append(b.outputs, o)
	if b.handler != nil {
		b.handler.NewOutput(o)
	}
}

// RemoveOutput unplugs a monitor.
func (b *Backend) RemoveOutput(o *Output) {
	for i, e := range b.outputs {
		if e == o {
			b.outputs = append(b.outputs[:i], b.outputs[i+1:]...)
			if b.handler != nil {
				b.handler.OutputDestroyed(o)
			}
			return
		}
	}
}

// AddKeyboard plugs in a keyboard.
func (b *Backend) AddKeyboard(k *Keyboard) {
	b.keyboards = append(b.keyboards, k)
	if b.handler != nil {
		b.handler.NewKeyboard(k)
	}
}

// AddVirtualKeyboard creates a keyboard through the virtual keyboard
// protocol.
func (b *Backend) AddVirtualKeyboard(k *Keyboard) {
	b.keyboards = append(b.keyboards, k)
	if b.handler != nil {
		b.handler.NewVirtualKeyboard(k)
	}
}

// RemoveKeyboard unplugs a keyboard.
func (b *Backend) RemoveKeyboard(k *Keyboard) {
	for i, e := range b.keyboards {
		if e == k {
			b.keyboards = append(b.keyboards[:i], b.keyboards[i+1:]...)
			if b.handler != nil {
				b.handler.KeyboardDestroyed(k)
			}
			return
		}
	}
}

// AddPointer plugs in a pointer.
func (b *Backend) AddPointer(p *Pointer) {
	b.pointers = append(b.pointers, p)
	if b.handler != nil {
		b.handler.NewPointer(p)
	}
}

// Connect returns a new client.
func (b *Backend) Connect() *Client {
	b.clients++
	return &Client{id: b.clients}
}

// CreateToplevel creates an unmapped toplevel, transient for parent when it
// is not nil.
func (b *Backend) CreateToplevel(c *Client, title string, width, height int, parent *Toplevel) *Toplevel {
	t := NewToplevel(c, title, width, height)
	t.parent = parent
	b.handler.NewToplevel(t)
	return t
}

// Open creates and maps a toplevel.
func (b *Backend) Open(c *Client, title string, width, height int) *Toplevel {
	t := b.CreateToplevel(c, title, width, height, nil)
	b.Map(t)
	return t
}

func (b *Backend) Map(t *Toplevel) {
	t.mapped = true
	b.handler.MapToplevel(t)
}

func (b *Backend) Unmap(t *Toplevel) {
	t.mapped = false
	b.handler.UnmapToplevel(t)
}

// Destroy unmaps t if needed and destroys it.
func (b *Backend) Destroy(t *Toplevel) {
	if t.mapped {
		b.Unmap(t)
	}
	b.handler.DestroyToplevel(t)
}

// Key sends a key press or release from k.
func (b *Backend) Key(k *Keyboard, code uint32, pressed bool) {
	b.handler.Key(k, wm.KeyEvent{Time: b.tick(), Code: code, Pressed: pressed})
}

// Press presses each code in order.
func (b *Backend) Press(k *Keyboard, codes ...uint32) {
	for _, c := range codes {
		b.Key(k, c, true)
	}
}

// Release releases each code in order.
func (b *Backend) Release(k *Keyboard, codes ...uint32) {
	for _, c := range codes {
		b.Key(k, c, false)
	}
}

// Chord presses codes in order and releases them in reverse.
func (b *Backend) Chord(k *Keyboard, codes ...uint32) {
	b.Press(k, codes...)
	for i := len(codes) - 1; i >= 0; i-- {
		b.Key(k, codes[i], false)
	}
}

// MoveTo moves the cursor to layout coordinates with relative motion.
func (b *Backend) MoveTo(p *Pointer, x, y float64) {
	cx, cy := b.cursor.Position()
	b.handler.PointerMotion(wm.MotionEvent{Device: p, Time: b.tick(), DX: x - cx, DY: y - cy})
	b.handler.PointerFrame()
}

// MoveAbsolute moves the cursor to x, y in 0..1 of the layout.
func (b *Backend) MoveAbsolute(p *Pointer, x, y float64) {
	b.handler.PointerMotionAbsolute(wm.AbsoluteMotionEvent{Device: p, Time: b.tick(), X: x, Y: y})
	b.handler.PointerFrame()
}

// Button presses or releases a BTN_* code.
func (b *Backend) Button(p *Pointer, button uint32, pressed bool) {
	b.handler.PointerButton(wm.ButtonEvent{Device: p, Time: b.tick(), Button: button, Pressed: pressed})
	b.handler.PointerFrame()
}

// Click presses and releases button.
func (b *Backend) Click(p *Pointer, button uint32) {
	b.Button(p, button, true)
	b.Button(p, button, false)
}

// Scroll sends a vertical wheel step.
func (b *Backend) Scroll(p *Pointer, delta float64) {
	b.handler.PointerAxis(wm.AxisEvent{Time: b.tick(), Orientation: wm.AxisVertical, Delta: delta, DeltaDiscrete: int32(delta / 15)})
	b.handler.PointerFrame()
}

// RequestMove is a client asking to be moved, as from a titlebar drag.
func (b *Backend) RequestMove(t *Toplevel) { b.handler.RequestMove(t) }

// RequestResize is a client asking to be resized from edges.
func (b *Backend) RequestResize(t *Toplevel, edges geom.Edges) {
	b.handler.RequestResize(t, edges)
}

// RequestMaximize is a client setting or unsetting maximized.
func (b *Backend) RequestMaximize(t *Toplevel, maximized bool) {
	t.requestedMaximized = maximized
	b.handler.RequestMaximize(t)
}

// RequestFullscreen is a client setting or unsetting fullscreen.
func (b *Backend) RequestFullscreen(t *Toplevel, fullscreen bool) {
	t.requestedFullscreen = fullscreen
	b.handler.RequestFullscreen(t)
}

// NewDecoration creates a decoration object for a toplevel.
func (b *Backend) NewDecoration() *Decoration {
	d := &Decoration{Mode: wm.DecorationClientSide}
	b.handler.NewDecoration(d)
	return d
}

// SetCursor is a client asking to show surface as the cursor.
func (b *Backend) SetCursor(c *Client, surface view.Surface, hotX, hotY int) {
	b.handler.RequestSetCursor(wm.SetCursorRequest{Client: c, Surface: surface, HotspotX: hotX, HotspotY: hotY})
}

// SetSelection is a client offering the clipboard.
func (b *Backend) SetSelection(source *DataSource, serial uint32) {
	b.handler.RequestSetSelection(wm.SelectionRequest{Source: source, Serial: serial})
}

// StartDrag is a client asking to start a drag from origin. The drag is
// started on the seat when the compositor accepts it.
func (b *Backend) StartDrag(d *Drag, origin view.Surface, serial uint32) {
	b.handler.RequestStartDrag(wm.StartDragRequest{Drag: d, Origin: origin, Serial: serial})
	if b.seat.Drag() == wm.Drag(d) {
		b.handler.StartDrag(d)
	}
}

// DestroyDragIcon destroys an icon surface.
func (b *Backend) DestroyDragIcon(icon *DragIcon) {
	b.handler.DragIconDestroyed(icon)
}

func (b *Backend) tick() uint32 {
	b.time += 10
	return b.time
}
