package headless

import (
	"errors"

	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

// Keyboard is a keyboard device.
type Keyboard struct {
	name        string
	keymap      *keys.Keymap
	repeatRate  int32
	repeatDelay int32
}

var _ wm.KeyboardDevice = (*Keyboard)(nil)

func NewKeyboard(name string) *Keyboard { return &Keyboard{name: name} }

func (k *Keyboard) Name() string                    { return k.name }
func (k *Keyboard) SetKeymap(km *keys.Keymap)       { k.keymap = km }
func (k *Keyboard) SetRepeatInfo(rate, delay int32) { k.repeatRate, k.repeatDelay = rate, delay }

// Keymap is the keymap the compositor assigned.
func (k *Keyboard) Keymap() *keys.Keymap { return k.keymap }

// RepeatInfo is the configured repeat rate and delay.
func (k *Keyboard) RepeatInfo() (rate, delay int32) { return k.repeatRate, k.repeatDelay }

// Pointer is a pointer device.
type Pointer struct {
	name string
}

func NewPointer(name string) *Pointer { return &Pointer{name: name} }

func (p *Pointer) Name() string { return p.name }

// Output is a monitor. A new output offers a single preferred mode of its
// size.
type Output struct {
	name    string
	modes   []wm.Mode
	mode    wm.Mode
	scale   float64
	enabled bool
	commits int

	// CommitErr is returned by Commit when set.
	CommitErr error
}

var _ wm.OutputDevice = (*Output)(nil)

// NewOutput returns an output with one 60Hz mode of width by height pixels.
func NewOutput(name string, width, height int) *Output {
	m := wm.Mode{Width: width, Height: height, Refresh: 60000}
	return &Output{name: name, modes: []wm.Mode{m}, mode: m, scale: 1}
}

// WithoutModes drops the output's modes, as nested backends report.
func (o *Output) WithoutModes() *Output {
	o.modes = nil
	return o
}

// WithScale sets the output scale.
func (o *Output) WithScale(scale float64) *Output {
	o.scale = scale
	return o
}

func (o *Output) Name() string { return o.name }

func (o *Output) PreferredMode() (wm.Mode, bool) {
	if len(o.modes) == 0 {
		return wm.Mode{}, false
	}
	return o.modes[0], true
}

func (o *Output) SetMode(m wm.Mode)   { o.mode = m }
func (o *Output) Enable(enabled bool) { o.enabled = enabled }
func (o *Output) Enabled() bool       { return o.enabled }
func (o *Output) Commits() int        { return o.commits }
func (o *Output) Scale() float64      { return o.scale }
func (o *Output) Size() (int, int)    { return o.mode.Width, o.mode.Height }

func (o *Output) Commit() error {
	if o.CommitErr != nil {
		return o.CommitErr
	}
	o.commits++
	return nil
}

// ErrNoSeatSession is returned by a session that cannot switch terminals.
var ErrNoSeatSession = errors.New("session cannot change virtual terminal")

// Session is a logind-style session on virtual terminal VT.
type Session struct {
	VT int
	// Fail makes ChangeVT return ErrNoSeatSession.
	Fail bool
}

var _ wm.Session = (*Session)(nil)

func (s *Session) ChangeVT(n int) error {
	if s.Fail {
		return ErrNoSeatSession
	}
	s.VT = n
	return nil
}

// Launcher records commands instead of running them.
type Launcher struct {
	Commands []string
	Err      error
}

var _ wm.Launcher = (*Launcher)(nil)

func (l *Launcher) Run(cmd string) error {
	if l.Err != nil {
		return l.Err
	}
	l.Commands = append(l.Commands, cmd)
	return nil
}

// Decoration is a toplevel's xdg-decoration object.
type Decoration struct {
	Mode wm.DecorationMode
}

func (d *Decoration) SetMode(m wm.DecorationMode) { d.Mode = m }

// DataSource is a client's clipboard or drag source.
type DataSource struct {
	Destroyed bool
}

func (d *DataSource) Destroy() { d.Destroyed = true }

// DragIcon is the surface dragged under the cursor.
type DragIcon struct {
	surface *Surface
	dx, dy  int
}

// NewDragIcon returns an icon whose surface sits at dx, dy from the hotspot.
func NewDragIcon(c *Client, dx, dy int) *DragIcon {
	return &DragIcon{surface: &Surface{name: "drag-icon", client: c}, dx: dx, dy: dy}
}

func (i *DragIcon) Surface() view.Surface { return i.surface }
func (i *DragIcon) Offset() (int, int)    { return i.dx, i.dy }

// Drag is a drag-and-drop operation.
type Drag struct {
	source *DataSource
	icon   *DragIcon
}

func NewDrag(source *DataSource, icon *DragIcon) *Drag {
	return &Drag{source: source, icon: icon}
}

func (d *Drag) Source() wm.DataSource { return d.source }

// Icon returns nil when the drag has no icon.
func (d *Drag) Icon() wm.DragIcon {
	if d.icon == nil {
		return nil
	}
	return d.icon
}
