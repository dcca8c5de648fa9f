package headless

import (
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
)

// State is what the compositor has configured a toplevel with.
type State struct {
	Activated  bool
	Maximized  bool
	Fullscreen bool
	Tiled      geom.Edges
	Width      int
	Height     int
}

// Toplevel is an xdg toplevel whose client acknowledges every configure
// immediately and resizes to whatever size it is given.
type Toplevel struct {
	surface *Surface
	parent  *Toplevel
	title   string
	geo     geom.Box
	mapped  bool

	state      State
	configures int

	requestedMaximized  bool
	requestedFullscreen bool
	closeRequested      bool

	subsurfaces []subsurface
}

var _ view.Toplevel = (*Toplevel)(nil)

// NewToplevel returns an unmapped toplevel of the given window size.
func NewToplevel(c *Client, title string, width, height int) *Toplevel {
	return &Toplevel{
		surface: &Surface{name: title, client: c},
		title:   title,
		geo:     geom.Box{Width: width, Height: height},
	}
}

func (t *Toplevel) Surface() view.Surface { return t.surface }

// Parent implements view.Toplevel.
func (t *Toplevel) Parent() view.Toplevel {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// SetParent makes t transient for p. It takes effect for views created
// afterwards.
func (t *Toplevel) SetParent(p *Toplevel) { t.parent = p }

func (t *Toplevel) Title() string          { return t.title }
func (t *Toplevel) SetTitle(title string)  { t.title = title }
func (t *Toplevel) Geometry() geom.Box     { return t.geo }
func (t *Toplevel) SetGeometry(g geom.Box) { t.geo = g }

// HeadlessSurface returns the concrete surface.
func (t *Toplevel) HeadlessSurface() *Surface { return t.surface }

func (t *Toplevel) Mapped() bool { return t.mapped }

func (t *Toplevel) Maximized() bool  { return t.state.Maximized }
func (t *Toplevel) Fullscreen() bool { return t.state.Fullscreen }
func (t *Toplevel) Activated() bool  { return t.state.Activated }

// State returns the acknowledged state.
func (t *Toplevel) State() State { return t.state }

// Configures counts configure events sent to the client.
func (t *Toplevel) Configures() int { return t.configures }

func (t *Toplevel) CloseRequested() bool { return t.closeRequested }

func (t *Toplevel) RequestedMaximized() bool  { return t.requestedMaximized }
func (t *Toplevel) RequestedFullscreen() bool { return t.requestedFullscreen }

func (t *Toplevel) SetActivated(activated bool) {
	t.state.Activated = activated
	t.configures++
}

// SetSize resizes the window geometry, as a cooperative client would.
func (t *Toplevel) SetSize(width, height int) {
	t.state.Width, t.state.Height = width, height
	if width > 0 {
		t.geo.Width = width
	}
	if height > 0 {
		t.geo.Height = height
	}
	t.configures++
}

func (t *Toplevel) SetMaximized(maximized bool) {
	t.state.Maximized = maximized
	t.configures++
}

func (t *Toplevel) SetFullscreen(fullscreen bool) {
	t.state.Fullscreen = fullscreen
	t.configures++
}

func (t *Toplevel) SetTiled(edges geom.Edges) {
	t.state.Tiled = edges
	t.configures++
}

func (t *Toplevel) ScheduleConfigure() { t.configures++ }

func (t *Toplevel) SendClose() { t.closeRequested = true }

type subsurface struct {
	surface *Surface
	box     geom.Box
}

// AddSubsurface places a subsurface at box, relative to the toplevel's
// surface origin. Subsurfaces are hit before the main surface.
func (t *Toplevel) AddSubsurface(name string, box geom.Box) *Surface {
	s := t.surface.NewSubsurface(name)
	t.subsurfaces = append(t.subsurfaces, subsurface{surface: s, box: box})
	return s
}
