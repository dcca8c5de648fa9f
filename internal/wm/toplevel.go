package wm

import (
	"github.com/godalming123/tinytile/internal/cursor"
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
)

// NewToplevel starts managing t. The view is not shown until it maps.
func (s *Server) NewToplevel(t view.Toplevel) {
	if _, ok := s.toplevel[t]; ok {
		return
	}
	v := view.New(t, nil)
	if p := t.Parent(); p != nil {
		v.SetParent(s.toplevel[p])
	}
	v.Node = s.scene.AddView(v)
	s.toplevel[t] = v
	s.surfaces[t.Surface()] = v
	s.log.Debug("new toplevel", "title", t.Title(), "child", v.IsPopup())
}

// MapToplevel places the view, inserts it after the focused view and
// focuses it.
func (s *Server) MapToplevel(t view.Toplevel) {
	v := s.toplevel[t]
	if v == nil {
		s.log.Warn("map of an unknown toplevel", "title", t.Title())
		return
	}
	if s.views.Contains(v) {
		return
	}

	geo := v.Geometry()
	if p := v.Parent(); p != nil {
		// relative to the parent's tree
		pg := p.Geometry()
		v.X = (pg.Width - geo.Width) / 2
		v.Y = (pg.Height - geo.Height) / 2
	} else {
		area := geom.Box{}
		cx, cy := s.pointer.Position()
		if o := s.layout.At(cx, cy); o != nil {
			area = o.Box()
		} else if o := s.layout.Primary(); o != nil {
			area = o.Box()
		}
		v.X = area.X + (area.Width-geo.Width)/2
		v.Y = area.Y + (area.Height-geo.Height)/2
	}
	v.Width, v.Height = geo.Width, geo.Height

	if s.cfg.Behaviour.MakeWindowsTile {
		t.SetTiled(geom.EdgeAll)
	}
	v.Move(v.X, v.Y)
	v.Attach()

	s.views.Insert(v, s.focused)
	s.Focus(v)
}

// UnmapToplevel removes the view from the registry. When it was focused and
// other views remain, the previous view in cycle order takes focus.
func (s *Server) UnmapToplevel(t view.Toplevel) {
	v := s.toplevel[t]
	if v == nil {
		return
	}
	if s.grab.Grabbed() == v {
		s.grab.Reset()
	}
	v.Detach()
	if !s.views.Contains(v) {
		return
	}

	if s.focused == v && s.views.Count() > 1 {
		// looked up before removal so that v is still the reference point
		next := s.views.Previous(v, true)
		s.views.Remove(v)
		s.focused = nil
		s.Focus(next)
		return
	}

	s.views.Remove(v)
	if s.focused == v {
		s.clearFocus()
	}
	s.processMotion(0)
}

// DestroyToplevel forgets t.
func (s *Server) DestroyToplevel(t view.Toplevel) {
	v := s.toplevel[t]
	if v == nil {
		return
	}
	if s.views.Contains(v) {
		s.UnmapToplevel(t)
	}
	if s.grab.Grabbed() == v {
		s.grab.Reset()
	}
	v.Detach()

	// the scene drops the child trees with v's tree, so children become
	// top-level trees at the same layout position
	orphans := s.childrenOf(v)
	ox, oy := layoutOrigin(v)
	v.Orphan()
	for _, c := range orphans {
		c.SetParent(nil)
	}
	s.scene.RemoveView(v)
	delete(s.toplevel, t)
	if s.surfaces[t.Surface()] == v {
		delete(s.surfaces, t.Surface())
	}
	for _, c := range orphans {
		s.rehome(c, ox+c.X, oy+c.Y)
	}
}

// childrenOf returns the views transient for v, mapped or not, in registry
// order followed by the unmapped ones.
func (s *Server) childrenOf(v *view.View) []*view.View {
	var out []*view.View
	for _, c := range s.views.All() {
		if c.Parent() == v {
			out = append(out, c)
		}
	}
	for _, c := range s.toplevel {
		if c.Parent() == v && !s.views.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// rehome gives v a new scene tree at layout position x, y and rebuilds the
// trees of its descendants inside it.
func (s *Server) rehome(v *view.View, x, y int) {
	v.Node = s.scene.AddView(v)
	v.Move(x, y)
	for _, c := range s.childrenOf(v) {
		s.rehome(c, c.X, c.Y)
	}
}

// layoutOrigin sums the positions along v's parent chain.
func layoutOrigin(v *view.View) (int, int) {
	x, y := 0, 0
	for c := v; c != nil; c = c.Parent() {
		x += c.X
		y += c.Y
	}
	return x, y
}

// RequestMove starts an interactive move, typically from a client-side
// titlebar.
func (s *Server) RequestMove(t view.Toplevel) {
	s.beginInteractive(s.toplevel[t], cursor.Move, geom.EdgeNone)
}

// RequestResize starts an interactive resize from the given edges.
func (s *Server) RequestResize(t view.Toplevel, edges geom.Edges) {
	s.beginInteractive(s.toplevel[t], cursor.Resize, edges)
}

// RequestMaximize applies the client's requested maximized state. A
// configure is scheduled whether or not the request was honoured.
func (s *Server) RequestMaximize(t view.Toplevel) {
	v := s.toplevel[t]
	if v == nil {
		return
	}
	want := t.RequestedMaximized()
	if (want && s.maximize(v)) || (!want && s.unmaximize(v)) {
		t.SetMaximized(want)
	}
	t.ScheduleConfigure()
}

// RequestFullscreen applies the client's requested fullscreen state.
// Leaving fullscreen also restores the remembered geometry unless the view
// is still maximized.
func (s *Server) RequestFullscreen(t view.Toplevel) {
	v := s.toplevel[t]
	if v == nil {
		return
	}
	want := t.RequestedFullscreen()
	if (want && s.maximize(v)) || !want {
		t.SetFullscreen(want)
	}
	if !want && !t.Maximized() {
		s.unmaximize(v)
	}
	t.ScheduleConfigure()
}

// NewDecoration switches the toplevel to server-side decorations when
// client-side ones are disabled.
func (s *Server) NewDecoration(d Decoration) {
	if s.cfg.Behaviour.DisableClientSideDecorations {
		d.SetMode(DecorationServerSide)
	}
}

// beginInteractive grabs v for a move or resize. Only the client that holds
// pointer focus may start one.
func (s *Server) beginInteractive(v *view.View, mode cursor.Mode, edges geom.Edges) {
	if v == nil {
		return
	}
	focus := s.seat.PointerFocus()
	if focus == nil || v.Surface() != focus.Root() {
		s.log.Debug("denied interactive request from a client without pointer focus", "title", v.Title())
		return
	}

	if mode == cursor.Move && v.Parent() != nil {
		v = v.Parent()
	}
	cx, cy := s.pointer.Position()
	switch mode {
	case cursor.Move:
		s.grab.BeginMove(v, cx, cy)
	case cursor.Resize:
		s.grab.BeginResize(v, cx, cy, edges)
	}
}

// maximize fills the output under the view's origin with it. The
// remembered position and size are left alone so unmaximize can restore
// them.
func (s *Server) maximize(v *view.View) bool {
	o := s.layout.At(float64(v.X), float64(v.Y))
	if o == nil {
		return false
	}
	v.Node.SetPosition(o.X, o.Y)
	v.Toplevel.SetSize(o.Width, o.Height)
	return true
}

func (s *Server) unmaximize(v *view.View) bool {
	v.Node.SetPosition(v.X, v.Y)
	v.Toplevel.SetSize(v.Width, v.Height)
	return true
}

func (s *Server) toggleMaximize(v *view.View) {
	t := v.Toplevel
	if !v.UsesWholeScreen() {
		s.maximize(v)
		t.SetMaximized(true)
	} else {
		s.unmaximize(v)
		t.SetFullscreen(false)
		t.SetMaximized(false)
	}
	t.ScheduleConfigure()
}
