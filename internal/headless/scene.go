package headless

import (
	"image"

	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/notify"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

// Node is a scene tree. A view's node holds the nodes of its children, which
// are stacked above it.
type Node struct {
	scene    *Scene
	view     *view.View
	parent   *Node
	children []*Node
	x, y     int
}

var _ view.Node = (*Node)(nil)

func (n *Node) SetPosition(x, y int) { n.x, n.y = x, y }

// Position is relative to the parent node.
func (n *Node) Position() (int, int) { return n.x, n.y }

// Absolute is the node's position in layout coordinates.
func (n *Node) Absolute() (int, int) {
	x, y := n.x, n.y
	for p := n.parent; p != nil; p = p.parent {
		x += p.x
		y += p.y
	}
	return x, y
}

// RaiseToTop moves the node above its siblings.
func (n *Node) RaiseToTop() {
	siblings := n.scene.siblings(n)
	*siblings = remove(*siblings, n)
	*siblings = append(*siblings, n)
}

type stray struct {
	surface *Surface
	box     geom.Box
}

// Placement is a mapped view as it is currently shown.
type Placement struct {
	View *view.View
	// Box is the window geometry in layout coordinates.
	Box       geom.Box
	Activated bool
}

// Scene is the scene graph: view trees in stacking order, drag icons, and an
// overlay layer above everything.
type Scene struct {
	roots   []*Node
	nodes   map[*view.View]*Node
	icons   map[wm.DragIcon]*Node
	strays  []stray
	overlay *Overlay
}

var _ wm.Scene = (*Scene)(nil)

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		nodes:   make(map[*view.View]*Node),
		icons:   make(map[wm.DragIcon]*Node),
		overlay: &Overlay{},
	}
}

func (s *Scene) AddView(v *view.View) view.Node {
	n := &Node{scene: s, view: v}
	if p := v.Parent(); p != nil {
		if pn := s.nodes[p]; pn != nil {
			n.parent = pn
			pn.children = append(pn.children, n)
			s.nodes[v] = n
			return n
		}
	}
	s.roots = append(s.roots, n)
	s.nodes[v] = n
	return n
}

// RemoveView destroys v's tree along with any child trees still in it.
func (s *Scene) RemoveView(v *view.View) {
	n := s.nodes[v]
	if n == nil {
		return
	}
	siblings := s.siblings(n)
	*siblings = remove(*siblings, n)
	s.forget(n)
}

// NodeFor returns the node of v.
func (s *Scene) NodeFor(v *view.View) *Node { return s.nodes[v] }

// AddStray puts a surface that belongs to no view on top of the scene.
func (s *Scene) AddStray(surface *Surface, box geom.Box) {
	s.strays = append(s.strays, stray{surface: surface, box: box})
}

// At implements wm.Scene.
func (s *Scene) At(lx, ly float64) (wm.Hit, bool) {
	for i := len(s.strays) - 1; i >= 0; i-- {
		st := s.strays[i]
		if st.box.Contains(lx, ly) {
			return wm.Hit{
				Surface: st.surface,
				SX:      lx - float64(st.box.X),
				SY:      ly - float64(st.box.Y),
			}, true
		}
	}
	for i := len(s.roots) - 1; i >= 0; i-- {
		if hit, ok := s.hit(s.roots[i], lx, ly); ok {
			return hit, true
		}
	}
	return wm.Hit{}, false
}

func (s *Scene) hit(n *Node, lx, ly float64) (wm.Hit, bool) {
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit, ok := s.hit(n.children[i], lx, ly); ok {
			return hit, true
		}
	}
	if !mapped(n.view) {
		return wm.Hit{}, false
	}
	ax, ay := n.Absolute()
	sx, sy := lx-float64(ax), ly-float64(ay)

	if t, ok := n.view.Toplevel.(*Toplevel); ok {
		for i := len(t.subsurfaces) - 1; i >= 0; i-- {
			sub := t.subsurfaces[i]
			if sub.box.Contains(sx, sy) {
				return wm.Hit{
					Surface: sub.surface,
					View:    n.view,
					SX:      sx - float64(sub.box.X),
					SY:      sy - float64(sub.box.Y),
				}, true
			}
		}
	}

	geo := n.view.Geometry()
	extent := geom.Box{Width: geo.X + geo.Width, Height: geo.Y + geo.Height}
	if !extent.Contains(sx, sy) {
		return wm.Hit{}, false
	}
	return wm.Hit{Surface: n.view.Surface(), View: n.view, SX: sx, SY: sy}, true
}

// Stack returns the mapped views from bottom to top.
func (s *Scene) Stack() []Placement {
	var out []Placement
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if mapped(n.view) {
				ax, ay := n.Absolute()
				geo := n.view.Geometry()
				p := Placement{
					View: n.view,
					Box:  geom.Box{X: ax + geo.X, Y: ay + geo.Y, Width: geo.Width, Height: geo.Height},
				}
				if t, ok := n.view.Toplevel.(*Toplevel); ok {
					p.Activated = t.Activated()
				}
				out = append(out, p)
			}
			walk(n.children)
		}
	}
	walk(s.roots)
	return out
}

func (s *Scene) Overlay() notify.Display { return s.overlay }

// OverlayLayer returns the concrete overlay.
func (s *Scene) OverlayLayer() *Overlay { return s.overlay }

func (s *Scene) AddDragIcon(icon wm.DragIcon) view.Node {
	n := &Node{scene: s}
	s.icons[icon] = n
	return n
}

func (s *Scene) RemoveDragIcon(icon wm.DragIcon) {
	delete(s.icons, icon)
}

// DragIconNode returns the node showing icon, or nil.
func (s *Scene) DragIconNode(icon wm.DragIcon) *Node { return s.icons[icon] }

func (s *Scene) siblings(n *Node) *[]*Node {
	if n.parent != nil {
		return &n.parent.children
	}
	return &s.roots
}

func (s *Scene) forget(n *Node) {
	for _, c := range n.children {
		s.forget(c)
	}
	if n.view != nil && s.nodes[n.view] == n {
		delete(s.nodes, n.view)
	}
}

func mapped(v *view.View) bool {
	if v == nil {
		return false
	}
	if m, ok := v.Toplevel.(interface{ Mapped() bool }); ok {
		return m.Mapped()
	}
	return true
}

func remove(nodes []*Node, n *Node) []*Node {
	for i, e := range nodes {
		if e == n {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}

// Overlay is the notification layer. It holds at most one bitmap.
type Overlay struct {
	img      image.Image
	box      geom.Box
	attaches int
}

func (o *Overlay) Attach(img image.Image, box geom.Box) error {
	o.img = img
	o.box = box
	o.attaches++
	return nil
}

func (o *Overlay) Detach() {
	o.img = nil
	o.box = geom.Box{}
}

// Image is the attached bitmap, or nil.
func (o *Overlay) Image() image.Image { return o.img }

func (o *Overlay) Box() geom.Box { return o.box }

// Attaches counts Attach calls.
func (o *Overlay) Attaches() int { return o.attaches }
