// Package view models managed windows and the ordered registry that holds
// them while they are mapped.
package view

import "github.com/godalming123/tinytile/internal/geom"

// View is one managed top-level window.
//
// X and Y are the remembered position and Width and Height the remembered
// size. Maximize and fullscreen change only the scene node and the client's
// size so that these fields can restore the window afterwards. A child
// view's position is relative to its parent's tree.
type View struct {
	X, Y          int
	Width, Height int

	Toplevel Toplevel
	Node     Node

	parent *View
	// mapped children, least recently active first
	children []*View

	slot int
}

// New wraps a toplevel. The view is not in any registry until inserted.
func New(t Toplevel, node Node) *View {
	return &View{Toplevel: t, Node: node, slot: -1}
}

// Surface is the toplevel's surface.
func (v *View) Surface() Surface {
	return v.Toplevel.Surface()
}

// Title is the client supplied window title.
func (v *View) Title() string {
	return v.Toplevel.Title()
}

// Geometry is the toplevel's current window geometry.
func (v *View) Geometry() geom.Box {
	return v.Toplevel.Geometry()
}

// Parent returns the view this one is transient for.
func (v *View) Parent() *View { return v.parent }

// SetParent records the transient-for relation. It must be called before the
// view is attached.
func (v *View) SetParent(p *View) { v.parent = p }

// IsPopup reports whether the view has a parent.
func (v *View) IsPopup() bool { return v.parent != nil }

// Root walks the parent chain to the outermost view.
func (v *View) Root() *View {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Attach adds a mapped child to its parent's children index.
func (v *View) Attach() {
	if v.parent == nil {
		return
	}
	v.parent.removeChild(v)
	v.parent.children = append(v.parent.children, v)
}

// Detach removes the view from its parent's children index.
func (v *View) Detach() {
	if v.parent != nil {
		v.parent.removeChild(v)
	}
}

// Orphan drops the relation of every child that still points at v.
// Used when v is destroyed before its children.
func (v *View) Orphan() {
	for _, c := range v.children {
		c.parent = nil
	}
	v.children = nil
}

// Promote marks v as its parent's most recently active child.
func (v *View) Promote() {
	v.Attach()
}

// ActivePopup follows the most recently active child chain down from v and
// returns the deepest view. It returns v when v has no mapped children.
func (v *View) ActivePopup() *View {
	cur := v
	seen := map[*View]bool{cur: true}
	for len(cur.children) > 0 {
		next := cur.children[len(cur.children)-1]
		if seen[next] {
			break
		}
		seen[next] = true
		cur = next
	}
	return cur
}

// Children returns the mapped children, least recently active first.
func (v *View) Children() []*View {
	out := make([]*View, len(v.children))
	copy(out, v.children)
	return out
}

func (v *View) removeChild(c *View) {
	for i, e := range v.children {
		if e == c {
			v.children = append(v.children[:i], v.children[i+1:]...)
			return
		}
	}
}

// UsesWholeScreen reports whether the client is maximized or fullscreen.
func (v *View) UsesWholeScreen() bool {
	return v.Toplevel.Fullscreen() || v.Toplevel.Maximized()
}

// Move stores the new position and moves the scene node.
func (v *View) Move(x, y int) {
	v.X = x
	v.Y = y
	v.Node.SetPosition(x, y)
}

// Resize stores the new size and asks the client to use it.
func (v *View) Resize(width, height int) {
	v.Width = width
	v.Height = height
	v.Toplevel.SetSize(width, height)
}
