package view

import "github.com/godalming123/tinytile/internal/geom"

// Surface identifies a client surface. Root returns the surface at the root
// of its subsurface tree, which is the surface a toplevel is keyed by.
type Surface interface {
	Root() Surface
}

// Toplevel is the protocol side of a managed window. Implementations come
// from the windowing protocol collaborator.
type Toplevel interface {
	Surface() Surface
	// Parent is the toplevel this one is transient for, or nil.
	Parent() Toplevel
	Title() string
	// Geometry is the window geometry inside the surface; X and Y are the
	// offset of the visible area from the surface origin.
	Geometry() geom.Box

	Maximized() bool
	Fullscreen() bool
	RequestedMaximized() bool
	RequestedFullscreen() bool

	SetActivated(activated bool)
	SetSize(width, height int)
	SetMaximized(maximized bool)
	SetFullscreen(fullscreen bool)
	SetTiled(edges geom.Edges)
	ScheduleConfigure()
	SendClose()
}

// Node is the view's tree in the scene graph.
type Node interface {
	SetPosition(x, y int)
	RaiseToTop()
}
