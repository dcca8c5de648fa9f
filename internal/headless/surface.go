// Package headless is an in-memory display server. It implements every
// collaborator wm.Server needs and lets callers play the part of clients
// and input devices.
package headless

import (
	"fmt"

	"github.com/godalming123/tinytile/internal/view"
)

// Client is a connected client.
type Client struct {
	id uint32
}

// ID implements wm.Client.
func (c *Client) ID() uint32 { return c.id }

// NewSurface returns a bare surface owned by c, such as a cursor image.
func (c *Client) NewSurface(name string) *Surface {
	return &Surface{name: name, client: c}
}

// Surface is a wl_surface. A subsurface has a parent and is part of its
// parent's tree.
type Surface struct {
	name   string
	client *Client
	parent *Surface
}

// NewSubsurface returns a surface attached below s.
func (s *Surface) NewSubsurface(name string) *Surface {
	return &Surface{name: name, client: s.client, parent: s}
}

// Root implements view.Surface.
func (s *Surface) Root() view.Surface {
	r := s
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Client returns the owning client.
func (s *Surface) Client() *Client { return s.client }

func (s *Surface) String() string {
	return fmt.Sprintf("surface(%s)", s.name)
}
