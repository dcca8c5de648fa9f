package headless

import (
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

// Cursor is the pointer position. With bounds set it is clamped to them;
// without, it moves freely.
type Cursor struct {
	x, y    float64
	bounds  geom.Box
	image   string
	surface view.Surface
	hotX    int
	hotY    int
	devices []wm.PointerDevice

	theme     string
	themeSize int
	scales    []float64
	// ThemeErr makes LoadTheme fail.
	ThemeErr  error
}

var _ wm.Cursor = (*Cursor)(nil)

// NewCursor returns an unbounded cursor at the origin.
func NewCursor() *Cursor { return &Cursor{} }

// SetBounds constrains the cursor to b.
func (c *Cursor) SetBounds(b geom.Box) {
	c.bounds = b
	c.x, c.y = c.clamp(c.x, c.y)
}

func (c *Cursor) Position() (float64, float64) { return c.x, c.y }

func (c *Cursor) Move(dev wm.PointerDevice, dx, dy float64) {
	c.x, c.y = c.clamp(c.x+dx, c.y+dy)
}

// WarpAbsolute maps x and y in 0..1 over the bounds.
func (c *Cursor) WarpAbsolute(dev wm.PointerDevice, x, y float64) {
	b := c.bounds
	c.x, c.y = c.clamp(float64(b.X)+x*float64(b.Width), float64(b.Y)+y*float64(b.Height))
}

// Warp puts the cursor at layout coordinates.
func (c *Cursor) Warp(x, y float64) {
	c.x, c.y = c.clamp(x, y)
}

func (c *Cursor) SetImage(name string) {
	c.image = name
	c.surface = nil
}

func (c *Cursor) SetSurface(s view.Surface, hotspotX, hotspotY int) {
	c.image = ""
	c.surface = s
	c.hotX, c.hotY = hotspotX, hotspotY
}

// Image is the named cursor image, empty while a client surface is shown.
func (c *Cursor) Image() string { return c.image }

// Surface is the client cursor surface and its hotspot.
func (c *Cursor) Surface() (view.Surface, int, int) { return c.surface, c.hotX, c.hotY }

func (c *Cursor) AttachDevice(dev wm.PointerDevice) {
	c.devices = append(c.devices, dev)
}

// Devices are the attached pointers.
func (c *Cursor) Devices() []wm.PointerDevice { return c.devices }

func (c *Cursor) clamp(x, y float64) (float64, float64) {
	b := c.bounds
	if b.Empty() {
		return x, y
	}
	return clampf(x, float64(b.X), float64(b.X+b.Width-1)), clampf(y, float64(b.Y), float64(b.Y+b.Height-1))
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Cursor) LoadTheme(theme string, size int, scale float64) error {
	if c.ThemeErr != nil {
		return c.ThemeErr
	}
	c.theme, c.themeSize = theme, size
	c.scales = append(c.scales, scale)
	return nil
}

// Theme is the last theme loaded and its size.
func (c *Cursor) Theme() (string, int) { return c.theme, c.themeSize }

// ThemeScales lists the scales a theme was loaded for, in order.
func (c *Cursor) ThemeScales() []float64 { return c.scales }
