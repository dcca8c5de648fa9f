// Package notify shows a single popup message above every window.
//
// At most one message is visible. Showing a message first hides the current
// one, and the overlay's type is None exactly when nothing is attached to the
// display.
package notify

import (
	"errors"
	"fmt"
	"image"

	"github.com/godalming123/tinytile/internal/config"
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/output"
)

var (
	ErrEmptyText = errors.New("notification text is empty")
	ErrNoOutput  = errors.New("no output to show the notification on")
)

// Type tags what the visible message is for.
type Type int

const (
	None Type = iota
	Hello
	Run
	ClientsList
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Hello:
		return "hello"
	case Run:
		return "run"
	case ClientsList:
		return "clients-list"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Display is the scene node the message bitmap is attached to. Box is in
// layout coordinates and may be smaller than the bitmap on scaled outputs.
type Display interface {
	Attach(img image.Image, box geom.Box) error
	Detach()
}

// Rasterizer draws text onto a padded rounded rectangle at a given scale.
type Rasterizer interface {
	Rasterize(text string, style Style, scale float64) (*image.RGBA, error)
}

// Style is the look of a message.
type Style = config.NotificationConfig

// Overlay is the popup message state.
type Overlay struct {
	display Display
	raster  Rasterizer
	outputs *output.Layout
	style   Style

	typ  Type
	text string
	box  geom.Box
}

// New creates a hidden overlay
func New(display Display, raster Rasterizer, outputs *output.Layout, style Style) *Overlay {
	return &Overlay{
		display: display,
		raster:  raster,
		outputs: outputs,
		style:   style,
	}
}

// Type returns the type of the visible message, or None.
func (o *Overlay) Type() Type { return o.typ }

// Visible reports whether a message is attached.
func (o *Overlay) Visible() bool { return o.typ != None }

// Text returns the visible message text.
func (o *Overlay) Text() string { return o.text }

// Box returns where the visible message sits in layout coordinates.
func (o *Overlay) Box() geom.Box { return o.box }

// Show replaces the current message with text centred on the primary output.
// When the bitmap cannot be produced the overlay is left hidden and the
// error is returned.
func (o *Overlay) Show(text string, typ Type) error {
	o.Hide()

	if text == "" {
		return ErrEmptyText
	}
	if typ == None {
		return fmt.Errorf("cannot show a message with type %s", typ)
	}
	out := o.outputs.Primary()
	if out == nil {
		return ErrNoOutput
	}

	img, err := o.raster.Rasterize(text, o.style, out.Scale)
	if err != nil {
		return fmt.Errorf("could not create message texture: %w", err)
	}

	scale := out.Scale
	if scale <= 0 {
		scale = 1
	}
	width := int(float64(img.Bounds().Dx()) / scale)
	height := int(float64(img.Bounds().Dy()) / scale)
	box := geom.Box{
		X:      out.X + (out.Width-width)/2,
		Y:      out.Y + (out.Height-height)/2,
		Width:  width,
		Height: height,
	}
	if err := o.display.Attach(img, box); err != nil {
		return fmt.Errorf("could not attach message: %w", err)
	}

	o.typ = typ
	o.text = text
	o.box = box
	return nil
}

// Hide detaches the visible message. It reports whether anything was hidden.
func (o *Overlay) Hide() bool {
	if o.typ == None {
		return false
	}
	o.display.Detach()
	o.typ = None
	o.text = ""
	o.box = geom.Box{}
	return true
}
