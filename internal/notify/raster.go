package notify

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/godalming123/tinytile/internal/config"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Bitmaps above this many pixels are refused rather than allocated.
const maxPixels = 1 << 24

var ErrTooLarge = errors.New("message bitmap too large")

const defaultFontSize = 12

// TextRasterizer draws messages with the built-in 7x13 bitmap face. The face
// is zoomed by a whole factor to approximate the configured font size and the
// output scale, and every character occupies as many cells as it does in a
// terminal so that column-aligned menus stay aligned.
type TextRasterizer struct{}

// Measure returns the size of text in character cells.
func Measure(text string) (cols, rows int) {
	return lipgloss.Width(text), lipgloss.Height(text)
}

// Rasterize implements Rasterizer.
func (TextRasterizer) Rasterize(text string, style Style, scale float64) (*image.RGBA, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if scale <= 0 {
		scale = 1
	}

	face := basicfont.Face7x13
	zoom := int(math.Round(fontSize(style.Font) / defaultFontSize * scale))
	if zoom < 1 {
		zoom = 1
	}

	cols, rows := Measure(text)
	textW := cols * face.Advance * zoom
	textH := rows * face.Height * zoom
	padX := int(float64(style.HorizontalPadding) * scale)
	padY := int(float64(style.VerticalPadding) * scale)
	width := textW + 2*padX
	height := textH + 2*padY
	if width <= 0 || height <= 0 || width*height > maxPixels {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrTooLarge)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	roundedRectangle(dst, dst.Bounds(), int(float64(style.RoundingRadius)*scale), toColor(style.Background))

	if cols == 0 {
		return dst, nil
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, cols*face.Advance, rows*face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(toColor(style.Foreground)),
		Face: face,
	}
	for row, line := range strings.Split(text, "\n") {
		col := 0
		for _, r := range line {
			w := lipgloss.Width(string(r))
			if w == 0 {
				continue
			}
			d.Dot = fixed.P(col*face.Advance, row*face.Height+face.Ascent)
			d.DrawString(string(r))
			col += w
		}
	}
	draw.NearestNeighbor.Scale(dst, image.Rect(padX, padY, padX+textW, padY+textH), glyphs, glyphs.Bounds(), draw.Over, nil)
	return dst, nil
}

// fontSize reads the trailing size of a description such as "Mono 12".
func fontSize(desc string) float64 {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return defaultFontSize
	}
	size, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || size <= 0 {
		return defaultFontSize
	}
	return size
}

// roundedRectangle fills r with c, cutting each corner to radius. The radius
// is clamped to half the width and half the height.
func roundedRectangle(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	w, h := r.Dx(), r.Dy()
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	if radius < 0 {
		radius = 0
	}
	rad := float64(radius)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			cx, cy := px, py
			switch {
			case px < rad:
				cx = rad
			case px > float64(w)-rad:
				cx = float64(w) - rad
			}
			switch {
			case py < rad:
				cy = rad
			case py > float64(h)-rad:
				cy = float64(h) - rad
			}
			if dx, dy := px-cx, py-cy; dx*dx+dy*dy > rad*rad {
				continue
			}
			dst.Set(r.Min.X+x, r.Min.Y+y, c)
		}
	}
}

func toColor(c config.RGBA) color.NRGBA {
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}
