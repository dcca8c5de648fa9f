package tui

import (
	"image"

	"github.com/godalming123/tinytile/internal/notify"
)

// recordingRasterizer remembers the text of the last bitmap it produced.
type recordingRasterizer struct {
	inner notify.Rasterizer
	last  *image.RGBA
	text  string
}

func (r *recordingRasterizer) Rasterize(text string, style notify.Style, scale float64) (*image.RGBA, error) {
	img, err := r.inner.Rasterize(text, style, scale)
	if err != nil {
		return nil, err
	}
	r.last, r.text = img, text
	return img, nil
}

// textOf returns the text img was drawn from.
func (r *recordingRasterizer) textOf(img image.Image) (string, bool) {
	if img == nil || r.last == nil {
		return "", false
	}
	if rgba, ok := img.(*image.RGBA); !ok || rgba != r.last {
		return "", false
	}
	return r.text, true
}
