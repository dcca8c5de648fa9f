package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/godalming123/tinytile/internal/geom"
)

type cell struct {
	r     rune
	style styleID
	// wide runes occupy the following cell too
	skip  bool
}

// canvas is the desktop as a grid of terminal cells.
type canvas struct {
	cols, rows int
	cells      []cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: styleDesktop}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style styleID) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = cell{r: r, style: style}
}

// text writes s from (x, y) and returns the column after it. Writing stops
// at limit.
func (c *canvas) text(x, y, limit int, s string, style styleID) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		c.set(x, y, r, style)
		if w == 2 {
			if x+1 >= 0 && x+1 < c.cols && y >= 0 && y < c.rows {
				c.cells[y*c.cols+x+1] = cell{style: style, skip: true}
			}
		}
		x += w
	}
	return x
}

// frame draws a bordered rectangle covering cells [x0, x1] by [y0, y1] and
// blanks its interior.
func (c *canvas) frame(x0, y0, x1, y1 int, b lipgloss.Border, style styleID) {
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			c.set(x, y, ' ', styleDesktop)
		}
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, firstRune(b.Top), style)
		c.set(x, y1, firstRune(b.Bottom), style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, firstRune(b.Left), style)
		c.set(x1, y, firstRune(b.Right), style)
	}
	c.set(x0, y0, firstRune(b.TopLeft), style)
	c.set(x1, y0, firstRune(b.TopRight), style)
	c.set(x0, y1, firstRune(b.BottomLeft), style)
	c.set(x1, y1, firstRune(b.BottomRight), style)
}

func (c *canvas) invert(x, y int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	i := y*c.cols + x
	if c.cells[i].skip && x > 0 {
		i--
	}
	c.cells[i].style = styleCursor
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.cols : (y+1)*c.cols]
		for start := 0; start < len(row); {
			end := start
			var run strings.Builder
			for end < len(row) && row[end].style == row[start].style {
				if !row[end].skip {
					run.WriteRune(row[end].r)
				}
				end++
			}
			sb.WriteString(styles[row[start].style].Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// cellBox converts a layout box to the inclusive cell range it covers.
func cellBox(b geom.Box) (x0, y0, x1, y1 int) {
	x0 = floorDiv(b.X, cellWidth)
	y0 = floorDiv(b.Y, cellHeight)
	x1 = floorDiv(b.X+max(b.Width, 1)-1, cellWidth)
	y1 = floorDiv(b.Y+max(b.Height, 1)-1, cellHeight)
	return x0, y0, x1, y1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// render draws the scene: windows bottom to top, then the message, then the
// cursor, then the status line.
func (b *Backend) render() string {
	rows := max(1, b.rows-1)
	c := newCanvas(b.cols, rows)

	for _, p := range b.HeadlessScene().Stack() {
		x0, y0, x1, y1 := cellBox(p.Box)
		// a window needs at least two cells each way for its frame
		x1 = max(x1, x0+1)
		y1 = max(y1, y0+1)
		border, style, title := windowBorder, styleWindow, styleTitle
		if p.Activated {
			border, style, title = activeBorder, styleActiveWindow, styleActiveTitle
		}
		c.frame(x0, y0, x1, y1, border, style)
		if t := p.View.Title(); t != "" {
			c.text(x0+2, y0, x1-1, " "+t+" ", title)
		}
	}

	overlay := b.HeadlessScene().OverlayLayer()
	if text, ok := b.raster.textOf(overlay.Image()); ok {
		drawMessage(c, text, overlay.Box())
	}

	cx, cy := b.HeadlessCursor().Position()
	c.invert(int(cx)/cellWidth, int(cy)/cellHeight)

	if b.rows <= 1 {
		return c.String()
	}
	return c.String() + "\n" + styles[styleStatus].Render(runewidth.Truncate(statusLine, b.cols, ""))
}

// drawMessage centres text in a rounded frame on the middle of box.
func drawMessage(c *canvas, text string, box geom.Box) {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	x0, y0, x1, y1 := cellBox(box)
	midX, midY := (x0+x1)/2, (y0+y1)/2

	left := midX - (width+4)/2
	top := midY - (len(lines)+2)/2
	right := left + width + 3
	bottom := top + len(lines) + 1
	left, right = fit(left, right, c.cols)
	top, bottom = fit(top, bottom, c.rows)

	c.frame(left, top, right, bottom, messageBorder, styleMessage)
	for y := top + 1; y < bottom; y++ {
		for x := left + 1; x < right; x++ {
			c.set(x, y, ' ', styleMessage)
		}
	}
	for i, l := range lines {
		c.text(left+2, top+1+i, right-1, l, styleMessage)
	}
}

// fit shifts the cell range [lo, hi] onto [0, n). When it is longer than n
// the start stays visible and the end is cut off.
func fit(lo, hi, n int) (int, int) {
	if hi >= n {
		d := hi - (n - 1)
		lo, hi = lo-d, hi-d
	}
	if lo < 0 {
		lo, hi = 0, hi-lo
	}
	return lo, hi
}
