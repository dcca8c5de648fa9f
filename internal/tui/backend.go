// Package tui runs the compositor inside a terminal. The terminal stands in
// for the display hardware: its size is the single output, its keyboard and
// mouse are the input devices, and the scene is drawn with box characters.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/headless"
	"github.com/godalming123/tinytile/internal/keys"
	"github.com/godalming123/tinytile/internal/logger"
	"github.com/godalming123/tinytile/internal/notify"
)

// Each terminal cell covers this many layout pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// Backend is a headless backend whose devices are the terminal.
type Backend struct {
	*headless.Backend

	in  io.Reader
	out io.Writer

	cols, rows int
	output     *headless.Output
	outputs    int

	keyboard *headless.Keyboard
	pointer  *headless.Pointer
	keymap   *keys.Keymap
	raster   *recordingRasterizer

	demos   []*headless.Toplevel
	program *tea.Program
	log     *log.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithIO runs on the given streams instead of the process's terminal. The
// terminal check is skipped.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(b *Backend) {
		b.in = in
		b.out = out
	}
}

// WithSize sets the initial size in cells.
func WithSize(cols, rows int) Option {
	return func(b *Backend) {
		b.cols = cols
		b.rows = rows
	}
}

// WithLayout sets the keyboard layout terminal characters are typed with.
// It should match the layout the window manager compiles.
func WithLayout(layout string) Option {
	return func(b *Backend) {
		if km, err := keys.Compile(layout); err == nil {
			b.keymap = km
		}
	}
}

// New creates the backend. It fails when stdin or stdout is not a terminal.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{
		Backend:  headless.New(),
		keyboard: headless.NewKeyboard("terminal keyboard"),
		pointer:  headless.NewPointer("terminal mouse"),
		raster:   &recordingRasterizer{inner: notify.TextRasterizer{}},
		log:      logger.For("tui"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.keymap == nil {
		b.keymap, _ = keys.Compile("us")
	}

	if b.in == nil && b.out == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, ErrNotTerminal
		}
		if b.cols == 0 || b.rows == 0 {
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				b.cols, b.rows = w, h
			}
		}
	}
	if b.cols <= 0 || b.rows <= 0 {
		b.cols, b.rows = 80, 24
	}

	b.AddKeyboard(b.keyboard)
	b.AddPointer(b.pointer)
	b.plugOutput()
	return b, nil
}

// Rasterizer returns the rasterizer the window manager must use so that
// messages can be drawn as text.
func (b *Backend) Rasterizer() notify.Rasterizer { return b.raster }

// Run serves terminal events until Terminate or until the terminal closes.
func (b *Backend) Run() error {
	if !b.Started() {
		return headless.ErrNotStarted
	}
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
	if b.in != nil {
		opts = append(opts, tea.WithInput(b.in))
	}
	if b.out != nil {
		opts = append(opts, tea.WithOutput(b.out))
	}
	b.program = tea.NewProgram(&model{b: b}, opts...)

	if _, err := b.program.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// Terminate stops the event loop. It is safe to call from an event handler.
func (b *Backend) Terminate() {
	b.Backend.Terminate()
	if p := b.program; p != nil {
		// Quit blocks until the loop reads it
		go p.Quit()
	}
}

// resize replaces the output with one of the new terminal size.
func (b *Backend) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 || (cols == b.cols && rows == b.rows) {
		return
	}
	b.cols, b.rows = cols, rows
	if b.output != nil {
		b.RemoveOutput(b.output)
	}
	b.plugOutput()
}

// plugOutput adds an output covering every row but the status line.
func (b *Backend) plugOutput() {
	b.outputs++
	width, height := b.cols*cellWidth, max(1, b.rows-1)*cellHeight
	b.output = headless.NewOutput(fmt.Sprintf("TTY-%d", b.outputs), width, height)
	b.HeadlessCursor().SetBounds(geom.Box{Width: width, Height: height})
	b.AddOutput(b.output)
	b.log.Debug("terminal output", "cols", b.cols, "rows", b.rows)
}

// openDemo maps a placeholder client window.
func (b *Backend) openDemo() {
	n := len(b.demos) + 1
	// leave a cell of desktop around the window
	w := max(2, min(24+4*(n%4), b.cols-2)) * cellWidth
	h := max(2, min(8+2*(n%3), b.rows-3)) * cellHeight
	t := b.Open(b.Connect(), fmt.Sprintf("client %d", n), w, h)
	b.demos = append(b.demos, t)
}

// reapDemos destroys demo windows that were asked to close.
func (b *Backend) reapDemos() {
	kept := b.demos[:0]
	for _, t := range b.demos {
		if t.CloseRequested() {
			b.Destroy(t)
			continue
		}
		kept = append(kept, t)
	}
	b.demos = kept
}

// LogPath is where logs go while the terminal is in use: the configured
// file, or tinytile.log in XDG_RUNTIME_DIR or the temp directory.
func LogPath(configured string) string {
	if configured != "" {
		return configured
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tinytile.log")
}
