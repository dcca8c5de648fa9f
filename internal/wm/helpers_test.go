package wm_test

import (
	"testing"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/require"

	"github.com/godalming123/tinytile/internal/config"
	"github.com/godalming123/tinytile/internal/headless"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

var helloTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

type harness struct {
	t        *testing.T
	cfg      *config.Config
	b        *headless.Backend
	s        *wm.Server
	kb       *headless.Keyboard
	ptr      *headless.Pointer
	out      *headless.Output
	launcher *headless.Launcher
	client   *headless.Client
}

type option func(*harness)

func withConfig(f func(*config.Config)) option {
	return func(h *harness) { f(h.cfg) }
}

func withSession(s *headless.Session) option {
	return func(h *harness) { h.b.SetSession(s) }
}

// newHarness starts a server on a headless backend with one 1920x1080
// output, a keyboard and a pointer.
func newHarness(t *testing.T, opts ...option) *harness {
	t.Helper()
	cfg := config.DefaultConfig

	h := &harness{
		t:        t,
		cfg:      &cfg,
		b:        headless.New(),
		kb:       headless.NewKeyboard("keyboard"),
		ptr:      headless.NewPointer("mouse"),
		out:      headless.NewOutput("HDMI-A-1", 1920, 1080),
		launcher: &headless.Launcher{},
	}
	h.b.AddOutput(h.out)
	h.b.AddKeyboard(h.kb)
	h.b.AddPointer(h.ptr)
	for _, opt := range opts {
		opt(h)
	}

	s, err := wm.New(h.cfg, h.b,
		wm.WithLauncher(h.launcher),
		wm.WithClock(func() time.Time { return helloTime }),
	)
	require.NoError(t, err)
	require.NoError(t, h.b.Start(s))
	h.s = s
	h.client = h.b.Connect()
	return h
}

func (h *harness) seat() *headless.Seat     { return h.b.HeadlessSeat() }
func (h *harness) scene() *headless.Scene   { return h.b.HeadlessScene() }
func (h *harness) cursor() *headless.Cursor { return h.b.HeadlessCursor() }

// open maps a toplevel of the given size.
func (h *harness) open(title string, w, hgt int) *headless.Toplevel {
	return h.b.Open(h.client, title, w, hgt)
}

func (h *harness) view(t *headless.Toplevel) *view.View {
	v := h.s.ViewFor(t)
	require.NotNil(h.t, v)
	return v
}

// alt taps key while Alt is held.
func (h *harness) alt(codes ...uint32) {
	h.b.Press(h.kb, evdev.KEY_LEFTALT)
	h.b.Chord(h.kb, codes...)
	h.b.Release(h.kb, evdev.KEY_LEFTALT)
}

// altHeld taps key while Alt stays held.
func (h *harness) altHeld(codes ...uint32) {
	h.b.Chord(h.kb, codes...)
}

// activated returns the mapped views that report themselves activated.
func (h *harness) activated() []*view.View {
	var out []*view.View
	for _, v := range h.s.Views() {
		if v.Toplevel.(*headless.Toplevel).Activated() {
			out = append(out, v)
		}
	}
	return out
}

func (h *harness) keyboardFocus() view.Surface { return h.seat().KeyboardFocus() }

// forwardedKeys returns the keycodes delivered to clients.
func (h *harness) forwardedKeys(pressed bool) []uint32 {
	var codes []uint32
	for _, e := range h.seat().EventsOf(headless.KeyboardKey) {
		if e.Pressed == pressed {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

func titles(views []*view.View) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Title())
	}
	return out
}

func stackTitles(stack []headless.Placement) []string {
	out := make([]string, 0, len(stack))
	for _, p := range stack {
		out = append(out, p.View.Title())
	}
	return out
}
