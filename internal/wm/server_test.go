package wm_test

import (
	"errors"
	"image"
	"os"
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godalming123/tinytile/internal/config"
	"github.com/godalming123/tinytile/internal/headless"
	"github.com/godalming123/tinytile/internal/notify"
	"github.com/godalming123/tinytile/internal/view"
	"github.com/godalming123/tinytile/internal/wm"
)

func TestNewRejectsIncompleteBackend(t *testing.T) {
	_, err := wm.New(nil, nil)
	assert.ErrorIs(t, err, wm.ErrIncompleteBackend)
}

func TestNewDefaultsToGlobalConfig(t *testing.T) {
	s, err := wm.New(nil, headless.New())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestRunExportsSocketAndStops(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	b := headless.New()
	b.SocketName = "wayland-5"
	b.AddOutput(headless.NewOutput("HDMI-A-1", 800, 600))
	cfg := config.DefaultConfig
	s, err := wm.New(&cfg, b, wm.WithLauncher(&headless.Launcher{}))
	require.NoError(t, err)

	// a terminated backend returns from Run as soon as it is started
	s.Terminate()
	require.NoError(t, s.Run())
	assert.True(t, b.Started())
	assert.Equal(t, "wayland-5", os.Getenv("WAYLAND_DISPLAY"))
	assert.Equal(t, 1, s.Outputs().Len())
}

func TestRunStartupFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		setup func(b *headless.Backend)
		want  string
	}{
		{"socket", func(b *headless.Backend) { b.SocketErr = boom }, "failed to add wayland socket"},
		{"start", func(b *headless.Backend) { b.StartErr = boom }, "failed to start backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := headless.New()
			tt.setup(b)
			cfg := config.DefaultConfig
			s, err := wm.New(&cfg, b)
			require.NoError(t, err)

			err = s.Run()
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOutputsAreLaidOutLeftToRight(t *testing.T) {
	h := newHarness(t)
	hidpi := headless.NewOutput("eDP-1", 2560, 1600).WithScale(2)
	h.b.AddOutput(hidpi)
	broken := headless.NewOutput("DP-2", 1024, 768)
	broken.CommitErr = errors.New("no crtc")
	h.b.AddOutput(broken)
	nested := headless.NewOutput("WL-1", 640, 480).WithoutModes()
	h.b.AddOutput(nested)

	outs := h.s.Outputs().Outputs()
	require.Len(t, outs, 3)
	assert.Equal(t, "HDMI-A-1", outs[0].Name)
	assert.True(t, outs[0].Primary)
	assert.Equal(t, 1920, outs[1].X)
	assert.Equal(t, 1280, outs[1].Width)
	assert.Equal(t, 800, outs[1].Height)
	assert.Equal(t, 3200, outs[2].X)

	assert.True(t, h.out.Enabled())
	assert.Equal(t, 1, h.out.Commits())
	assert.False(t, nested.Enabled())

	h.b.RemoveOutput(h.out)
	assert.Equal(t, 2, h.s.Outputs().Len())
}

func TestOutputsLoadCursorTheme(t *testing.T) {
	h := newHarness(t, withConfig(func(c *config.Config) {
		c.Cursor.Theme = "Adwaita"
		c.Cursor.Size = 32
	}))
	h.b.AddOutput(headless.NewOutput("eDP-1", 2560, 1600).WithScale(2))

	theme, size := h.cursor().Theme()
	assert.Equal(t, "Adwaita", theme)
	assert.Equal(t, 32, size)
	assert.Equal(t, []float64{1, 2}, h.cursor().ThemeScales())

	// a missing theme does not keep the output out of the layout
	h.cursor().ThemeErr = errors.New("theme not found")
	h.b.AddOutput(headless.NewOutput("DP-1", 1280, 1024))
	assert.Equal(t, 3, h.s.Outputs().Len())
}

func TestMessageCentredOnPrimaryOutput(t *testing.T) {
	h := newHarness(t)
	h.alt()
	box := h.scene().OverlayLayer().Box()
	assert.Equal(t, (1920-box.Width)/2, box.X)
	assert.Equal(t, (1080-box.Height)/2, box.Y)
}

type failingRaster struct{}

func (failingRaster) Rasterize(string, notify.Style, float64) (*image.RGBA, error) {
	return nil, errors.New("out of memory")
}

func TestMessageFailureIsSkipped(t *testing.T) {
	b := headless.New()
	b.AddOutput(headless.NewOutput("HDMI-A-1", 800, 600))
	kb := headless.NewKeyboard("keyboard")
	b.AddKeyboard(kb)
	cfg := config.DefaultConfig
	s, err := wm.New(&cfg, b, wm.WithRasterizer(failingRaster{}))
	require.NoError(t, err)
	require.NoError(t, b.Start(s))

	b.Press(kb, evdev.KEY_LEFTALT)
	b.Release(kb, evdev.KEY_LEFTALT)
	typ, _ := s.Message()
	assert.Equal(t, notify.None, typ)
	assert.Nil(t, b.HeadlessScene().OverlayLayer().Image())
}

func TestCapabilities(t *testing.T) {
	b := headless.New()
	cfg := config.DefaultConfig
	s, err := wm.New(&cfg, b)
	require.NoError(t, err)
	require.NoError(t, b.Start(s))

	b.AddPointer(headless.NewPointer("mouse"))
	assert.Equal(t, wm.CapPointer, b.HeadlessSeat().Capabilities())

	// virtual keyboards do not change what the seat advertises
	b.AddVirtualKeyboard(headless.NewKeyboard("virtual"))
	assert.Equal(t, wm.CapPointer, b.HeadlessSeat().Capabilities())

	b.AddKeyboard(headless.NewKeyboard("keyboard"))
	assert.Equal(t, wm.CapPointer|wm.CapKeyboard, b.HeadlessSeat().Capabilities())
	assert.Len(t, b.HeadlessCursor().Devices(), 1)
}

func TestKeyboardSetup(t *testing.T) {
	h := newHarness(t)
	require.NotNil(t, h.kb.Keymap())
	assert.Equal(t, "gb", h.kb.Keymap().Layout())
	rate, delay := h.kb.RepeatInfo()
	assert.Equal(t, int32(25), rate)
	assert.Equal(t, int32(600), delay)
	assert.Equal(t, wm.KeyboardDevice(h.kb), h.seat().Keyboard())
}

func TestUnknownLayoutFallsBackToUS(t *testing.T) {
	h := newHarness(t, withConfig(func(c *config.Config) { c.Keyboard.Layout = "klingon" }))
	require.NotNil(t, h.kb.Keymap())
	assert.Equal(t, "us", h.kb.Keymap().Layout())
}

func TestKeysFromSecondKeyboard(t *testing.T) {
	h := newHarness(t)
	h.open("A", 100, 100)
	other := headless.NewKeyboard("other")
	h.b.AddKeyboard(other)

	// modifiers are tracked per keyboard
	h.b.Press(h.kb, evdev.KEY_LEFTALT)
	h.b.Chord(other, evdev.KEY_A)
	typ, _ := h.s.Message()
	assert.Equal(t, notify.None, typ)
	assert.Equal(t, wm.KeyboardDevice(other), h.seat().Keyboard())

	h.b.RemoveKeyboard(other)
	assert.Equal(t, wm.KeyboardDevice(h.kb), h.seat().Keyboard())
	assert.NotPanics(t, func() { h.b.Key(other, evdev.KEY_A, true) })
}

func TestModifiersForwarded(t *testing.T) {
	h := newHarness(t)
	h.open("A", 100, 100)
	h.b.Press(h.kb, evdev.KEY_LEFTSHIFT)

	mods, ok := h.seat().Last(headless.KeyboardModifiers)
	require.True(t, ok)
	assert.Equal(t, uint32(1), uint32(mods.Mods))
}

func TestSetCursorOnlyFromPointerFocus(t *testing.T) {
	h := newHarness(t)
	h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)

	other := h.b.Connect()
	h.b.SetCursor(other, other.NewSurface("cursor"), 1, 1)
	s, _, _ := h.cursor().Surface()
	assert.Nil(t, s)

	img := h.client.NewSurface("cursor")
	h.b.SetCursor(h.client, img, 4, 5)
	s, hx, hy := h.cursor().Surface()
	assert.Equal(t, view.Surface(img), s)
	assert.Equal(t, 4, hx)
	assert.Equal(t, 5, hy)

	// leaving every surface restores the default image
	h.b.MoveTo(h.ptr, 0, 0)
	assert.Equal(t, "left_ptr", h.cursor().Image())
}

func TestSetSelection(t *testing.T) {
	h := newHarness(t)
	src := &headless.DataSource{}
	h.b.SetSelection(src, 42)
	assert.Equal(t, wm.DataSource(src), h.seat().Selection())
}

func TestStartDrag(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)
	h.b.Button(h.ptr, evdev.BTN_LEFT, true)

	icon := headless.NewDragIcon(h.client, -4, -4)
	d := headless.NewDrag(&headless.DataSource{}, icon)
	h.b.StartDrag(d, a.HeadlessSurface(), h.seat().ButtonSerial())
	require.Equal(t, wm.Drag(d), h.seat().Drag())

	node := h.scene().DragIconNode(icon)
	require.NotNil(t, node)
	x, y := node.Position()
	assert.Equal(t, 946, x)
	assert.Equal(t, 526, y)

	h.b.MoveTo(h.ptr, 1200, 700)
	x, y = node.Position()
	assert.Equal(t, 1196, x)
	assert.Equal(t, 696, y)

	h.b.Button(h.ptr, evdev.BTN_LEFT, false)
	h.b.DestroyDragIcon(icon)
	assert.Nil(t, h.scene().DragIconNode(icon))
}

func TestStartDragBadSerial(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)

	src := &headless.DataSource{}
	h.b.StartDrag(headless.NewDrag(src, nil), a.HeadlessSurface(), 99)
	assert.Nil(t, h.seat().Drag())
	assert.True(t, src.Destroyed)
}
