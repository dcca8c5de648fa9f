package wm_test

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godalming123/tinytile/internal/cursor"
	"github.com/godalming123/tinytile/internal/geom"
	"github.com/godalming123/tinytile/internal/headless"
	"github.com/godalming123/tinytile/internal/view"
)

func TestMotionEntersSurfaceUnderCursor(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)

	h.b.MoveTo(h.ptr, 950, 530)
	assert.Equal(t, view.Surface(a.HeadlessSurface()), h.seat().PointerFocus())
	motion, ok := h.seat().Last(headless.PointerMotion)
	require.True(t, ok)
	assert.Equal(t, 40.0, motion.X)
	assert.Equal(t, 40.0, motion.Y)

	h.b.MoveTo(h.ptr, 10, 10)
	assert.Nil(t, h.seat().PointerFocus())
	assert.Equal(t, "left_ptr", h.cursor().Image())
}

func TestStraySurfaceIsNothing(t *testing.T) {
	h := newHarness(t)
	h.scene().AddStray(h.client.NewSurface("stray"), geom.Box{Width: 100, Height: 100})

	h.b.MoveTo(h.ptr, 50, 50)
	assert.Nil(t, h.seat().PointerFocus())
	h.b.Click(h.ptr, evdev.BTN_LEFT)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())
	assert.Nil(t, h.s.Focused())
}

func TestClickFocusesView(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	b := h.open("B", 100, 100)
	h.view(a).Move(0, 0)
	h.b.MoveTo(h.ptr, 50, 50)

	h.b.Button(h.ptr, evdev.BTN_LEFT, true)
	assert.True(t, a.Activated())
	assert.False(t, b.Activated())
	assert.Equal(t, cursor.Pressed, h.s.CursorMode())
	assert.Same(t, h.view(a), h.s.Grabbed())

	button, ok := h.seat().Last(headless.PointerButton)
	require.True(t, ok)
	assert.Equal(t, uint32(evdev.BTN_LEFT), button.Code)

	h.b.Button(h.ptr, evdev.BTN_LEFT, false)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())
	assert.Nil(t, h.s.Grabbed())
}

func TestPressedForwardsOutsideView(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)
	h.b.Button(h.ptr, evdev.BTN_LEFT, true)

	// far outside the window, as when selecting text
	h.b.MoveTo(h.ptr, 1500, 900)
	assert.Equal(t, view.Surface(a.HeadlessSurface()), h.seat().PointerFocus())
	motion, ok := h.seat().Last(headless.PointerMotion)
	require.True(t, ok)
	assert.Equal(t, 590.0, motion.X)
	assert.Equal(t, 410.0, motion.Y)

	h.b.Button(h.ptr, evdev.BTN_LEFT, false)
	h.b.MoveTo(h.ptr, 1500, 901)
	assert.Nil(t, h.seat().PointerFocus())
}

func TestAltLeftDragMoves(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	v := h.view(a)
	h.b.MoveTo(h.ptr, 950, 530)

	h.b.Press(h.kb, evdev.KEY_LEFTALT)
	h.b.Button(h.ptr, evdev.BTN_LEFT, true)
	assert.Equal(t, cursor.Move, h.s.CursorMode())
	// the button is not delivered to the client
	assert.Empty(t, h.seat().EventsOf(headless.PointerButton))

	h.b.MoveTo(h.ptr, 1000, 630)
	assert.Equal(t, 960, v.X)
	assert.Equal(t, 590, v.Y)

	h.b.Button(h.ptr, evdev.BTN_LEFT, false)
	h.b.Release(h.kb, evdev.KEY_LEFTALT)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())
	h.b.MoveTo(h.ptr, 0, 0)
	assert.Equal(t, 960, v.X)
}

func TestAltRightDragResizes(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)

	h.b.Press(h.kb, evdev.KEY_LEFTALT)
	h.b.Button(h.ptr, evdev.BTN_RIGHT, true)
	assert.Equal(t, cursor.Resize, h.s.CursorMode())

	h.b.MoveTo(h.ptr, 1000, 560)
	assert.Equal(t, 150, a.Geometry().Width)
	assert.Equal(t, 130, a.Geometry().Height)
}

func TestAltOtherButtonGoesToClient(t *testing.T) {
	h := newHarness(t)
	h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)

	h.b.Press(h.kb, evdev.KEY_LEFTALT)
	h.b.Button(h.ptr, evdev.BTN_MIDDLE, true)
	assert.Equal(t, cursor.Pressed, h.s.CursorMode())
	assert.Len(t, h.seat().EventsOf(headless.PointerButton), 1)
	assert.True(t, h.s.IgnoringAltRelease())
}

// Dragging the bottom-right corner 50 units right widens a 100x100 window
// to 150 and keeps its top-left corner.
func TestResizeBottomRight(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	v := h.view(a)
	v.Move(0, 0)
	h.b.MoveTo(h.ptr, 90, 90)

	h.b.RequestResize(a, geom.EdgeBottom|geom.EdgeRight)
	require.Equal(t, cursor.Resize, h.s.CursorMode())
	h.b.MoveTo(h.ptr, 140, 90)

	assert.Equal(t, geom.Box{Width: 150, Height: 100}, a.Geometry())
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 0, v.Y)
}

func TestResizeNeverBelowOne(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.view(a).Move(200, 200)
	h.b.MoveTo(h.ptr, 250, 250)

	for _, edges := range []geom.Edges{
		geom.EdgeBottom | geom.EdgeRight,
		geom.EdgeTop | geom.EdgeLeft,
		geom.EdgeTop,
		geom.EdgeLeft | geom.EdgeBottom,
	} {
		h.b.RequestResize(a, edges)
		for _, p := range [][2]float64{{-1000, -1000}, {5000, 5000}, {250, 250}, {0, 3000}} {
			h.b.MoveTo(h.ptr, p[0], p[1])
			geo := a.Geometry()
			assert.GreaterOrEqual(t, geo.Width, 1, "edges %s at %v", edges, p)
			assert.GreaterOrEqual(t, geo.Height, 1, "edges %s at %v", edges, p)
		}
		h.b.Click(h.ptr, evdev.BTN_LEFT)
		h.b.MoveTo(h.ptr, float64(h.view(a).X)+0.5, float64(h.view(a).Y)+0.5)
	}
}

func TestResizeTopLeftAccountsForGeometryOffset(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	// client-side shadow of 10 around the window
	a.SetGeometry(geom.Box{X: 10, Y: 10, Width: 100, Height: 100})
	v := h.view(a)
	v.Move(0, 0)
	h.b.MoveTo(h.ptr, 15, 15)

	h.b.RequestResize(a, geom.EdgeTop|geom.EdgeLeft)
	h.b.MoveTo(h.ptr, 5, 15)
	assert.Equal(t, 110, a.Geometry().Width)
	assert.Equal(t, 100, a.Geometry().Height)
	assert.Equal(t, -10, v.X)
	assert.Equal(t, 0, v.Y)
}

func TestInteractiveRequestNeedsPointerFocus(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	b := h.open("B", 100, 100)
	h.view(a).Move(0, 0)
	h.b.MoveTo(h.ptr, 50, 50)
	require.Equal(t, view.Surface(a.HeadlessSurface()), h.seat().PointerFocus())

	h.b.RequestMove(b)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())
	h.b.RequestResize(b, geom.EdgeRight)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())

	h.b.RequestMove(a)
	assert.Equal(t, cursor.Move, h.s.CursorMode())
	assert.Same(t, h.view(a), h.s.Grabbed())
}

func TestInteractiveRequestFromSubsurface(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	a.AddSubsurface("titlebar", geom.Box{Width: 100, Height: 20})
	h.b.MoveTo(h.ptr, 950, 495)
	require.NotEqual(t, view.Surface(a.HeadlessSurface()), h.seat().PointerFocus())

	h.b.RequestMove(a)
	assert.Equal(t, cursor.Move, h.s.CursorMode())
}

func TestMoveRequestFromChildMovesParent(t *testing.T) {
	h := newHarness(t)
	parent := h.open("parent", 400, 300)
	child := h.b.CreateToplevel(h.client, "dialog", 100, 50, parent)
	h.b.Map(child)
	h.b.MoveTo(h.ptr, 960, 540)
	require.Equal(t, view.Surface(child.HeadlessSurface()), h.seat().PointerFocus())

	h.b.RequestMove(child)
	assert.Same(t, h.view(parent), h.s.Grabbed())
	h.b.MoveTo(h.ptr, 970, 540)
	assert.Equal(t, 770, h.view(parent).X)
	assert.Equal(t, 150, h.view(child).X)
}

func TestUnmapSoleFocusedView(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)
	require.NotNil(t, h.seat().PointerFocus())

	h.b.Unmap(a)
	assert.Nil(t, h.s.Focused())
	assert.Empty(t, h.s.Views())
	assert.Nil(t, h.keyboardFocus())
	assert.Nil(t, h.seat().PointerFocus())

	assert.NotPanics(t, func() {
		h.b.MoveTo(h.ptr, 960, 540)
		h.b.Click(h.ptr, evdev.BTN_LEFT)
		h.alt(evdev.KEY_W)
		h.alt(evdev.KEY_F)
	})
	assert.Nil(t, h.seat().PointerFocus())
}

func TestUnmapFocusedMovesToPrevious(t *testing.T) {
	h := newHarness(t)
	a, b, c := threeViews(h)

	h.b.Unmap(c)
	assert.Same(t, h.view(b), h.s.Focused())
	assert.Equal(t, view.Surface(b.HeadlessSurface()), h.keyboardFocus())

	h.s.Focus(h.view(a))
	h.b.Unmap(a)
	// wraps from the head
	assert.Same(t, h.view(b), h.s.Focused())
	assert.Equal(t, []string{"B"}, titles(h.s.Views()))
	assert.Len(t, h.activated(), 1)
}

func TestUnmapUnfocusedKeepsFocus(t *testing.T) {
	h := newHarness(t)
	a, _, c := threeViews(h)

	h.b.Unmap(a)
	assert.Same(t, h.view(c), h.s.Focused())
	assert.Equal(t, []string{"B", "C"}, titles(h.s.Views()))
}

func TestUnmapGrabbedViewEndsGrab(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)
	h.b.RequestMove(a)
	require.Equal(t, cursor.Move, h.s.CursorMode())

	h.b.Destroy(a)
	assert.Equal(t, cursor.Passthrough, h.s.CursorMode())
	assert.Nil(t, h.s.ViewFor(a))
	assert.NotPanics(t, func() { h.b.MoveTo(h.ptr, 0, 0) })
}

func TestRemapKeepsRegistryConsistent(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.open("B", 100, 100)

	h.b.Unmap(a)
	h.b.Map(a)
	assert.Equal(t, []string{"B", "A"}, titles(h.s.Views()))
	assert.Same(t, h.view(a), h.s.Focused())
}

func TestScrollGoesToPointerFocus(t *testing.T) {
	h := newHarness(t)
	h.open("A", 100, 100)
	h.b.MoveTo(h.ptr, 950, 530)
	h.b.Scroll(h.ptr, 15)

	axis, ok := h.seat().Last(headless.PointerAxis)
	require.True(t, ok)
	assert.Equal(t, int32(1), axis.Axis.DeltaDiscrete)
	assert.NotEmpty(t, h.seat().EventsOf(headless.PointerFrame))
}

func TestAbsoluteMotion(t *testing.T) {
	h := newHarness(t)
	a := h.open("A", 100, 100)
	h.cursor().SetBounds(geom.Box{Width: 1920, Height: 1080})

	h.b.MoveAbsolute(h.ptr, 0.5, 0.5)
	x, y := h.cursor().Position()
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 540.0, y)
	assert.Equal(t, view.Surface(a.HeadlessSurface()), h.seat().PointerFocus())
}
