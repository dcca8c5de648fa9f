package view

import (
	"math/rand"
	"testing"

	"github.com/godalming123/tinytile/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSurface struct{}

func (s *stubSurface) Root() Surface { return s }

type stubToplevel struct {
	title      string
	surface    *stubSurface
	geo        geom.Box
	maximized  bool
	fullscreen bool
	w, h       int
}

func newStub(title string) *stubToplevel {
	return &stubToplevel{title: title, surface: &stubSurface{}}
}

func (t *stubToplevel) Surface() Surface            { return t.surface }
func (t *stubToplevel) Parent() Toplevel            { return nil }
func (t *stubToplevel) Title() string               { return t.title }
func (t *stubToplevel) Geometry() geom.Box          { return t.geo }
func (t *stubToplevel) Maximized() bool             { return t.maximized }
func (t *stubToplevel) Fullscreen() bool            { return t.fullscreen }
func (t *stubToplevel) RequestedMaximized() bool    { return false }
func (t *stubToplevel) RequestedFullscreen() bool   { return false }
func (t *stubToplevel) SetActivated(bool)           {}
func (t *stubToplevel) SetSize(w, h int)            { t.w, t.h = w, h }
func (t *stubToplevel) SetMaximized(m bool)         { t.maximized = m }
func (t *stubToplevel) SetFullscreen(f bool)        { t.fullscreen = f }
func (t *stubToplevel) SetTiled(geom.Edges)         {}
func (t *stubToplevel) ScheduleConfigure()          {}
func (t *stubToplevel) SendClose()                  {}

type stubNode struct {
	x, y   int
	raised int
}

func (n *stubNode) SetPosition(x, y int) { n.x, n.y = x, y }
func (n *stubNode) RaiseToTop()          { n.raised++ }

func mk(title string) *View {
	return New(newStub(title), &stubNode{})
}

func titles(r *Registry) []string {
	var out []string
	for _, v := range r.All() {
		out = append(out, v.Title())
	}
	return out
}

// build inserts each view after the previous one, the same way mapping
// with the newest view focused does.
func build(names ...string) (*Registry, []*View) {
	r := NewRegistry()
	var views []*View
	var anchor *View
	for _, n := range names {
		v := mk(n)
		r.Insert(v, anchor)
		anchor = v
		views = append(views, v)
	}
	return r, views
}

func TestRegistryInsert(t *testing.T) {
	t.Run("inserts at head without anchor", func(t *testing.T) {
		r := NewRegistry()
		a, b := mk("A"), mk("B")
		r.Insert(a, nil)
		r.Insert(b, nil)
		assert.Equal(t, []string{"B", "A"}, titles(r))
	})

	t.Run("inserts directly after anchor", func(t *testing.T) {
		r, v := build("A", "B", "C")
		d := mk("D")
		r.Insert(d, v[0])
		assert.Equal(t, []string{"A", "D", "B", "C"}, titles(r))
		assert.Equal(t, 4, r.Count())
	})

	t.Run("ignores duplicates", func(t *testing.T) {
		r, v := build("A", "B")
		r.Insert(v[0], v[1])
		assert.Equal(t, []string{"A", "B"}, titles(r))
		assert.Equal(t, 2, r.Count())
	})

	t.Run("non-member anchor falls back to head", func(t *testing.T) {
		r, _ := build("A")
		r.Insert(mk("B"), mk("stray"))
		assert.Equal(t, []string{"B", "A"}, titles(r))
	})
}

func TestRegistryRemove(t *testing.T) {
	r, v := build("A", "B", "C")

	require.True(t, r.Remove(v[1]))
	assert.Equal(t, []string{"A", "C"}, titles(r))
	assert.False(t, r.Contains(v[1]))

	assert.False(t, r.Remove(v[1]), "second removal is rejected")
	assert.Equal(t, 2, r.Count())

	// freed slot is reused without disturbing the others
	e := mk("E")
	r.Insert(e, v[0])
	assert.Equal(t, []string{"A", "E", "C"}, titles(r))

	r.Remove(v[0])
	r.Remove(e)
	r.Remove(v[2])
	assert.Equal(t, 0, r.Count())
	assert.Nil(t, r.Front())
	assert.Nil(t, r.Back())
}

func TestRegistryCycling(t *testing.T) {
	r, v := build("A", "B", "C")
	a, b, c := v[0], v[1], v[2]

	assert.Equal(t, a, r.Previous(b, false))
	assert.Equal(t, b, r.Next(a, false))
	assert.Equal(t, c, r.Next(r.Next(a, false), false))
	assert.Equal(t, c, r.Next(c, false), "boundary without wrap returns the view itself")
	assert.Equal(t, a, r.Next(c, true))
	assert.Equal(t, a, r.Previous(a, false))
	assert.Equal(t, c, r.Previous(a, true))

	stray := mk("stray")
	assert.Equal(t, stray, r.Next(stray, true))
}

func TestRegistryCycleClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewRegistry()
	var members []*View

	for step := 0; step < 300; step++ {
		if len(members) == 0 || rng.Intn(3) > 0 {
			var anchor *View
			if len(members) > 0 {
				anchor = members[rng.Intn(len(members))]
			}
			v := mk("v")
			r.Insert(v, anchor)
			members = append(members, v)
		} else {
			i := rng.Intn(len(members))
			r.Remove(members[i])
			members = append(members[:i], members[i+1:]...)
		}

		require.Equal(t, len(members), r.Count())
		for _, start := range members {
			fwd, back := start, start
			for i := 0; i < r.Count(); i++ {
				fwd = r.Next(fwd, true)
				back = r.Previous(back, true)
				require.True(t, r.Contains(fwd))
				require.True(t, r.Contains(back))
			}
			require.Equal(t, start, fwd)
			require.Equal(t, start, back)
		}
	}
}

func TestRegistryReorder(t *testing.T) {
	tests := []struct {
		name    string
		move    int
		forward bool
		want    []string
	}{
		{name: "forward from middle", move: 1, forward: true, want: []string{"A", "C", "B"}},
		{name: "forward from tail wraps to head", move: 2, forward: true, want: []string{"C", "A", "B"}},
		{name: "backward from middle", move: 1, forward: false, want: []string{"B", "A", "C"}},
		{name: "backward from head wraps to tail", move: 0, forward: false, want: []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, v := build("A", "B", "C")
			if tt.forward {
				r.MoveForward(v[tt.move])
			} else {
				r.MoveBackward(v[tt.move])
			}
			assert.Equal(t, tt.want, titles(r))
			assert.Equal(t, 3, r.Count())
		})
	}

	t.Run("single member is untouched", func(t *testing.T) {
		r, v := build("A")
		r.MoveForward(v[0])
		r.MoveBackward(v[0])
		assert.Equal(t, []string{"A"}, titles(r))
	})
}

func TestRegistryMoveToTop(t *testing.T) {
	r, v := build("A", "B")
	r.MoveToTop(v[0])
	assert.Equal(t, 1, v[0].Node.(*stubNode).raised)
	assert.Equal(t, []string{"A", "B"}, titles(r), "raising does not change the cycle order")

	stray := mk("stray")
	r.MoveToTop(stray)
	assert.Equal(t, 0, stray.Node.(*stubNode).raised)
}
