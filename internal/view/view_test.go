package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopupResolution(t *testing.T) {
	parent := mk("parent")
	first := mk("first")
	second := mk("second")
	first.SetParent(parent)
	second.SetParent(parent)

	assert.Equal(t, parent, parent.ActivePopup(), "no mapped children")

	first.Attach()
	second.Attach()
	assert.Equal(t, second, parent.ActivePopup())

	first.Promote()
	assert.Equal(t, first, parent.ActivePopup())

	nested := mk("nested")
	nested.SetParent(first)
	nested.Attach()
	assert.Equal(t, nested, parent.ActivePopup())
	assert.Equal(t, parent, nested.Root())

	nested.Detach()
	first.Detach()
	assert.Equal(t, second, parent.ActivePopup())
	assert.Equal(t, []*View{second}, parent.Children())
}

func TestOrphan(t *testing.T) {
	parent := mk("parent")
	child := mk("child")
	child.SetParent(parent)
	child.Attach()

	parent.Orphan()
	assert.False(t, child.IsPopup())
	assert.Empty(t, parent.Children())
}

func TestMoveAndResize(t *testing.T) {
	v := mk("A")
	v.Move(10, 20)
	v.Resize(300, 200)

	n := v.Node.(*stubNode)
	tl := v.Toplevel.(*stubToplevel)
	assert.Equal(t, 10, n.x)
	assert.Equal(t, 20, n.y)
	assert.Equal(t, 300, tl.w)
	assert.Equal(t, 200, tl.h)
	assert.Equal(t, 10, v.X)
	assert.Equal(t, 200, v.Height)

	assert.False(t, v.UsesWholeScreen())
	tl.maximized = true
	assert.True(t, v.UsesWholeScreen())
}
