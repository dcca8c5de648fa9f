package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, Width: 100, Height: 50}

	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(109.5, 59.5))
	assert.False(t, b.Contains(110, 30))
	assert.False(t, b.Contains(50, 60))
	assert.False(t, b.Contains(9.9, 30))
	assert.True(t, Box{Width: 0, Height: 4}.Empty())
}

func TestEdges(t *testing.T) {
	e := EdgeBottom | EdgeRight

	assert.True(t, e.Has(EdgeBottom))
	assert.True(t, e.Has(EdgeRight))
	assert.False(t, e.Has(EdgeTop))
	assert.False(t, e.Has(EdgeNone))
	assert.Equal(t, "bottom|right", e.String())
	assert.Equal(t, "none", EdgeNone.String())
	assert.Equal(t, "top|bottom|left|right", EdgeAll.String())
}
