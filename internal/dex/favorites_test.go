package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesToggle(t *testing.T) {
	var f Favorites

	assert.True(t, f.Toggle(3))
	assert.True(t, f.Toggle(1))
	assert.True(t, f.Has(3))
	assert.Equal(t, []int{3, 1}, f.IDs())

	assert.False(t, f.Toggle(3))
	assert.False(t, f.Has(3))
	assert.Equal(t, []int{1}, f.IDs())
	assert.Equal(t, 1, f.Len())
}

func TestFavoritesToggleTwiceIsIdentity(t *testing.T) {
	var f Favorites
	f.Toggle(10)
	f.Toggle(20)
	before := f.IDs()

	for _, id := range []int{10, 20, 30} {
		f.Toggle(id)
		f.Toggle(id)
		assert.ElementsMatch(t, before, f.IDs())
	}
}

func TestFavoritesIDsIsACopy(t *testing.T) {
	var f Favorites
	assert.NotNil(t, f.IDs())

	f.Toggle(1)
	ids := f.IDs()
	ids[0] = 99
	assert.True(t, f.Has(1))
}
