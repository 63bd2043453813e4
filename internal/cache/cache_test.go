package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID    string
	Title string
}

func (r rec) Key() string { return r.ID }

func seeded() *Cache[rec] {
	c := New[rec]()
	c.ReplaceAll([]rec{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
		{ID: "c", Title: "third"},
	})
	return c
}

func TestPrependOrder(t *testing.T) {
	c := seeded()
	c.Prepend(rec{ID: "new", Title: "newest"})

	all := c.All()
	require.Len(t, all, 4)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, []string{"new", "a", "b", "c"}, ids(all))
}

func TestPatchChangesExactlyOneEntry(t *testing.T) {
	c := seeded()
	before := c.All()

	require.NoError(t, c.Patch("b", rec{ID: "b", Title: "updated"}))

	after := c.All()
	require.Len(t, after, len(before))
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, "updated", after[1].Title)
}

func TestPatchMissIsSurfaced(t *testing.T) {
	c := seeded()
	before := c.All()

	err := c.Patch("nope", rec{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, c.All())
}

func TestRemove(t *testing.T) {
	c := seeded()
	require.NoError(t, c.Remove("b"))

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Has("b"))

	// removing again fails predictably
	assert.ErrorIs(t, c.Remove("b"), ErrNotFound)
}

func TestClear(t *testing.T) {
	c := seeded()
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}

func TestGet(t *testing.T) {
	c := seeded()

	got, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, "third", got.Title)

	_, ok = c.Get("zzz")
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	c := seeded()

	all := c.All()
	all[0] = rec{ID: "mutated"}

	fresh := c.All()
	assert.Equal(t, "a", fresh[0].ID)
}

func TestReplaceAllCopiesInput(t *testing.T) {
	c := New[rec]()
	items := []rec{{ID: "x"}}
	c.ReplaceAll(items)

	items[0] = rec{ID: "mutated"}
	got, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, "x", got.ID)
}

func ids(items []rec) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
