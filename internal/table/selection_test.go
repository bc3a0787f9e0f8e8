package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection("a")

	s = s.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	s = s.Toggle("a")
	assert.Equal(t, []string{"b"}, s.IDs())
	assert.False(t, s.Has("a"))
}

func TestSelectionToggleTwiceRestores(t *testing.T) {
	for _, start := range []Selection{{}, NewSelection("x"), NewSelection("x", "y")} {
		for _, id := range []string{"x", "z"} {
			again := start.Toggle(id).Toggle(id)
			assert.Equal(t, start.Has(id), again.Has(id))
			assert.Equal(t, start.Len(), again.Len())
		}
	}
}

func TestSelectAllReplaces(t *testing.T) {
	s := NewSelection("old")

	s = s.SelectAll(true, []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, s.IDs(), "select all is not a union")

	s = s.SelectAll(true, []string{"c"})
	assert.Equal(t, []string{"c"}, s.IDs())

	s = s.SelectAll(false, []string{"c"})
	assert.Equal(t, 0, s.Len())
}

func TestSelectAllThenNone(t *testing.T) {
	ids := []string{"1", "2", "3"}
	s := NewSelection("9").SelectAll(true, ids).SelectAll(false, ids)
	assert.Empty(t, s.IDs())
}

func TestSelectionIsImmutable(t *testing.T) {
	s := NewSelection("a", "b")
	_ = s.Toggle("c")
	_ = s.Toggle("a")
	_ = s.Clear()

	ids := s.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

func TestSelectionRetainAndHasAll(t *testing.T) {
	s := NewSelection("a", "b", "c", "a")
	assert.Equal(t, 3, s.Len(), "duplicates are dropped")

	s = s.Retain([]string{"c", "a", "z"})
	assert.Equal(t, []string{"a", "c"}, s.IDs())

	assert.True(t, s.HasAll([]string{"c", "a"}))
	assert.False(t, s.HasAll([]string{"a", "b"}))
	assert.False(t, s.HasAll(nil))
}
