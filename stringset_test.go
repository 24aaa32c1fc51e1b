package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSetOrderAndDedupe(t *testing.T) {
	ss := NewStringSet("b", "a", "b", "c", "a")

	assert.Equal(t, 3, ss.Len())
	assert.Equal(t, []string{"b", "a", "c"}, ss.Strings(), "iteration order is first-insertion order")

	assert.False(t, ss.Add("c"), "re-adding a member reports false")
	assert.True(t, ss.Add("d"))
	assert.Equal(t, []string{"b", "a", "c", "d"}, ss.Strings())
}

func TestStringSetHas(t *testing.T) {
	ss := NewStringSet("x")
	assert.True(t, ss.Has("x"))
	assert.False(t, ss.Has("y"))
	assert.False(t, NewStringSet().Has(""))
}

func TestStringSetEqualIgnoresOrder(t *testing.T) {
	a := NewStringSet("x", "yz")
	b := NewStringSet("yz", "x")
	c := NewStringSet("x")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.True(t, NewStringSet().Equal(NewStringSet()))
}

func TestStringSetZeroValue(t *testing.T) {
	var ss StringSet
	assert.Zero(t, ss.Len())
	assert.True(t, ss.Add("late"))
	assert.True(t, ss.Has("late"))
}
