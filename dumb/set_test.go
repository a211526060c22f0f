package dumb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSetAddIsIdentityDeduped(t *testing.T) {
	a, b := new(int), new(int)
	*a, *b = 1, 1 // equal values, distinct references

	var s orderedSet[*int]
	s.add(a)
	s.add(b)
	s.add(a)
	assert.Equal(t, 2, s.size())
}

func TestOrderedSetRemove(t *testing.T) {
	a, b, c := new(int), new(int), new(int)

	var s orderedSet[*int]
	s.add(a)
	s.add(b)
	s.remove(c) // absent, no-op
	assert.Equal(t, 2, s.size())

	s.remove(a)
	assert.Equal(t, 1, s.size())
	require.Equal(t, []*int{b}, s.items)
}

func TestOrderedSetDrain(t *testing.T) {
	a, b, c := new(int), new(int), new(int)

	var s orderedSet[*int]
	s.add(b)
	s.add(a)
	s.add(c)
	s.remove(a)

	drained := s.drain()
	require.Equal(t, []*int{b, c}, drained)
	assert.Equal(t, 0, s.size())

	// the snapshot stays valid while the set repopulates
	s.add(a)
	s.add(b)
	require.Equal(t, []*int{b, c}, drained)
	assert.Equal(t, 2, s.size())

	assert.Nil(t, (&orderedSet[*int]{}).drain())
}
