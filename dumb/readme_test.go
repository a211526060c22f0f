package dumb_test

import (
	"testing"

	"github.com/delaneyj/dumbsignals/dumb"
	"github.com/stretchr/testify/assert"
)

// from README
func TestBasicUsage(t *testing.T) {
	rs := dumb.NewReactiveSystem()
	count := dumb.Signal(rs, 1)
	doubleCount := dumb.Computed(rs, func() int {
		return count.Value() * 2
	})

	assert.Equal(t, 2, doubleCount.Value())
	count.SetValue(2)
	assert.Equal(t, 4, doubleCount.Value())
}

// from README
func TestBasicEffect(t *testing.T) {
	rs := dumb.NewReactiveSystem()
	count := dumb.Signal(rs, 1)

	callCount := 0
	stop := dumb.Effect(rs, func() dumb.CleanupFn {
		count.Value()
		callCount++
		return nil
	})
	assert.Equal(t, 1, callCount)

	count.SetValue(2)
	assert.Equal(t, 2, callCount)

	stop()
	count.SetValue(3) // no longer reacting
	assert.Equal(t, 2, callCount)
}
