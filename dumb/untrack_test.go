package dumb_test

import (
	"testing"

	"github.com/delaneyj/dumbsignals/dumb"
	"github.com/stretchr/testify/assert"
)

// should pause tracking
func TestShouldPauseTracking(t *testing.T) {
	rs := dumb.NewReactiveSystem()

	src := dumb.Signal(rs, 0)
	c := dumb.Computed(rs, func() int {
		rs.PauseTracking()
		value := src.Value()
		rs.ResumeTracking()
		return value
	})
	assert.Equal(t, 0, c.Value())

	src.SetValue(1)
	assert.Equal(t, 0, c.Value())
}

func TestUntrackedReturnsValue(t *testing.T) {
	rs := dumb.NewReactiveSystem()
	a := dumb.Signal(rs, 7)

	got := dumb.Untracked(rs, func() int {
		return a.Value() * 3
	})
	assert.Equal(t, 21, got)
}

func TestUntrackedRestoresOnPanic(t *testing.T) {
	rs := dumb.NewReactiveSystem()
	a := dumb.Signal(rs, 1)

	assert.Panics(t, func() {
		rs.Untracked(func() {
			panic("boom")
		})
	})

	// tracking must be back on
	runs := 0
	dumb.Effect(rs, func() dumb.CleanupFn {
		a.Value()
		runs++
		return nil
	})
	a.SetValue(2)
	assert.Equal(t, 2, runs)
}
