package dumb

// CleanupFn is returned by an effect callback and invoked before the next run
// and on disposal.
type CleanupFn func()

// EffectFn is an effect callback. Return nil when there is nothing to clean
// up.
type EffectFn func() CleanupFn

// StopFn disposes an effect.
type StopFn func()

type effectRunner struct {
	cell    computedCell
	fn      EffectFn
	cleanup CleanupFn
}

func (e *effectRunner) runCallback() {
	if e.cleanup != nil {
		e.cleanup()
	}
	e.cleanup = e.fn()
}

func (e *effectRunner) stop() {
	for _, dep := range e.cell.deps.drain() {
		dep.removeSub(&e.cell)
	}
	// A flush may still hold the cell in its queue; a clean cell is skipped.
	e.cell.dirty = false
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// Effect runs fn immediately, re-runs it whenever a signal it read changes
// (once per batch when batching), and returns a disposer that severs every
// subscription and invokes the last cleanup. A disposed effect never runs
// again.
func Effect(rs *ReactiveSystem, fn EffectFn) StopFn {
	e := &effectRunner{fn: fn}
	e.cell = computedCell{
		rs:      rs,
		dirty:   true,
		compute: e.runCallback,
	}
	e.cell.run()
	return e.stop
}
