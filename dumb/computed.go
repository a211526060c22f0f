package dumb

import "fmt"

// computedCell is the evaluation state machine shared by computeds and
// effects: a dirty flag, the upstream signals read during the last run, and
// whether the cell exposes a value to readers (effects do not).
type computedCell struct {
	rs      *ReactiveSystem
	compute func()
	deps    orderedSet[dependency]
	dirty   bool
	expose  bool
}

// invalidate marks the cell dirty. Outside a batch, effects re-run
// immediately while exposing computeds stay lazy until the next read. Inside a
// batch the cell is enqueued instead, at most once.
func (c *computedCell) invalidate() {
	c.dirty = true
	if c.rs.batchDepth > 0 {
		c.rs.pending.add(c)
		return
	}
	if !c.expose {
		c.run()
	}
}

func (c *computedCell) stale() bool {
	return c.dirty
}

func (c *computedCell) addDep(dep dependency) {
	c.deps.add(dep)
}

// run re-evaluates a dirty cell. The dirty flag is cleared before the producer
// is invoked, so a re-entrant invalidation during evaluation flips it back
// instead of being lost. Stale upstream edges are torn down on both sides
// first: a cell that stops reading a signal is genuinely unsubscribed from it.
func (c *computedCell) run() {
	if !c.dirty {
		return
	}
	c.dirty = false
	for _, dep := range c.deps.drain() {
		dep.removeSub(c)
	}
	prev := c.rs.computing
	c.rs.computing = c
	defer func() { c.rs.computing = prev }()
	c.compute()
}

// ReadonlySignal is a derived value: lazily recomputed on read, cached in
// between, with its dependencies discovered from whatever the getter reads.
type ReadonlySignal[T comparable] struct {
	cell  computedCell
	value T
}

func Computed[T comparable](rs *ReactiveSystem, getter func() T) *ReadonlySignal[T] {
	c := &ReadonlySignal[T]{}
	c.cell = computedCell{
		rs:     rs,
		dirty:  true,
		expose: true,
		compute: func() {
			c.value = getter()
		},
	}
	return c
}

// Value recomputes if dirty and returns the cached result. If an outer
// computation is evaluating, the signals this computed just read are handed
// over to it directly: consumers subscribe to the leaf signals, never to the
// computed itself, so invalidation always originates at a value-changing
// signal.
func (c *ReadonlySignal[T]) Value() T {
	c.cell.run()
	rs := c.cell.rs
	if rs.tracking && rs.computing != nil {
		for _, dep := range c.cell.deps.drain() {
			rs.track(dep)
		}
	}
	return c.value
}

// Peek recomputes if dirty and returns the cached result without handing any
// edges to an outer computation.
func (c *ReadonlySignal[T]) Peek() T {
	c.cell.run()
	return c.value
}

func (c *ReadonlySignal[T]) String() string {
	return fmt.Sprintf("Computed(%v)", c.value)
}
