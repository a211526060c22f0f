package dumb

// ReactiveSystem owns the state the engine carries between calls: the
// currently evaluating cell, whether reads register dependency edges, whether
// invalidation propagates immediately or is deferred, and the queue of cells
// waiting for a batch flush. Everything is mutated from a single logical
// thread; a ReactiveSystem is not safe for concurrent use.
type ReactiveSystem struct {
	computing  computation
	tracking   bool
	pauseStack []bool
	batchDepth int
	pending    orderedSet[subscriber]
}

func NewReactiveSystem() *ReactiveSystem {
	return &ReactiveSystem{tracking: true}
}

// track registers the two-way edge between dep and the currently evaluating
// cell, if there is one and tracking is on.
func (rs *ReactiveSystem) track(dep dependency) {
	if !rs.tracking || rs.computing == nil {
		return
	}
	rs.computing.addDep(dep)
	dep.addSub(rs.computing)
}

func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes the innermost batch. Closing the outermost one flushes the
// pending queue in enqueue order, running each still-dirty cell once.
func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

// Batch runs fn with invalidation deferred, settling everything in one pass
// afterwards. Nested calls degrade to plain execution; only the outermost
// batch flushes. Immediate mode is restored even if fn panics, but the flush
// itself only happens on a normal return, so cells enqueued before a panic
// stay pending until the next flush.
func (rs *ReactiveSystem) Batch(fn func()) {
	if rs.batchDepth > 0 {
		fn()
		return
	}
	rs.batchDepth++
	defer func() { rs.batchDepth = 0 }()
	fn()
	rs.batchDepth = 0
	rs.flush()
}

// flush runs with immediate mode already restored: a cell invalidated
// mid-flush follows immediate-mode rules and is not re-enqueued into the
// drained snapshot.
func (rs *ReactiveSystem) flush() {
	for _, sub := range rs.pending.drain() {
		if sub.stale() {
			sub.invalidate()
		}
	}
}

// PauseTracking stops reads from registering dependency edges until the
// matching ResumeTracking. Calls nest.
func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.tracking)
	rs.tracking = false
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	rs.tracking = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untracked runs fn with dependency registration suppressed; reads inside
// still see current values. Tracking state is restored even if fn panics.
func (rs *ReactiveSystem) Untracked(fn func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	fn()
}

// Untracked is the variant for callbacks that produce a value.
func Untracked[T any](rs *ReactiveSystem, fn func() T) T {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	return fn()
}
