package dumb

// subscriber is a computed or effect cell reachable from a signal's dependent
// list. invalidate is the notification hook called when an upstream value
// changes; stale reports whether the cell still needs a run at flush time.
type subscriber interface {
	invalidate()
	stale() bool
}

// dependency is anything a computation can subscribe to, i.e. a signal.
type dependency interface {
	addSub(subscriber)
	removeSub(subscriber)
}

// computation is a cell that can be the currently evaluating one, collecting
// the dependencies it reads.
type computation interface {
	subscriber
	addDep(dependency)
}
