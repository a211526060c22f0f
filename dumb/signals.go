package dumb

import "fmt"

// WriteableSignal is a mutable value cell that records which computations read
// it, so they can be invalidated when it changes.
type WriteableSignal[T comparable] struct {
	rs    *ReactiveSystem
	value T
	subs  orderedSet[subscriber]
}

func Signal[T comparable](rs *ReactiveSystem, initialValue T) *WriteableSignal[T] {
	return &WriteableSignal[T]{rs: rs, value: initialValue}
}

// Value returns the current value. If a computation is evaluating and tracking
// is on, that computation is subscribed to this signal.
func (s *WriteableSignal[T]) Value() T {
	s.rs.track(s)
	return s.value
}

// Peek returns the current value without registering a dependency edge.
func (s *WriteableSignal[T]) Peek() T {
	return s.value
}

// SetValue stores v and invalidates every current dependent. Change detection
// is Go's == on T, so writing a value equal to the current one is a no-op even
// when the two are distinct instances of a value type (two equal strings, say).
// The dependent list is drained before notifying: each
// dependent starts from a clean slate and re-subscribes only if its next
// evaluation still reads this signal.
func (s *WriteableSignal[T]) SetValue(v T) {
	if s.value == v {
		return
	}
	s.value = v
	for _, sub := range s.subs.drain() {
		sub.invalidate()
	}
}

// Update writes the result of fn applied to the current value. The read does
// not register a dependency edge.
func (s *WriteableSignal[T]) Update(fn func(value T) T) {
	s.SetValue(fn(s.value))
}

func (s *WriteableSignal[T]) String() string {
	return fmt.Sprintf("Signal(%v)", s.value)
}

func (s *WriteableSignal[T]) addSub(sub subscriber) {
	s.subs.add(sub)
}

func (s *WriteableSignal[T]) removeSub(sub subscriber) {
	s.subs.remove(sub)
}
