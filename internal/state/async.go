// Package state holds the client-side containers for server-mirrored
// data. Each named asynchronous operation owns an Async slot with three
// observable phases: start (loading on, error cleared), success (data
// replaced, error cleared), failure (error recorded, prior data kept).
//
// Concurrent dispatches of the same operation are not deduplicated: the
// container reflects whichever response lands last. That is an accepted
// limitation of the design, not a guarantee.
package state

// Async is the shared {data, isLoading, error} shape. The phase methods
// are reducers: they map the previous value to the next one without
// touching anything else, independent of how the async work is run.
type Async[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Start marks the operation in flight and clears any stale error.
func (a Async[T]) Start() Async[T] {
	a.Loading = true
	a.Err = ""
	return a
}

// Succeed replaces the data and clears loading and error.
func (a Async[T]) Succeed(data T) Async[T] {
	a.Data = data
	a.Loading = false
	a.Err = ""
	return a
}

// Fail records a user-displayable error and leaves prior data untouched.
func (a Async[T]) Fail(msg string) Async[T] {
	a.Loading = false
	a.Err = msg
	return a
}
