// Package async drives long-running user actions through an explicit
// pending/settled state machine. One Operation instance guards one workflow
// action; at most one invocation is in flight at a time.
package async

import (
	"context"
	"sync"
)

// Status enumerates the lifecycle of an operation.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is a snapshot of an operation. Result is meaningful only when Status
// is StatusSucceeded, Err only when StatusFailed; the remaining combinations
// are unrepresentable by construction.
type State[T any] struct {
	Status Status
	Result T
	Err    error
}

// Settled reports whether the operation finished (successfully or not).
func (s State[T]) Settled() bool {
	return s.Status == StatusSucceeded || s.Status == StatusFailed
}

// Operation is the reusable controller. The zero value is not usable; create
// instances with New.
type Operation[T any] struct {
	mu           sync.Mutex
	state        State[T]
	onTransition func(State[T])
}

func New[T any]() *Operation[T] {
	return &Operation[T]{}
}

// OnTransition registers a hook observing every state change, in order. The
// hook runs on the goroutine driving the operation.
func (o *Operation[T]) OnTransition(fn func(State[T])) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onTransition = fn
}

// State returns the current snapshot.
func (o *Operation[T]) State() State[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Run transitions to Pending and invokes fn synchronously, settling to
// Succeeded or Failed with fn's outcome. If the operation is already Pending,
// Run is a no-op: it returns the current state and fn is not invoked. A
// settled operation may be re-run directly, without passing through Idle.
//
// The controller imposes no timeout; callers wanting one wrap ctx and the
// cancellation surfaces here as a Failed state.
func (o *Operation[T]) Run(ctx context.Context, fn func(ctx context.Context) (T, error)) State[T] {
	o.mu.Lock()
	if o.state.Status == StatusPending {
		st := o.state
		o.mu.Unlock()
		return st
	}
	o.state = State[T]{Status: StatusPending}
	hook := o.onTransition
	pending := o.state
	o.mu.Unlock()

	if hook != nil {
		hook(pending)
	}

	result, err := fn(ctx)

	o.mu.Lock()
	if err != nil {
		o.state = State[T]{Status: StatusFailed, Err: err}
	} else {
		o.state = State[T]{Status: StatusSucceeded, Result: result}
	}
	settled := o.state
	hook = o.onTransition
	o.mu.Unlock()

	if hook != nil {
		hook(settled)
	}
	return settled
}

// Reset returns a settled or idle operation to Idle, discarding any result.
// Resetting while Pending is ignored; the in-flight invocation keeps the
// exclusive right to settle the state.
func (o *Operation[T]) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Status == StatusPending {
		return
	}
	o.state = State[T]{}
}
