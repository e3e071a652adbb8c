// Package confined provides a wrapper for values that are logically owned by
// a single goroutine.
//
// Some embedding APIs require values to be typed as safely shareable even
// though, under Graft's single-goroutine host model, they are only ever
// touched by the goroutine that created them. Value makes that confinement
// explicit: any access from a different goroutine panics immediately instead
// of racing. Under normal operation the cross-goroutine path is never taken.
package confined

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// Value holds a T that may only be accessed from the goroutine that created it.
type Value[T any] struct {
	v     T
	owner uint64
}

// Of wraps v, recording the calling goroutine as its owner.
func Of[T any](v T) *Value[T] {
	return &Value[T]{v: v, owner: goroutineID()}
}

// Get returns the wrapped value. It panics if called from a goroutine other
// than the one that created the Value.
func (c *Value[T]) Get() T {
	c.assertOwner()
	return c.v
}

// Valid reports whether the calling goroutine is allowed to access the value.
func (c *Value[T]) Valid() bool {
	return goroutineID() == c.owner
}

// Use invokes fn with the wrapped value, enforcing goroutine ownership.
func (c *Value[T]) Use(fn func(T)) {
	c.assertOwner()
	fn(c.v)
}

func (c *Value[T]) assertOwner() {
	if id := goroutineID(); id != c.owner {
		panic(fmt.Sprintf("confined: value owned by goroutine %d accessed from goroutine %d", c.owner, id))
	}
}

// goroutineID extracts the current goroutine's ID from the stack header.
// The header has the fixed form "goroutine N [state]:".
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		panic("confined: malformed stack header")
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		panic("confined: malformed goroutine id: " + err.Error())
	}
	return id
}
