/*
 * MIT License
 *
 * Copyright (c) 2022-2024 Tochemey
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package queue

import (
	"go.uber.org/atomic"

	"github.com/AircastDev/agency/internal/types"
)

// Notifying wraps an MpscQueue with a wake-up channel so that the single
// consumer can park in a select statement until something is pushed.
//
// The signal channel holds at most one pending token: a Push that happens
// after a failed Pop always leaves a token behind, hence no wake-up is lost.
// Once closed, Push rejects new values while Pop keeps returning what was
// already queued.
type Notifying[T any] struct {
	underlying *MpscQueue[T]
	signal     chan types.Unit
	closed     *atomic.Bool
}

// NewNotifying creates an instance of Notifying
func NewNotifying[T any]() *Notifying[T] {
	return &Notifying[T]{
		underlying: NewMpscQueue[T](),
		signal:     make(chan types.Unit, 1),
		closed:     atomic.NewBool(false),
	}
}

// Push enqueues the value and wakes the consumer up.
// It returns false when the queue has been closed; the value is then dropped.
func (q *Notifying[T]) Push(value T) bool {
	if q.closed.Load() {
		return false
	}

	q.underlying.Push(value)
	select {
	case q.signal <- types.Unit{}:
	default:
	}
	return true
}

// Pop removes the value at the front of the queue. Consumer only.
func (q *Notifying[T]) Pop() (T, bool) {
	return q.underlying.Pop()
}

// Signal returns the channel the consumer waits on after an unsuccessful Pop
func (q *Notifying[T]) Signal() <-chan types.Unit {
	return q.signal
}

// Close stops the queue from accepting new values
func (q *Notifying[T]) Close() {
	q.closed.Store(true)
}

// IsClosed reports whether Close has been called
func (q *Notifying[T]) IsClosed() bool {
	return q.closed.Load()
}

// Len returns a snapshot of the number of queued values
func (q *Notifying[T]) Len() int64 {
	return q.underlying.Len()
}
