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
)

// node is a single link of the MpscQueue
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// MpscQueue is a lock-free, unbounded Multi-Producer-Single-Consumer FIFO queue.
//
// Any number of goroutines may call Push concurrently. Pop and IsEmpty
// must only be called from the single consumer goroutine.
//
// reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type MpscQueue[T any] struct {
	// head is touched by producers only
	head atomic.Pointer[node[T]]
	_    [64]byte
	// tail is touched by the consumer only
	tail   *node[T]
	length atomic.Int64
}

// NewMpscQueue creates an instance of MpscQueue
func NewMpscQueue[T any]() *MpscQueue[T] {
	stub := new(node[T])
	q := &MpscQueue[T]{tail: stub}
	q.head.Store(stub)
	return q
}

// Push places the given value at the back of the queue. It never blocks.
func (q *MpscQueue[T]) Push(value T) {
	n := &node[T]{value: value}
	previous := q.head.Swap(n)
	previous.next.Store(n)
	q.length.Inc()
}

// Pop takes the value at the front of the queue.
// Returns false if the queue is empty.
func (q *MpscQueue[T]) Pop() (T, bool) {
	var zero T
	next := q.tail.next.Load()
	if next == nil {
		return zero, false
	}

	q.tail = next
	value := next.value
	next.value = zero
	q.length.Dec()
	return value, true
}

// Len returns a snapshot of the queue length
func (q *MpscQueue[T]) Len() int64 {
	return q.length.Load()
}

// IsEmpty returns true when the queue is empty
func (q *MpscQueue[T]) IsEmpty() bool {
	return q.tail.next.Load() == nil
}
