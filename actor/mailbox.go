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

package actor

import (
	"context"
	"fmt"
	"sync"

	gods "github.com/Workiva/go-datastructures/queue"

	"github.com/AircastDev/agency/errors"
)

// MailboxCapacity is the number of normal messages an actor can hold
// before senders block.
const MailboxCapacity = 16

// mailbox holds the two queues of an actor.
//
// The normal queue is bounded and applies backpressure to senders.
// The priority queue is unbounded and never blocks; it is read first on
// every poll. Only the actor's driving goroutine reads from a mailbox and
// only that goroutine closes it.
type mailbox[M any] struct {
	normal   chan M
	priority *gods.Queue
	// wake holds at most one token telling a parked reader that a
	// priority message arrived
	wake chan struct{}

	// done is closed when the mailbox stops accepting messages
	done chan struct{}
	// exited is closed once the driving goroutine returned
	exited chan struct{}

	// senders hold the read side while enqueuing so that close can wait
	// for in-flight sends to land before the remainder is drained
	barrier   sync.RWMutex
	closeOnce sync.Once
	drained   bool
}

func newMailbox[M any]() *mailbox[M] {
	return &mailbox[M]{
		normal:   make(chan M, MailboxCapacity),
		priority: gods.New(MailboxCapacity),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// send enqueues into the bounded queue, blocking while it is full.
func (m *mailbox[M]) send(ctx context.Context, msg M) error {
	m.barrier.RLock()
	defer m.barrier.RUnlock()

	select {
	case <-m.done:
		return errors.ErrDead
	default:
	}

	select {
	case m.normal <- msg:
		return nil
	default:
	}

	select {
	case m.normal <- msg:
		return nil
	case <-m.done:
		return errors.ErrDead
	case <-ctx.Done():
		return fmt.Errorf("send interrupted: %w", ctx.Err())
	}
}

// sendPriority enqueues into the unbounded queue.
func (m *mailbox[M]) sendPriority(msg M) error {
	m.barrier.RLock()
	defer m.barrier.RUnlock()

	select {
	case <-m.done:
		return errors.ErrDead
	default:
	}

	if err := m.priority.Put(msg); err != nil {
		return errors.ErrDead
	}

	select {
	case m.wake <- struct{}{}:
	default:
	}
	return nil
}

// receive returns the oldest priority message when there is one.
// Otherwise it parks until a normal message arrives, waking up early
// when a priority message is pushed.
func (m *mailbox[M]) receive() M {
	for {
		if msg, ok := m.popPriority(); ok {
			return msg
		}

		select {
		case msg := <-m.normal:
			return msg
		case <-m.wake:
		case <-m.done:
			panic(errors.NewInvariantError("mailbox closed while its actor is running"))
		}
	}
}

func (m *mailbox[M]) popPriority() (msg M, ok bool) {
	if m.priority.Empty() {
		return msg, false
	}

	// single consumer: a non-empty queue never blocks Get
	items, err := m.priority.Get(1)
	if err != nil || len(items) == 0 {
		return msg, false
	}

	msg, _ = items[0].(M)
	return msg, true
}

// close stops accepting messages and waits for in-flight sends to finish.
// It is idempotent.
func (m *mailbox[M]) close() {
	m.closeOnce.Do(func() {
		close(m.done)
		// wait for in-flight senders
		m.barrier.Lock()
		m.barrier.Unlock() // nolint
	})
}

// drain returns every message left, priority ones first.
// It must be called after close. Later calls return nothing.
func (m *mailbox[M]) drain() []M {
	if m.drained {
		return nil
	}
	m.drained = true

	messages := make([]M, 0, int(m.priority.Len())+len(m.normal))
	for {
		msg, ok := m.popPriority()
		if !ok {
			break
		}
		messages = append(messages, msg)
	}

	for {
		select {
		case msg := <-m.normal:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}

// shutdown releases the mailbox once the driving goroutine is done with it
func (m *mailbox[M]) shutdown() {
	m.close()
	m.priority.Dispose()
	close(m.exited)
}

func (m *mailbox[M]) isClosed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}
