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

	"go.uber.org/atomic"

	"github.com/AircastDev/agency/errors"
	"github.com/AircastDev/agency/log"
)

// environment is the read-only surface shared by Context and StoppedContext
type environment[M any] struct {
	ctx    context.Context
	self   Addr[M]
	agency *Agency
	logger log.Logger
}

// Context returns the base context the Agency was created with
func (e *environment[M]) Context() context.Context {
	return e.ctx
}

// Address returns the address of the actor
func (e *environment[M]) Address() Addr[M] {
	return e.self
}

// Agency returns the Agency the actor was hired from.
// Use it to hire further actors.
func (e *environment[M]) Agency() *Agency {
	return e.agency
}

// Logger returns the actor's logger, carrying its name and identifier
func (e *environment[M]) Logger() log.Logger {
	return e.logger
}

// Context is the runtime view an actor gets while it is running.
// It is owned by the actor's goroutine and must not be shared.
type Context[M any] struct {
	*environment[M]

	mailbox *mailbox[M]
	stopped *atomic.Bool
	demoted *atomic.Bool
}

func newContext[M any](ctx context.Context, self Addr[M], agency *Agency, logger log.Logger) *Context[M] {
	return &Context[M]{
		environment: &environment[M]{
			ctx:    ctx,
			self:   self,
			agency: agency,
			logger: logger,
		},
		mailbox: self.mailbox,
		stopped: atomic.NewBool(false),
		demoted: atomic.NewBool(false),
	}
}

// Message returns the next message. Priority messages always come first;
// when none is pending it blocks until a message arrives.
// It panics once the actor reached Stopped.
func (c *Context[M]) Message() M {
	c.mustRun("Message")
	return c.mailbox.receive()
}

// Notify enqueues a message to the actor itself in the priority queue.
// It never blocks. It panics once the actor reached Stopped.
func (c *Context[M]) Notify(msg M) {
	c.mustRun("Notify")
	if err := c.mailbox.sendPriority(msg); err != nil {
		panic(errors.NewInvariantError("notify %s: %v", c.self, err))
	}
}

// Stop asks the run loop to exit once the current Run call returns
func (c *Context[M]) Stop() {
	c.stopped.Store(true)
}

// IsStopped reports whether Stop has been called since the last
// (re)entry into the run loop
func (c *Context[M]) IsStopped() bool {
	return c.stopped.Load()
}

func (c *Context[M]) resume() {
	c.stopped.Store(false)
}

// demote closes the mailbox to senders and hands out the stopped view.
// The Context is unusable for mailbox access afterwards.
func (c *Context[M]) demote() *StoppedContext[M] {
	if !c.demoted.CompareAndSwap(false, true) {
		panic(errors.NewInvariantError("%s demoted twice", c.self))
	}
	c.mailbox.close()
	return &StoppedContext[M]{
		environment: c.environment,
		mailbox:     c.mailbox,
	}
}

func (c *Context[M]) mustRun(op string) {
	if c.demoted.Load() {
		panic(errors.NewInvariantError("%s called on stopped actor %s", op, c.self))
	}
}

// StoppedContext is the view handed to Actor.Stopped.
// The mailbox is closed to senders; what is left can only be drained.
type StoppedContext[M any] struct {
	*environment[M]

	mailbox *mailbox[M]
}

// Drain returns every message left in the mailbox, priority messages
// first, each queue in FIFO order. Later calls return an empty slice.
func (c *StoppedContext[M]) Drain() []M {
	return c.mailbox.drain()
}
