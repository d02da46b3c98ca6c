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

// StoppingResult is the verdict returned by Actor.Stopping
type StoppingResult int

const (
	// Stop leaves the run loop for good. Stopped is called next.
	Stop StoppingResult = iota
	// Recover clears the stop flag and resumes the run loop
	Recover
)

// String returns the name of the verdict
func (r StoppingResult) String() string {
	switch r {
	case Stop:
		return "stop"
	case Recover:
		return "recover"
	default:
		return "unknown"
	}
}

// Actor is the contract a user type implements to be driven by the Agency.
// M is the type of messages the actor accepts, usually an interface
// implemented by every message struct the actor handles.
//
// All callbacks of a given actor run on the same goroutine, one at a time,
// in the following order: Init once, Run repeatedly until Context.Stop is
// called, Stopping, then either Run again (Recover) or Stopped once (Stop).
type Actor[M any] interface {
	// Init is called once before the first Run
	Init(ctx *Context[M])
	// Run performs one step, typically handling one message read with
	// Context.Message. It is called again as long as the actor is not stopped.
	Run(ctx *Context[M])
	// Stopping is called once the run loop exited
	Stopping(ctx *Context[M]) StoppingResult
	// Stopped is called once, after the mailbox has been closed to senders.
	// Messages still queued can be read with StoppedContext.Drain.
	Stopped(ctx *StoppedContext[M])
}

// Setup builds an actor on its own goroutine, before Init is called.
// Returning a nil actor or an error skips the whole lifecycle; the address
// handed out by HireWith then reports ErrDead once the goroutine exited.
type Setup[M, A any] func(ctx *Context[M], args A) (Actor[M], error)

// Base provides the default lifecycle callbacks. Embed it and implement Run.
type Base[M any] struct{}

// Init does nothing
func (Base[M]) Init(*Context[M]) {}

// Stopping returns Stop
func (Base[M]) Stopping(*Context[M]) StoppingResult {
	return Stop
}

// Stopped does nothing
func (Base[M]) Stopped(*StoppedContext[M]) {}
