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

// FuncOption is the interface that applies a FuncActor option.
type FuncOption[M any] interface {
	// Apply sets the Option value of a config.
	Apply(actor *FuncActor[M])
}

var _ FuncOption[any] = funcOption[any](nil)

// funcOption implements the FuncOption interface.
type funcOption[M any] func(actor *FuncActor[M])

// Apply implementation
func (f funcOption[M]) Apply(actor *FuncActor[M]) {
	f(actor)
}

// WithInit defines the Init hook
func WithInit[M any](fn func(*Context[M])) FuncOption[M] {
	return funcOption[M](func(actor *FuncActor[M]) {
		actor.init = fn
	})
}

// WithStopping defines the Stopping hook
func WithStopping[M any](fn func(*Context[M]) StoppingResult) FuncOption[M] {
	return funcOption[M](func(actor *FuncActor[M]) {
		actor.stopping = fn
	})
}

// WithStopped defines the Stopped hook
func WithStopped[M any](fn func(*StoppedContext[M])) FuncOption[M] {
	return funcOption[M](func(actor *FuncActor[M]) {
		actor.stopped = fn
	})
}

// FuncActor is an actor built from functions. Hooks left unset behave
// like Base.
type FuncActor[M any] struct {
	run      func(*Context[M])
	init     func(*Context[M])
	stopping func(*Context[M]) StoppingResult
	stopped  func(*StoppedContext[M])
}

// enforce compilation error
var _ Actor[any] = (*FuncActor[any])(nil)

// NewFuncActor creates an instance of FuncActor calling run on every step
func NewFuncActor[M any](run func(*Context[M]), opts ...FuncOption[M]) *FuncActor[M] {
	actor := &FuncActor[M]{run: run}
	for _, opt := range opts {
		opt.Apply(actor)
	}
	return actor
}

// Init calls the Init hook when set
func (x *FuncActor[M]) Init(ctx *Context[M]) {
	if x.init != nil {
		x.init(ctx)
	}
}

// Run calls the run function
func (x *FuncActor[M]) Run(ctx *Context[M]) {
	x.run(ctx)
}

// Stopping calls the Stopping hook when set, otherwise returns Stop
func (x *FuncActor[M]) Stopping(ctx *Context[M]) StoppingResult {
	if x.stopping != nil {
		return x.stopping(ctx)
	}
	return Stop
}

// Stopped calls the Stopped hook when set
func (x *FuncActor[M]) Stopped(ctx *StoppedContext[M]) {
	if x.stopped != nil {
		x.stopped(ctx)
	}
}
