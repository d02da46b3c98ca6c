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
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"

	gerrors "github.com/AircastDev/agency/errors"
	"github.com/AircastDev/agency/log"
)

// Hire starts the given actor on its own goroutine and returns its address.
// It returns ErrAgencyClosed once the AgencyHandle stopped waiting.
func Hire[M any](agency *Agency, actor Actor[M], opts ...HireOption) (Addr[M], error) {
	return spawn(agency, func(*Context[M]) (Actor[M], error) {
		return actor, nil
	}, opts...)
}

// HireWith builds the actor with setup on its own goroutine, then starts it.
// When setup returns a nil actor or an error, the lifecycle is skipped and
// the returned address reports ErrDead once the goroutine exited.
func HireWith[M, A any](agency *Agency, setup Setup[M, A], args A, opts ...HireOption) (Addr[M], error) {
	return spawn(agency, func(ctx *Context[M]) (Actor[M], error) {
		return setup(ctx, args)
	}, opts...)
}

func spawn[M any](agency *Agency, build func(*Context[M]) (Actor[M], error), opts ...HireOption) (Addr[M], error) {
	config := newHireConfig(opts...)
	if err := config.Validate(); err != nil {
		return Addr[M]{}, err
	}

	id := uuid.New()
	name := config.name
	if name == "" {
		name = id.String()
	}

	addr := Addr[M]{
		id:      id,
		name:    name,
		mailbox: newMailbox[M](),
	}

	t := &task{id: id, name: name}
	// register before the goroutine starts
	if !agency.register(t) {
		return Addr[M]{}, gerrors.ErrAgencyClosed
	}

	logger := agency.logger.With("actor", name, "id", id.String())
	ctx := newContext(agency.ctx, addr, agency, logger)
	go execute(t, ctx, build)
	return addr, nil
}

// execute drives the actor on the current goroutine
func execute[M any](t *task, ctx *Context[M], build func(*Context[M]) (Actor[M], error)) {
	defer func() {
		ctx.mailbox.shutdown()
		ctx.agency.complete(t)
	}()
	defer t.recovery(ctx.logger)

	actor, err := build(ctx)
	if err != nil {
		ctx.logger.Errorf("setup failed: %v", err)
		return
	}
	if actor == nil {
		ctx.logger.Debug("setup returned no actor")
		return
	}

	drive(ctx, actor)
}

// drive runs the lifecycle: Init, the Run loop with its Stopping verdicts, then Stopped
func drive[M any](ctx *Context[M], actor Actor[M]) {
	logger := ctx.logger
	logger.Debug("actor initializing")
	actor.Init(ctx)

	logger.Debug("actor running")
	for {
		for !ctx.IsStopped() {
			actor.Run(ctx)
		}

		verdict := actor.Stopping(ctx)
		if verdict != Recover {
			break
		}
		logger.Debug("actor recovered")
		ctx.resume()
	}

	logger.Debug("actor stopping")
	stopped := ctx.demote()
	actor.Stopped(stopped)
	logger.Debug("actor stopped")
}

// recovery turns a panic raised by a lifecycle callback into the task error
func (t *task) recovery(logger log.Logger) {
	r := recover()
	if r == nil {
		return
	}

	var err error
	switch v := r.(type) {
	case *gerrors.PanicError:
		err = v
	case error:
		// enrich the error with the panicking location for rich logging
		pc, fn, line, _ := runtime.Caller(2)
		err = gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", v, runtime.FuncForPC(pc).Name(), fn, line))
	default:
		pc, fn, line, _ := runtime.Caller(2)
		err = gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
	}

	t.err = err

	// runtime defects abort the process
	var invariant *gerrors.InvariantError
	if errors.As(err, &invariant) {
		logger.Errorf("runtime defect: %v", err)
		panic(invariant)
	}
	logger.Errorf("actor panicked: %v", err)
}
