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
	"time"

	"github.com/google/uuid"

	"github.com/AircastDev/agency/errors"
	"github.com/AircastDev/agency/internal/timer"
)

// Destination is a handle a request can be sent to.
// It is implemented by Addr and Recipient.
type Destination interface {
	// ID returns the identifier of the target
	ID() uuid.UUID
	// Done returns a channel closed once the target exited
	Done() <-chan struct{}

	deliver(ctx context.Context, msg any) error
}

var (
	_ Destination = Addr[any]{}
	_ Destination = Recipient[any]{}
)

var timers = timer.NewPool()

// Ask sends a *Request[P, R] carrying payload to the destination and waits
// for the response. The destination's message type must accept
// *Request[P, R], otherwise ErrInvalidMessage is returned.
//
// ErrDead is returned when the destination stopped before the request was
// enqueued and ErrSenderDropped when it declined or exited without answering.
func Ask[R, P any](ctx context.Context, to Destination, payload P) (response R, err error) {
	request, reply := NewRequest[P, R](payload)
	if err := to.deliver(ctx, request); err != nil {
		return response, err
	}
	return reply.await(ctx, to.Done(), nil)
}

// AskTimeout behaves like Ask but gives up with ErrRequestTimeout when no
// response arrived within timeout after the request was enqueued.
// The responder may still complete; its answer is then discarded.
func AskTimeout[R, P any](ctx context.Context, to Destination, payload P, timeout time.Duration) (response R, err error) {
	if timeout <= 0 {
		return response, errors.ErrInvalidTimeout
	}

	request, reply := NewRequest[P, R](payload)
	if err := to.deliver(ctx, request); err != nil {
		return response, err
	}

	t := timers.Get(timeout)
	defer timers.Put(t)
	return reply.await(ctx, to.Done(), t.C)
}
