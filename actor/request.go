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
	"time"

	"go.uber.org/atomic"

	"github.com/AircastDev/agency/errors"
)

// Request bundles a payload with the single-use channel used to answer it.
// It travels through the normal mailbox like any other message.
type Request[P, R any] struct {
	payload   P
	responder *Responder[R]
}

// NewRequest creates a Request together with the Reply its caller waits on
func NewRequest[P, R any](payload P) (*Request[P, R], *Reply[R]) {
	ex := &exchange[R]{
		value:     make(chan R, 1),
		declined:  make(chan struct{}),
		abandoned: make(chan struct{}),
		used:      atomic.NewBool(false),
	}
	return &Request[P, R]{
		payload:   payload,
		responder: &Responder[R]{exchange: ex},
	}, &Reply[R]{exchange: ex}
}

// Payload returns the request payload
func (r *Request[P, R]) Payload() P {
	return r.payload
}

// Handle returns the payload and the Responder to answer with.
// ok is false when the caller stopped listening, in which case there is no
// point producing a response.
func (r *Request[P, R]) Handle() (payload P, responder *Responder[R], ok bool) {
	if r.responder.exchange.isAbandoned() {
		return payload, nil, false
	}
	return r.payload, r.responder, true
}

// Decline drops the request without answering.
// The caller gets ErrSenderDropped right away.
func (r *Request[P, R]) Decline() {
	r.responder.Decline()
}

// Responder is the sending end of a Request's reply channel
type Responder[R any] struct {
	exchange *exchange[R]
}

// Respond sends the response. It returns ErrAlreadyReplied when the
// responder was already used and ErrNoListener when the caller is gone.
// A caller giving up concurrently with Respond may still miss the value.
func (r *Responder[R]) Respond(value R) error {
	ex := r.exchange
	if !ex.used.CompareAndSwap(false, true) {
		return errors.ErrAlreadyReplied
	}
	if ex.isAbandoned() {
		return errors.ErrNoListener
	}
	ex.value <- value
	return nil
}

// Decline drops the reply channel without a value.
// It does nothing when the responder was already used.
func (r *Responder[R]) Decline() {
	ex := r.exchange
	if ex.used.CompareAndSwap(false, true) {
		close(ex.declined)
	}
}

// Reply is the waiting end of a Request
type Reply[R any] struct {
	exchange *exchange[R]
}

// Await blocks until the response arrives, the responder declines or ctx ends.
// Giving up on ctx tells the responder nobody listens anymore.
func (r *Reply[R]) Await(ctx context.Context) (R, error) {
	return r.await(ctx, nil, nil)
}

// Abandon tells the responder nobody listens anymore
func (r *Reply[R]) Abandon() {
	r.exchange.abandon()
}

// await waits for the response. dropped is closed when the responder can no
// longer answer and expired fires on timeout; both may be nil.
func (r *Reply[R]) await(ctx context.Context, dropped <-chan struct{}, expired <-chan time.Time) (response R, err error) {
	ex := r.exchange
	select {
	case response = <-ex.value:
		return response, nil
	case <-ex.declined:
		return response, errors.ErrSenderDropped
	case <-dropped:
		// the actor may have answered right before exiting
		select {
		case response = <-ex.value:
			return response, nil
		default:
			ex.abandon()
			return response, errors.ErrSenderDropped
		}
	case <-ctx.Done():
		ex.abandon()
		return response, fmt.Errorf("request interrupted: %w", ctx.Err())
	case <-expired:
		ex.abandon()
		return response, errors.ErrRequestTimeout
	}
}

// exchange is the state shared by both ends of a request
type exchange[R any] struct {
	value     chan R
	declined  chan struct{}
	abandoned chan struct{}
	used      *atomic.Bool
	once      sync.Once
}

func (ex *exchange[R]) abandon() {
	ex.once.Do(func() {
		close(ex.abandoned)
	})
}

func (ex *exchange[R]) isAbandoned() bool {
	select {
	case <-ex.abandoned:
		return true
	default:
		return false
	}
}
