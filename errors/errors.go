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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDead is returned when sending to an actor whose mailbox is closed.
	// Nothing is enqueued.
	ErrDead = errors.New("actor stopped")

	// ErrSenderDropped is returned by Ask when the reply channel is gone without a value:
	// the responder declined, or the actor exited or panicked before replying.
	ErrSenderDropped = errors.New("reply sender dropped")

	// ErrRequestTimeout indicates that an Ask timed out while waiting for a response.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrNoListener is returned by Respond when the caller stopped waiting for the reply.
	ErrNoListener = errors.New("no listener for the reply")

	// ErrAlreadyReplied is returned when a Responder is used more than once.
	ErrAlreadyReplied = errors.New("reply already sent")

	// ErrInvalidMessage is returned when a message type cannot be delivered to the actor.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidTimeout is returned when a non-positive timeout is given.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrAgencyClosed is returned when hiring after the AgencyHandle finished waiting.
	ErrAgencyClosed = errors.New("agency is closed")

	// ErrAlreadyWaiting is returned on a second call to AgencyHandle.Wait.
	ErrAlreadyWaiting = errors.New("agency handle is already waiting")

	// ErrInvalidName is returned when hiring an actor with a malformed name.
	ErrInvalidName = errors.New("invalid actor name")
)

// NewErrInvalidMessage wraps the cause of an undeliverable message
func NewErrInvalidMessage(err error) error {
	return errors.Join(ErrInvalidMessage, err)
}

// NewErrInvalidName wraps the reasons a name was rejected
func NewErrInvalidName(err error) error {
	return errors.Join(ErrInvalidName, err)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}

// InvariantError reports a defect in the runtime itself.
// It is raised with panic, never returned to callers.
type InvariantError struct {
	err error
}

// enforce compilation error
var _ error = (*InvariantError)(nil)

// NewInvariantError returns an instance of InvariantError
func NewInvariantError(format string, args ...any) *InvariantError {
	return &InvariantError{
		err: fmt.Errorf("invariant violated: "+format, args...),
	}
}

// Error implements the standard error interface
func (i *InvariantError) Error() string {
	return i.err.Error()
}

func (i *InvariantError) Unwrap() error {
	return i.err
}
