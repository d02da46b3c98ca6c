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

	"github.com/google/uuid"

	"github.com/AircastDev/agency/errors"
)

// RecipientSender is the sending capability behind a Recipient.
// Implementations must report ErrDead once the target stopped.
type RecipientSender[N any] interface {
	// Send enqueues the message, blocking while the target is full
	Send(ctx context.Context, msg N) error
	// SendPriority enqueues the message without blocking
	SendPriority(msg N) error
	// Clone returns a sender routing to the same target
	Clone() RecipientSender[N]
	// Done returns a channel closed once the target exited
	Done() <-chan struct{}
}

// Recipient is a handle accepting one message type, regardless of the
// actor behind it. Recipients derived from the same address are Equals and
// share ID and Hash with it. Compare them with Equals rather than ==.
type Recipient[N any] struct {
	id     uuid.UUID
	name   string
	sender RecipientSender[N]
}

// NewRecipient creates a Recipient backed by a custom sender
func NewRecipient[N any](id uuid.UUID, name string, sender RecipientSender[N]) Recipient[N] {
	return Recipient[N]{
		id:     id,
		name:   name,
		sender: sender,
	}
}

// Send enqueues the message into the target's normal mailbox.
// It blocks while the mailbox is full and returns ErrDead when the target stopped.
func (r Recipient[N]) Send(ctx context.Context, msg N) error {
	if r.sender == nil {
		return errors.ErrDead
	}
	return r.sender.Send(ctx, msg)
}

// SendPriority enqueues the message into the target's priority mailbox
func (r Recipient[N]) SendPriority(msg N) error {
	if r.sender == nil {
		return errors.ErrDead
	}
	return r.sender.SendPriority(msg)
}

// ID returns the identifier of the target
func (r Recipient[N]) ID() uuid.UUID {
	return r.id
}

// Equals reports whether both recipients point to the same target
func (r Recipient[N]) Equals(other Recipient[N]) bool {
	return r.id == other.id
}

// Hash returns a hash of the target's identity
func (r Recipient[N]) Hash() uint64 {
	return hashIdentity("recipient", r.id)
}

// Clone returns a copy of the recipient
func (r Recipient[N]) Clone() Recipient[N] {
	if r.sender == nil {
		return r
	}
	return Recipient[N]{
		id:     r.id,
		name:   r.name,
		sender: r.sender.Clone(),
	}
}

// Done returns a channel closed once the target exited
func (r Recipient[N]) Done() <-chan struct{} {
	if r.sender == nil {
		return closedChan
	}
	return r.sender.Done()
}

// String returns the target's name and identifier
func (r Recipient[N]) String() string {
	return describe(r.name, r.id)
}

func (r Recipient[N]) deliver(ctx context.Context, msg any) error {
	typed, ok := msg.(N)
	if !ok {
		return errors.NewErrInvalidMessage(fmt.Errorf("%T cannot be sent to %s", msg, r))
	}
	return r.Send(ctx, typed)
}
