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
	"reflect"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/AircastDev/agency/errors"
)

// Addr is the typed handle used to send messages to one actor.
//
// Addr is a value type: copies route to the same mailbox, compare equal
// with == or Equals and share ID and Hash. The zero value reports ErrDead
// on every send.
type Addr[M any] struct {
	id      uuid.UUID
	name    string
	mailbox *mailbox[M]
}

// Send enqueues the message into the actor's normal mailbox.
// It blocks while the mailbox is full, returns ErrDead when the actor
// stopped and the context error when ctx ends first.
func (a Addr[M]) Send(ctx context.Context, msg M) error {
	if a.mailbox == nil {
		return errors.ErrDead
	}
	return a.mailbox.send(ctx, msg)
}

// SendPriority enqueues the message into the actor's priority mailbox.
// It never blocks and returns ErrDead when the actor stopped.
// The priority mailbox is unbounded: keep it for control messages.
func (a Addr[M]) SendPriority(msg M) error {
	if a.mailbox == nil {
		return errors.ErrDead
	}
	return a.mailbox.sendPriority(msg)
}

// Recipient returns a type-erased handle accepting the actor's full message type
func (a Addr[M]) Recipient() Recipient[M] {
	return Recipient[M]{
		id:     a.id,
		name:   a.name,
		sender: addrSender[M, M]{addr: a, convert: identity[M]},
	}
}

// ID returns the actor's unique identifier
func (a Addr[M]) ID() uuid.UUID {
	return a.id
}

// Name returns the actor's name. It defaults to the identifier.
func (a Addr[M]) Name() string {
	return a.name
}

// Equals reports whether both addresses point to the same actor
func (a Addr[M]) Equals(other Addr[M]) bool {
	return a.id == other.id
}

// Hash returns a hash of the actor's identity
func (a Addr[M]) Hash() uint64 {
	return hashIdentity("addr", a.id)
}

// Clone returns a copy of the address
func (a Addr[M]) Clone() Addr[M] {
	return a
}

// Done returns a channel closed once the actor's goroutine exited
func (a Addr[M]) Done() <-chan struct{} {
	if a.mailbox == nil {
		return closedChan
	}
	return a.mailbox.exited
}

// String returns the actor's name and identifier
func (a Addr[M]) String() string {
	return describe(a.name, a.id)
}

func (a Addr[M]) deliver(ctx context.Context, msg any) error {
	typed, ok := msg.(M)
	if !ok {
		return errors.NewErrInvalidMessage(fmt.Errorf("%T cannot be sent to %s", msg, a))
	}
	return a.Send(ctx, typed)
}

// Narrow returns a Recipient accepting N for an actor accepting M.
// N must be assignable to M, otherwise ErrInvalidMessage is returned.
func Narrow[N, M any](addr Addr[M]) (Recipient[N], error) {
	from, to := reflect.TypeOf((*N)(nil)).Elem(), reflect.TypeOf((*M)(nil)).Elem()
	if !from.AssignableTo(to) {
		return Recipient[N]{}, errors.NewErrInvalidMessage(fmt.Errorf("%s is not assignable to %s", from, to))
	}

	return NarrowWith(addr, func(msg N) M {
		converted, _ := any(msg).(M)
		return converted
	}), nil
}

// NarrowWith returns a Recipient accepting N for an actor accepting M,
// using convert to build the actor's message
func NarrowWith[N, M any](addr Addr[M], convert func(N) M) Recipient[N] {
	return Recipient[N]{
		id:     addr.id,
		name:   addr.name,
		sender: addrSender[N, M]{addr: addr, convert: convert},
	}
}

// addrSender backs a Recipient with an actor's address
type addrSender[N, M any] struct {
	addr    Addr[M]
	convert func(N) M
}

var _ RecipientSender[int] = addrSender[int, any]{}

func (s addrSender[N, M]) Send(ctx context.Context, msg N) error {
	return s.addr.Send(ctx, s.convert(msg))
}

func (s addrSender[N, M]) SendPriority(msg N) error {
	return s.addr.SendPriority(s.convert(msg))
}

func (s addrSender[N, M]) Clone() RecipientSender[N] {
	return s
}

func (s addrSender[N, M]) Done() <-chan struct{} {
	return s.addr.Done()
}

func identity[M any](msg M) M {
	return msg
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func hashIdentity(kind string, id uuid.UUID) uint64 {
	key := make([]byte, 0, len(kind)+1+len(id))
	key = append(key, kind...)
	key = append(key, ':')
	key = append(key, id[:]...)
	return xxh3.Hash(key)
}

func describe(name string, id uuid.UUID) string {
	if name == "" || name == id.String() {
		return id.String()
	}
	return name + "@" + id.String()
}
