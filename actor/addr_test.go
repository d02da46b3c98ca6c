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
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AircastDev/agency/errors"
)

func TestAddr(t *testing.T) {
	t.Run("With clones", func(t *testing.T) {
		agency, handle := newTestAgency()
		addr, err := Hire[any](agency, echo{})
		require.NoError(t, err)

		clone := addr.Clone()
		assert.True(t, addr == clone)
		assert.True(t, addr.Equals(clone))
		assert.Equal(t, addr.ID(), clone.ID())
		assert.Equal(t, addr.Hash(), clone.Hash())

		other, err := Hire[any](agency, echo{})
		require.NoError(t, err)
		assert.False(t, addr.Equals(other))
		assert.NotEqual(t, addr.ID(), other.ID())
		assert.NotEqual(t, addr.Hash(), other.Hash())

		require.NoError(t, clone.Send(context.Background(), stopMsg{}))
		require.NoError(t, other.Send(context.Background(), stopMsg{}))
		waitAll(t, handle)
	})
	t.Run("With names", func(t *testing.T) {
		agency, handle := newTestAgency()
		named, err := Hire[any](agency, echo{}, WithName("echo"))
		require.NoError(t, err)
		anonymous, err := Hire[any](agency, echo{})
		require.NoError(t, err)

		assert.Equal(t, "echo", named.Name())
		assert.Equal(t, "echo@"+named.ID().String(), named.String())
		assert.Equal(t, anonymous.ID().String(), anonymous.Name())
		assert.Equal(t, anonymous.ID().String(), anonymous.String())

		require.NoError(t, named.SendPriority(stopMsg{}))
		require.NoError(t, anonymous.SendPriority(stopMsg{}))
		waitAll(t, handle)
	})
	t.Run("With invalid names", func(t *testing.T) {
		agency, handle := newTestAgency()
		for _, name := range []string{"-leading", "with space", "sl/ash", strings.Repeat("a", 256)} {
			_, err := Hire[any](agency, echo{}, WithName(name))
			require.ErrorIs(t, err, errors.ErrInvalidName, name)
		}

		addr, err := Hire[any](agency, echo{}, WithName("echo-1_a.b"))
		require.NoError(t, err)
		require.NoError(t, addr.Send(context.Background(), stopMsg{}))
		waitAll(t, handle)
	})
	t.Run("With zero value", func(t *testing.T) {
		var addr Addr[int]
		require.ErrorIs(t, addr.Send(context.Background(), 1), errors.ErrDead)
		require.ErrorIs(t, addr.SendPriority(1), errors.ErrDead)
		waitDone(t, addr.Done())
	})
	t.Run("With send interrupted by the context", func(t *testing.T) {
		agency, handle := newTestAgency()
		gate := make(chan struct{})
		out := make(chan any, 64)
		addr, err := Hire[any](agency, recorder(gate, out))
		require.NoError(t, err)

		for i := 0; i < MailboxCapacity; i++ {
			require.NoError(t, addr.Send(context.Background(), i))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, addr.Send(ctx, "late"), context.Canceled)

		close(gate)
		require.NoError(t, addr.Send(context.Background(), stopMsg{}))
		waitAll(t, handle)
	})
}

func TestRecipient(t *testing.T) {
	t.Run("With recipient from the address", func(t *testing.T) {
		agency, handle := newTestAgency()
		gate := make(chan struct{})
		close(gate)
		out := make(chan any, 4)

		addr, err := Hire[any](agency, recorder(gate, out))
		require.NoError(t, err)

		recipient := addr.Recipient()
		assert.Equal(t, addr.ID(), recipient.ID())
		assert.True(t, recipient.Equals(addr.Recipient()))
		assert.True(t, recipient.Equals(recipient.Clone()))
		assert.Equal(t, recipient.Hash(), recipient.Clone().Hash())
		assert.Equal(t, addr.String(), recipient.String())

		require.NoError(t, recipient.Send(context.Background(), "hello"))
		assert.Equal(t, "hello", receive(t, out))

		require.NoError(t, recipient.SendPriority(stopMsg{}))
		waitAll(t, handle)
		waitDone(t, recipient.Done())
		require.ErrorIs(t, recipient.Send(context.Background(), "late"), errors.ErrDead)
		require.ErrorIs(t, recipient.SendPriority("late"), errors.ErrDead)
	})
	t.Run("With narrowing", func(t *testing.T) {
		agency, handle := newTestAgency()
		out := make(chan message, 4)

		addr, err := Hire[message](agency, NewFuncActor(func(ctx *Context[message]) {
			msg := ctx.Message()
			out <- msg
			if _, ok := msg.(ping); ok {
				ctx.Stop()
			}
		}))
		require.NoError(t, err)

		pongs := NarrowWith(addr, func(count int) message { return pong{count: count} })
		pings, err := Narrow[ping](addr)
		require.NoError(t, err)

		assert.True(t, pings.Equals(pings.Clone()))
		assert.Equal(t, addr.ID(), pings.ID())
		assert.Equal(t, pings.ID(), pongs.ID())

		require.NoError(t, pongs.Send(context.Background(), 3))
		assert.Equal(t, pong{count: 3}, receive(t, out))
		require.NoError(t, pings.Send(context.Background(), ping{}))
		assert.Equal(t, ping{}, receive(t, out))

		waitAll(t, handle)
	})
	t.Run("With type that cannot be narrowed", func(t *testing.T) {
		agency, handle := newTestAgency()
		addr, err := Hire[message](agency, NewFuncActor(func(ctx *Context[message]) {
			ctx.Message()
			ctx.Stop()
		}))
		require.NoError(t, err)

		_, err = Narrow[int](addr)
		require.ErrorIs(t, err, errors.ErrInvalidMessage)

		require.NoError(t, addr.Send(context.Background(), ping{}))
		waitAll(t, handle)
	})
	t.Run("With custom sender", func(t *testing.T) {
		sender := &sliceSender{done: make(chan struct{})}
		recipient := NewRecipient[string](uuid.New(), "slice", sender)

		require.NoError(t, recipient.Send(context.Background(), "a"))
		require.NoError(t, recipient.SendPriority("b"))
		assert.Equal(t, []string{"a", "b"}, sender.messages)
		assert.Equal(t, "slice@"+recipient.ID().String(), recipient.String())

		var zero Recipient[string]
		require.ErrorIs(t, zero.Send(context.Background(), "a"), errors.ErrDead)
		require.ErrorIs(t, zero.SendPriority("a"), errors.ErrDead)
		waitDone(t, zero.Done())
		assert.Equal(t, zero, zero.Clone())
	})
}

type sliceSender struct {
	messages []string
	done     chan struct{}
}

func (s *sliceSender) Send(_ context.Context, msg string) error {
	s.messages = append(s.messages, msg)
	return nil
}

func (s *sliceSender) SendPriority(msg string) error {
	s.messages = append(s.messages, msg)
	return nil
}

func (s *sliceSender) Clone() RecipientSender[string] {
	return s
}

func (s *sliceSender) Done() <-chan struct{} {
	return s.done
}
