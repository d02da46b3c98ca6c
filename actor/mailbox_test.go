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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AircastDev/agency/errors"
)

func TestMailbox(t *testing.T) {
	t.Run("With priority before normal", func(t *testing.T) {
		ctx := context.Background()
		mailbox := newMailbox[int]()
		defer mailbox.shutdown()

		require.NoError(t, mailbox.send(ctx, 1))
		require.NoError(t, mailbox.send(ctx, 2))
		require.NoError(t, mailbox.sendPriority(10))
		require.NoError(t, mailbox.sendPriority(20))

		assert.Equal(t, 10, mailbox.receive())
		assert.Equal(t, 20, mailbox.receive())
		assert.Equal(t, 1, mailbox.receive())

		require.NoError(t, mailbox.sendPriority(30))
		assert.Equal(t, 30, mailbox.receive())
		assert.Equal(t, 2, mailbox.receive())
	})
	t.Run("With priority waking a parked reader", func(t *testing.T) {
		mailbox := newMailbox[int]()
		defer mailbox.shutdown()

		received := make(chan int, 1)
		go func() {
			received <- mailbox.receive()
		}()

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, mailbox.sendPriority(7))
		assert.Equal(t, 7, receive(t, received))
	})
	t.Run("With full normal queue", func(t *testing.T) {
		ctx := context.Background()
		mailbox := newMailbox[int]()
		defer mailbox.shutdown()

		for i := 0; i < MailboxCapacity; i++ {
			require.NoError(t, mailbox.send(ctx, i))
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		err := mailbox.send(timeoutCtx, MailboxCapacity)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// priority is not subject to backpressure
		require.NoError(t, mailbox.sendPriority(-1))
		assert.Equal(t, -1, mailbox.receive())
		assert.Equal(t, 0, mailbox.receive())
		require.NoError(t, mailbox.send(ctx, MailboxCapacity))
	})
	t.Run("With close releasing a blocked sender", func(t *testing.T) {
		ctx := context.Background()
		mailbox := newMailbox[int]()

		for i := 0; i < MailboxCapacity; i++ {
			require.NoError(t, mailbox.send(ctx, i))
		}

		errc := make(chan error, 1)
		go func() {
			errc <- mailbox.send(ctx, MailboxCapacity)
		}()

		time.Sleep(20 * time.Millisecond)
		mailbox.close()
		require.ErrorIs(t, receive(t, errc), errors.ErrDead)
		require.ErrorIs(t, mailbox.send(ctx, 1), errors.ErrDead)
		require.ErrorIs(t, mailbox.sendPriority(1), errors.ErrDead)
		assert.True(t, mailbox.isClosed())

		drained := mailbox.drain()
		assert.Len(t, drained, MailboxCapacity)
		mailbox.shutdown()
		waitDone(t, mailbox.exited)
	})
	t.Run("With drain order and single use", func(t *testing.T) {
		ctx := context.Background()
		mailbox := newMailbox[string]()

		require.NoError(t, mailbox.send(ctx, "a"))
		require.NoError(t, mailbox.send(ctx, "b"))
		require.NoError(t, mailbox.sendPriority("p1"))
		require.NoError(t, mailbox.sendPriority("p2"))

		mailbox.close()
		assert.Equal(t, []string{"p1", "p2", "a", "b"}, mailbox.drain())
		assert.Empty(t, mailbox.drain())
		mailbox.shutdown()
	})
	t.Run("With receive on a closed mailbox", func(t *testing.T) {
		mailbox := newMailbox[int]()
		mailbox.close()
		assert.Panics(t, func() {
			mailbox.receive()
		})
		mailbox.shutdown()
	})
	t.Run("With nil interface messages", func(t *testing.T) {
		mailbox := newMailbox[error]()
		defer mailbox.shutdown()

		require.NoError(t, mailbox.sendPriority(nil))
		assert.Nil(t, mailbox.receive())
	})
}
