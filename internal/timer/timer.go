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

package timer

import (
	"sync"
	"time"
)

// Pool recycles *time.Timer values for hot request paths where a timer is
// armed for every call and most of them never fire.
type Pool struct {
	underlying sync.Pool
}

// NewPool creates an instance of Pool
func NewPool() *Pool {
	return &Pool{}
}

// Get returns a timer armed to fire after the given duration
func (p *Pool) Get(timeout time.Duration) *time.Timer {
	if v := p.underlying.Get(); v != nil {
		t := v.(*time.Timer)
		t.Reset(timeout)
		return t
	}
	return time.NewTimer(timeout)
}

// Put stops the timer and gives it back to the pool.
// The timer must not be used by the caller afterwards.
func (p *Pool) Put(t *time.Timer) {
	if !t.Stop() {
		// drain the channel when the timer already fired
		select {
		case <-t.C:
		default:
		}
	}
	p.underlying.Put(t)
}
