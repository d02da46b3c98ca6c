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

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/AircastDev/agency/errors"
)

// AgencyHandle waits for every actor hired through its Agency
type AgencyHandle struct {
	agency  *Agency
	waiting *atomic.Bool
}

func newAgencyHandle(agency *Agency) *AgencyHandle {
	return &AgencyHandle{
		agency:  agency,
		waiting: atomic.NewBool(false),
	}
}

// Wait blocks until every actor hired through the Agency finished its
// lifecycle, including actors hired after Wait was called.
//
// It returns the combined panic errors of the actors that crashed, or the
// context error when ctx ends first. Either way the Agency stops accepting
// hires once Wait returns. Wait can only be called once; later calls return
// ErrAlreadyWaiting.
func (h *AgencyHandle) Wait(ctx context.Context) (err error) {
	if !h.waiting.CompareAndSwap(false, true) {
		return errors.ErrAlreadyWaiting
	}

	registrations := h.agency.registrations
	completions := h.agency.completions
	defer registrations.Close()

	logger := h.agency.logger
	// only this goroutine touches the sets
	tracked := goset.NewThreadUnsafeSet[uuid.UUID]()
	// completions popped before their registration
	early := goset.NewThreadUnsafeSet[uuid.UUID]()

	for {
		if t, ok := registrations.Pop(); ok {
			if early.Contains(t.id) {
				early.Remove(t.id)
				continue
			}
			tracked.Add(t.id)
			continue
		}

		if t, ok := completions.Pop(); ok {
			if tracked.Contains(t.id) {
				tracked.Remove(t.id)
			} else {
				early.Add(t.id)
			}
			if t.err != nil {
				err = multierr.Append(err, fmt.Errorf("actor %s: %w", describe(t.name, t.id), t.err))
			}
			continue
		}

		if tracked.Cardinality() == 0 && early.Cardinality() == 0 {
			logger.Debug("all actors finished")
			return err
		}

		select {
		case <-registrations.Signal():
		case <-completions.Signal():
		case <-ctx.Done():
			logger.Warnf("stopped waiting with %d actor(s) still running", tracked.Cardinality())
			return ctx.Err()
		}
	}
}
