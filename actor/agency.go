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

	"github.com/google/uuid"

	"github.com/AircastDev/agency/internal/queue"
	"github.com/AircastDev/agency/log"
)

// Agency hires actors and reports every one of them to its AgencyHandle.
// It is safe for concurrent use; every actor Context holds it.
type Agency struct {
	ctx    context.Context
	logger log.Logger

	registrations *queue.Notifying[*task]
	completions   *queue.Notifying[*task]
}

// NewAgency creates an Agency and the AgencyHandle waiting on the actors it hires
func NewAgency(opts ...Option) (*Agency, *AgencyHandle) {
	agency := &Agency{
		ctx:           context.Background(),
		logger:        log.DefaultLogger,
		registrations: queue.NewNotifying[*task](),
		completions:   queue.NewNotifying[*task](),
	}

	for _, opt := range opts {
		opt.Apply(agency)
	}

	return agency, newAgencyHandle(agency)
}

// Logger returns the agency logger
func (a *Agency) Logger() log.Logger {
	return a.logger
}

// register records a new task. It fails once the handle stopped waiting.
func (a *Agency) register(t *task) bool {
	return a.registrations.Push(t)
}

func (a *Agency) complete(t *task) {
	a.completions.Push(t)
}

// task tracks one actor goroutine
type task struct {
	id   uuid.UUID
	name string
	// err is set by the goroutine before completion is pushed
	err error
}
