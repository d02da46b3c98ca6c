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
	"regexp"

	"github.com/AircastDev/agency/errors"
	"github.com/AircastDev/agency/internal/validation"
	"github.com/AircastDev/agency/log"
)

// Option is the interface that applies an Agency configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(agency *Agency)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Agency)

// Apply applies the option
func (f OptionFunc) Apply(a *Agency) {
	f(a)
}

// WithLogger sets the logger actors derive their own logger from
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(a *Agency) {
		a.logger = logger
	})
}

// WithContext sets the base context returned by Context.Context
func WithContext(ctx context.Context) Option {
	return OptionFunc(func(a *Agency) {
		a.ctx = ctx
	})
}

// HireOption is the interface that applies a hiring option.
type HireOption interface {
	// Apply sets the Option value of a config.
	Apply(config *hireConfig)
}

// enforce compilation error
var _ HireOption = hireOption(nil)

type hireOption func(config *hireConfig)

func (f hireOption) Apply(c *hireConfig) {
	f(c)
}

type hireConfig struct {
	name string
}

// maxNameLength is the longest name WithName accepts
const maxNameLength = 255

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_.]*$`)

// enforce compilation error
var _ validation.Validator = (*hireConfig)(nil)

// Validate checks the name given with WithName, when any
func (c *hireConfig) Validate() error {
	if c.name == "" {
		return nil
	}

	name := c.name
	err := validation.New(validation.FailFast()).
		AddAssertion(len(name) <= maxNameLength, fmt.Sprintf("name is longer than %d characters", maxNameLength)).
		AddValidator(validation.NewPatternValidator(namePattern, name,
			fmt.Errorf("%q must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-', '_' or '.')", name))).
		Validate()
	if err != nil {
		return errors.NewErrInvalidName(err)
	}
	return nil
}

func newHireConfig(opts ...HireOption) *hireConfig {
	config := &hireConfig{}
	for _, opt := range opts {
		opt.Apply(config)
	}
	return config
}

// WithName sets the actor name used in logs and in Addr.String.
// It defaults to the actor identifier. Names start with a letter or a digit,
// followed by letters, digits, '-', '_' or '.', up to 255 characters.
func WithName(name string) HireOption {
	return hireOption(func(config *hireConfig) {
		config.name = name
	})
}
