/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/envx/apis"
)

const (
	// DefaultStrictVersionOrder represents the default for StrictVersionOrder.
	// The weak check only demands that the first version of a name is 0.
	DefaultStrictVersionOrder = false
	// DefaultListLimit represents the default for ListLimit.
	// Zero lists every registered id in unregistered-environment errors.
	DefaultListLimit = 0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure ListLimit is valid.
	if cfg.ListLimit < 0 {
		cfg.ListLimit = DefaultListLimit
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictVersionOrder: DefaultStrictVersionOrder,
		ListLimit:          DefaultListLimit,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictVersionOrder sets the StrictVersionOrder option.
func WithStrictVersionOrder(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictVersionOrder = strict
	}
}

// WithListLimit sets the ListLimit option.
// A negative value resets to the default.
func WithListLimit(limit int) Option {
	return func(c *apis.Config) {
		if limit < 0 {
			c.ListLimit = DefaultListLimit
			return
		}
		c.ListLimit = limit
	}
}
