/*
DESCRIPTION
  options.go provides option functions for NewEncoder/NewDecoder, grounded
  on the functional-options style of container/mts/options.go.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"io"

	"github.com/ausocean/utils/logging"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// WithLogger sets the logger an Encoder/Decoder uses for diagnostics
// (principally the per-plane offset-mismatch warning in spec.md's
// failure semantics section). A nil log leaves the default discard logger
// in place.
func WithLogger(log logging.Logger) func(*config) {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithVisitor sets the pluggable stage observer (see codec/mic.Visitor
// and the design notes on debug levels).
func WithVisitor(v mic.Visitor) func(*config) {
	return func(c *config) { c.visitor = v }
}

// WithWorkers overrides the block-level worker pool size; the default is
// runtime.GOMAXPROCS(0). A value of 1 disables parallelism, useful for
// deterministic benchmarking or debugging.
func WithWorkers(n int) func(*config) {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// config holds the shared option state for both Encoder and Decoder.
type config struct {
	log     logging.Logger
	visitor mic.Visitor
	workers int
}

func newConfig(opts []func(*config)) *config {
	c := &config{log: logging.New(logging.Error, io.Discard, true), visitor: mic.NopVisitor{}}
	for _, o := range opts {
		o(c)
	}
	return c
}
