// Package idt implements Intelligent Delayed Termination expansion: a
// multi-frontier, priority-ordered bidirectional search that discovers every
// path between a set of seeds and terminates some configurable delay after
// the frontiers' visited sets first overlap significantly (spec.md §4.F).
package idt

import "errors"

// ErrTooFewSeeds indicates fewer than two seeds were supplied to Expand.
// This is a construction error, surfaced before any expansion work begins.
var ErrTooFewSeeds = errors.New("idt: at least two seeds are required")
