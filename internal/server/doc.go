// Package server implements the virtual server: the single entry point for
// all read and write operations against the application state.
//
// The dispatcher exposes two verbs (Get, Post) over a closed set of named
// endpoints. Every call logs intent, waits a simulated network delay,
// routes to a typed handler, and - for mutating endpoints - persists the
// whole state back to the store before returning (write-through).
//
// Thread-safety model:
//   - The reference model is a single caller issuing one request at a
//     time; correctness (unique order ids, monotonic streaks) depends on
//     handlers never interleaving their state mutations.
//   - To keep those invariants when callers do overlap, a mutex serializes
//     handler execution and persistence. The simulated delay happens
//     before the mutex is taken, so latency does not serialize.
package server
