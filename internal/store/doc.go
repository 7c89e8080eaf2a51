// Package store provides durable persistence for the virtual server state.
//
// The entire application state (users, orders, catalog, session, stats) is
// serialized as a single JSON record kept under one fixed key in a SQLite
// database. Loads are wholesale at startup; every mutating endpoint writes
// the whole record back (write-through, no partial persistence).
package store
