// Package library persists tracked titles in SQLite and defines the
// row model shared with the tracker engine.
//
// The Store owns database connections, schema initialization, and the
// single-writer lock file that keeps two processes from interleaving
// mutations against the same library. Rows round-trip exactly: the
// genres list is stored as a JSON array string preserving order, the
// favorite flag as 0/1, and dates as YYYY-MM-DD text with a NULL
// last_watched until the first progress-affecting update.
//
// Treat this package as the single source of truth for row semantics;
// when you add fields, update schema.sql and bump schemaVersion.
package library
