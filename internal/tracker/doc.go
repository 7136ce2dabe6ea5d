// Package tracker holds the in-memory mirror of the tracked-title
// collection and the session state driving list views.
//
// Every mutation persists through the library store first and updates
// the mirror only after the write succeeds, so a failed operation
// leaves no partial state visible to readers. Reads never touch the
// database: filtered/sorted views and aggregate stats are recomputed
// from the mirror on each call.
package tracker
