// Package progress holds the pure watch-progress math shared by the
// tracker engine, the catalog draft mapping, and the CLI presentation
// layer: episode-to-season derivation, completion fractions, and the
// season-count heuristic used when catalog metadata lacks one.
package progress
