// Package main hosts the animora CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the tracking library: listing and
// statistics views, per-title mutations, catalog browsing for the add flow,
// and configuration scaffolding. It centralizes configuration resolution,
// store opening, and structured logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
