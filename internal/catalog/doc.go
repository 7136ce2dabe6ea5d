// Package catalog exposes read-only sources of candidate titles for the
// add-new-title flow, decoupled from the user's personal list.
//
// A Provider serves paged category listings and free-text search. Two
// implementations ship: Local, backed by an embedded dataset for offline
// use, and the Jikan-backed remote provider. Browser wraps a Provider
// with generation tokens so a slow in-flight response can never clobber
// the results of a newer request.
//
// Candidates convert into library drafts through ToDraft, which fills
// the defaults the catalog cannot supply.
package catalog
