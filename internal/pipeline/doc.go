// Package pipeline implements the text stages of HTML inlining.
//
// This package handles the substitution and normalization stages:
//   - Substitution of matched reference elements with <style>/<script> blocks
//   - Carriage-return removal over the finished document
//
// Matching is handled by internal/markup and content resolution by
// internal/assets. Substitute applies one matching pass at a time, walking the
// matches from the highest offset down so the offsets of the matches still
// pending stay valid after every splice.
package pipeline
