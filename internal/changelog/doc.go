// Package changelog merges pull-request changelog fragments into a
// Keep a Changelog formatted CHANGELOG.md.
//
// This package implements:
//   - Fragment extraction from a free-form PR description
//   - Splicing categorized bullets into the "## [Unreleased]" section
//   - Blank-line normalization around Markdown headings
//   - Terminal and Markdown rendering of extracted fragments
//
// Documents are treated as line-oriented text, never as a Markdown tree.
// Every transform takes a string and returns a new string; nothing is
// modified in place, so the merge steps can be folded and tested in isolation.
package changelog
