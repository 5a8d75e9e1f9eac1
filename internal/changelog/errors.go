package changelog

import (
	"errors"
	"fmt"
)

// ErrUnreleasedNotFound is matched (via errors.Is) by the error returned when
// a changelog has no "## [Unreleased]" heading to merge into.
var ErrUnreleasedNotFound = errors.New("unreleased section not found")

// ErrNoChangelogEntries is returned by Update when the PR body contains no
// changelog heading or no bullets under it. It signals a no-op, not a failure.
var ErrNoChangelogEntries = errors.New("no changelog entries found")

// ErrEmptyCategory is returned by Merge when called without a category name.
var ErrEmptyCategory = errors.New("category name is required")

// SectionNotFoundError is returned when a required section heading is missing
// from the destination document.
type SectionNotFoundError struct {
	Heading string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("%q section not found in changelog", e.Heading)
}

// Is reports ErrUnreleasedNotFound for the Unreleased heading.
func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrUnreleasedNotFound && e.Heading == UnreleasedHeading
}

// IsSectionNotFound returns true if err is (or wraps) a SectionNotFoundError.
func IsSectionNotFound(err error) bool {
	var se *SectionNotFoundError
	return errors.As(err, &se)
}

// IsNoEntries returns true if err reports an empty extraction.
func IsNoEntries(err error) bool {
	return errors.Is(err, ErrNoChangelogEntries)
}
