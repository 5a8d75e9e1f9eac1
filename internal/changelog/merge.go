package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// UnreleasedHeading is the heading that anchors all merged entries.
const UnreleasedHeading = "## [Unreleased]"

var unreleasedPattern = regexp.MustCompile(`^##[ \t]*\[Unreleased\]`)

// Merge inserts bullets under the "### <category>" subsection of the
// Unreleased section and returns the updated document.
//
// If the subsection exists, the new bullets are placed directly beneath its
// heading, ahead of the entries already there. Otherwise a new subsection is
// appended at the end of the Unreleased section. Text outside the Unreleased
// section is never touched.
//
// Returns a SectionNotFoundError (matching ErrUnreleasedNotFound) if the
// document has no Unreleased heading; no partial document is returned.
func Merge(document, category string, bullets []string) (string, error) {
	region, ok := findUnreleased(document)
	if !ok {
		return "", &SectionNotFoundError{Heading: UnreleasedHeading}
	}
	if strings.TrimSpace(category) == "" {
		return "", ErrEmptyCategory
	}
	if len(bullets) == 0 {
		return document, nil
	}

	eol := lineEnding(document)
	rendered := renderBullets(bullets, eol)
	unreleased := document[region.start:region.end]

	var updated string
	if heading, ok := findCategory(unreleased, category); ok {
		logger.Debug().Str("category", category).Int("entries", len(bullets)).Msg("prepending to existing category")
		updated = replaceSpan(unreleased, heading.span, heading.text+eol+eol+rendered+eol)
	} else {
		logger.Debug().Str("category", category).Int("entries", len(bullets)).Msg("appending new category")
		updated = strings.TrimRight(unreleased, "\r\n") + eol + eol + "### " + category + eol + eol + rendered + eol
	}

	return replaceSpan(document, region, updated), nil
}

// MergeFragment merges every category of f into document, in the order the
// categories were first seen. Each step re-locates the Unreleased section, so
// earlier insertions never invalidate later ones.
func MergeFragment(document string, f Fragment) (string, error) {
	for _, c := range f.categories {
		var err error
		document, err = Merge(document, c.Name, c.Bullets)
		if err != nil {
			return "", fmt.Errorf("merging %s: %w", c.Name, err)
		}
	}
	return document, nil
}

// Update runs the whole pipeline: extract the fragment from prBody, merge
// it into document and normalize the result.
//
// When prBody has nothing to merge, the original document is returned along
// with ErrNoChangelogEntries.
func Update(prBody, document string) (Result, error) {
	return Apply(document, Extract(prBody))
}

// Apply merges an already extracted fragment into document and normalizes
// the result. An empty fragment returns the document unchanged with
// ErrNoChangelogEntries. On any other error the Result is empty.
func Apply(document string, f Fragment) (Result, error) {
	if f.IsEmpty() {
		return Result{Document: document}, ErrNoChangelogEntries
	}

	merged, err := MergeFragment(document, f)
	if err != nil {
		return Result{}, err
	}

	out := Normalize(merged)
	return Result{
		Document: out,
		Merged:   f.Names(),
		Entries:  f.Count(),
		Changed:  out != document,
	}, nil
}

// findUnreleased locates the Unreleased section: from its heading line up to
// the next version heading or the end of the document.
func findUnreleased(document string) (span, bool) {
	lines := splitLines(document)
	for i, l := range lines {
		if !unreleasedPattern.MatchString(l.Text) {
			continue
		}
		region := span{start: l.start, end: len(document)}
		for _, next := range lines[i+1:] {
			if isVersionHeading(next.Text) {
				region.end = next.start
				break
			}
		}
		return region, true
	}
	return span{}, false
}

// categoryHeading is a located "### <Name>" line. span covers the heading
// line and any blank lines following it.
type categoryHeading struct {
	text string
	span span
}

// findCategory looks for an exact "### <category>" heading inside the
// Unreleased section text.
func findCategory(unreleased, category string) (categoryHeading, bool) {
	lines := splitLines(unreleased)
	for i, l := range lines {
		if !isCategoryHeading(l.Text, category) {
			continue
		}
		end := len(unreleased)
		for _, next := range lines[i+1:] {
			if !isBlank(next.Text) {
				end = next.start
				break
			}
		}
		return categoryHeading{
			text: strings.TrimRight(l.Text, " \t"),
			span: span{start: l.start, end: end},
		}, true
	}
	return categoryHeading{}, false
}

// isCategoryHeading reports whether s is "###", optional whitespace, then
// exactly category. Deeper headings ("#### Added") do not match.
func isCategoryHeading(s, category string) bool {
	if !strings.HasPrefix(s, "###") {
		return false
	}
	rest := s[3:]
	if strings.HasPrefix(rest, "#") {
		return false
	}
	return strings.TrimSpace(rest) == category
}

// renderBullets formats entries as Markdown list items.
func renderBullets(bullets []string, eol string) string {
	items := make([]string, len(bullets))
	for i, b := range bullets {
		items[i] = "- " + b
	}
	return strings.Join(items, eol)
}

// lineEnding returns "\r\n" for CRLF documents and "\n" otherwise.
func lineEnding(document string) string {
	if strings.Contains(document, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
