package changelog

import (
	"regexp"
	"strings"
)

var (
	// changelogHeadingPattern matches "## Changelog", "#### Changelog" or a
	// decorated "### 🔄 Changelog" heading line.
	changelogHeadingPattern = regexp.MustCompile(`^#{2,4}[ \t]*(?:[^\w\s#]+[ \t]*)?Changelog[ \t]*$`)

	// categoryPattern matches a "### <Name>" category heading, where Name is a
	// single word of Unicode letters, digits or underscores ("Añadido").
	// Anything else after the hashes is treated as prose.
	categoryPattern = regexp.MustCompile(`^###[ \t]+([\p{L}\p{N}_]+)[ \t]*$`)
)

// Extract scans a PR description for a Changelog heading and returns the
// categorized bullets found beneath it.
//
// The block ends at the next version heading ("## [") or at the end of the
// text. Bullets that appear before any category heading are ignored. An empty
// Fragment is returned when no heading or no bullets are found; extraction
// never fails.
func Extract(text string) Fragment {
	var frag Fragment

	block, ok := changelogBlock(text)
	if !ok {
		logger.Debug().Msg("no changelog heading found in PR body")
		return frag
	}

	current := ""
	for _, l := range block {
		if m := categoryPattern.FindStringSubmatch(l.Text); m != nil {
			current = m[1]
			continue
		}
		if current == "" {
			continue
		}
		trimmed := strings.TrimSpace(l.Text)
		if strings.HasPrefix(trimmed, "-") {
			frag.Add(current, strings.TrimSpace(trimmed[1:]))
		}
	}

	logger.Debug().
		Int("categories", frag.Len()).
		Strs("names", frag.Names()).
		Int("entries", frag.Count()).
		Msg("extracted changelog fragment")

	return frag
}

// changelogBlock returns the lines between the first Changelog heading and
// the next version heading.
func changelogBlock(text string) ([]line, bool) {
	lines := splitLines(text)

	for i, l := range lines {
		if !changelogHeadingPattern.MatchString(l.Text) {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if isVersionHeading(lines[j].Text) {
				end = j
				break
			}
		}
		return lines[i+1 : end], true
	}

	return nil, false
}
