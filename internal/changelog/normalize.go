package changelog

import "strings"

// Normalize canonicalizes blank-line spacing in a Markdown document:
//   - runs of blank (whitespace-only) lines collapse to a single blank line
//   - every "##"-or-deeper heading gets a blank line before and after it
//
// The first and last lines of the document are exempt from the inserted
// spacing, and a trailing newline is kept if present. Normalize is
// idempotent.
func Normalize(document string) string {
	if document == "" {
		return document
	}

	trailing := strings.HasSuffix(document, "\n")
	body := strings.TrimSuffix(document, "\n")
	blank := strings.TrimSuffix(lineEnding(document), "\n")

	in := strings.Split(body, "\n")
	out := make([]string, 0, len(in))

	for _, l := range in {
		if len(out) == 0 {
			out = append(out, l)
			continue
		}
		prev := out[len(out)-1]
		if isBlank(l) {
			if isBlank(prev) {
				continue
			}
			out = append(out, l)
			continue
		}
		if !isBlank(prev) && (isHeading(trimCR(l)) || isHeading(trimCR(prev))) {
			out = append(out, blank)
		}
		out = append(out, l)
	}

	result := strings.Join(out, "\n")
	if trailing {
		result += "\n"
	}
	return result
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
