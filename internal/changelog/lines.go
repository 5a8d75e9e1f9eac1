package changelog

import "strings"

// span is a half-open byte range [start, end) within a document.
type span struct {
	start, end int
}

// replaceSpan returns doc with the bytes in s replaced by repl.
func replaceSpan(doc string, s span, repl string) string {
	return doc[:s.start] + repl + doc[s.end:]
}

// line is one line of a document. Text excludes the line terminator and any
// trailing carriage return; start and end are offsets of the full line,
// end pointing just past its "\n" (or at len(doc) for the last line).
type line struct {
	Text  string
	start int
	end   int
}

// splitLines breaks doc into lines with their byte offsets.
func splitLines(doc string) []line {
	var lines []line
	start := 0
	for start < len(doc) {
		end := strings.IndexByte(doc[start:], '\n')
		next := len(doc)
		text := doc[start:]
		if end >= 0 {
			text = doc[start : start+end]
			next = start + end + 1
		}
		lines = append(lines, line{
			Text:  strings.TrimSuffix(text, "\r"),
			start: start,
			end:   next,
		})
		start = next
	}
	return lines
}

// isBlank reports whether a line holds only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isVersionHeading reports whether a line opens a version section, i.e. "##"
// followed by optional whitespace and "[" ("## [Unreleased]", "## [1.0.0] - ...").
func isVersionHeading(s string) bool {
	if !strings.HasPrefix(s, "##") {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(s[2:], " \t"), "[")
}

// isHeading reports whether a line is a level-2-or-deeper ATX heading.
func isHeading(s string) bool {
	if !strings.HasPrefix(s, "##") {
		return false
	}
	rest := strings.TrimLeft(s, "#")
	return rest != "" && (rest[0] == ' ' || rest[0] == '\t')
}
