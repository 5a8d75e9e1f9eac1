package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"already normalized": {
			input:    "# Changelog\n\n## [Unreleased]\n\n### Added\n\n- a\n",
			expected: "# Changelog\n\n## [Unreleased]\n\n### Added\n\n- a\n",
		},
		"collapses blank runs": {
			input:    "a\n\n\n\nb\n",
			expected: "a\n\nb\n",
		},
		"collapses whitespace-only runs": {
			input:    "a\n  \n\t\n\nb\n",
			expected: "a\n  \nb\n",
		},
		"two blank lines collapse to one": {
			input:    "a\n\n\nb\n",
			expected: "a\n\nb\n",
		},
		"inserts blank before heading": {
			input:    "- a\n## [1.0.0]\n\n- b\n",
			expected: "- a\n\n## [1.0.0]\n\n- b\n",
		},
		"inserts blank after heading": {
			input:    "## [Unreleased]\n### Added\n- a\n",
			expected: "## [Unreleased]\n\n### Added\n\n- a\n",
		},
		"deeper headings count": {
			input:    "text\n#### Note\ntext\n",
			expected: "text\n\n#### Note\n\ntext\n",
		},
		"top-level title is not a spaced heading": {
			input:    "# Changelog\nintro\n",
			expected: "# Changelog\nintro\n",
		},
		"hashes without space are not headings": {
			input:    "a\n##nospace\nb\n",
			expected: "a\n##nospace\nb\n",
		},
		"first and last lines are exempt": {
			input:    "## [Unreleased]\n\n- a\n### Fixed",
			expected: "## [Unreleased]\n\n- a\n\n### Fixed",
		},
		"trailing blank lines collapse": {
			input:    "- a\n\n\n\n",
			expected: "- a\n\n",
		},
		"no trailing newline is preserved": {
			input:    "a\n\n\nb",
			expected: "a\n\nb",
		},
		"crlf spacing uses crlf": {
			input:    "- a\r\n## [1.0.0]\r\n- b\r\n",
			expected: "- a\r\n\r\n## [1.0.0]\r\n\r\n- b\r\n",
		},
		"empty document": {
			input:    "",
			expected: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"\n\n\n",
		"## a\n## b\n## c",
		"### Added\n\n\n\n- x\n\n\n## [1.0.0]\n- y\n\n\n\n",
		"  \n  \n# Title\n## [Unreleased]\n   \n### Fixed\n-  z  \n",
		"- a\r\n\r\n\r\n## [1.0.0]\r\n- b",
		"##\n##x\n## \n### \n",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}
