package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unnormalizedChangelog = "# Changelog\n## [Unreleased]\n\n\n### Added\n- a\n"

const normalizedChangelog = "# Changelog\n\n## [Unreleased]\n\n### Added\n\n- a\n"

func TestNormalizeCmd(t *testing.T) {
	dir := t.TempDir()
	logPath := writeTestFile(t, dir, "CHANGELOG.md", unnormalizedChangelog)

	res := executeCommand(t, "", "normalize", "--changelog", logPath)
	require.NoError(t, res.err)

	assert.Equal(t, "✓ Normalized "+logPath+"\n", res.stdout)
	assert.Equal(t, normalizedChangelog, readTestFile(t, logPath))
}

func TestNormalizeCmd_Check(t *testing.T) {
	tests := map[string]struct {
		content  string
		wantErr  bool
		wantCode int
	}{
		"already normalized": {
			content:  normalizedChangelog,
			wantCode: ExitSuccess,
		},
		"needs normalizing": {
			content:  unnormalizedChangelog,
			wantErr:  true,
			wantCode: ExitFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logPath := writeTestFile(t, t.TempDir(), "CHANGELOG.md", tt.content)

			res := executeCommand(t, "", "normalize", "--check", "--changelog", logPath)
			if tt.wantErr {
				require.Error(t, res.err)
				assert.Contains(t, res.stderr, "is not normalized")
			} else {
				require.NoError(t, res.err)
			}
			assert.Equal(t, tt.wantCode, ExitCode(res.err))
			assert.Equal(t, tt.content, readTestFile(t, logPath), "--check must not write")
		})
	}
}

func TestNormalizeCmd_MissingFile(t *testing.T) {
	res := executeCommand(t, "", "normalize", "--changelog", t.TempDir()+"/CHANGELOG.md")
	require.Error(t, res.err)
	assert.Equal(t, ExitMissingInput, ExitCode(res.err))
}
