package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// Note: these tests change the working directory and cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultChangelog, cfg.Changelog)
	assert.False(t, cfg.Plain)
	assert.True(t, cfg.Summary)
}

func TestLoad_ProjectConfig(t *testing.T) {
	tests := map[string]struct {
		files       map[string]string
		wantLog     string
		wantPlain   bool
		wantSummary bool
		wantWarning string
	}{
		"yaml project config": {
			files: map[string]string{
				".prchangelog.yml": "changelog: docs/CHANGES.md\nplain: true\n",
			},
			wantLog:     "docs/CHANGES.md",
			wantPlain:   true,
			wantSummary: true,
		},
		"legacy json config warns": {
			files: map[string]string{
				".prchangelog.json": `{"changelog": "HISTORY.md", "summary": false}`,
			},
			wantLog:     "HISTORY.md",
			wantSummary: false,
			wantWarning: "Using deprecated JSON config",
		},
		"yaml wins over legacy json": {
			files: map[string]string{
				".prchangelog.yml":  "changelog: A.md\n",
				".prchangelog.json": `{"changelog": "B.md"}`,
			},
			wantLog:     "A.md",
			wantSummary: true,
			wantWarning: "Legacy JSON config found",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			for file, content := range tt.files {
				writeFile(t, filepath.Join(dir, file), content)
			}

			var warnings bytes.Buffer
			cfg, err := LoadWithOptions(LoadOptions{WarningWriter: &warnings})
			require.NoError(t, err)

			assert.Equal(t, tt.wantLog, cfg.Changelog)
			assert.Equal(t, tt.wantPlain, cfg.Plain)
			assert.Equal(t, tt.wantSummary, cfg.Summary)
			if tt.wantWarning != "" {
				assert.Contains(t, warnings.String(), tt.wantWarning)
			} else {
				assert.Empty(t, warnings.String())
			}
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "changelog: custom.md\n")

	cfg, err := LoadWithOptions(LoadOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "custom.md", cfg.Changelog)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		file        string
		content     string
		explicit    string
		wantErrPart string
	}{
		"missing explicit file": {
			explicit:    "does-not-exist.yml",
			wantErrPart: "config file not found",
		},
		"invalid yaml": {
			file:        "bad.yml",
			content:     "changelog: [unclosed\n",
			wantErrPart: "validating YAML syntax",
		},
		"unsupported extension": {
			file:        "config.toml",
			content:     "changelog = 'x'\n",
			wantErrPart: "unsupported config format",
		},
		"empty changelog value": {
			file:        "empty.yml",
			content:     "changelog: \"  \"\n",
			wantErrPart: "field 'changelog': must not be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)

			path := tt.explicit
			if tt.file != "" {
				path = filepath.Join(dir, tt.file)
				writeFile(t, path, tt.content)
			}

			_, err := LoadWithOptions(LoadOptions{ConfigPath: path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrPart)
		})
	}
}

func TestExtractLineColumn(t *testing.T) {
	tests := map[string]struct {
		msg      string
		wantLine int
		wantCol  int
	}{
		"line and column": {msg: "yaml: line 5: column 3: bad", wantLine: 5, wantCol: 3},
		"line only":       {msg: "yaml: line 2: could not find expected ':'", wantLine: 2, wantCol: 1},
		"no position":     {msg: "something else", wantLine: 0, wantCol: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			line, col := extractLineColumn(tt.msg)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestGetDefaultConfigTemplate_Parses(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, ProjectConfigPath()), GetDefaultConfigTemplate())

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultChangelog, cfg.Changelog)
}
