package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(99), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestFormatErrorPlain(t *testing.T) {
	err := MissingPRBodyFlag("merge")

	out := FormatErrorPlain(err)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Error [Argument Error]: --pr-body-file is required", lines[0])
	assert.Contains(t, out, "Usage: prchangelog merge --pr-body-file <path|->")
	assert.Contains(t, out, "To fix this:\n  • Save the PR description")
}

func TestWrapWithMessage_Unwraps(t *testing.T) {
	cause := stderrors.New("boom")

	err := MissingUnreleasedSection("CHANGELOG.md", cause)
	require.NotNil(t, err)
	assert.Equal(t, Prerequisite, err.Category)
	assert.Equal(t, "cannot merge into CHANGELOG.md: boom", err.Error())
	assert.True(t, stderrors.Is(err, cause))

	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}

func TestAsCLIError(t *testing.T) {
	cliErr := MissingInputFile("PR body", "pr.txt").WithExitCode(4)

	wrapped := fmt.Errorf("running merge: %w", cliErr)
	got := AsCLIError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.ExitCode)

	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}

func TestFprintError(t *testing.T) {
	tests := map[string]struct {
		err       error
		wantFirst string
	}{
		"cli error keeps category": {
			err:       ChangelogNotNormalized("CHANGELOG.md"),
			wantFirst: "Error [Prerequisite Error]: CHANGELOG.md is not normalized",
		},
		"plain error is a runtime error": {
			err:       stderrors.New("disk full"),
			wantFirst: "Error [Runtime Error]: disk full",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			FprintError(&buf, tt.err, true)
			assert.True(t, strings.HasPrefix(buf.String(), tt.wantFirst+"\n"), buf.String())
		})
	}

	var buf bytes.Buffer
	FprintError(&buf, nil, true)
	assert.Empty(t, buf.String())
}
