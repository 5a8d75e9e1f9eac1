package errors

import "fmt"

// Common error messages for the prchangelog CLI.
// These templates keep diagnostics consistent and actionable.

// MissingInputFile creates an error for a PR body or changelog path that does not exist.
func MissingInputFile(kind, path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s file not found: %s", kind, path),
		"Check the path passed to --pr-body-file / --changelog",
		"Paths are resolved relative to the current directory",
	)
}

// MissingPRBodyFlag creates an error when --pr-body-file is not given.
func MissingPRBodyFlag(command string) *CLIError {
	return NewArgumentErrorWithUsage(
		"--pr-body-file is required",
		fmt.Sprintf("prchangelog %s --pr-body-file <path|->", command),
		"Save the PR description to a file, e.g. gh pr view --json body -q .body > pr_body.txt",
		"Or pipe it on stdin with --pr-body-file -",
	)
}

// StdinNotAllowed creates an error when "-" is passed for an input that must
// be a real file, such as the changelog being rewritten.
func StdinNotAllowed(flag string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("%s does not accept '-' (stdin)", flag),
		fmt.Sprintf("%s <path>", flag),
		"The changelog is rewritten in place, so it must be a file path",
	)
}

// MissingUnreleasedSection creates an error when the changelog has no
// "## [Unreleased]" heading to merge into.
func MissingUnreleasedSection(path string, err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("cannot merge into %s", path),
		"Add a '## [Unreleased]' heading above the latest release",
		"See https://keepachangelog.com/en/1.1.0/ for the expected layout",
	)
}

// ChangelogNotNormalized creates an error for a changelog whose spacing
// differs from the normalized form.
func ChangelogNotNormalized(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s is not normalized", path),
		"Run: prchangelog normalize --changelog "+path,
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML or JSON syntax errors",
		"Supported keys: changelog, plain, summary",
	)
}

// InvalidFormat creates an error for an unsupported --format value.
func InvalidFormat(format string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid output format: %s", format),
		"prchangelog extract --format <markdown|yaml|terminal>",
		fmt.Sprintf("Valid formats: %v", valid),
	)
}

// FileNotReadable creates an error when an input file cannot be read.
func FileNotReadable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot read file: %s", path),
		"Check file permissions: ls -la "+path,
	)
}

// FileNotWritable creates an error when the changelog cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}
