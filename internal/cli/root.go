package cli

import (
	"errors"

	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
	"github.com/ariel-frischer/prchangelog/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Command groups for help output
const (
	GroupChangelog     = "changelog"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "prchangelog",
	Short: "Merge pull-request changelog entries into CHANGELOG.md",
	Long: `prchangelog merges the categorized changelog entries found in a pull-request
description into the '## [Unreleased]' section of a Keep a Changelog formatted
CHANGELOG.md, then normalizes the Markdown spacing.

The PR description should contain a section like:

  ## Changelog

  ### Added
  - Support for CSV export

  ### Fixed
  - Crash when the list is empty`,
	Example: `  # Merge the PR body into ./CHANGELOG.md
  prchangelog merge --pr-body-file pr_body.txt

  # Pipe the body from the GitHub CLI
  gh pr view 42 --json body -q .body | prchangelog merge --pr-body-file -

  # Preview what would be merged
  prchangelog extract --pr-body-file pr_body.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			color.NoColor = true
		}
		logging.Setup(cmd.ErrOrStderr(), logging.Options{Debug: debug, NoColor: plain})
		return nil
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: .prchangelog.yml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("plain", false, "Plain output (no colors/icons)")
}

// Execute runs the root command and reports any failure to stderr as a
// single structured diagnostic. The returned error maps to an exit status
// through ExitCode.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		plain, _ := cmd.Flags().GetBool("plain")
		clierrors.FprintError(cmd.ErrOrStderr(), err, plain)
	}
	return err
}
