package cli

import (
	"fmt"

	"github.com/ariel-frischer/prchangelog/internal/changelog"
	"github.com/ariel-frischer/prchangelog/internal/config"
	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
	"github.com/spf13/cobra"
)

var normalizeCheckFlag bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize blank-line spacing in CHANGELOG.md",
	Long: `Normalize the Markdown spacing of a changelog file: collapse runs of blank
lines and ensure every '##' or '###' heading has one blank line before and after.

With --check, nothing is written; the command exits with code 1 if the file
is not already normalized. This is useful as a CI guard.`,
	Example: `  prchangelog normalize
  prchangelog normalize --changelog docs/CHANGELOG.md
  prchangelog normalize --check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(cmd)
	},
}

func init() {
	normalizeCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().String("changelog", config.DefaultChangelog, "Path to the changelog file")
	normalizeCmd.Flags().BoolVar(&normalizeCheckFlag, "check", false, "Only check; exit 1 if the file is not normalized")
}

func runNormalize(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logPath := resolveChangelogPath(cmd, cfg)

	if err := requireInput("changelog", "--changelog", logPath, false); err != nil {
		return err
	}
	doc, err := readInput(cmd, logPath)
	if err != nil {
		return err
	}

	normalized := changelog.Normalize(doc)
	out := cmd.OutOrStdout()

	if normalized == doc {
		fmt.Fprintf(out, "✓ %s is normalized\n", logPath)
		return nil
	}

	if normalizeCheckFlag {
		return clierrors.ChangelogNotNormalized(logPath)
	}

	if err := changelog.WriteFile(logPath, normalized); err != nil {
		return clierrors.FileNotWritable(logPath, err)
	}
	fmt.Fprintf(out, "✓ Normalized %s\n", logPath)
	return nil
}
