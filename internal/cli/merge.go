package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/prchangelog/internal/changelog"
	"github.com/ariel-frischer/prchangelog/internal/config"
	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	mergePRBodyFlag string
	mergeDryRunFlag bool
	mergeStdoutFlag bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge PR changelog entries into the Unreleased section",
	Long: `Merge the changelog entries of a pull-request description into CHANGELOG.md.

The PR body is scanned for a 'Changelog' heading (## to ####, optionally
decorated, e.g. '## 🔄 Changelog'). Each '### <Category>' list beneath it is
merged into the matching subsection of '## [Unreleased]'. New entries go
directly under an existing category heading; unknown categories are appended
at the end of the Unreleased section. Released versions are never modified.

If the PR body has no changelog entries, the changelog is left untouched and
the command exits successfully.`,
	Example: `  prchangelog merge --pr-body-file pr_body.txt
  prchangelog merge --pr-body-file pr_body.txt --changelog docs/CHANGELOG.md
  prchangelog merge --pr-body-file - --dry-run < pr_body.txt
  prchangelog merge --pr-body-file pr_body.txt --stdout > /tmp/CHANGELOG.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(cmd)
	},
}

func init() {
	mergeCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergePRBodyFlag, "pr-body-file", "", "Path to a file containing the PR body ('-' for stdin)")
	mergeCmd.Flags().String("changelog", config.DefaultChangelog, "Path to the changelog file")
	mergeCmd.Flags().BoolVar(&mergeDryRunFlag, "dry-run", false, "Show what would be merged without writing")
	mergeCmd.Flags().BoolVar(&mergeStdoutFlag, "stdout", false, "Write the merged changelog to stdout instead of the file")
	mergeCmd.MarkFlagsMutuallyExclusive("dry-run", "stdout")
}

func runMerge(cmd *cobra.Command) error {
	if mergePRBodyFlag == "" {
		return clierrors.MissingPRBodyFlag("merge")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logPath := resolveChangelogPath(cmd, cfg)

	// Both inputs must exist before anything is read or written.
	if err := requireInput("PR body", "--pr-body-file", mergePRBodyFlag, true); err != nil {
		return err
	}
	if err := requireInput("changelog", "--changelog", logPath, false); err != nil {
		return err
	}

	body, err := readInput(cmd, mergePRBodyFlag)
	if err != nil {
		return err
	}
	doc, err := readInput(cmd, logPath)
	if err != nil {
		return err
	}

	frag := changelog.Extract(body)
	res, err := changelog.Apply(doc, frag)
	if errors.Is(err, changelog.ErrNoChangelogEntries) {
		fmt.Fprintln(cmd.OutOrStdout(), "No changelog entries found in PR body.")
		return nil
	}
	if err != nil {
		if changelog.IsSectionNotFound(err) {
			return clierrors.MissingUnreleasedSection(logPath, err)
		}
		return err
	}

	log.Debug().
		Str("changelog", logPath).
		Strs("categories", res.Merged).
		Int("entries", res.Entries).
		Bool("changed", res.Changed).
		Msg("merge complete")

	out := cmd.OutOrStdout()
	switch {
	case mergeStdoutFlag:
		fmt.Fprint(out, res.Document)
		return nil
	case mergeDryRunFlag:
		preview, err := changelog.RenderMarkdownString(frag)
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		fmt.Fprintf(out, "Would update %s with: %s\n\n%s", logPath, strings.Join(res.Merged, ", "), preview)
	default:
		if err := changelog.WriteFile(logPath, res.Document); err != nil {
			return clierrors.FileNotWritable(logPath, err)
		}
		fmt.Fprintf(out, "✓ Updated %s with: %s\n", logPath, strings.Join(res.Merged, ", "))
	}

	if cfg.Summary {
		if err := changelog.FormatSummary(frag, out, formatOptions(cfg)); err != nil {
			return fmt.Errorf("formatting summary: %w", err)
		}
	}
	return nil
}
