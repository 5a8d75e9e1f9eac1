package cli

import (
	"fmt"

	"github.com/ariel-frischer/prchangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
	"github.com/spf13/cobra"
)

// Output formats accepted by extract --format
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatTerminal = "terminal"
)

var (
	extractPRBodyFlag string
	extractFormatFlag string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Show the changelog entries found in a PR body",
	Long: `Extract the categorized changelog entries from a PR body without touching
any changelog file.

Use this to preview what 'merge' would add, or to feed the entries into other
tooling as Markdown or YAML.`,
	Example: `  prchangelog extract --pr-body-file pr_body.txt
  prchangelog extract --pr-body-file pr_body.txt --format yaml
  prchangelog extract --pr-body-file - --format terminal < pr_body.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd)
	},
}

func init() {
	extractCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractPRBodyFlag, "pr-body-file", "", "Path to a file containing the PR body ('-' for stdin)")
	extractCmd.Flags().StringVarP(&extractFormatFlag, "format", "f", FormatMarkdown, "Output format: markdown, yaml or terminal")
}

func runExtract(cmd *cobra.Command) error {
	if extractPRBodyFlag == "" {
		return clierrors.MissingPRBodyFlag("extract")
	}

	formats := []string{FormatMarkdown, FormatYAML, FormatTerminal}
	if !contains(formats, extractFormatFlag) {
		return clierrors.InvalidFormat(extractFormatFlag, formats)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := requireInput("PR body", "--pr-body-file", extractPRBodyFlag, true); err != nil {
		return err
	}
	body, err := readInput(cmd, extractPRBodyFlag)
	if err != nil {
		return err
	}

	frag := changelog.Extract(body)
	out := cmd.OutOrStdout()
	if frag.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "No changelog entries found in PR body.")
		return nil
	}

	switch extractFormatFlag {
	case FormatYAML:
		return changelog.RenderYAML(frag, out)
	case FormatTerminal:
		return changelog.FormatFragment(frag, out, formatOptions(cfg))
	default:
		return changelog.RenderMarkdown(frag, out)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
