package cli

import (
	"os"
	"path/filepath"

	"github.com/ariel-frischer/prchangelog/internal/changelog"
	"github.com/ariel-frischer/prchangelog/internal/config"
	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
	"github.com/ariel-frischer/prchangelog/internal/git"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadConfig loads configuration from --config or the project config file.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigPath:    configPath,
		WarningWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		path := configPath
		if path == "" {
			path = config.ProjectConfigPath()
		}
		return nil, clierrors.ConfigParseError(path, err)
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		cfg.Plain = true
	}
	return cfg, nil
}

// resolveChangelogPath picks the destination changelog: an explicit
// --changelog flag wins, then the configured path. A relative configured path
// that is missing from the working directory is looked up at the git
// repository root.
func resolveChangelogPath(cmd *cobra.Command, cfg *config.Configuration) string {
	if cmd.Flags().Changed("changelog") {
		path, _ := cmd.Flags().GetString("changelog")
		return path
	}

	path := cfg.Changelog
	if filepath.IsAbs(path) || fileExists(path) {
		return path
	}

	if !git.IsRepository("") {
		log.Debug().Str("changelog", path).Msg("not inside a git repository, no root fallback")
		return path
	}
	root, err := git.RepoRoot("")
	if err != nil {
		log.Debug().Err(err).Msg("resolving repository root")
		return path
	}
	if candidate := filepath.Join(root, path); fileExists(candidate) {
		return candidate
	}
	return path
}

// requireInput returns a MissingInputFile error unless path exists. With
// allowStdin, "-" selects stdin; otherwise it is rejected as an argument
// error.
func requireInput(kind, flag, path string, allowStdin bool) error {
	if path == changelog.StdinPath {
		if allowStdin {
			return nil
		}
		return clierrors.StdinNotAllowed(flag)
	}
	if fileExists(path) {
		return nil
	}
	return clierrors.MissingInputFile(kind, path).WithExitCode(ExitMissingInput)
}

// readInput reads a checked input, wrapping failures as CLI errors.
func readInput(cmd *cobra.Command, path string) (string, error) {
	text, err := changelog.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return "", clierrors.FileNotReadable(path, err)
	}
	return text, nil
}

func formatOptions(cfg *config.Configuration) changelog.FormatOptions {
	return changelog.FormatOptions{Plain: cfg.Plain}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
