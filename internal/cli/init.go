package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/internal/configloader"
	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/fsutil"
)

const defaultConfigName = ".prose.yml"

type initFlags struct {
	force  bool
	user   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Write a commented .prose.yml with the default settings to the current
directory, or to the user configuration directory with --user.`,
		Example: `  prose init
  prose init --user
  prose init --output docs/.prose.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&flags.user, "user", false, "write the user-level config instead")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write (default .prose.yml)")
	cmd.MarkFlagsMutuallyExclusive("user", "output")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	path, err := initPath(flags)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if !flags.force {
			return withCode(ExitInvalidUsage, fmt.Errorf("%s already exists; use --force to overwrite", path))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return withCode(ExitIOError, fmt.Errorf("stat %s: %w", path, err))
	}

	content, err := config.Template()
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), path, content, fsutil.DefaultFileMode); err != nil {
		return withCode(ExitIOError, err)
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	return nil
}

func initPath(flags *initFlags) (string, error) {
	switch {
	case flags.user:
		dir, err := configloader.UserConfigDir()
		if err != nil {
			return "", withCode(ExitIOError, err)
		}
		return filepath.Join(dir, "config.yml"), nil
	case flags.output != "":
		return flags.output, nil
	default:
		return defaultConfigName, nil
	}
}
