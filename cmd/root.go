package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/colwise/cli/cmd/version"
	"github.com/colwise/cli/internal/config"
	"github.com/colwise/cli/internal/input"
	"github.com/colwise/cli/internal/logger"
	"github.com/colwise/cli/internal/table"
	"github.com/colwise/cli/internal/tui"
	versionpkg "github.com/colwise/cli/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOpts struct {
	Separator int
	Left      bool
	Page      bool
}

// Initialize the root Cobra command.
//
// Set initResources to false when generating documentation to avoid
// parsing configuration files. This is to avoid depending on external
// state when doing doc generation.
func RootCommand(initResources bool) (*cobra.Command, error) {
	opts := rootOpts{}

	cmd := &cobra.Command{
		Use:   "colwise [input]",
		Short: "Align whitespace-delimited columns into a neat table",
		Long: "Reformat whitespace- or tab-delimited text so columns line up.\n\n" +
			"Reads from stdin by default; pass a file path, or a multiline string\n" +
			"to format it directly. Columns whose data rows all look numeric are\n" +
			"right-aligned; embedded terminal colors do not affect the layout.",
		Args: cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Name() == "version" {
				return
			}

			// Update notices must never end up in a pipe alongside the
			// formatted table.
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return
			}

			versionpkg.CheckForUpdateAsync(func(release *versionpkg.GitHubRelease) {
				logger.Warning("A new version is available: %s (current: %s)", release.TagName, versionpkg.Version)
				logger.Info("Run 'colwise version' for details")
			})
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Separator < 0 {
				return errors.New("--separator must be non-negative")
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := formatMain(&opts, args); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.AddCommand(version.VersionCmd)

	sepDefault := table.DefaultSeparator
	leftDefault := false

	if initResources {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		logger.InitLogger(cfg.LogLevel)
		viper.Set("disable_update_check", cfg.DisableUpdateCheck)

		sepDefault = cfg.Separator
		leftDefault = cfg.AlignLeft
	}

	cmd.Flags().IntVarP(&opts.Separator, "separator", "s", sepDefault, "Number of spaces between columns")
	cmd.Flags().BoolVar(&opts.Left, "left", leftDefault, "Left-align columns that carry no clearly numeric data")
	cmd.Flags().BoolVarP(&opts.Page, "page", "p", false, "View the formatted table in a scrollable pager")

	return cmd, nil
}

func formatMain(opts *rootOpts, args []string) error {
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}

	lines, err := input.Lines(arg)
	if err != nil {
		logger.Error("%v", err)
		return err
	}
	if len(lines) == 0 {
		err := errors.New("no input provided")
		logger.Error("%v", err)
		return err
	}

	rows := table.Tokenize(lines)
	cols := table.Analyze(rows)
	if opts.Left {
		cols.AlignLeftByDefault()
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = table.RenderRow(row, cols, opts.Separator)
	}

	if opts.Page && isatty.IsTerminal(os.Stdout.Fd()) {
		if err := tui.NewPager(out); err != nil {
			logger.Error("%v", err)
			return err
		}
		return nil
	}

	for _, line := range out {
		fmt.Println(line)
	}
	return nil
}

// Execute is called by main.go
func Execute() {
	cmd, err := RootCommand(true)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
